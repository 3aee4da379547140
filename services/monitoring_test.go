package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Every service after this one in the boot chain only starts once Start
// returns, so the metrics listener must not hold it up.
func TestMonitoringStartReturns(t *testing.T) {
	svc := &MonitoringService{port: 0}

	done := make(chan error, 1)
	go func() { done <- svc.Start() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start blocked on the metrics listener")
	}

	require.NotNil(t, svc.register)
	svc.Shutdown()
}
