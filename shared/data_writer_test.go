package shared

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestResponseEnvelope(t *testing.T) {
	status, body := fetch(t, func(c *fiber.Ctx) error {
		return ResponseOK(c, map[string]string{"hello": "world"})
	})
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"code":200,"message":"Success","data":{"hello":"world"}}`, body)
}

func TestResponsePrebakedOmitsData(t *testing.T) {
	status, body := fetch(t, ResponseNotFound)
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"code":404,"message":"Not Found"}`, body)

	status, body = fetch(t, func(c *fiber.Ctx) error {
		return ResponseOK(c, nil)
	})
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"code":200,"message":"Success"}`, body)
}

func TestJSONCodecRoundTrip(t *testing.T) {
	in := Response{Code: 201, Message: "Created", Data: []string{"a", "b"}}
	raw, err := JSONEncoder(in)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, JSONDecoder(raw, &out))
	assert.Equal(t, "Created", out["message"])
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	appErr := NewNotFoundError(cause, "Game not found")

	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Game not found", appErr.Message)
	assert.ErrorIs(t, appErr, cause)

	wrapped := fmt.Errorf("handler: %w", appErr)
	got, ok := GetAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, appErr.Message, got.Message)

	_, ok = GetAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestConflictMapsToBadRequest(t *testing.T) {
	appErr := NewConflictError(errors.New("dup"), "Email or username already registered")
	assert.Equal(t, 400, appErr.StatusCode)
}
