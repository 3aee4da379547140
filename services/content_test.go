package services

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

func newContentService(t *testing.T) (*ContentService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &ContentService{sqlSvc: store}, store
}

func TestCreateContentStartsAsDraft(t *testing.T) {
	svc, _ := newContentService(t)

	resp, err := svc.CreateContent("teacher", dto.CreateContentRequest{
		Title:       "Kazakh Phrases",
		Slug:        "kazakh-phrases",
		Body:        "Salem means hello",
		ContentType: "lesson",
	})
	require.NoError(t, err)
	assert.Equal(t, shared.ContentStatusDraft, resp.Status)
	assert.Equal(t, "teacher", resp.Author)
	assert.Nil(t, resp.PublishedAt)
}

func TestCreateContentDuplicateSlug(t *testing.T) {
	svc, _ := newContentService(t)

	req := dto.CreateContentRequest{
		Title:       "Kazakh Phrases",
		Slug:        "kazakh-phrases",
		ContentType: "lesson",
	}
	_, err := svc.CreateContent("teacher", req)
	require.NoError(t, err)

	_, err = svc.CreateContent("teacher", req)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Slug already in use", appErr.Message)
}

func TestDraftsAreInvisibleToPublicReads(t *testing.T) {
	svc, store := newContentService(t)

	draft, err := svc.CreateContent("teacher", dto.CreateContentRequest{
		Title:       "Draft Page",
		Slug:        "draft-page",
		ContentType: "article",
	})
	require.NoError(t, err)

	rows, err := svc.ListPublished(dto.ContentListRequest{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.GetBySlug("draft-page")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.StatusCode)

	// Publish out of band, the way an operator would
	now := time.Now().UTC()
	err = store.Db().Table("contents").
		Where("id = ?", draft.ID).
		Updates(map[string]interface{}{"status": shared.ContentStatusPublished, "published_at": now}).Error
	require.NoError(t, err)

	rows, err = svc.ListPublished(dto.ContentListRequest{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	page, err := svc.GetBySlug("draft-page")
	require.NoError(t, err)
	assert.Equal(t, shared.ContentStatusPublished, page.Status)
}

func TestListPublishedOrderAndFilter(t *testing.T) {
	svc, store := newContentService(t)

	publish := func(slug, contentType string, offset time.Duration) {
		resp, err := svc.CreateContent("admin", dto.CreateContentRequest{
			Title:       slug,
			Slug:        slug,
			ContentType: contentType,
		})
		require.NoError(t, err)

		publishedAt := time.Now().UTC().Add(offset)
		err = store.Db().Table("contents").
			Where("id = ?", resp.ID).
			Updates(map[string]interface{}{"status": shared.ContentStatusPublished, "published_at": publishedAt}).Error
		require.NoError(t, err)
	}

	publish("older-article", "article", -2*time.Hour)
	publish("newer-article", "article", -time.Hour)
	publish("some-guide", "guide", -30*time.Minute)

	rows, err := svc.ListPublished(dto.ContentListRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "some-guide", rows[0].Slug)
	assert.Equal(t, "newer-article", rows[1].Slug)
	assert.Equal(t, "older-article", rows[2].Slug)

	articles, err := svc.ListPublished(dto.ContentListRequest{ContentType: "article"})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "newer-article", articles[0].Slug)
}
