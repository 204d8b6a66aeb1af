package publisher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clicksalesmedia/blogpilot/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "author-1", 5*time.Second)
}

func englishPost() models.Post {
	return models.Post{
		Title:      "SEO Guide 2025",
		Content:    "<p>body</p>",
		Excerpt:    "teaser",
		CoverImage: "https://images.example.com/cover.png",
		Slug:       "seo-guide-2025",
		Language:   models.LanguageEnglish,
	}
}

func TestPublishSuccessOn201(t *testing.T) {
	var body map[string]json.RawMessage

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/blog", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.WriteHeader(http.StatusCreated)
	})

	err := client.Publish(context.Background(), englishPost())
	require.NoError(t, err)

	// English post: localized fields must be present as explicit nulls.
	for _, field := range []string{"titleAr", "contentAr", "excerptAr", "metaDescriptionAr"} {
		raw, ok := body[field]
		require.True(t, ok, "field %s missing from payload", field)
		assert.Equal(t, "null", string(raw), "field %s should be null", field)
	}

	var authorID string
	require.NoError(t, json.Unmarshal(body["authorId"], &authorID))
	assert.Equal(t, "author-1", authorID)

	var published bool
	require.NoError(t, json.Unmarshal(body["published"], &published))
	assert.True(t, published)
}

func TestPublishArabicPostCarriesLocalizedFields(t *testing.T) {
	var payload PostPayload

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
	})

	post := englishPost()
	post.Language = models.LanguageArabic
	post.SetArabicFields()

	require.NoError(t, client.Publish(context.Background(), post))
	require.NotNil(t, payload.TitleAr)
	assert.Equal(t, post.Title, *payload.TitleAr)
	require.NotNil(t, payload.ContentAr)
	assert.Equal(t, post.Content, *payload.ContentAr)
}

func TestPublishFailsOnNon201(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK) // even 200 is not a created post
	})

	err := client.Publish(context.Background(), englishPost())
	assert.Error(t, err)
}

func TestListPublished(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "true", r.URL.Query().Get("published"))
		require.Equal(t, "100", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title": "A", "slug": "a", "published": true}, {"title": "B", "slug": "b", "titleAr": "ب"}]`))
	})

	posts, err := client.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].Slug)
	assert.Nil(t, posts[0].TitleAr)
	require.NotNil(t, posts[1].TitleAr)
	assert.Equal(t, "ب", *posts[1].TitleAr)
}

func TestUpdateSuccessOn200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/blog/seo-guide-2025", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	err := client.Update(context.Background(), "seo-guide-2025", PostPayload{Slug: "seo-guide-2025"})
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/blog/old-post", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.Delete(context.Background(), "old-post"))

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.Error(t, failing.Delete(context.Background(), "missing"))
}
