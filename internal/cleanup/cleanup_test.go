package cleanup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clicksalesmedia/blogpilot/internal/lang"
	"github.com/clicksalesmedia/blogpilot/internal/publisher"
)

type fakeStore struct {
	posts    []publisher.RemotePost
	listErr  error
	updates  map[string]publisher.PostPayload
	failSlug string
}

func newFakeStore(posts ...publisher.RemotePost) *fakeStore {
	return &fakeStore{posts: posts, updates: make(map[string]publisher.PostPayload)}
}

func (f *fakeStore) ListPublished(ctx context.Context) ([]publisher.RemotePost, error) {
	return f.posts, f.listErr
}

func (f *fakeStore) Update(ctx context.Context, slug string, payload publisher.PostPayload) error {
	if slug == f.failSlug {
		return errors.New("store error")
	}
	f.updates[slug] = payload
	return nil
}

func strPtr(s string) *string { return &s }

func TestRunNullsLocalizedFieldsOnEnglishPost(t *testing.T) {
	store := newFakeStore(publisher.RemotePost{
		Title:             "SEO Guide",
		Slug:              "seo-guide",
		Content:           "<p>c</p>",
		Excerpt:           "e",
		Published:         true,
		Categories:        []string{"performance-marketing"},
		TitleAr:           strPtr("SEO Guide"),
		ContentAr:         strPtr("<p>c</p>"),
		ExcerptAr:         strPtr("e"),
		MetaDescriptionAr: strPtr("m"),
	})

	repairer := NewRepairer(store, lang.NewDetector())
	report, err := repairer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Fixed)
	assert.Equal(t, 0, report.Correct)

	payload, ok := store.updates["seo-guide"]
	require.True(t, ok)
	assert.Nil(t, payload.TitleAr)
	assert.Nil(t, payload.ContentAr)
	assert.Nil(t, payload.ExcerptAr)
	assert.Nil(t, payload.MetaDescriptionAr)
	assert.Equal(t, []string{"performance-marketing"}, payload.Categories)
	assert.True(t, payload.Published)
}

func TestRunPopulatesLocalizedFieldsOnArabicPost(t *testing.T) {
	store := newFakeStore(publisher.RemotePost{
		Title:           "دليل التسويق الرقمي",
		Slug:            "arabic-guide",
		Content:         "<p>محتوى</p>",
		Excerpt:         "مقتطف",
		MetaDescription: "وصف",
		Published:       true,
	})

	repairer := NewRepairer(store, lang.NewDetector())
	report, err := repairer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Fixed)

	payload := store.updates["arabic-guide"]
	require.NotNil(t, payload.TitleAr)
	assert.Equal(t, "دليل التسويق الرقمي", *payload.TitleAr)
	require.NotNil(t, payload.ContentAr)
	assert.Equal(t, "<p>محتوى</p>", *payload.ContentAr)
	require.NotNil(t, payload.MetaDescriptionAr)
	assert.Equal(t, "وصف", *payload.MetaDescriptionAr)
}

func TestRunLeavesCorrectPostsAlone(t *testing.T) {
	store := newFakeStore(
		publisher.RemotePost{Title: "English Post", Slug: "english-post", Published: true},
		publisher.RemotePost{
			Title:     "دليل عربي",
			Slug:      "arabic-post",
			Published: true,
			TitleAr:   strPtr("دليل عربي"),
		},
	)

	repairer := NewRepairer(store, lang.NewDetector())
	report, err := repairer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Fixed)
	assert.Equal(t, 2, report.Correct)
	assert.Empty(t, store.updates)
}

func TestRunSkipsPostsWithoutSlug(t *testing.T) {
	store := newFakeStore(publisher.RemotePost{Title: "No Slug", TitleAr: strPtr("x")})

	repairer := NewRepairer(store, lang.NewDetector())
	report, err := repairer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Inspected)
	assert.Empty(t, store.updates)
}

func TestRunCountsFailedUpdates(t *testing.T) {
	store := newFakeStore(publisher.RemotePost{
		Title:   "English Post",
		Slug:    "english-post",
		TitleAr: strPtr("x"),
	})
	store.failSlug = "english-post"

	repairer := NewRepairer(store, lang.NewDetector())
	report, err := repairer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Fixed)
}

func TestRunPropagatesListError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("store down")

	repairer := NewRepairer(store, lang.NewDetector())
	_, err := repairer.Run(context.Background())
	assert.Error(t, err)
}
