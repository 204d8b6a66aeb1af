// Package publisher talks to the content store's blog REST API.
package publisher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/clicksalesmedia/blogpilot/internal/logger"
	"github.com/clicksalesmedia/blogpilot/internal/models"
)

// PostPayload is the wire shape of a blog upsert. The localized pointer
// fields carry no omitempty on purpose: clearing a field must serialize as
// an explicit null, not be dropped from the payload.
type PostPayload struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
	AuthorID   string `json:"authorId,omitempty"`

	TitleAr           *string `json:"titleAr"`
	ContentAr         *string `json:"contentAr"`
	ExcerptAr         *string `json:"excerptAr"`
	MetaDescriptionAr *string `json:"metaDescriptionAr"`

	Categories []string `json:"categories,omitempty"`
}

// RemotePost is a blog record as returned by the content store.
type RemotePost struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	MetaDescription string   `json:"metaDescription"`
	CoverImage      string   `json:"coverImage"`
	Published       bool     `json:"published"`
	Categories      []string `json:"categories"`

	TitleAr           *string `json:"titleAr"`
	ContentAr         *string `json:"contentAr"`
	ExcerptAr         *string `json:"excerptAr"`
	MetaDescriptionAr *string `json:"metaDescriptionAr"`
}

// Client is the REST client for the content store.
type Client struct {
	client   *resty.Client
	authorID string
}

func NewClient(baseURL, authorID string, timeout time.Duration) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		authorID: authorID,
	}
}

// PayloadFor builds the publish payload for an assembled post.
func (c *Client) PayloadFor(post models.Post) PostPayload {
	return PostPayload{
		Title:             post.Title,
		Slug:              post.Slug,
		Content:           post.Content,
		Excerpt:           post.Excerpt,
		CoverImage:        post.CoverImage,
		Published:         true,
		AuthorID:          c.authorID,
		TitleAr:           post.TitleAr,
		ContentAr:         post.ContentAr,
		ExcerptAr:         post.ExcerptAr,
		MetaDescriptionAr: post.MetaDescriptionAr,
	}
}

// Publish creates a post in the content store. Success is exactly HTTP 201;
// anything else is an error for the caller to record.
func (c *Client) Publish(ctx context.Context, post models.Post) error {
	log := logger.Get()
	log.Info().Str("title", post.Title).Str("slug", post.Slug).Msg("Publishing blog post")

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(c.PayloadFor(post)).
		Post("/blog")
	if err != nil {
		return fmt.Errorf("publish request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("failed to publish post: %d - %s", resp.StatusCode(), resp.String())
	}

	return nil
}

// ListPublished fetches all published posts.
func (c *Client) ListPublished(ctx context.Context) ([]RemotePost, error) {
	var posts []RemotePost

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("published", "true").
		SetQueryParam("limit", "100").
		SetResult(&posts).
		Get("/blog")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d fetching posts", resp.StatusCode())
	}

	return posts, nil
}

// Update replaces a post, keyed by slug. Success is exactly HTTP 200.
func (c *Client) Update(ctx context.Context, slug string, payload PostPayload) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Put("/blog/" + slug)
	if err != nil {
		return fmt.Errorf("update request for %s failed: %w", slug, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to update post %s: %d - %s", slug, resp.StatusCode(), resp.String())
	}

	return nil
}

// Delete removes a post by slug. Success is exactly HTTP 200.
func (c *Client) Delete(ctx context.Context, slug string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/blog/" + slug)
	if err != nil {
		return fmt.Errorf("delete request for %s failed: %w", slug, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to delete post %s: %d", slug, resp.StatusCode())
	}

	return nil
}
