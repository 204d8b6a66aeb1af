package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clicksalesmedia/blogpilot/internal/logger"
)

// FallbackImageURL is served whenever image generation fails. A broken cover
// image would break the blog index page, so this path never errors.
const FallbackImageURL = "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1024&h=1024&fit=crop&auto=format&q=80"

const callTimeout = 60 * time.Second

// Client wraps the OpenAI API for the two model collaborators: structured
// post text and cover images.
type Client struct {
	client     *openai.Client
	textModel  string
	imageModel string
}

func NewClient(apiKey, textModel, imageModel string) *Client {
	return &Client{
		client:     openai.NewClient(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
	}
}

// GenerateText sends the prompt to the chat completion API and returns the
// raw response text. The response is not guaranteed to be parseable JSON;
// that is the normalizer's problem.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.textModel,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImage asks the image model for a cover illustration derived from
// the post title and returns its URL. Any failure degrades to
// FallbackImageURL; image generation never aborts a post.
func (c *Client) GenerateImage(ctx context.Context, title string) string {
	log := logger.Get()
	log.Info().Str("title", title).Msg("Generating cover image")

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         BuildImagePrompt(title),
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
	})
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("Image generation failed, using fallback URL")
		return FallbackImageURL
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		log.Warn().Str("title", title).Msg("Image response contained no URL, using fallback")
		return FallbackImageURL
	}

	log.Info().Str("url", resp.Data[0].URL).Msg("Successfully generated cover image")
	return resp.Data[0].URL
}
