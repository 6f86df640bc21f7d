package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI API as both the text and image backend.
type Client struct {
	client     openai.Client
	textModel  openai.ChatModel
	imageModel openai.ImageModel
}

var (
	_ TextBackend  = (*Client)(nil)
	_ ImageBackend = (*Client)(nil)
)

// NewClient creates an OpenAI-backed client for the configured models.
func NewClient(apiKey, textModel, imageModel string) *Client {
	return &Client{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		textModel:  openai.ChatModel(textModel),
		imageModel: openai.ImageModel(imageModel),
	}
}

// Complete runs one chat completion and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.textModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		MaxTokens:   openai.Int(req.MaxTokens),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Generate renders one 1024x1024 standard-quality image and returns its URL.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:   c.imageModel,
		Prompt:  prompt,
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("image generation returned no image")
	}
	return resp.Data[0].URL, nil
}
