package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/getsentry/sentry-go"
)

// ImageBackend abstracts the image-generation service. Generate returns the
// URL of one rendered image.
type ImageBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// imageRule maps request keywords to an image prompt. Rules are evaluated in
// order, first match wins; the order is behavior, not incidental structure.
type imageRule struct {
	match func(string) bool
	build func(string) string
}

var imageRules = []imageRule{
	{
		match: func(s string) bool { return strings.Contains(s, "iphone") && strings.Contains(s, "android") },
		build: func(string) string {
			return "A clean, modern comparison infographic showing an iPhone and an Android smartphone " +
				"side by side, flat design, professional blue and green color palette, no text"
		},
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "chart") || strings.Contains(s, "graph") || strings.Contains(s, "data")
		},
		build: func(string) string {
			return "A minimal, professional data visualization with bar charts and trend lines, " +
				"flat design, corporate color palette, no text"
		},
	},
	{
		match: func(s string) bool { return strings.Contains(s, "comparison") },
		build: func(string) string {
			return "A split-layout comparison illustration with two contrasting halves, " +
				"modern flat design, professional color palette, no text"
		},
	},
}

// DescribeImage derives an image prompt from the request text. It is pure
// and total: the same request always yields the same prompt, and every
// request yields one.
func DescribeImage(request string) string {
	lower := strings.ToLower(request)
	for _, rule := range imageRules {
		if rule.match(lower) {
			return rule.build(lower)
		}
	}
	return fmt.Sprintf("A professional, modern illustration for a LinkedIn post about %s, "+
		"minimal flat design, business color palette, no text", request)
}

// ImageGenerator turns requests into rendered image URLs.
type ImageGenerator struct {
	backend ImageBackend
}

func NewImageGenerator(backend ImageBackend) *ImageGenerator {
	return &ImageGenerator{backend: backend}
}

// Generate renders an image for the request. It returns the image URL and
// the prompt used; the URL is empty when the image service fails. Failures
// are logged and never propagate.
func (g *ImageGenerator) Generate(ctx context.Context, request string) (imageURL, imagePrompt string) {
	imagePrompt = DescribeImage(request)
	url, err := g.backend.Generate(ctx, imagePrompt)
	if err != nil {
		log.Printf("[ImageGen] Image generation failed: %v", err)
		sentry.CaptureException(fmt.Errorf("image generation failed: %w", err))
		return "", imagePrompt
	}
	return url, imagePrompt
}
