package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/getsentry/sentry-go"
)

// Generation parameters per entry point.
const (
	dailyMaxTokens    = 200
	dailyTemperature  = 0.8
	customMaxTokens   = 400
	customTemperature = 0.7
)

// CompletionRequest is one chat-completion call to the text backend.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int64
	Temperature float64
}

// TextBackend abstracts the chat-completion service so handlers and tests
// can run without the real OpenAI client.
type TextBackend interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Source tells callers whether content came from the model or from the
// canned fallback. Fallback is a successful render path, not an error.
type Source int

const (
	SourceModel Source = iota
	SourceFallback
)

// Result is the outcome of one generation call. Content is always non-empty
// and well-formed; backend failures are swallowed here and replaced by the
// entry point's fallback.
type Result struct {
	Content string
	Source  Source
}

// Generator produces post content through a TextBackend.
type Generator struct {
	backend TextBackend
}

func NewGenerator(backend TextBackend) *Generator {
	return &Generator{backend: backend}
}

// DailyPrompt generates the scheduled-style single post idea.
func (g *Generator) DailyPrompt(ctx context.Context, systemContext string) Result {
	return g.generate(ctx, CompletionRequest{
		System:      systemContext,
		User:        DailyInstruction,
		MaxTokens:   dailyMaxTokens,
		Temperature: dailyTemperature,
	}, DailyFallback)
}

// CustomContent generates topic-specific content for a user request.
func (g *Generator) CustomContent(ctx context.Context, systemContext, request string) Result {
	return g.generate(ctx, CompletionRequest{
		System:      systemContext,
		User:        fmt.Sprintf(CustomInstructionTemplate, request),
		MaxTokens:   customMaxTokens,
		Temperature: customTemperature,
	}, CustomFallback)
}

func (g *Generator) generate(ctx context.Context, req CompletionRequest, fallback string) Result {
	content, err := g.backend.Complete(ctx, req)
	if err != nil {
		log.Printf("[Generator] Completion failed, using fallback: %v", err)
		sentry.CaptureException(fmt.Errorf("content generation failed: %w", err))
		return Result{Content: fallback, Source: SourceFallback}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		log.Println("[Generator] Completion returned empty content, using fallback")
		return Result{Content: fallback, Source: SourceFallback}
	}
	return Result{Content: content, Source: SourceModel}
}
