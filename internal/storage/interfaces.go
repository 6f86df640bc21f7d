package storage

import (
	"context"

	"linkpulse-bot/internal/storage/models"
)

// Store provides append-only access to the two record logs.
//
// Reads degrade silently: a missing, unreadable or malformed backing store
// yields an empty slice, never an error. Append failures are returned so
// callers can log and continue; they are never surfaced to chat users.
type Store interface {
	// AppendSharedPost appends one detected link record.
	AppendSharedPost(ctx context.Context, post models.SharedPost) error
	// AppendGeneratedPrompt appends one generated-content record.
	AppendGeneratedPrompt(ctx context.Context, prompt models.GeneratedPrompt) error
	// SharedPosts returns all shared-post records in append order.
	SharedPosts(ctx context.Context) []models.SharedPost
	// GeneratedPrompts returns all generated-prompt records in append order.
	GeneratedPrompts(ctx context.Context) []models.GeneratedPrompt
}
