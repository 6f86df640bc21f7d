package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse-bot/internal/storage/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestJSONStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	const n = 7
	for i := 0; i < n; i++ {
		err := store.AppendSharedPost(ctx, models.SharedPost{
			URL:         fmt.Sprintf("https://linkedin.com/posts/post-%d", i),
			UserID:      "42",
			Timestamp:   fmt.Sprintf("2025-06-0%dT10:00:00Z", i+1),
			Channel:     "-100123",
			MessageText: fmt.Sprintf("check out post %d", i),
		})
		require.NoError(t, err)
	}

	posts := store.SharedPosts(ctx)
	require.Len(t, posts, n)
	for i, post := range posts {
		assert.Equal(t, fmt.Sprintf("https://linkedin.com/posts/post-%d", i), post.URL)
	}
}

func TestJSONStoreEmptyWhenMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.Empty(t, store.SharedPosts(ctx))
	assert.Empty(t, store.GeneratedPrompts(ctx))
}

func TestJSONStoreEmptyWhenCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewJSONStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, sharedPostsFile), []byte("{not json"), 0o644))
	assert.Empty(t, store.SharedPosts(ctx))

	// A corrupt file must not block further appends.
	require.NoError(t, store.AppendSharedPost(ctx, models.SharedPost{URL: "https://linkedin.com/posts/a"}))
	assert.Len(t, store.SharedPosts(ctx), 1)
}

func TestJSONStorePromptRecordShape(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	imageURL := "https://images.example/gen.png"
	err := store.AppendGeneratedPrompt(ctx, models.GeneratedPrompt{
		ID:          "12345",
		Content:     "Post idea: why battery health sells phones",
		Request:     "battery life",
		Type:        models.PromptTypeCustom,
		ImageURL:    &imageURL,
		ImagePrompt: "A clean data visualization about battery life",
		Timestamp:   "2025-06-01T10:00:00Z",
		Channel:     "-100123",
	})
	require.NoError(t, err)

	err = store.AppendGeneratedPrompt(ctx, models.GeneratedPrompt{
		ID:        "local-1",
		Content:   "Daily idea",
		Type:      models.PromptTypeAIGenerated,
		Timestamp: "2025-06-02T10:00:00Z",
		Channel:   "-100123",
	})
	require.NoError(t, err)

	prompts := store.GeneratedPrompts(ctx)
	require.Len(t, prompts, 2)
	require.NotNil(t, prompts[0].ImageURL)
	assert.Equal(t, imageURL, *prompts[0].ImageURL)
	assert.Nil(t, prompts[1].ImageURL)
	assert.Empty(t, prompts[1].Request)
}
