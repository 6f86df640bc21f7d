package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"linkpulse-bot/internal/storage/models"
)

const (
	sharedPostsFile      = "shared_posts.json"
	generatedPromptsFile = "generated_prompts.json"
)

// JSONStore persists both logs as pretty-printed JSON array files under a
// data directory. Every append reloads the file, appends the record and
// rewrites the whole file. A mutex serializes that cycle so concurrent
// handlers cannot lose each other's appends.
type JSONStore struct {
	dataDir string
	mu      sync.Mutex
}

var _ Store = (*JSONStore)(nil)

// NewJSONStore creates the data directory if needed and returns a store
// backed by it.
func NewJSONStore(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &JSONStore{dataDir: dataDir}, nil
}

func (s *JSONStore) AppendSharedPost(ctx context.Context, post models.SharedPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.SharedPost
	loadJSON(s.path(sharedPostsFile), &posts)
	posts = append(posts, post)
	return writeJSON(s.path(sharedPostsFile), posts)
}

func (s *JSONStore) AppendGeneratedPrompt(ctx context.Context, prompt models.GeneratedPrompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prompts []models.GeneratedPrompt
	loadJSON(s.path(generatedPromptsFile), &prompts)
	prompts = append(prompts, prompt)
	return writeJSON(s.path(generatedPromptsFile), prompts)
}

func (s *JSONStore) SharedPosts(ctx context.Context) []models.SharedPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.SharedPost
	loadJSON(s.path(sharedPostsFile), &posts)
	return posts
}

func (s *JSONStore) GeneratedPrompts(ctx context.Context) []models.GeneratedPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prompts []models.GeneratedPrompt
	loadJSON(s.path(generatedPromptsFile), &prompts)
	return prompts
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// loadJSON fills out from the file at path. Missing or malformed files leave
// out untouched; that is the empty-state-on-read policy, not an error path.
func loadJSON(path string, out interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Store] Failed to read %s: %v. Treating as empty.", path, err)
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[Store] Failed to parse %s: %v. Treating as empty.", path, err)
	}
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
