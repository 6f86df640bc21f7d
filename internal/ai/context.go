package ai

import (
	"strings"

	"linkpulse-bot/internal/storage/models"
)

// Context-tail bounds. The tails are recency windows, not rankings: records
// keep insertion order, oldest of the tail first.
const (
	sharedPostTail   = 10
	promptTail       = 5
	sharedSnippetLen = 100
)

// BuildSystemContext assembles the system prompt from the identity sentence
// and bounded tails of both logs. Recent team posts steer tone; recent
// generated prompts are listed so the model avoids repeating itself. This is
// in-context conditioning in place of a fine-tune; bounding the tails keeps
// prompt size predictable.
func BuildSystemContext(posts []models.SharedPost, prompts []models.GeneratedPrompt) string {
	var b strings.Builder
	b.WriteString(IdentityPrompt)

	if tail := lastSharedPosts(posts, sharedPostTail); len(tail) > 0 {
		b.WriteString("\n\nRecent posts shared by the team, for tone and topics:\n")
		for _, post := range tail {
			b.WriteString("- ")
			b.WriteString(truncate(post.MessageText, sharedSnippetLen))
			b.WriteString("\n")
		}
	}

	if tail := lastPrompts(prompts, promptTail); len(tail) > 0 {
		b.WriteString("\nIdeas already suggested recently, avoid repeating these:\n")
		for _, prompt := range tail {
			b.WriteString("- ")
			b.WriteString(prompt.Content)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lastSharedPosts(posts []models.SharedPost, n int) []models.SharedPost {
	if len(posts) > n {
		return posts[len(posts)-n:]
	}
	return posts
}

func lastPrompts(prompts []models.GeneratedPrompt, n int) []models.GeneratedPrompt {
	if len(prompts) > n {
		return prompts[len(prompts)-n:]
	}
	return prompts
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
