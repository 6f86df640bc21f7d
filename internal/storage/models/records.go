package models

// Prompt types recorded in the generated-prompt log.
const (
	PromptTypeAIGenerated = "ai_generated"
	PromptTypeFallback    = "fallback"
	PromptTypeCustom      = "custom"
)

// SharedPost records one LinkedIn post link detected in a team chat message.
// A message containing several links produces one record per link, identical
// except for URL.
type SharedPost struct {
	URL         string `json:"url" bson:"url"`
	UserID      string `json:"userId" bson:"user_id"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
	Channel     string `json:"channel" bson:"channel"`
	MessageText string `json:"messageText" bson:"message_text"`
}

// GeneratedPrompt records one piece of generated (or fallback) content.
// ID is the posted Telegram message ID when the post succeeded, otherwise a
// locally generated token. Request, ImageURL and ImagePrompt are only set on
// the custom-content path.
type GeneratedPrompt struct {
	ID          string  `json:"id" bson:"id"`
	Content     string  `json:"content" bson:"content"`
	Request     string  `json:"request,omitempty" bson:"request,omitempty"`
	Type        string  `json:"type" bson:"type"`
	ImageURL    *string `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	ImagePrompt string  `json:"imagePrompt,omitempty" bson:"image_prompt,omitempty"`
	Timestamp   string  `json:"timestamp" bson:"timestamp"`
	Channel     string  `json:"channel" bson:"channel"`
}
