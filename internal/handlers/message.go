package handlers

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"linkpulse-bot/internal/locales"
	"linkpulse-bot/internal/storage/models"
	"linkpulse-bot/pkg/telegoapi"
)

// linkedInPostPattern matches LinkedIn post URLs shared in chat.
var linkedInPostPattern = regexp.MustCompile(`https://(?:www\.)?linkedin\.com/posts/[A-Za-z0-9\-_%.]+`)

// reactionEmoji is attached once per message with at least one link.
const reactionEmoji = "🔥"

// HandleText is the engagement listener. It runs on every non-command text
// message: a message with k matched links gets one reaction, k SharedPost
// records and one reply referencing the first link. Messages without links
// are ignored.
func (h *MessageHandler) HandleText(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	urls := linkedInPostPattern.FindAllString(message.Text, -1)
	if len(urls) == 0 {
		return nil
	}

	chatID := message.Chat.ID
	logPrefix := fmt.Sprintf("[LinkShare User:%d Msg:%d]", message.From.ID, message.MessageID)
	log.Printf("%s Detected %d LinkedIn post link(s)", logPrefix, len(urls))

	// One reaction per message, not per URL. A failed reaction should not
	// stop the record append or the reply.
	err := bot.SetMessageReaction(ctx, &telego.SetMessageReactionParams{
		ChatID:    tu.ID(chatID),
		MessageID: message.MessageID,
		Reaction: []telego.ReactionType{
			&telego.ReactionTypeEmoji{Type: telego.ReactionEmoji, Emoji: reactionEmoji},
		},
	})
	if err != nil {
		log.Printf("%s Failed to add reaction: %v", logPrefix, err)
		sentry.CaptureException(fmt.Errorf("%s add reaction: %w", logPrefix, err))
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	for _, url := range urls {
		post := models.SharedPost{
			URL:         url,
			UserID:      strconv.FormatInt(message.From.ID, 10),
			Timestamp:   timestamp,
			Channel:     strconv.FormatInt(chatID, 10),
			MessageText: message.Text,
		}
		if err := h.store.AppendSharedPost(ctx, post); err != nil {
			log.Printf("%s Failed to log shared post %s: %v", logPrefix, url, err)
			sentry.CaptureException(fmt.Errorf("%s log shared post: %w", logPrefix, err))
		}
	}

	localizer := h.getLocalizer(message.From)
	reply := locales.GetMessage(localizer, "MsgShareEncouragement", map[string]interface{}{
		"URL": urls[0],
	}, nil)

	params := tu.Message(tu.ID(chatID), reply).
		WithReplyParameters(&telego.ReplyParameters{MessageID: message.MessageID})
	if _, err := bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("%s failed to send encouragement reply: %w", logPrefix, err)
	}
	return nil
}
