package handlers

import (
	"context"
	"log"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"linkpulse-bot/internal/locales"
	"linkpulse-bot/pkg/telegoapi"
)

// sendText sends a plain text message to a chat. Send failures are logged,
// not surfaced to the user.
func (h *MessageHandler) sendText(ctx context.Context, bot telegoapi.BotAPI, chatID int64, text string) error {
	_, err := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	if err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
	}
	return err
}

// sendError sends the generic, localized failure message and returns the
// original error for the update loop to report.
func (h *MessageHandler) sendError(ctx context.Context, bot telegoapi.BotAPI, chatID int64, originalErr error) error {
	log.Printf("Error for user in chat %d: %v", chatID, originalErr)

	localizer := locales.NewLocalizer(locales.GetDefaultLanguageTag().String())
	errMsg := locales.GetMessage(localizer, "MsgErrorGeneral", nil, nil)

	if _, sendErr := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), errMsg)); sendErr != nil {
		log.Printf("Error sending generic error message to chat %d: %v", chatID, sendErr)
	}
	return originalErr
}

// getLocalizer returns the best localizer for a user, falling back to the
// configured default language.
func (h *MessageHandler) getLocalizer(user *telego.User) *i18n.Localizer {
	lang := locales.GetDefaultLanguageTag().String()
	if user != nil && user.LanguageCode != "" {
		lang = user.LanguageCode
	}
	return locales.NewLocalizer(lang)
}
