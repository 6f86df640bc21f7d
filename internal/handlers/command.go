package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"linkpulse-bot/internal/ai"
	"linkpulse-bot/internal/locales"
	"linkpulse-bot/internal/storage/models"
	"linkpulse-bot/pkg/telegoapi"
)

// HandleStart handles the /start command: registers the command list with
// Telegram and sends the welcome message.
func (h *MessageHandler) HandleStart(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	if err := h.setupCommands(ctx, bot); err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, fmt.Errorf("failed to set up commands: %w", err))
	}

	localizer := h.getLocalizer(message.From)
	return h.sendText(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgStart", nil, nil))
}

// HandleHelp handles the /help command.
func (h *MessageHandler) HandleHelp(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)

	var helpText strings.Builder
	helpText.WriteString(locales.GetMessage(localizer, "MsgHelpHeader", nil, nil) + "\n")
	for _, cmd := range h.commands {
		desc := locales.GetMessage(localizer, cmd.Description, nil, nil)
		helpText.WriteString(fmt.Sprintf("/%s - %s\n", cmd.Command, desc))
	}
	helpText.WriteString(locales.GetMessage(localizer, "MsgHelpFooter", nil, nil))

	return h.sendText(ctx, bot, message.Chat.ID, helpText.String())
}

// HandlePrompt handles the /prompt command. The acknowledgment goes out
// before any slow work; generation failures inside the pipeline fall back to
// canned content and are never user-visible errors.
func (h *MessageHandler) HandlePrompt(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)
	_ = h.sendText(ctx, bot, message.Chat.ID, locales.GetMessage(localizer, "MsgGeneratingPrompt", nil, nil))

	if err := h.PublishDailyPrompt(ctx, bot); err != nil {
		return h.sendError(ctx, bot, message.Chat.ID, err)
	}
	return nil
}

// PublishDailyPrompt runs the daily pipeline: context assembly, generation,
// post to the team chat, log append. It is shared by /prompt and the
// scheduler.
func (h *MessageHandler) PublishDailyPrompt(ctx context.Context, bot telegoapi.BotAPI) error {
	systemContext := ai.BuildSystemContext(h.store.SharedPosts(ctx), h.store.GeneratedPrompts(ctx))
	result := h.generator.DailyPrompt(ctx, systemContext)

	localizer := locales.NewLocalizer(locales.GetDefaultLanguageTag().String())
	header := locales.GetMessage(localizer, "MsgDailyPromptHeader", nil, nil)

	sentMsg, err := bot.SendMessage(ctx, tu.Message(tu.ID(h.teamChatID), header+"\n\n"+result.Content))
	if err != nil {
		return fmt.Errorf("failed to post daily prompt to chat %d: %w", h.teamChatID, err)
	}

	record := models.GeneratedPrompt{
		ID:        recordID(sentMsg),
		Content:   result.Content,
		Type:      promptType(result.Source),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Channel:   strconv.FormatInt(h.teamChatID, 10),
	}
	if err := h.store.AppendGeneratedPrompt(ctx, record); err != nil {
		log.Printf("[Cmd:prompt] Failed to log generated prompt: %v", err)
	}
	return nil
}

// HandleContent handles the /content command: acknowledgment, empty-request
// usage hint, custom generation, optional image, post and log append.
func (h *MessageHandler) HandleContent(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	chatID := message.Chat.ID
	localizer := h.getLocalizer(message.From)

	request := strings.TrimSpace(strings.TrimPrefix(message.Text, "/content"))
	// In group chats the command may arrive as /content@botname.
	if strings.HasPrefix(request, "@") {
		if idx := strings.IndexByte(request, ' '); idx != -1 {
			request = strings.TrimSpace(request[idx:])
		} else {
			request = ""
		}
	}
	if request == "" {
		return h.sendText(ctx, bot, chatID, locales.GetMessage(localizer, "MsgContentUsage", nil, nil))
	}

	_ = h.sendText(ctx, bot, chatID, locales.GetMessage(localizer, "MsgGeneratingContent", nil, nil))

	systemContext := ai.BuildSystemContext(h.store.SharedPosts(ctx), h.store.GeneratedPrompts(ctx))
	result := h.generator.CustomContent(ctx, systemContext, request)

	_ = h.sendText(ctx, bot, chatID, locales.GetMessage(localizer, "MsgGeneratingImage", nil, nil))
	imageURL, imagePrompt := h.images.Generate(ctx, request)

	sentMsg, err := bot.SendMessage(ctx, tu.Message(tu.ID(chatID), result.Content))
	if err != nil {
		return h.sendError(ctx, bot, chatID, fmt.Errorf("failed to post custom content: %w", err))
	}

	if imageURL != "" {
		caption := locales.GetMessage(localizer, "MsgImageCaption", nil, nil)
		if _, err := bot.SendPhoto(ctx, tu.Photo(tu.ID(chatID), telego.InputFile{URL: imageURL}).WithCaption(caption)); err != nil {
			log.Printf("[Cmd:content Chat:%d] Failed to send generated image: %v", chatID, err)
		}
	} else {
		_ = h.sendText(ctx, bot, chatID, locales.GetMessage(localizer, "MsgImageUnavailable", nil, nil))
	}

	record := models.GeneratedPrompt{
		ID:          recordID(sentMsg),
		Content:     result.Content,
		Request:     request,
		Type:        models.PromptTypeCustom,
		ImagePrompt: imagePrompt,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Channel:     strconv.FormatInt(chatID, 10),
	}
	if imageURL != "" {
		record.ImageURL = &imageURL
	}
	if err := h.store.AppendGeneratedPrompt(ctx, record); err != nil {
		log.Printf("[Cmd:content Chat:%d] Failed to log generated prompt: %v", chatID, err)
	}
	return nil
}

// HandleStats handles the /stats command.
func (h *MessageHandler) HandleStats(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)
	statsText := locales.GetMessage(localizer, "MsgStats", map[string]interface{}{
		"SharedPosts":      len(h.store.SharedPosts(ctx)),
		"GeneratedPrompts": len(h.store.GeneratedPrompts(ctx)),
	}, nil)
	return h.sendText(ctx, bot, message.Chat.ID, statsText)
}

// HandleVersion handles the /version command.
func (h *MessageHandler) HandleVersion(ctx context.Context, bot telegoapi.BotAPI, message telego.Message) error {
	localizer := h.getLocalizer(message.From)
	versionText := locales.GetMessage(localizer, "MsgVersion", map[string]interface{}{
		"Version": h.version,
	}, nil)
	return h.sendText(ctx, bot, message.Chat.ID, versionText)
}

// setupCommands registers the bot's commands with Telegram.
func (h *MessageHandler) setupCommands(ctx context.Context, bot telegoapi.BotAPI) error {
	localizer := locales.NewLocalizer(locales.GetDefaultLanguageTag().String())

	commands := make([]telego.BotCommand, 0, len(h.commands))
	for _, cmd := range h.commands {
		commands = append(commands, telego.BotCommand{
			Command:     cmd.Command,
			Description: locales.GetMessage(localizer, cmd.Description, nil, nil),
		})
	}

	if err := bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: commands}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	log.Printf("Successfully set %d bot commands.", len(commands))
	return nil
}

// recordID identifies a log record by the posted message's ID, or by a local
// token when the message is unavailable.
func recordID(msg *telego.Message) string {
	if msg != nil && msg.MessageID != 0 {
		return strconv.Itoa(msg.MessageID)
	}
	return fmt.Sprintf("local-%d", time.Now().UnixNano())
}

// promptType maps a daily-path generation source to its record type.
func promptType(source ai.Source) string {
	if source == ai.SourceFallback {
		return models.PromptTypeFallback
	}
	return models.PromptTypeAIGenerated
}
