package handlers

import (
	"context"

	"github.com/mymmrac/telego"

	"linkpulse-bot/internal/ai"
	"linkpulse-bot/internal/storage"
	"linkpulse-bot/pkg/telegoapi"
)

// Action types for operator logging.
const (
	ActionCommandStart   = "command_start"
	ActionCommandHelp    = "command_help"
	ActionCommandPrompt  = "command_prompt"
	ActionCommandContent = "command_content"
	ActionCommandStats   = "command_stats"
	ActionCommandVersion = "command_version"
	ActionLinkShared     = "link_shared"
)

// Command represents a bot command, mapping the command string to its
// description key and handler function.
type Command struct {
	Command     string
	Description string
	Handler     func(context.Context, telegoapi.BotAPI, telego.Message) error
}

// MessageHandler handles incoming Telegram messages: the /prompt and
// /content pipelines and the link-engagement listener. All dependencies are
// injected at startup; there are no ambient globals.
type MessageHandler struct {
	teamChatID int64
	version    string

	store     storage.Store
	generator *ai.Generator
	images    *ai.ImageGenerator

	commands []Command
}

// NewMessageHandler creates and initializes a new MessageHandler instance.
func NewMessageHandler(
	teamChatID int64,
	version string,
	store storage.Store,
	generator *ai.Generator,
	images *ai.ImageGenerator,
) *MessageHandler {
	h := &MessageHandler{
		teamChatID: teamChatID,
		version:    version,
		store:      store,
		generator:  generator,
		images:     images,
	}
	h.commands = []Command{
		{Command: "start", Description: "CmdStartDesc", Handler: h.HandleStart},
		{Command: "help", Description: "CmdHelpDesc", Handler: h.HandleHelp},
		{Command: "prompt", Description: "CmdPromptDesc", Handler: h.HandlePrompt},
		{Command: "content", Description: "CmdContentDesc", Handler: h.HandleContent},
		{Command: "stats", Description: "CmdStatsDesc", Handler: h.HandleStats},
		{Command: "version", Description: "CmdVersionDesc", Handler: h.HandleVersion},
	}
	return h
}

// TeamChatID returns the configured team chat ID.
func (h *MessageHandler) TeamChatID() int64 {
	return h.teamChatID
}

// GetCommandHandler retrieves the handler function for a command string
// (e.g., "prompt"). It returns nil if the command is not found.
func (h *MessageHandler) GetCommandHandler(command string) func(context.Context, telegoapi.BotAPI, telego.Message) error {
	for _, cmd := range h.commands {
		if cmd.Command == command {
			return cmd.Handler
		}
	}
	return nil
}
