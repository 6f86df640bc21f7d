package handlers

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkpulse-bot/internal/ai"
	"linkpulse-bot/internal/locales"
	"linkpulse-bot/internal/storage/models"
)

func commandMessage(text string) telego.Message {
	return telego.Message{
		MessageID: 100,
		From:      &telego.User{ID: 7, Username: "seller", LanguageCode: "en"},
		Chat:      telego.Chat{ID: 555},
		Text:      text,
	}
}

func TestHandlePromptPostsToTeamChat(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.textBackend.On("Complete", ctx, mock.Anything).Return("Fresh daily idea", nil).Once()
	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 900}, nil).Twice()

	err := s.handler.HandlePrompt(ctx, s.mockBot, commandMessage("/prompt"))
	require.NoError(t, err)
	s.mockBot.AssertExpectations(t)
	s.textBackend.AssertExpectations(t)

	// First message is the acknowledgment in the invoking chat, second is
	// the prompt posted to the team chat.
	require.Len(t, s.mockBot.sentMessages, 2)
	assert.Equal(t, telegoutil.ID(int64(555)), s.mockBot.sentMessages[0].ChatID)
	assert.Equal(t, telegoutil.ID(testTeamChatID), s.mockBot.sentMessages[1].ChatID)
	assert.Contains(t, s.mockBot.sentMessages[1].Text, "Fresh daily idea")

	prompts := s.store.GeneratedPrompts(ctx)
	require.Len(t, prompts, 1)
	assert.Equal(t, models.PromptTypeAIGenerated, prompts[0].Type)
	assert.Equal(t, "Fresh daily idea", prompts[0].Content)
	assert.Equal(t, "900", prompts[0].ID)
	assert.Equal(t, strconv.FormatInt(testTeamChatID, 10), prompts[0].Channel)
	assert.Empty(t, prompts[0].Request)
}

func TestHandlePromptFallbackIsStillLogged(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.textBackend.On("Complete", ctx, mock.Anything).Return("", errors.New("backend down")).Once()
	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 901}, nil).Twice()

	err := s.handler.HandlePrompt(ctx, s.mockBot, commandMessage("/prompt"))
	require.NoError(t, err)

	assert.Contains(t, s.mockBot.sentMessages[1].Text, ai.DailyFallback)

	prompts := s.store.GeneratedPrompts(ctx)
	require.Len(t, prompts, 1)
	assert.Equal(t, models.PromptTypeFallback, prompts[0].Type)
	assert.Equal(t, ai.DailyFallback, prompts[0].Content)
}

func TestHandleContentEmptyRequest(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 902}, nil).Once()

	err := s.handler.HandleContent(ctx, s.mockBot, commandMessage("/content   "))
	require.NoError(t, err)

	// Usage hint only: no generation, no image call, no log append.
	require.Len(t, s.mockBot.sentMessages, 1)
	localizer := locales.NewLocalizer("en")
	assert.Equal(t, locales.GetMessage(localizer, "MsgContentUsage", nil, nil), s.mockBot.sentMessages[0].Text)
	s.textBackend.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	s.imgBackend.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	assert.Empty(t, s.store.GeneratedPrompts(ctx))
}

func TestHandleContentWithImage(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.textBackend.On("Complete", ctx, mock.Anything).Return("Drafted post about trade-ins", nil).Once()
	s.imgBackend.On("Generate", ctx, mock.Anything).Return("https://images.example/gen.png", nil).Once()
	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 903}, nil).Times(3)
	s.mockBot.On("SendPhoto", ctx, mock.Anything).Return(&telego.Message{MessageID: 904}, nil).Once()

	err := s.handler.HandleContent(ctx, s.mockBot, commandMessage("/content trade-in promotions"))
	require.NoError(t, err)
	s.mockBot.AssertExpectations(t)

	require.Len(t, s.mockBot.sentPhotos, 1)
	assert.Equal(t, "https://images.example/gen.png", s.mockBot.sentPhotos[0].Photo.URL)

	prompts := s.store.GeneratedPrompts(ctx)
	require.Len(t, prompts, 1)
	assert.Equal(t, models.PromptTypeCustom, prompts[0].Type)
	assert.Equal(t, "trade-in promotions", prompts[0].Request)
	require.NotNil(t, prompts[0].ImageURL)
	assert.Equal(t, "https://images.example/gen.png", *prompts[0].ImageURL)
	assert.Equal(t, ai.DescribeImage("trade-in promotions"), prompts[0].ImagePrompt)
}

func TestHandleContentFailingBackends(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	s.textBackend.On("Complete", ctx, mock.Anything).Return("", errors.New("quota")).Once()
	s.imgBackend.On("Generate", ctx, mock.Anything).Return("", errors.New("policy")).Once()
	// Ack, image notice, content post, image-unavailable note.
	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 905}, nil).Times(4)

	err := s.handler.HandleContent(ctx, s.mockBot, commandMessage("/content iphone vs android users"))
	require.NoError(t, err)

	// Posted content is the canned iPhone/Android fallback, not an error.
	var posted bool
	for _, msg := range s.mockBot.sentMessages {
		if msg.Text == ai.CustomFallback {
			posted = true
		}
	}
	assert.True(t, posted, "custom fallback should have been posted")
	assert.Empty(t, s.mockBot.sentPhotos)

	prompts := s.store.GeneratedPrompts(ctx)
	require.Len(t, prompts, 1)
	assert.Equal(t, models.PromptTypeCustom, prompts[0].Type)
	assert.Equal(t, ai.CustomFallback, prompts[0].Content)
	assert.Nil(t, prompts[0].ImageURL)
	assert.NotEmpty(t, prompts[0].ImagePrompt)
}

func TestHandleStats(t *testing.T) {
	locales.Init("en")
	s := setupTestHandlerSuite(t)
	ctx := context.Background()

	require.NoError(t, s.store.AppendSharedPost(ctx, models.SharedPost{URL: "https://linkedin.com/posts/a"}))
	require.NoError(t, s.store.AppendGeneratedPrompt(ctx, models.GeneratedPrompt{ID: "1", Content: "x", Type: models.PromptTypeCustom}))

	s.mockBot.On("SendMessage", ctx, mock.Anything).Return(&telego.Message{MessageID: 906}, nil).Once()

	err := s.handler.HandleStats(ctx, s.mockBot, commandMessage("/stats"))
	require.NoError(t, err)

	require.Len(t, s.mockBot.sentMessages, 1)
	assert.Contains(t, s.mockBot.sentMessages[0].Text, "1 posts shared")
}

func TestGetCommandHandler(t *testing.T) {
	s := setupTestHandlerSuite(t)

	assert.NotNil(t, s.handler.GetCommandHandler("prompt"))
	assert.NotNil(t, s.handler.GetCommandHandler("content"))
	assert.Nil(t, s.handler.GetCommandHandler("unknown"))
}
