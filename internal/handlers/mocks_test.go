package handlers

import (
	"context"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkpulse-bot/internal/ai"
	"linkpulse-bot/internal/storage"
)

// MockBot implements the telegoapi.BotAPI interface.
type MockBot struct {
	mock.Mock

	sentMessages []*telego.SendMessageParams
	sentPhotos   []*telego.SendPhotoParams
}

func (m *MockBot) SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	m.sentMessages = append(m.sentMessages, params)
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*telego.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBot) SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error) {
	m.sentPhotos = append(m.sentPhotos, params)
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*telego.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBot) SetMessageReaction(ctx context.Context, params *telego.SetMessageReactionParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockBot) SetMyCommands(ctx context.Context, params *telego.SetMyCommandsParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockBot) GetMe(ctx context.Context) (*telego.User, error) {
	args := m.Called(ctx)
	if user, ok := args.Get(0).(*telego.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTextBackend implements ai.TextBackend.
type MockTextBackend struct {
	mock.Mock
}

func (m *MockTextBackend) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockImageBackend implements ai.ImageBackend.
type MockImageBackend struct {
	mock.Mock
}

func (m *MockImageBackend) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

const testTeamChatID = int64(-100555)

type testHandlerSuite struct {
	mockBot     *MockBot
	textBackend *MockTextBackend
	imgBackend  *MockImageBackend
	store       *storage.JSONStore
	handler     *MessageHandler
}

// setupTestHandlerSuite creates a suite with fresh mocks, a temp-dir store
// and a handler instance.
func setupTestHandlerSuite(t *testing.T) *testHandlerSuite {
	t.Helper()

	store, err := storage.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	mockBot := new(MockBot)
	textBackend := new(MockTextBackend)
	imgBackend := new(MockImageBackend)

	handler := NewMessageHandler(
		testTeamChatID,
		"v1.2.3-test",
		store,
		ai.NewGenerator(textBackend),
		ai.NewImageGenerator(imgBackend),
	)

	return &testHandlerSuite{
		mockBot:     mockBot,
		textBackend: textBackend,
		imgBackend:  imgBackend,
		store:       store,
		handler:     handler,
	}
}
