package sender

import (
	"context"
	"errors"
	"readwatch/internal/core/domain"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *MockBot) SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func TestTelegramSender_SendMessageReply(t *testing.T) {
	longText := ""
	for range TelegramMessageLimit + 10 {
		longText += "x"
	}

	tests := []struct {
		name      string
		text      string
		wantCalls int
		setupMock func(mb *MockBot)
		wantErr   bool
	}{
		{
			name:      "single message",
			text:      "hello",
			wantCalls: 1,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return params.Text == "hello" &&
						params.ChatID == int64(1001) &&
						params.ReplyParameters != nil &&
						params.ReplyParameters.MessageID == 42
				})).
					Return(&models.Message{ID: 123}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:      "message chunked in two",
			text:      longText,
			wantCalls: 2,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return len(params.Text) <= TelegramMessageLimit
				})).
					Return(&models.Message{ID: 456}, nil).
					Twice()
			},
			wantErr: false,
		},
		{
			name:      "send fails on first",
			text:      longText,
			wantCalls: 1,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("fail")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb := new(MockBot)
			sender := NewTelegram(mb)

			msg := &domain.Message{
				ID:     "42",
				ChatID: "1001",
			}

			tc.setupMock(mb)
			err := sender.SendMessageReply(t.Context(), msg, tc.text)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mb.AssertNumberOfCalls(t, "SendMessage", tc.wantCalls)
			mb.AssertExpectations(t)
		})
	}
}

func TestTelegramSender_SendMessageReplyWithoutMessageID(t *testing.T) {
	mb := new(MockBot)
	mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
		return params.ReplyParameters == nil && params.ChatID == "@readwatch"
	})).Return(&models.Message{ID: 1}, nil).Once()

	err := NewTelegram(mb).SendMessageReply(t.Context(), &domain.Message{ChatID: "@readwatch"}, "hi")

	require.NoError(t, err)
	mb.AssertExpectations(t)
}

func TestSendChatAction_RepeatsAndStopsOnContextCancel(t *testing.T) {
	interval := ChatActionInterval
	ChatActionInterval = 20 * time.Millisecond
	t.Cleanup(func() { ChatActionInterval = interval })

	mb := new(MockBot)
	sender := NewTelegram(mb)

	ctx, cancel := context.WithCancel(t.Context())

	mb.On("SendChatAction", mock.Anything, &bot.SendChatActionParams{
		ChatID: int64(12345),
		Action: models.ChatActionTyping,
	}).Return(true, nil)

	done := make(chan struct{})
	go func() {
		sender.SendChatAction(ctx, "12345", domain.Typing)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chat action routine did not stop")
	}

	assert.GreaterOrEqual(t, len(mb.Calls), 2)
}

func TestSendChatAction_StopsOnError(t *testing.T) {
	mb := new(MockBot)
	mb.On("SendChatAction", mock.Anything, mock.Anything).Return(false, errors.New("forbidden")).Once()

	NewTelegram(mb).SendChatAction(t.Context(), "1", domain.Typing)

	mb.AssertNumberOfCalls(t, "SendChatAction", 1)
}
