package sender

import (
	"context"
	"readwatch/internal/core/domain"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramBot
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

const TelegramMessageLimit = 4096

func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	chatID := telegramChatID(message.ChatID)

	var reply *models.ReplyParameters
	if id, err := strconv.Atoi(message.ID); err == nil {
		reply = &models.ReplyParameters{MessageID: id, ChatID: chatID}
	}

	for _, chunk := range splitMessage(text, TelegramMessageLimit) {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			Text:            chunk,
			ReplyParameters: reply,
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("chatId", message.ChatID).Msg("failed to send telegram reply")
			return err
		}
	}

	return nil
}

// ChatActionInterval is how often a chat action is repeated while a reply is pending.
var ChatActionInterval = 5 * time.Second

func (s *Telegram) SendChatAction(ctx context.Context, chatID string, action domain.ChatAction) {
	log.Ctx(ctx).Debug().Str("chatId", chatID).Msg("starting action routine")

	// domain actions share their names with the Bot API values
	chatAction := models.ChatAction(action)

	for {
		log.Ctx(ctx).Debug().Str("chatId", chatID).Msg("transmitting action")
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: telegramChatID(chatID),
			Action: chatAction,
		})
		if err != nil {
			if ctx.Err() == nil {
				log.Ctx(ctx).Err(err).Msg("error sending chat action")
			}
			return
		}

		select {
		case <-ctx.Done():
			log.Ctx(ctx).Debug().Str("chatId", chatID).Msg("done, stopping action routine")
			return
		case <-time.After(ChatActionInterval):
		}
	}
}

// telegramChatID returns numeric chat IDs as int64 and leaves @channel names untouched.
func telegramChatID(chatID string) any {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return id
	}

	return chatID
}
