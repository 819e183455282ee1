package handler

import (
	"context"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Telegram struct {
	dispatcher port.Dispatcher
	sender     port.TextSender
}

func NewTelegram(dispatcher port.Dispatcher, sender port.TextSender) *Telegram {
	return &Telegram{dispatcher: dispatcher, sender: sender}
}

func (t *Telegram) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		log.Debug().Msg("ignoring update without text message")
		return
	}

	respond(ctx, t.dispatcher, t.sender, &domain.Message{
		ID:       strconv.Itoa(update.Message.ID),
		ChatID:   strconv.FormatInt(update.Message.Chat.ID, 10),
		Username: getUserNameOrFirstName(update.Message.From),
		Text:     update.Message.Text,
	})
}

func getUserNameOrFirstName(user *models.User) string {
	if user == nil {
		return ""
	}

	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
