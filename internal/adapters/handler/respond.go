package handler

import (
	"context"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// respond dispatches a chat message and sends the reply, showing a typing
// indicator while the API call is running.
func respond(ctx context.Context, dispatcher port.Dispatcher, sender port.TextSender, message *domain.Message) {
	requestID, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate request id")
	}

	l := log.With().
		Str("requestId", requestID.String()).
		Str("messageId", message.ID).
		Str("chatId", message.ChatID).
		Str("username", message.Username).
		Logger()

	l.Debug().Str("text", message.Text).Msg("received message")

	ctx = l.WithContext(ctx)

	actionCtx, stopAction := context.WithCancel(ctx)
	go sender.SendChatAction(actionCtx, message.ChatID, domain.Typing)

	reply := dispatcher.Dispatch(ctx, message.Text)
	stopAction()

	if err := sender.SendMessageReply(ctx, message, reply); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return
	}

	l.Debug().Msg("reply sent")
}
