package port

import (
	"context"
	"readwatch/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to a specified message with the given text, splitting it into several
	// messages if it exceeds the platform limit.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) error
	// SendChatAction repeatedly sends a chat action (e.g. typing) to the chat until ctx is done.
	SendChatAction(ctx context.Context, chatID string, action domain.ChatAction)
}
