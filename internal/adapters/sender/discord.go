package sender

import (
	"context"
	"readwatch/internal/core/domain"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type DiscordSession interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

const DiscordMessageLimit = 2000

// DiscordTypingInterval stays below the ten seconds a typing indicator is shown for.
var DiscordTypingInterval = 8 * time.Second

func (d *Discord) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	var reference *discordgo.MessageReference
	if message.ID != "" {
		reference = &discordgo.MessageReference{MessageID: message.ID, ChannelID: message.ChatID}
	}

	for _, chunk := range splitMessage(text, DiscordMessageLimit) {
		_, err := d.session.ChannelMessageSendReply(message.ChatID, chunk, reference, discordgo.WithContext(ctx))
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("chatId", message.ChatID).Msg("failed to send discord reply")
			return err
		}
	}

	return nil
}

func (d *Discord) SendChatAction(ctx context.Context, chatID string, _ domain.ChatAction) {
	log.Ctx(ctx).Debug().Str("chatId", chatID).Msg("starting typing routine")

	for {
		if err := d.session.ChannelTyping(chatID, discordgo.WithContext(ctx)); err != nil {
			if ctx.Err() == nil {
				log.Ctx(ctx).Err(err).Msg("error sending typing indicator")
			}
			return
		}

		select {
		case <-ctx.Done():
			log.Ctx(ctx).Debug().Str("chatId", chatID).Msg("done, stopping typing routine")
			return
		case <-time.After(DiscordTypingInterval):
		}
	}
}
