package handler

import (
	"context"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Discord struct {
	ctx        context.Context
	dispatcher port.Dispatcher
	sender     port.TextSender
}

// NewDiscord returns a MessageCreate handler. Discord event handlers carry no
// context, so ctx bounds every reply.
func NewDiscord(ctx context.Context, dispatcher port.Dispatcher, sender port.TextSender) *Discord {
	return &Discord{ctx: ctx, dispatcher: dispatcher, sender: sender}
}

func (d *Discord) Handle(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	if m.Content == "" {
		log.Debug().Str("messageId", m.ID).Msg("ignoring message without content")
		return
	}

	respond(d.ctx, d.dispatcher, d.sender, &domain.Message{
		ID:       m.ID,
		ChatID:   m.ChannelID,
		Username: m.Author.Username,
		Text:     m.Content,
	})
}
