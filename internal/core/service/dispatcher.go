package service

import (
	"context"
	"readwatch/internal/core/domain/command"
	"readwatch/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

const dispatchFailed = "Something went wrong."

// Dispatcher routes chat messages to the registered command handlers.
type Dispatcher struct {
	registry port.CommandRegistry
	timeout  time.Duration
}

func NewDispatcher(registry port.CommandRegistry, timeout time.Duration) *Dispatcher {
	return &Dispatcher{registry: registry, timeout: timeout}
}

func (d *Dispatcher) Dispatch(ctx context.Context, text string) string {
	cmd, ok := command.Parse(text)
	if !ok {
		log.Ctx(ctx).Debug().Str("text", text).Msg("unrecognized input")
		return command.HelpFor(d.registry.ListActions())
	}

	handler, err := d.registry.Get(cmd.Action)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("action", string(cmd.Action)).Msg("no handler for action")
		return dispatchFailed
	}

	return handler.Respond(ctx, d.timeout, cmd)
}
