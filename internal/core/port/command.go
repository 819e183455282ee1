package port

import (
	"context"
	"readwatch/internal/core/domain"
	"time"
)

type Command interface {
	// Respond executes a parsed command within the given timeout and renders the reply text. Failures are
	// rendered into the returned text rather than returned as errors.
	Respond(ctx context.Context, timeout time.Duration, cmd domain.Command) string
	// GetAction retrieves the action handled by this command handler.
	GetAction() domain.Action
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command for an action or returns an error if not found.
	Get(action domain.Action) (Command, error)
	// ListActions returns all actions currently registered in the command registry.
	ListActions() []domain.Action
}

type Dispatcher interface {
	// Dispatch parses a raw chat message and returns the text to reply with.
	Dispatch(ctx context.Context, text string) string
}
