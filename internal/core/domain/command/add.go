package command

import (
	"context"
	"fmt"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type AddEntry struct {
	tracker port.MediaTracker
}

func NewAddEntry(tracker port.MediaTracker) *AddEntry {
	return &AddEntry{tracker: tracker}
}

func (a *AddEntry) GetAction() domain.Action {
	return domain.Add
}

const (
	addedMessage     = "Added '%s' to your %s list!"
	addFailedMessage = "Failed to add '%s': %s"
)

func (a *AddEntry) Respond(ctx context.Context, timeout time.Duration, cmd domain.Command) string {
	l := log.Ctx(ctx).With().
		Str("action", string(a.GetAction())).
		Str("category", string(cmd.Category)).
		Str("title", cmd.Title).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	entry, err := a.tracker.Add(ctx, cmd.Title, cmd.Category, domain.PlanToWatch)
	if err != nil {
		l.Warn().Err(err).Msg("failed to add entry")
		return fmt.Sprintf(addFailedMessage, cmd.Title, failureReason(err))
	}

	name := entry.Title
	if name == "" {
		name = cmd.Title
	}

	reply := fmt.Sprintf(addedMessage, name, cmd.Category)
	if entry.PosterURL != "" {
		reply += "\n" + entry.PosterURL
	}

	return reply
}
