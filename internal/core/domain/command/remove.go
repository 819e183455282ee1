package command

import (
	"context"
	"fmt"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type RemoveEntry struct {
	tracker port.MediaTracker
}

func NewRemoveEntry(tracker port.MediaTracker) *RemoveEntry {
	return &RemoveEntry{tracker: tracker}
}

func (r *RemoveEntry) GetAction() domain.Action {
	return domain.Remove
}

const (
	removedMessage      = "Removed: %s"
	removeFailedMessage = "Failed to remove '%s': %s"
)

func (r *RemoveEntry) Respond(ctx context.Context, timeout time.Duration, cmd domain.Command) string {
	l := log.Ctx(ctx).With().
		Str("action", string(r.GetAction())).
		Str("category", string(cmd.Category)).
		Str("title", cmd.Title).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	removed, err := r.tracker.Remove(ctx, cmd.Title, cmd.Category)
	if err != nil {
		l.Warn().Err(err).Msg("failed to remove entry")
		return fmt.Sprintf(removeFailedMessage, cmd.Title, failureReason(err))
	}

	l.Debug().Strs("removed", removed).Msg("removed entries")

	return fmt.Sprintf(removedMessage, strings.Join(removed, ", "))
}
