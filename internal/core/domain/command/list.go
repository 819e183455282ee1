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

type ListEntries struct {
	tracker port.MediaTracker
}

func NewListEntries(tracker port.MediaTracker) *ListEntries {
	return &ListEntries{tracker: tracker}
}

func (l *ListEntries) GetAction() domain.Action {
	return domain.List
}

const (
	noEntriesMessage  = "No %s entries found."
	listHeader        = "Your %s list:"
	fullListHeader    = "Your full list:"
	listLine          = "• %s [%s]"
	listFailedMessage = "Failed to fetch list: %s"
)

func (l *ListEntries) Respond(ctx context.Context, timeout time.Duration, cmd domain.Command) string {
	logger := log.Ctx(ctx).With().
		Str("action", string(l.GetAction())).
		Str("category", string(cmd.Category)).
		Logger()

	logger.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	entries, err := l.tracker.List(ctx, cmd.Category)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to fetch list")
		return fmt.Sprintf(listFailedMessage, failureReason(err))
	}

	logger.Debug().Int("entries", len(entries)).Msg("fetched list")

	if len(entries) == 0 {
		label := string(cmd.Category)
		if cmd.Category == domain.All {
			label = "media"
		}

		return fmt.Sprintf(noEntriesMessage, label)
	}

	sb := &strings.Builder{}

	if cmd.Category == domain.All {
		sb.WriteString(fullListHeader)
	} else {
		fmt.Fprintf(sb, listHeader, cmd.Category)
	}

	for _, entry := range entries {
		sb.WriteString("\n")
		fmt.Fprintf(sb, listLine, entry.Title, entry.Status.Label())
	}

	return sb.String()
}
