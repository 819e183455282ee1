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

type SearchTitle struct {
	tracker port.MediaTracker
}

func NewSearchTitle(tracker port.MediaTracker) *SearchTitle {
	return &SearchTitle{tracker: tracker}
}

func (s *SearchTitle) GetAction() domain.Action {
	return domain.Search
}

const maxSearchResults = 5

const (
	noResultsMessage    = "No results found for '%s' in %s."
	searchHeader        = "Results for '%s' in %s:"
	searchFailedMessage = "Failed to search for '%s': %s"
	searchLine          = "• %s"
	searchLineWithYear  = "• %s (%s)"
)

func (s *SearchTitle) Respond(ctx context.Context, timeout time.Duration, cmd domain.Command) string {
	l := log.Ctx(ctx).With().
		Str("action", string(s.GetAction())).
		Str("category", string(cmd.Category)).
		Str("query", cmd.Title).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results, err := s.tracker.Search(ctx, cmd.Title, cmd.Category)
	if err != nil {
		l.Warn().Err(err).Msg("search failed")
		return fmt.Sprintf(searchFailedMessage, cmd.Title, failureReason(err))
	}

	if len(results) == 0 {
		return fmt.Sprintf(noResultsMessage, cmd.Title, cmd.Category)
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, searchHeader, cmd.Title, cmd.Category)

	for _, result := range results {
		sb.WriteString("\n")
		if result.Year == "" {
			fmt.Fprintf(sb, searchLine, result.Title)
			continue
		}
		fmt.Fprintf(sb, searchLineWithYear, result.Title, result.Year)
	}

	return sb.String()
}
