package command

import (
	"readwatch/internal/core/domain"
	"slices"
	"strings"
)

const helpHeader = "I didn't understand that. Try:"

// helpExamples are shown in this order, for the actions that have a handler.
var helpExamples = []struct {
	action   domain.Action
	examples []string
}{
	{domain.Add, []string{"movie Inception", "show Breaking Bad", "anime Solo Leveling", "manga Berserk"}},
	{domain.Remove, []string{"remove movie Inception"}},
	{domain.Search, []string{"search movie Dune"}},
	{domain.List, []string{"list anime", "list all"}},
}

// HelpMessage is the help text when every action is registered.
var HelpMessage = HelpFor([]domain.Action{domain.Add, domain.Remove, domain.List, domain.Search})

// HelpFor builds the help text listing examples for the given actions only.
func HelpFor(actions []domain.Action) string {
	sb := &strings.Builder{}
	sb.WriteString(helpHeader)

	for _, h := range helpExamples {
		if !slices.Contains(actions, h.action) {
			continue
		}
		for _, example := range h.examples {
			sb.WriteString("\n• ")
			sb.WriteString(example)
		}
	}

	return sb.String()
}
