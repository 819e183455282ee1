package command

import (
	"readwatch/internal/core/domain"
	"regexp"
	"strings"
)

// matcher tries to read one command shape from a message.
type matcher func(text string) (domain.Command, bool)

// space also covers Unicode spaces such as the no-break space some mobile keyboards insert.
const (
	space = `[\s\p{Zs}]+`
	word  = `([^\s\p{Zs}]+)`
)

var (
	removePattern = regexp.MustCompile(`(?is)^remove` + space + word + space + `(.+)$`)
	listPattern   = regexp.MustCompile(`(?i)^list` + space + word + `$`)
	searchPattern = regexp.MustCompile(`(?is)^search` + space + word + space + `(.+)$`)
	addPattern    = regexp.MustCompile(`(?is)^` + word + space + `(.+)$`)
)

// matchers are tried in order, the first match wins.
var matchers = []matcher{
	titled(removePattern, domain.Remove),
	matchList,
	titled(searchPattern, domain.Search),
	titled(addPattern, domain.Add),
}

// Parse turns a chat message into a command. It returns false if the message
// has no known shape or names an unknown category.
func Parse(text string) (domain.Command, bool) {
	text = strings.TrimSpace(text)

	for _, m := range matchers {
		if cmd, ok := m(text); ok {
			return cmd, true
		}
	}

	return domain.Command{}, false
}

func titled(pattern *regexp.Regexp, action domain.Action) matcher {
	return func(text string) (domain.Command, bool) {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			return domain.Command{}, false
		}

		category, ok := domain.ResolveCategory(groups[1])
		if !ok {
			return domain.Command{}, false
		}

		title := strings.TrimSpace(groups[2])
		if title == "" {
			return domain.Command{}, false
		}

		return domain.Command{Action: action, Category: category, Title: title}, true
	}
}

func matchList(text string) (domain.Command, bool) {
	groups := listPattern.FindStringSubmatch(text)
	if groups == nil {
		return domain.Command{}, false
	}

	if strings.EqualFold(groups[1], string(domain.All)) {
		return domain.Command{Action: domain.List, Category: domain.All}, true
	}

	category, ok := domain.ResolveCategory(groups[1])
	if !ok {
		return domain.Command{}, false
	}

	return domain.Command{Action: domain.List, Category: category}, true
}
