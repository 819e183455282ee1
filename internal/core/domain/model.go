package domain

import "strings"

type Category string

const (
	Movie Category = "movie"
	Show  Category = "show"
	Anime Category = "anime"
	Manga Category = "manga"

	// All is only valid as a list filter.
	All Category = "all"
)

var categoryAliases = map[string]Category{
	"movie":  Movie,
	"movies": Movie,
	"film":   Movie,
	"show":   Show,
	"shows":  Show,
	"tv":     Show,
	"tvshow": Show,
	"anime":  Anime,
	"manga":  Manga,
}

var categoryLabels = map[Category]string{
	Movie: "Movies",
	Show:  "Shows",
	Anime: "Anime",
	Manga: "Manga",
}

// ResolveCategory maps a user supplied alias like "film" or "TV" to its category.
func ResolveCategory(alias string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(alias))]
	return c, ok
}

// Label returns the plural display name, e.g. "Movies".
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}

	return string(c)
}

type Status string

const (
	PlanToWatch Status = "plan_to_watch"
	Watching    Status = "watching"
	Completed   Status = "completed"
	Dropped     Status = "dropped"
)

var statusLabels = map[Status]string{
	PlanToWatch: "Plan to Watch",
	Watching:    "Watching",
	Completed:   "Completed",
	Dropped:     "Dropped",
}

// Label returns the display label of a status, or the raw value if it is not known.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}

	return string(s)
}

type Entry struct {
	ID         string
	Title      string
	Category   Category
	Status     Status
	PosterURL  string
	ExternalID string
	DateAdded  string
	Notes      string
}

type SearchResult struct {
	ExternalID string
	Title      string
	PosterURL  string
	Year       string
	Overview   string
	Category   Category
}

type Action string

const (
	Add    Action = "add"
	Remove Action = "remove"
	List   Action = "list"
	Search Action = "search"
)

// Command is the parsed form of a chat message. Title is empty for List.
type Command struct {
	Action   Action
	Category Category
	Title    string
}

type Message struct {
	ID       string
	ChatID   string
	Username string
	Text     string
}

type ChatAction string

const (
	Typing ChatAction = "typing"
)
