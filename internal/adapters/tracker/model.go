package tracker

import (
	"encoding/json"
	"readwatch/internal/core/domain"
)

// nullableEntry mirrors a watchlist row, where poster_url and notes may be null.
type nullableEntry struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Category   domain.Category `json:"category"`
	Status     domain.Status   `json:"status"`
	PosterURL  *string         `json:"poster_url"`
	ExternalID string          `json:"external_id"`
	DateAdded  string          `json:"date_added"`
	Notes      *string         `json:"notes"`
}

func (e nullableEntry) toDomain() domain.Entry {
	return domain.Entry{
		ID:         e.ID,
		Title:      e.Title,
		Category:   e.Category,
		Status:     e.Status,
		PosterURL:  deref(e.PosterURL),
		ExternalID: e.ExternalID,
		DateAdded:  e.DateAdded,
		Notes:      deref(e.Notes),
	}
}

type nullableResult struct {
	ExternalID string          `json:"external_id"`
	Title      string          `json:"title"`
	PosterURL  *string         `json:"poster_url"`
	Year       *string         `json:"year"`
	Overview   *string         `json:"overview"`
	Category   domain.Category `json:"category"`
}

func (r nullableResult) toDomain() domain.SearchResult {
	return domain.SearchResult{
		ExternalID: r.ExternalID,
		Title:      r.Title,
		PosterURL:  deref(r.PosterURL),
		Year:       deref(r.Year),
		Overview:   deref(r.Overview),
		Category:   r.Category,
	}
}

// removedTitles accepts both a list of titles and the single id returned when removing by id.
type removedTitles []string

func (r *removedTitles) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	*r = removedTitles{single}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
