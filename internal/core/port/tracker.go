package port

import (
	"context"
	"readwatch/internal/core/domain"
)

type MediaTracker interface {
	// Add creates an entry for the title and returns the entry stored by the API.
	Add(ctx context.Context, title string, category domain.Category, status domain.Status) (domain.Entry, error)
	// Remove deletes all entries of a category matching the title and returns the removed titles.
	Remove(ctx context.Context, title string, category domain.Category) ([]string, error)
	// List returns tracked entries, filtered by category unless it is domain.All.
	List(ctx context.Context, category domain.Category) ([]domain.Entry, error)
	// Search looks up a title in the metadata provider of the category.
	Search(ctx context.Context, query string, category domain.Category) ([]domain.SearchResult, error)
}
