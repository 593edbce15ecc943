package ports

import (
	"context"

	"nestlist/internal/domain"
)

// ListRepository defines the interface for outline storage
type ListRepository interface {
	// ListNames returns the names of all stored outlines, sorted
	ListNames(ctx context.Context) ([]string, error)

	// Load returns the outline with the given name. A list that was never
	// saved loads as an empty outline.
	Load(ctx context.Context, name string) (*domain.Outline, error)

	// Save replaces the stored contents of the outline atomically
	Save(ctx context.Context, outline *domain.Outline) error

	// DeleteList removes an outline and all of its items
	DeleteList(ctx context.Context, name string) error

	// Search matches titles and notes across all outlines
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	Close() error
}
