package commands

import (
	"context"
	"strings"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// SearchCommand searches item titles and notes across lists
type SearchCommand struct {
	repo  ports.ListRepository
	Query string
	List  string // optional filter
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.ListRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// InList restricts results to one list
func (c *SearchCommand) InList(list string) *SearchCommand {
	c.List = list
	return c
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchResult, error) {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return nil, err
	}

	results, err := c.repo.Search(ctx, strings.TrimSpace(c.Query))
	if err != nil {
		return nil, err
	}
	if c.List == "" {
		return results, nil
	}

	filtered := results[:0]
	for _, r := range results {
		if r.List == c.List {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
