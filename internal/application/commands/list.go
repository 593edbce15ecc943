package commands

import (
	"context"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// ListNamesCommand lists all stored lists
type ListNamesCommand struct {
	repo ports.ListRepository
}

// NewListNamesCommand creates a new ListNamesCommand
func NewListNamesCommand(repo ports.ListRepository) *ListNamesCommand {
	return &ListNamesCommand{repo: repo}
}

// Execute runs the list names command
func (c *ListNamesCommand) Execute(ctx context.Context) ([]string, error) {
	return c.repo.ListNames(ctx)
}

// LoadOutlineCommand loads one list
type LoadOutlineCommand struct {
	repo ports.ListRepository
	List string
}

// NewLoadOutlineCommand creates a new LoadOutlineCommand
func NewLoadOutlineCommand(repo ports.ListRepository, list string) *LoadOutlineCommand {
	return &LoadOutlineCommand{
		repo: repo,
		List: list,
	}
}

// Execute runs the load command
func (c *LoadOutlineCommand) Execute(ctx context.Context) (*domain.Outline, error) {
	if err := application.ValidateListName(c.List); err != nil {
		return nil, err
	}
	return c.repo.Load(ctx, c.List)
}
