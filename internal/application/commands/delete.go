package commands

import (
	"context"
	"fmt"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Deleted domain.Item
	Message string
}

// DeleteCommand removes an item, and its children, from a list
type DeleteCommand struct {
	repo ports.ListRepository
	List string
	Key  string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.ListRepository, list, key string) *DeleteCommand {
	return &DeleteCommand{
		repo: repo,
		List: list,
		Key:  key,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	return application.ValidateKey("key", c.Key)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}

	removed, err := outline.Remove(domain.Key(c.Key))
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Key, err)
	}
	if err := c.repo.Save(ctx, outline); err != nil {
		return nil, fmt.Errorf("failed to save list %s: %w", c.List, err)
	}

	msg := fmt.Sprintf("Deleted %s %s", removed.Key, removed.Title)
	if n := len(removed.Children); n > 0 {
		msg = fmt.Sprintf("%s and %d children", msg, n)
	}
	return &DeleteResult{Deleted: removed, Message: msg}, nil
}

// DeleteListCommand removes a whole list
type DeleteListCommand struct {
	repo ports.ListRepository
	List string
}

// NewDeleteListCommand creates a new DeleteListCommand
func NewDeleteListCommand(repo ports.ListRepository, list string) *DeleteListCommand {
	return &DeleteListCommand{repo: repo, List: list}
}

// Execute runs the delete list command
func (c *DeleteListCommand) Execute(ctx context.Context) (string, error) {
	if err := application.ValidateListName(c.List); err != nil {
		return "", err
	}
	if err := c.repo.DeleteList(ctx, c.List); err != nil {
		return "", fmt.Errorf("failed to delete list %s: %w", c.List, err)
	}
	return fmt.Sprintf("Deleted list %s", c.List), nil
}
