package commands

import (
	"context"
	"fmt"
	"strings"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Key      domain.Key
	NewTitle string
	Message  string
}

// RenameCommand changes the title of an item
type RenameCommand struct {
	repo     ports.ListRepository
	List     string
	Key      string
	NewTitle string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(repo ports.ListRepository, list, key, newTitle string) *RenameCommand {
	return &RenameCommand{
		repo:     repo,
		List:     list,
		Key:      key,
		NewTitle: newTitle,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	if err := application.ValidateKey("key", c.Key); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.NewTitle)
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}

	title := strings.TrimSpace(c.NewTitle)
	if err := outline.Rename(domain.Key(c.Key), title); err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}
	if err := c.repo.Save(ctx, outline); err != nil {
		return nil, fmt.Errorf("failed to save list %s: %w", c.List, err)
	}

	return &RenameResult{
		Key:      domain.Key(c.Key),
		NewTitle: title,
		Message:  fmt.Sprintf("Renamed %s to %s", c.Key, title),
	}, nil
}

// SetNoteCommand replaces the note of an item
type SetNoteCommand struct {
	repo ports.ListRepository
	List string
	Key  string
	Note string
}

// NewSetNoteCommand creates a new SetNoteCommand
func NewSetNoteCommand(repo ports.ListRepository, list, key, note string) *SetNoteCommand {
	return &SetNoteCommand{
		repo: repo,
		List: list,
		Key:  key,
		Note: note,
	}
}

// Execute runs the set note command
func (c *SetNoteCommand) Execute(ctx context.Context) error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	if err := application.ValidateKey("key", c.Key); err != nil {
		return err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return fmt.Errorf("failed to load list %s: %w", c.List, err)
	}
	if err := outline.SetNote(domain.Key(c.Key), strings.TrimRight(c.Note, "\n")); err != nil {
		return fmt.Errorf("failed to set note: %w", err)
	}
	if err := c.repo.Save(ctx, outline); err != nil {
		return fmt.Errorf("failed to save list %s: %w", c.List, err)
	}
	return nil
}
