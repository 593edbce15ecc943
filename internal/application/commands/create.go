package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nestlist/internal/application"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// CreateResult contains the result of creating an item
type CreateResult struct {
	Item    domain.Item
	Parent  domain.Key
	Message string
}

// CreateCommand appends a new item to a list, optionally under a parent
type CreateCommand struct {
	repo      ports.ListRepository
	newKey    func() domain.Key
	List      string
	ParentKey string
	Title     string
	Note      string
}

// NewCreateCommand creates a new CreateCommand
func NewCreateCommand(repo ports.ListRepository, list, parentKey, title string) *CreateCommand {
	return &CreateCommand{
		repo:      repo,
		newKey:    NewKey,
		List:      list,
		ParentKey: parentKey,
		Title:     title,
	}
}

// NewKey generates a short random item key
func NewKey() domain.Key {
	return domain.Key(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Validate checks if the create operation is valid
func (c *CreateCommand) Validate() error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	if c.ParentKey != "" {
		if err := application.ValidateKey("parentKey", c.ParentKey); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %s: %w", c.List, err)
	}

	parent := domain.Key(c.ParentKey)
	if parent != "" {
		ref, ok := outline.Find(parent)
		if !ok {
			return nil, fmt.Errorf("%w: parent %s", application.ErrNotFound, parent)
		}
		if !ref.TopLevel() {
			return nil, &application.ValidationError{
				Field:   "parentKey",
				Message: fmt.Sprintf("%s is a child and cannot hold items", parent),
			}
		}
	}

	key := c.newKey()
	for _, taken := outline.Find(key); taken; _, taken = outline.Find(key) {
		key = c.newKey()
	}

	item := domain.Item{
		Key:   key,
		Title: strings.TrimSpace(c.Title),
		Note:  c.Note,
	}
	if err := outline.Add(parent, item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if err := c.repo.Save(ctx, outline); err != nil {
		return nil, fmt.Errorf("failed to save list %s: %w", c.List, err)
	}

	return &CreateResult{
		Item:    item,
		Parent:  parent,
		Message: fmt.Sprintf("Created %s %s", item.Key, item.Title),
	}, nil
}
