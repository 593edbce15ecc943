package commands

import (
	"context"
	"fmt"
	"io"

	"nestlist/internal/application"
	"nestlist/internal/ports"
)

// ExportCommand writes a list through a codec
type ExportCommand struct {
	repo  ports.ListRepository
	codec ports.OutlineCodec
	List  string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(repo ports.ListRepository, codec ports.OutlineCodec, list string) *ExportCommand {
	return &ExportCommand{
		repo:  repo,
		codec: codec,
		List:  list,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, w io.Writer) error {
	if err := application.ValidateListName(c.List); err != nil {
		return err
	}
	outline, err := c.repo.Load(ctx, c.List)
	if err != nil {
		return fmt.Errorf("failed to load list %s: %w", c.List, err)
	}
	if err := c.codec.Encode(w, outline); err != nil {
		return fmt.Errorf("failed to export list %s: %w", c.List, err)
	}
	return nil
}

// ImportResult contains the result of an import
type ImportResult struct {
	List    string
	Items   int
	Message string
}

// ImportCommand reads an outline through a codec and stores it, replacing
// any list with the same name.
type ImportCommand struct {
	repo  ports.ListRepository
	codec ports.OutlineCodec
	// List overrides the name found in the document when set
	List string
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(repo ports.ListRepository, codec ports.OutlineCodec, list string) *ImportCommand {
	return &ImportCommand{
		repo:  repo,
		codec: codec,
		List:  list,
	}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context, r io.Reader) (*ImportResult, error) {
	outline, err := c.codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to import: %w", err)
	}
	if c.List != "" {
		outline.Name = c.List
	}
	if err := application.ValidateListName(outline.Name); err != nil {
		return nil, err
	}
	if err := outline.Validate(); err != nil {
		return nil, fmt.Errorf("failed to import: %w", err)
	}
	if err := c.repo.Save(ctx, outline); err != nil {
		return nil, fmt.Errorf("failed to save list %s: %w", outline.Name, err)
	}

	return &ImportResult{
		List:    outline.Name,
		Items:   outline.Len(),
		Message: fmt.Sprintf("Imported %d items into %s", outline.Len(), outline.Name),
	}, nil
}
