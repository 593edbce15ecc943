package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

const ext = ".yaml"

// Repository implements ports.ListRepository as a directory holding one
// file per list
type Repository struct {
	dir   string
	codec ports.OutlineCodec
	log   logrus.FieldLogger
}

// NewRepository creates a new filesystem repository rooted at dir
func NewRepository(dir string, codec ports.OutlineCodec, log logrus.FieldLogger) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[1:])
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Repository{dir: dir, codec: codec, log: log}
}

// Open creates the directory if needed
func (r *Repository) Open() error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create list directory: %w", err)
	}
	return nil
}

// Dir returns the list directory
func (r *Repository) Dir() string {
	return r.dir
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.dir, name+ext)
}

// ListNames returns the names of all list files, sorted
func (r *Repository) ListNames(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read list directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a list file. A missing file loads as an empty outline.
func (r *Repository) Load(ctx context.Context, name string) (*domain.Outline, error) {
	f, err := os.Open(r.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return &domain.Outline{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open list %s: %w", name, err)
	}
	defer f.Close()

	outline, err := r.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", name, err)
	}
	// The file name wins over the name written inside it
	outline.Name = name
	return outline, nil
}

// Save writes the outline to a temp file and renames it over the list file
func (r *Repository) Save(ctx context.Context, outline *domain.Outline) error {
	if err := outline.Validate(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, "."+outline.Name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := r.codec.Encode(tmp, outline); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write list %s: %w", outline.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write list %s: %w", outline.Name, err)
	}
	if err := os.Rename(tmp.Name(), r.path(outline.Name)); err != nil {
		return fmt.Errorf("failed to replace list %s: %w", outline.Name, err)
	}

	r.log.WithFields(logrus.Fields{
		"list":  outline.Name,
		"items": outline.Len(),
	}).Debug("saved list file")
	return nil
}

// DeleteList removes the list file
func (r *Repository) DeleteList(ctx context.Context, name string) error {
	err := os.Remove(r.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: list %s", domain.ErrNotFound, name)
	}
	return err
}

// Search matches titles and notes case-insensitively across every list
func (r *Repository) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	names, err := r.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	match := func(title, note string) bool {
		return strings.Contains(strings.ToLower(title), query) ||
			strings.Contains(strings.ToLower(note), query)
	}

	var results []domain.SearchResult
	for _, name := range names {
		outline, err := r.Load(ctx, name)
		if err != nil {
			// Skip unreadable files
			r.log.WithError(err).WithField("list", name).Warn("skipping list")
			continue
		}
		for _, it := range outline.Items {
			if match(it.Title, it.Note) {
				results = append(results, domain.SearchResult{List: name, Key: it.Key, Title: it.Title})
			}
		}
		for _, it := range outline.Items {
			for _, ch := range it.Children {
				if match(ch.Title, ch.Note) {
					results = append(results, domain.SearchResult{List: name, Key: ch.Key, Parent: it.Key, Title: ch.Title})
				}
			}
		}
	}
	return results, nil
}

// Close is a no-op; files are closed after every operation
func (r *Repository) Close() error {
	return nil
}
