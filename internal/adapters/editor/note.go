package editor

import (
	"fmt"
	"os"
	"strings"

	"nestlist/internal/domain"
)

// NoteFile is a temporary file holding an item note while it is edited
type NoteFile struct {
	Key  domain.Key
	Path string
}

// NewNoteFile writes note to a fresh temporary markdown file
func NewNoteFile(key domain.Key, note string) (*NoteFile, error) {
	f, err := os.CreateTemp("", "nestlist-"+string(key)+"-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create note file: %w", err)
	}
	if _, err := f.WriteString(note); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write note file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	return &NoteFile{Key: key, Path: f.Name()}, nil
}

// Read returns the edited note without trailing newlines
func (n *NoteFile) Read() (string, error) {
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read note file: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Remove deletes the temporary file
func (n *NoteFile) Remove() error {
	return os.Remove(n.Path)
}
