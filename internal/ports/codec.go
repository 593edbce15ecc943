package ports

import (
	"io"

	"nestlist/internal/domain"
)

// OutlineCodec reads and writes outlines in an interchange format
type OutlineCodec interface {
	Encode(w io.Writer, outline *domain.Outline) error
	Decode(r io.Reader) (*domain.Outline, error)
}
