package yamlfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// document is the on-disk shape of an outline
type document struct {
	Name  string  `yaml:"name"`
	Items []entry `yaml:"items"`
}

// entry is used for both levels so that a child carrying children can be
// detected and rejected instead of silently dropped.
type entry struct {
	Key      string  `yaml:"key"`
	Title    string  `yaml:"title"`
	Note     string  `yaml:"note,omitempty"`
	Children []entry `yaml:"children,omitempty"`
}

// Codec implements ports.OutlineCodec using YAML
type Codec struct{}

// Ensure Codec implements OutlineCodec
var _ ports.OutlineCodec = (*Codec)(nil)

// NewCodec creates a new YAML codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode writes outline as YAML
func (c *Codec) Encode(w io.Writer, outline *domain.Outline) error {
	doc := document{Name: outline.Name}
	for _, it := range outline.Items {
		e := entry{Key: string(it.Key), Title: it.Title, Note: it.Note}
		for _, ch := range it.Children {
			e.Children = append(e.Children, entry{Key: string(ch.Key), Title: ch.Title, Note: ch.Note})
		}
		doc.Items = append(doc.Items, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML outline. Children nested below level 1, empty titles
// and duplicate keys are rejected.
func (c *Codec) Decode(r io.Reader) (*domain.Outline, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("failed to decode outline: %w", err)
	}

	outline := &domain.Outline{Name: strings.TrimSpace(doc.Name)}
	for _, e := range doc.Items {
		if err := checkEntry(e); err != nil {
			return nil, err
		}
		it := domain.Item{Key: domain.Key(e.Key), Title: e.Title, Note: e.Note}
		for _, ch := range e.Children {
			if err := checkEntry(ch); err != nil {
				return nil, err
			}
			if len(ch.Children) > 0 {
				return nil, fmt.Errorf("%w: %s under %s", domain.ErrNestingTooDeep, ch.Key, e.Key)
			}
			it.Children = append(it.Children, domain.Child{Key: domain.Key(ch.Key), Title: ch.Title, Note: ch.Note})
		}
		outline.Items = append(outline.Items, it)
	}

	if err := outline.Validate(); err != nil {
		return nil, err
	}
	return outline, nil
}

func checkEntry(e entry) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: item %q has no title", domain.ErrInvalidArgument, e.Key)
	}
	return nil
}

// ReadFile decodes the outline stored at path
func (c *Codec) ReadFile(path string) (*domain.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return c.Decode(f)
}

// WriteFile encodes outline to path, replacing any existing file
func (c *Codec) WriteFile(path string, outline *domain.Outline) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.Encode(f, outline); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
