package domain

import (
	"fmt"
	"strings"
)

// Key identifies an item uniquely within an outline
type Key string

// Child is an item nested under a top-level Item. It cannot hold children of its own.
type Child struct {
	Key   Key
	Title string
	Note  string
}

// Item is a top-level entry of an outline
type Item struct {
	Key      Key
	Title    string
	Note     string
	Children []Child
}

// HasChildren reports whether the item is a parent
func (it Item) HasChildren() bool {
	return len(it.Children) > 0
}

// Outline is a named two-level list
type Outline struct {
	Name  string
	Items []Item
}

// Ref is a snapshot of an item position: the parent key (empty for top level)
// and the index within that level's sequence.
type Ref struct {
	Parent Key
	Index  int
}

// TopLevel reports whether the ref points into the top-level sequence
func (r Ref) TopLevel() bool {
	return r.Parent == ""
}

// Level returns the nesting level of the ref (0 = top level, 1 = child)
func (r Ref) Level() int {
	if r.TopLevel() {
		return 0
	}
	return 1
}

// SearchResult represents a search match
type SearchResult struct {
	List   string
	Key    Key
	Parent Key
	Title  string
}

// Row is a flattened outline entry, used by renderers
type Row struct {
	Ref         Ref
	Key         Key
	Title       string
	Note        string
	HasChildren bool
}

// Level returns the nesting level of the row
func (r Row) Level() int {
	return r.Ref.Level()
}

// indexOf returns the top-level index of key, or -1
func (o *Outline) indexOf(key Key) int {
	for i := range o.Items {
		if o.Items[i].Key == key {
			return i
		}
	}
	return -1
}

// Find locates key anywhere in the outline
func (o *Outline) Find(key Key) (Ref, bool) {
	for i, it := range o.Items {
		if it.Key == key {
			return Ref{Index: i}, true
		}
		for j, ch := range it.Children {
			if ch.Key == key {
				return Ref{Parent: it.Key, Index: j}, true
			}
		}
	}
	return Ref{}, false
}

// Get returns the item at ref, as a top-level Item value. Children found at
// level 1 are returned with an empty Children slice.
func (o *Outline) Get(ref Ref) (Item, error) {
	if ref.TopLevel() {
		if ref.Index < 0 || ref.Index >= len(o.Items) {
			return Item{}, fmt.Errorf("%w: index %d out of range", ErrInvalidArgument, ref.Index)
		}
		return o.Items[ref.Index], nil
	}
	p := o.indexOf(ref.Parent)
	if p < 0 {
		return Item{}, fmt.Errorf("%w: parent %s", ErrNotFound, ref.Parent)
	}
	children := o.Items[p].Children
	if ref.Index < 0 || ref.Index >= len(children) {
		return Item{}, fmt.Errorf("%w: child index %d out of range", ErrInvalidArgument, ref.Index)
	}
	ch := children[ref.Index]
	return Item{Key: ch.Key, Title: ch.Title, Note: ch.Note}, nil
}

// Lookup returns the item with the given key
func (o *Outline) Lookup(key Key) (Item, Ref, error) {
	ref, ok := o.Find(key)
	if !ok {
		return Item{}, Ref{}, fmt.Errorf("%w: item %s", ErrNotFound, key)
	}
	it, err := o.Get(ref)
	return it, ref, err
}

// Add appends an item at the end of the top level, or at the end of parent's
// children when parent is non-empty.
func (o *Outline) Add(parent Key, it Item) error {
	if strings.TrimSpace(string(it.Key)) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}
	if _, exists := o.Find(it.Key); exists {
		return fmt.Errorf("%w: duplicate key %s", ErrInvalidArgument, it.Key)
	}
	if parent == "" {
		o.Items = append(o.Items, it)
		return nil
	}
	if it.HasChildren() {
		return ErrNestingTooDeep
	}
	p := o.indexOf(parent)
	if p < 0 {
		return fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	o.Items[p].Children = append(o.Items[p].Children, Child{Key: it.Key, Title: it.Title, Note: it.Note})
	return nil
}

// Rename sets the title of the item with the given key
func (o *Outline) Rename(key Key, title string) error {
	return o.update(key, func(title0, note0 *string) { *title0 = title })
}

// SetNote replaces the note of the item with the given key
func (o *Outline) SetNote(key Key, note string) error {
	return o.update(key, func(_, note0 *string) { *note0 = note })
}

func (o *Outline) update(key Key, fn func(title, note *string)) error {
	ref, ok := o.Find(key)
	if !ok {
		return fmt.Errorf("%w: item %s", ErrNotFound, key)
	}
	if ref.TopLevel() {
		it := &o.Items[ref.Index]
		fn(&it.Title, &it.Note)
		return nil
	}
	ch := &o.Items[o.indexOf(ref.Parent)].Children[ref.Index]
	fn(&ch.Title, &ch.Note)
	return nil
}

// Remove deletes the item with the given key, together with its children, and
// returns what was removed.
func (o *Outline) Remove(key Key) (Item, error) {
	ref, ok := o.Find(key)
	if !ok {
		return Item{}, fmt.Errorf("%w: item %s", ErrNotFound, key)
	}
	return o.removeAt(ref)
}

func (o *Outline) removeAt(ref Ref) (Item, error) {
	it, err := o.Get(ref)
	if err != nil {
		return Item{}, err
	}
	if ref.TopLevel() {
		o.Items = append(o.Items[:ref.Index:ref.Index], o.Items[ref.Index+1:]...)
		return it, nil
	}
	p := o.indexOf(ref.Parent)
	children := o.Items[p].Children
	o.Items[p].Children = append(children[:ref.Index:ref.Index], children[ref.Index+1:]...)
	return it, nil
}

// Flatten returns the outline as display rows, parents followed by their children
func (o *Outline) Flatten() []Row {
	var rows []Row
	for i, it := range o.Items {
		rows = append(rows, Row{
			Ref:         Ref{Index: i},
			Key:         it.Key,
			Title:       it.Title,
			Note:        it.Note,
			HasChildren: it.HasChildren(),
		})
		for j, ch := range it.Children {
			rows = append(rows, Row{
				Ref:   Ref{Parent: it.Key, Index: j},
				Key:   ch.Key,
				Title: ch.Title,
				Note:  ch.Note,
			})
		}
	}
	return rows
}

// Len returns the total number of items, children included
func (o *Outline) Len() int {
	n := len(o.Items)
	for _, it := range o.Items {
		n += len(it.Children)
	}
	return n
}

// Validate checks that keys are non-empty and unique across both levels
func (o *Outline) Validate() error {
	seen := make(map[Key]bool, o.Len())
	check := func(k Key) error {
		if strings.TrimSpace(string(k)) == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidArgument)
		}
		if seen[k] {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidArgument, k)
		}
		seen[k] = true
		return nil
	}
	for _, it := range o.Items {
		if err := check(it.Key); err != nil {
			return err
		}
		for _, ch := range it.Children {
			if err := check(ch.Key); err != nil {
				return err
			}
		}
	}
	return nil
}
