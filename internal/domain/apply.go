package domain

import "fmt"

// Apply performs a resolved move: the source is removed first, then inserted
// at the destination. The destination parent is found again by key after the
// removal, since removing a top-level source can shift parent indices.
func (o *Outline) Apply(m Move) error {
	src := Ref{Index: m.Source.Index}
	if m.Source.ParentIndex != NoParent {
		if m.Source.ParentIndex < 0 || m.Source.ParentIndex >= len(o.Items) {
			return fmt.Errorf("%w: source parent index %d out of range", ErrInvalidArgument, m.Source.ParentIndex)
		}
		src.Parent = o.Items[m.Source.ParentIndex].Key
	}
	moved, err := o.Get(src)
	if err != nil {
		return err
	}

	d := m.Destination
	if d.Mode == ModeChild || !d.TopLevel() {
		if moved.HasChildren() {
			return ErrNestingTooDeep
		}
		if d.ParentKey == moved.Key {
			return fmt.Errorf("%w: cannot nest %s under itself", ErrInvalidArgument, moved.Key)
		}
	}

	// Work on a copy so a rejected insert leaves the outline untouched.
	next := o.clone()
	if _, err := next.removeAt(src); err != nil {
		return err
	}

	if d.TopLevel() && d.Mode != ModeChild {
		if d.Index < 0 || d.Index > len(next.Items) {
			return fmt.Errorf("%w: destination index %d out of range", ErrInvalidArgument, d.Index)
		}
		next.Items = insertAt(next.Items, d.Index, moved)
		*o = next
		return nil
	}

	p := next.indexOf(d.ParentKey)
	if p < 0 {
		return fmt.Errorf("%w: destination parent %s", ErrNotFound, d.ParentKey)
	}
	parent := &next.Items[p]
	if d.Mode == ModeChild && parent.HasChildren() {
		return fmt.Errorf("%w: %s already has children", ErrInvalidArgument, parent.Key)
	}
	if d.Index < 0 || d.Index > len(parent.Children) {
		return fmt.Errorf("%w: destination index %d out of range", ErrInvalidArgument, d.Index)
	}
	parent.Children = insertAt(parent.Children, d.Index, Child{Key: moved.Key, Title: moved.Title, Note: moved.Note})
	*o = next
	return nil
}

func (o *Outline) clone() Outline {
	out := Outline{Name: o.Name, Items: make([]Item, len(o.Items))}
	for i, it := range o.Items {
		out.Items[i] = it
		out.Items[i].Children = append([]Child(nil), it.Children...)
	}
	return out
}

func insertAt[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
