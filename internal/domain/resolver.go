package domain

import "fmt"

// NoParent is the parent index of top-level positions
const NoParent = -1

// Location is the source descriptor of a move, in pre-removal coordinates
type Location struct {
	ParentIndex int // NoParent when top-level
	Index       int
}

// Destination is where the moved item goes. Index is expressed against the
// sequence as it looks after the source item has been removed.
type Destination struct {
	ParentIndex int // NoParent when top-level
	ParentKey   Key // snapshot of the parent's key, empty when top-level
	Index       int
	Mode        InsertionMode
}

// TopLevel reports whether the destination is the top-level sequence
func (d Destination) TopLevel() bool {
	return d.ParentIndex == NoParent
}

// Move is a resolved drop, ready to be applied as remove-then-insert
type Move struct {
	Source      Location
	Destination Destination
}

// Resolve maps a drop of the item at source onto target with the given mode
// into a Move. It reads items only to translate parent keys into indices and
// to bounds-check; items is never modified.
func Resolve(target, source Ref, mode InsertionMode, items []Item) (Move, error) {
	if !mode.Valid() {
		return Move{}, fmt.Errorf("%w: unknown insertion mode %d", ErrInvalidArgument, int(mode))
	}

	srcParent, err := resolveRef("source", source, items)
	if err != nil {
		return Move{}, err
	}
	dstParent, err := resolveRef("target", target, items)
	if err != nil && mode != ModeChild {
		return Move{}, err
	}
	move := Move{Source: Location{ParentIndex: srcParent, Index: source.Index}}

	if mode == ModeChild {
		if target.Parent != "" && dstParent == NoParent {
			return Move{}, fmt.Errorf("%w: target parent %s not in top level", ErrInvalidArgument, target.Parent)
		}
		// The target turns into a parent and the dragged item becomes its first child.
		if target.Index < 0 || target.Index >= len(items) {
			return Move{}, fmt.Errorf("%w: target index %d out of range", ErrInvalidArgument, target.Index)
		}
		move.Destination = Destination{
			ParentIndex: target.Index,
			Index:       0,
			Mode:        ModeChild,
		}
		// Only a top-level target can take children. A child target keeps
		// the key unset, so Apply finds no parent and refuses the move.
		if target.TopLevel() {
			move.Destination.ParentKey = items[target.Index].Key
		}
		return move, nil
	}

	index := target.Index
	if mode == ModeAfter {
		// after lands right behind the target, so backward drops return target.Index+1
		index++
	}
	// Same list and the target sits after the source: removal shifts it left by one.
	if target.Parent == source.Parent && target.Index > source.Index {
		index--
	}

	move.Destination = Destination{
		ParentIndex: dstParent,
		ParentKey:   target.Parent,
		Index:       index,
		Mode:        mode,
	}
	return move, nil
}

// resolveRef translates ref.Parent into a top-level index and bounds-checks
// ref.Index within that level.
func resolveRef(role string, ref Ref, items []Item) (int, error) {
	if ref.TopLevel() {
		if ref.Index < 0 || ref.Index >= len(items) {
			return NoParent, fmt.Errorf("%w: %s index %d out of range", ErrInvalidArgument, role, ref.Index)
		}
		return NoParent, nil
	}
	for i := range items {
		if items[i].Key != ref.Parent {
			continue
		}
		if ref.Index < 0 || ref.Index >= len(items[i].Children) {
			return i, fmt.Errorf("%w: %s index %d out of range under %s", ErrInvalidArgument, role, ref.Index, ref.Parent)
		}
		return i, nil
	}
	return NoParent, fmt.Errorf("%w: %s parent %s not in top level", ErrInvalidArgument, role, ref.Parent)
}
