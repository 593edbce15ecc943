package domain

// CanAccept reports whether a drop surface at the given nesting level, offering
// mode, may take the dragged item. Nesting is capped at two levels, so an item
// that already has children can neither become a child nor land at level 1.
// It has no side effects and may be called on every hover.
func CanAccept(level int, mode InsertionMode, draggedHasChildren bool) bool {
	if mode == ModeChild || level >= 1 {
		return !draggedHasChildren
	}
	return true
}
