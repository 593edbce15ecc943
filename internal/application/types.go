package application

import "nestlist/internal/domain"

// Re-export domain types for use by adapters
type (
	Outline       = domain.Outline
	Item          = domain.Item
	Child         = domain.Child
	Key           = domain.Key
	Row           = domain.Row
	Ref           = domain.Ref
	SearchResult  = domain.SearchResult
	InsertionMode = domain.InsertionMode
)

const (
	ModeBefore = domain.ModeBefore
	ModeAfter  = domain.ModeAfter
	ModeChild  = domain.ModeChild
)

// ParseInsertionMode parses a mode name ("before", "after", "child")
func ParseInsertionMode(s string) (InsertionMode, error) {
	return domain.ParseInsertionMode(s)
}
