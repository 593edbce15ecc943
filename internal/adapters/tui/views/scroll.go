package views

// Scroller keeps a focused line inside a window of fixed height
type Scroller struct {
	height int
	offset int
	total  int
}

// NewScroller creates a scroller showing height lines at a time
func NewScroller(height int) *Scroller {
	s := &Scroller{}
	s.SetHeight(height)
	return s
}

// SetHeight changes the window height
func (s *Scroller) SetHeight(height int) {
	if height <= 0 {
		height = 10
	}
	s.height = height
	s.clamp()
}

// SetTotal sets the number of lines available
func (s *Scroller) SetTotal(total int) {
	s.total = total
	s.clamp()
}

// Follow scrolls the minimum amount needed to show line
func (s *Scroller) Follow(line int) {
	if line < s.offset {
		s.offset = line
	} else if line >= s.offset+s.height {
		s.offset = line - s.height + 1
	}
	s.clamp()
}

// VisibleRange returns the start and end indices of the window
func (s *Scroller) VisibleRange() (start, end int) {
	return s.offset, min(s.offset+s.height, s.total)
}

// Offset returns the first visible line
func (s *Scroller) Offset() int {
	return s.offset
}

func (s *Scroller) clamp() {
	if s.offset > s.total-s.height {
		s.offset = s.total - s.height
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
