package domain

import "fmt"

// DragState is the state of a Machine
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

func (s DragState) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Hover is the drop surface currently under the dragged item
type Hover struct {
	Target   Ref
	Mode     InsertionMode
	Accepted bool
}

// DragSession describes an active gesture. It exists only while dragging.
type DragSession struct {
	Source      Ref
	Key         Key
	HasChildren bool
	Hover       *Hover
}

// Accepts evaluates the eligibility rules for a candidate drop of this session's item
func (s DragSession) Accepts(target Ref, mode InsertionMode) bool {
	return CanAccept(target.Level(), mode, s.HasChildren)
}

// Drop is a committed gesture, ready for Resolve
type Drop struct {
	Key    Key
	Source Ref
	Target Ref
	Mode   InsertionMode
}

// Resolve runs the resolver on the drop's snapshots
func (d Drop) Resolve(items []Item) (Move, error) {
	return Resolve(d.Target, d.Source, d.Mode, items)
}

// Event drives a Machine
type Event interface {
	dragEvent()
}

// DragStarted picks an item up
type DragStarted struct {
	Source      Ref
	Key         Key
	HasChildren bool
}

// HoverChanged moves the gesture over a new candidate drop surface
type HoverChanged struct {
	Target Ref
	Mode   InsertionMode
}

// Dropped releases the item on the current hover target
type Dropped struct{}

// Cancelled abandons the gesture without a mutation
type Cancelled struct{}

func (DragStarted) dragEvent()  {}
func (HoverChanged) dragEvent() {}
func (Dropped) dragEvent()      {}
func (Cancelled) dragEvent()    {}

// Machine tracks a single drag gesture: Idle -> Dragging -> Idle.
// The zero value is an idle machine.
type Machine struct {
	session *DragSession
}

// State returns the current state
func (m *Machine) State() DragState {
	if m.session == nil {
		return StateIdle
	}
	return StateDragging
}

// Session returns a copy of the active session
func (m *Machine) Session() (DragSession, bool) {
	if m.session == nil {
		return DragSession{}, false
	}
	s := *m.session
	if s.Hover != nil {
		h := *s.Hover
		s.Hover = &h
	}
	return s, true
}

// Handle applies ev. A Dropped event returns the committed drop, or nil when
// the last hover was rejected or there was none. Events that make no sense in
// the current state return ErrInvalidTransition and change nothing.
func (m *Machine) Handle(ev Event) (*Drop, error) {
	switch ev := ev.(type) {
	case DragStarted:
		if m.session != nil {
			return nil, fmt.Errorf("%w: drag already in progress", ErrInvalidTransition)
		}
		m.session = &DragSession{Source: ev.Source, Key: ev.Key, HasChildren: ev.HasChildren}
		return nil, nil

	case HoverChanged:
		if m.session == nil {
			return nil, fmt.Errorf("%w: hover without drag", ErrInvalidTransition)
		}
		m.session.Hover = &Hover{
			Target:   ev.Target,
			Mode:     ev.Mode,
			Accepted: m.session.Accepts(ev.Target, ev.Mode),
		}
		return nil, nil

	case Dropped:
		if m.session == nil {
			return nil, fmt.Errorf("%w: drop without drag", ErrInvalidTransition)
		}
		s := m.session
		m.session = nil
		if s.Hover == nil || !s.Hover.Accepted {
			return nil, nil
		}
		return &Drop{Key: s.Key, Source: s.Source, Target: s.Hover.Target, Mode: s.Hover.Mode}, nil

	case Cancelled:
		if m.session == nil {
			return nil, fmt.Errorf("%w: cancel without drag", ErrInvalidTransition)
		}
		m.session = nil
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
}
