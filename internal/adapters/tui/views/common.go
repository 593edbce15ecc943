package views

import (
	"nestlist/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// DragOptions controls how drop targets are drawn on the board
type DragOptions struct {
	// TargetsOnlyWhileDragging hides empty drop slots while nothing is carried
	TargetsOnlyWhileDragging bool
	// TargetSize is the marker height in lines
	TargetSize int
}

// Messages for view switching

type SwitchToBoardMsg struct {
	Message string
}

type SwitchToEditMsg struct {
	Mode EditMode
	List string
	Row  domain.Row
}

type SwitchToDeleteMsg struct {
	List string
	Row  domain.Row
}

type SwitchToSearchMsg struct {
	List string
}

type SwitchToHelpMsg struct{}

// OpenNoteMsg asks the app to edit an item note in the external editor
type OpenNoteMsg struct {
	List string
	Key  domain.Key
	Note string
}

// JumpToMsg selects an item, switching list if needed
type JumpToMsg struct {
	List string
	Key  domain.Key
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// ChangedMsg reports a finished edit; the board reloads list and selects Key
type ChangedMsg struct {
	List    string
	Key     domain.Key
	Message string
}
