package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Child     = lipgloss.Color("#60A5FA") // Blue

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Row styles
	RowParent = lipgloss.NewStyle().
			Bold(true)

	RowItem = lipgloss.NewStyle()

	RowChild = lipgloss.NewStyle().
			Foreground(Child)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// RowDragged marks the row being carried
	RowDragged = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Strikethrough(true)

	RowKey = lipgloss.NewStyle().
		Foreground(Muted)

	// Tree indicators
	TreeBranch = lipgloss.NewStyle().Foreground(Muted)
	TreeParent = "▼ "
	TreeLeaf   = "• "
	TreeChild  = "└ "
	TreeGrip   = "⠿ "

	// Drop targets
	DropTarget = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	DropRejected = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	DropSlot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ModeColor returns the marker color for a hover that is accepted or not
func ModeColor(accepted bool) lipgloss.Style {
	if accepted {
		return DropTarget
	}
	return DropRejected
}
