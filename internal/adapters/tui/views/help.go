package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToBoardMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("nestlist help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("/", "Search all lists"))
	b.WriteString(helpLine("L", "Next list"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Dragging"))
	b.WriteString("\n")
	b.WriteString(helpLine("space", "Pick up the selected item"))
	b.WriteString(helpLine("j / k", "Move the drop target"))
	b.WriteString(helpLine("b / a / c", "Drop before, after, or as first child"))
	b.WriteString(helpLine("enter", "Drop"))
	b.WriteString(helpLine("esc", "Put it back"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("n / N", "New item / new child"))
	b.WriteString(helpLine("r", "Rename"))
	b.WriteString(helpLine("d", "Delete"))
	b.WriteString(helpLine("e", "Edit note in $EDITOR"))
	b.WriteString(helpLine("y", "Copy key"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Nesting"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Items nest one level deep. An item that has children"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  stays at the top level and cannot become a child."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
