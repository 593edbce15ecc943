package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// EditMode selects what the edit form does on submit
type EditMode int

const (
	EditCreate EditMode = iota
	EditCreateChild
	EditRename
)

const (
	fieldTitle = iota
	fieldNote
)

// EditModel is the form used to create and rename items
type EditModel struct {
	ViewState
	repo       ports.ListRepository
	createForm *InputForm
	renameForm *InputForm
	form       *InputForm
	mode       EditMode
	list       string
	row        domain.Row
}

// NewEditModel creates a new edit view model
func NewEditModel(repo ports.ListRepository) *EditModel {
	m := &EditModel{
		repo: repo,
		createForm: NewInputForm(
			NewInputField("Title", "What needs doing?", 200),
			NewInputField("Note", "Optional", 500),
		),
		renameForm: NewInputForm(
			NewInputField("Title", "New title", 200),
		),
	}
	m.form = m.createForm
	return m
}

// Start prepares the form for msg
func (m *EditModel) Start(msg SwitchToEditMsg) tea.Cmd {
	m.mode = msg.Mode
	m.list = msg.List
	m.row = msg.Row
	m.ClearMessage()
	m.form = m.createForm
	if m.mode == EditRename {
		m.form = m.renameForm
	}
	m.form.Reset()
	if m.mode == EditRename {
		m.form.SetValue(fieldTitle, msg.Row.Title)
	}
	return m.Init()
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil
	}

	action, cmd := m.form.Update(msg)
	switch action {
	case FormCancel:
		return m, switchTo(SwitchToBoardMsg{})
	case FormSubmit:
		if m.form.Value(fieldTitle) == "" {
			m.SetMessage("Title is required", true)
			return m, nil
		}
		return m, m.submit()
	}
	return m, cmd
}

func (m *EditModel) submit() tea.Cmd {
	title := m.form.Value(fieldTitle)
	note := m.form.Value(fieldNote)
	mode, list, row := m.mode, m.list, m.row

	return func() tea.Msg {
		ctx := context.Background()
		switch mode {
		case EditRename:
			res, err := commands.NewRenameCommand(m.repo, list, string(row.Key), title).Execute(ctx)
			if err != nil {
				return errMsg{err}
			}
			return ChangedMsg{List: list, Key: res.Key, Message: res.Message}

		default:
			parent := ""
			if mode == EditCreateChild {
				parent = string(row.Key)
			}
			cmd := commands.NewCreateCommand(m.repo, list, parent, title)
			cmd.Note = note
			res, err := cmd.Execute(ctx)
			if err != nil {
				return errMsg{err}
			}
			return ChangedMsg{List: list, Key: res.Item.Key, Message: res.Message}
		}
	}
}

// View renders the edit form
func (m *EditModel) View() string {
	var title, subtitle string
	switch m.mode {
	case EditCreate:
		title, subtitle = "New item", m.list
	case EditCreateChild:
		title, subtitle = "New child", fmt.Sprintf("under %s", m.row.Title)
	case EditRename:
		title, subtitle = "Rename", string(m.row.Key)
	}

	v := NewViewBuilder().Title(title, subtitle)
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.View())
	return v.String()
}
