package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/adapters/tui/styles"
	"nestlist/internal/application/commands"
	"nestlist/internal/ports"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	repo ports.ListRepository
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(repo ports.ListRepository) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		repo:              repo,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		_, cmd := m.HandleKeyMsg(msg,
			m.doDelete,
			func() tea.Msg { return SwitchToBoardMsg{} },
		)
		return m, cmd
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	res, err := commands.NewDeleteCommand(m.repo, m.List, string(m.Target.Key)).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return ChangedMsg{List: m.List, Message: res.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().Title("Delete", m.List)
	v.Line(RenderTargetInfo(m.Target, "Delete"))
	if m.Target.HasChildren {
		v.Line(styles.ErrorMsg.Render("  Its children will be deleted too."))
	}
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(RenderConfirmPrompt("Delete this item?"))
	return v.String()
}
