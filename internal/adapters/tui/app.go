package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"nestlist/internal/adapters/editor"
	"nestlist/internal/adapters/tui/views"
	"nestlist/internal/application/commands"
	"nestlist/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewEdit
	ViewDelete
	ViewSearch
	ViewHelp
)

// Options configures the application
type Options struct {
	List string
	Drag views.DragOptions
	Log  logrus.FieldLogger
}

// App is the main TUI application model
type App struct {
	repo   ports.ListRepository
	editor ports.EditorOpener
	log    logrus.FieldLogger

	state  ViewState
	board  *views.BoardModel
	edit   *views.EditModel
	delete *views.DeleteModel
	search *views.SearchModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.ListRepository, ed ports.EditorOpener, opts Options) *App {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		repo:   repo,
		editor: ed,
		log:    log,
		state:  ViewBoard,
		board:  views.NewBoardModel(repo, opts.List, opts.Drag, log),
		edit:   views.NewEditModel(repo),
		delete: views.NewDeleteModel(repo),
		search: views.NewSearchModel(repo),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToEditMsg:
		a.state = ViewEdit
		return a, a.edit.Start(msg)

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.List, msg.Row)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset(msg.List)
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		if msg.Message != "" {
			a.board.SetMessage(msg.Message, false)
		}
		return a, nil

	case views.ChangedMsg:
		a.state = ViewBoard
		a.board.SetMessage(msg.Message, false)
		return a, a.board.Show(msg.List, msg.Key)

	case views.JumpToMsg:
		a.state = ViewBoard
		return a, a.board.Show(msg.List, msg.Key)

	case views.OpenNoteMsg:
		return a, a.openNote(msg)

	case noteEditedMsg:
		return a, a.saveNote(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type noteEditedMsg struct {
	list string
	file *editor.NoteFile
	err  error
}

func (a *App) openNote(msg views.OpenNoteMsg) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	file, err := editor.NewNoteFile(msg.Key, msg.Note)
	if err != nil {
		return func() tea.Msg { return noteEditedMsg{err: err} }
	}

	cmd, err := a.editor.Command(file.Path)
	if err != nil {
		file.Remove()
		return func() tea.Msg { return noteEditedMsg{err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return noteEditedMsg{list: msg.List, file: file, err: err}
	})
}

func (a *App) saveNote(msg noteEditedMsg) tea.Cmd {
	if msg.file != nil {
		defer msg.file.Remove()
	}
	if msg.err != nil {
		a.log.WithError(msg.err).Warn("editor failed")
		a.board.SetMessage(msg.err.Error(), true)
		return nil
	}

	note, err := msg.file.Read()
	if err != nil {
		a.board.SetMessage(err.Error(), true)
		return nil
	}
	cmd := commands.NewSetNoteCommand(a.repo, msg.list, string(msg.file.Key), note)
	if err := cmd.Execute(context.Background()); err != nil {
		a.board.SetMessage(err.Error(), true)
		return nil
	}

	a.board.SetMessage("Note saved", false)
	return a.board.Show(msg.list, msg.file.Key)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEdit:
		return a.edit.View()
	case ViewDelete:
		return a.delete.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
