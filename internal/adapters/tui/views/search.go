package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/adapters/tui/styles"
	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Scope  key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Scope: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "this list/all lists"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const maxResults = 10

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	repo    ports.ListRepository
	input   textinput.Model
	list    string
	onlyOne bool
	results []domain.SearchResult
	cursor  int
	query   string
}

// NewSearchModel creates a new search view model
func NewSearchModel(repo ports.ListRepository) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search titles and notes..."
	input.Focus()

	return &SearchModel{
		repo:  repo,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and scopes the search to list
func (m *SearchModel) Reset(list string) {
	m.list = list
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.query = ""
	m.input.Focus()
}

type searchResultsMsg struct {
	query   string
	results []domain.SearchResult
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		// Drop answers to queries the user already typed past.
		if msg.query == m.query {
			m.results = msg.results
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, switchTo(SwitchToBoardMsg{})

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Scope):
			m.onlyOne = !m.onlyOne
			return m, m.search(m.query)

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				r := m.results[m.cursor]
				return m, switchTo(JumpToMsg{List: r.List, Key: r.Key})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := strings.TrimSpace(m.input.Value())
	if query == m.query {
		return m, cmd
	}
	m.query = query
	if len(query) < 2 {
		m.results = nil
		return m, cmd
	}
	return m, tea.Batch(cmd, m.search(query))
}

func (m *SearchModel) search(query string) tea.Cmd {
	if len(query) < 2 {
		return nil
	}
	list := ""
	if m.onlyOne {
		list = m.list
	}
	return func() tea.Msg {
		results, err := commands.NewSearchCommand(m.repo, query).InList(list).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	scope := "all lists"
	if m.onlyOne {
		scope = m.list
	}
	v := NewViewBuilder().Title("Search", scope)
	v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()
	v.Message(m.Message, m.MessageErr)

	switch {
	case len(m.results) > 0:
		v.Line(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results)))).BlankLine()
		for i, r := range m.results[:min(len(m.results), maxResults)] {
			v.Line(m.renderResult(r, i == m.cursor))
		}
		if len(m.results) > maxResults {
			v.Muted(fmt.Sprintf("... and %d more", len(m.results)-maxResults))
		}
	case len(m.query) >= 2:
		v.Muted("No results found")
	default:
		v.Muted("Type at least 2 characters to search")
	}

	v.BlankLine().Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Scope, SearchKeys.Select, SearchKeys.Cancel)
	return v.String()
}

func (m *SearchModel) renderResult(r domain.SearchResult, selected bool) string {
	where := r.List
	if r.Parent != "" {
		where += " › " + string(r.Parent)
	}
	title := highlight(r.Title, m.query)
	if selected {
		title = styles.RowSelected.Render(r.Title)
	}
	return fmt.Sprintf("%s  %s", styles.RowKey.Render("["+where+"]"), title)
}

// highlight marks the first case-insensitive occurrence of query in s
func highlight(s, query string) string {
	lower := strings.ToLower(s)
	if query == "" || len(lower) != len(s) {
		return s
	}
	i := strings.Index(lower, strings.ToLower(query))
	if i < 0 || i+len(query) > len(s) {
		return s
	}
	return s[:i] + styles.SearchMatch.Render(s[i:i+len(query)]) + s[i+len(query):]
}
