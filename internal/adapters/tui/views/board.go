package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"nestlist/internal/adapters/tui/styles"
	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Grab     key.Binding
	Before   key.Binding
	After    key.Binding
	Child    key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	New      key.Binding
	NewChild key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Note     key.Binding
	Copy     key.Binding
	Search   key.Binding
	NextList key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Grab: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "pick up"),
	),
	Before: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "before"),
	),
	After: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "after"),
	),
	Child: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "as child"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	NewChild: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new child"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Note: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "note"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy key"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextList: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "next list"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// BoardModel shows one list and lets the user drag items around it
// with the keyboard.
type BoardModel struct {
	ViewState
	repo ports.ListRepository
	log  logrus.FieldLogger
	opts DragOptions

	list    string
	outline *domain.Outline
	rows    []domain.Row
	cursor  int
	scroll  *Scroller
	pending domain.Key

	machine domain.Machine
	hover   int
	mode    domain.InsertionMode
}

// NewBoardModel creates a new board model showing list
func NewBoardModel(repo ports.ListRepository, list string, opts DragOptions, log logrus.FieldLogger) *BoardModel {
	if opts.TargetSize < 1 {
		opts.TargetSize = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BoardModel{
		repo:   repo,
		log:    log,
		opts:   opts,
		list:   list,
		scroll: NewScroller(20),
	}
}

type outlineLoadedMsg struct {
	outline *domain.Outline
}

type dropDoneMsg struct {
	result *commands.MoveResult
}

// Init initializes the board
func (m *BoardModel) Init() tea.Cmd {
	return m.load(m.list)
}

func (m *BoardModel) load(list string) tea.Cmd {
	return func() tea.Msg {
		outline, err := commands.NewLoadOutlineCommand(m.repo, list).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return outlineLoadedMsg{outline}
	}
}

// Reload reloads the current list
func (m *BoardModel) Reload() tea.Cmd {
	return m.load(m.list)
}

// Show switches to list and selects key once it is loaded
func (m *BoardModel) Show(list string, key domain.Key) tea.Cmd {
	m.pending = key
	if list == "" {
		list = m.list
	}
	return m.load(list)
}

// List returns the name of the list on screen
func (m *BoardModel) List() string {
	return m.list
}

// Dragging reports whether an item is currently picked up
func (m *BoardModel) Dragging() bool {
	return m.machine.State() == domain.StateDragging
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case outlineLoadedMsg:
		m.setOutline(msg.outline)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case dropDoneMsg:
		m.SetMessage(msg.result.Message, false)
		m.pending = msg.result.Key
		if msg.result.Outline != nil {
			m.setOutline(msg.result.Outline)
			return m, nil
		}
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()
		if key.Matches(msg, BoardKeys.Quit) {
			return m, tea.Quit
		}
		if m.Dragging() {
			return m, m.updateDragging(msg)
		}
		return m, m.updateIdle(msg)
	}

	return m, nil
}

func (m *BoardModel) setOutline(o *domain.Outline) {
	if o.Name != m.list {
		m.cursor = 0
	}
	m.list = o.Name
	m.outline = o
	m.rows = o.Flatten()

	if m.pending != "" {
		for i, r := range m.rows {
			if r.Key == m.pending {
				m.cursor = i
				break
			}
		}
		m.pending = ""
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BoardModel) updateIdle(msg tea.KeyMsg) tea.Cmd {
	row, ok := m.selected()

	switch {
	case key.Matches(msg, BoardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, BoardKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, BoardKeys.Grab):
		if ok {
			return m.startDrag(row)
		}

	case key.Matches(msg, BoardKeys.New):
		return switchTo(SwitchToEditMsg{Mode: EditCreate, List: m.list})

	case key.Matches(msg, BoardKeys.NewChild):
		if !ok {
			return nil
		}
		parent := row
		if row.Level() > 0 {
			parent = m.rowFor(row.Ref.Parent)
		}
		return switchTo(SwitchToEditMsg{Mode: EditCreateChild, List: m.list, Row: parent})

	case key.Matches(msg, BoardKeys.Rename):
		if ok {
			return switchTo(SwitchToEditMsg{Mode: EditRename, List: m.list, Row: row})
		}

	case key.Matches(msg, BoardKeys.Delete):
		if ok {
			return switchTo(SwitchToDeleteMsg{List: m.list, Row: row})
		}

	case key.Matches(msg, BoardKeys.Note):
		if ok {
			return switchTo(OpenNoteMsg{List: m.list, Key: row.Key, Note: row.Note})
		}

	case key.Matches(msg, BoardKeys.Copy):
		if ok {
			if err := copyToClipboard(string(row.Key)); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %s", row.Key), false)
			}
		}

	case key.Matches(msg, BoardKeys.Search):
		return switchTo(SwitchToSearchMsg{List: m.list})

	case key.Matches(msg, BoardKeys.NextList):
		return m.nextList()

	case key.Matches(msg, BoardKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}

	return nil
}

func (m *BoardModel) updateDragging(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BoardKeys.Up):
		if m.hover > 0 {
			m.hover--
			m.hoverChanged()
		}

	case key.Matches(msg, BoardKeys.Down):
		if m.hover < len(m.rows)-1 {
			m.hover++
			m.hoverChanged()
		}

	case key.Matches(msg, BoardKeys.Before):
		m.mode = domain.ModeBefore
		m.hoverChanged()

	case key.Matches(msg, BoardKeys.After):
		m.mode = domain.ModeAfter
		m.hoverChanged()

	case key.Matches(msg, BoardKeys.Child):
		m.mode = domain.ModeChild
		m.hoverChanged()

	case key.Matches(msg, BoardKeys.Drop):
		session, _ := m.machine.Session()
		drop, err := m.machine.Handle(domain.Dropped{})
		if err != nil {
			m.SetMessage(err.Error(), true)
			return nil
		}
		if e := m.eligibility(session); drop == nil || !e.CanDrop {
			m.SetMessage("Drop rejected: "+e.Reason, true)
			return nil
		}
		m.cursor = m.hover
		return m.commit(*drop)

	case key.Matches(msg, BoardKeys.Cancel):
		if _, err := m.machine.Handle(domain.Cancelled{}); err != nil {
			m.SetMessage(err.Error(), true)
			return nil
		}
		m.SetMessage("Drag cancelled", false)
	}

	return nil
}

func (m *BoardModel) startDrag(row domain.Row) tea.Cmd {
	_, err := m.machine.Handle(domain.DragStarted{
		Source:      row.Ref,
		Key:         row.Key,
		HasChildren: row.HasChildren,
	})
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	m.hover = m.cursor
	m.mode = domain.ModeBefore
	m.hoverChanged()
	m.log.WithField("key", row.Key).Debug("drag started")
	return nil
}

func (m *BoardModel) hoverChanged() {
	if m.hover < 0 || m.hover >= len(m.rows) {
		return
	}
	if _, err := m.machine.Handle(domain.HoverChanged{Target: m.rows[m.hover].Ref, Mode: m.mode}); err != nil {
		m.SetMessage(err.Error(), true)
	}
}

// eligibility checks the hovered drop against the nesting rules and the
// rules that depend on the target row
func (m *BoardModel) eligibility(s domain.DragSession) commands.DropEligibility {
	if s.Hover == nil {
		return commands.DropEligibility{Reason: "no drop target"}
	}
	return commands.CheckDropEligibility(m.outline, s.Key, s.Hover.Target, s.Hover.Mode)
}

func (m *BoardModel) commit(drop domain.Drop) tea.Cmd {
	list := m.list
	return func() tea.Msg {
		res, err := commands.NewDropCommand(m.repo, list, drop).
			WithLogger(m.log).
			Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return dropDoneMsg{res}
	}
}

func (m *BoardModel) nextList() tea.Cmd {
	current := m.list
	return func() tea.Msg {
		names, err := commands.NewListNamesCommand(m.repo).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		next := ""
		for i, n := range names {
			if n == current {
				next = names[(i+1)%len(names)]
				break
			}
		}
		if next == "" && len(names) > 0 {
			next = names[0]
		}
		if next == "" || next == current {
			return errMsg{fmt.Errorf("no other lists")}
		}
		outline, err := commands.NewLoadOutlineCommand(m.repo, next).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return outlineLoadedMsg{outline}
	}
}

func (m *BoardModel) selected() (domain.Row, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor], true
	}
	return domain.Row{}, false
}

func (m *BoardModel) rowFor(k domain.Key) domain.Row {
	for _, r := range m.rows {
		if r.Key == k {
			return r
		}
	}
	return domain.Row{}
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the board
func (m *BoardModel) View() string {
	if m.outline == nil {
		return "Loading..."
	}

	v := NewViewBuilder()
	subtitle := fmt.Sprintf("%s (%d items)", m.list, m.outline.Len())
	if s, ok := m.machine.Session(); ok {
		subtitle = fmt.Sprintf("%s, carrying %s %s", m.list, s.Key, m.mode)
	}
	v.Title("nestlist", subtitle)

	if len(m.rows) == 0 {
		v.Muted("This list is empty. Press n to add an item.")
	}

	lines, focus := m.lines()
	m.scroll.SetHeight(m.Height - 9)
	m.scroll.SetTotal(len(lines))
	m.scroll.Follow(focus)
	start, end := m.scroll.VisibleRange()
	for _, l := range lines[start:end] {
		v.Line(l)
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	if m.Dragging() {
		v.Help(BoardKeys.Up, BoardKeys.Down, BoardKeys.Before, BoardKeys.After, BoardKeys.Child, BoardKeys.Drop, BoardKeys.Cancel)
	} else {
		v.Help(BoardKeys.Grab, BoardKeys.New, BoardKeys.NewChild, BoardKeys.Rename, BoardKeys.Delete, BoardKeys.Note, BoardKeys.Help, BoardKeys.Quit)
	}
	return v.String()
}

// lines renders every row plus drop slots. focus is the line to keep visible.
func (m *BoardModel) lines() ([]string, int) {
	session, dragging := m.machine.Session()
	active := -1
	if dragging && session.Hover != nil {
		active = m.dropSlot(session.Hover.Mode)
	}

	var lines []string
	focus := 0
	slot := func(i int) {
		switch {
		case i == active:
			lines = append(lines, m.marker(session)...)
		case !m.opts.TargetsOnlyWhileDragging:
			for n := 0; n < m.opts.TargetSize; n++ {
				lines = append(lines, styles.DropSlot.Render("  ┄┄┄"))
			}
		}
	}

	for i, row := range m.rows {
		slot(i)
		if (dragging && i == m.hover) || (!dragging && i == m.cursor) {
			focus = len(lines)
		}
		lines = append(lines, m.renderRow(row, i, dragging && row.Key == session.Key))
	}
	slot(len(m.rows))

	return lines, focus
}

// dropSlot is the row index the drop marker is drawn above. An item dropped
// after a parent lands below the parent's last child.
func (m *BoardModel) dropSlot(mode domain.InsertionMode) int {
	switch mode {
	case domain.ModeBefore:
		return m.hover
	case domain.ModeChild:
		return m.hover + 1
	}
	slot := m.hover + 1
	if m.rows[m.hover].Level() == 0 {
		for slot < len(m.rows) && m.rows[slot].Level() > 0 {
			slot++
		}
	}
	return slot
}

func (m *BoardModel) marker(s domain.DragSession) []string {
	target := m.rows[m.hover]
	indent := ""
	if target.Level() > 0 || s.Hover.Mode == domain.ModeChild {
		indent = "    "
	}

	accepted := m.eligibility(s).CanDrop
	var text string
	if accepted {
		text = fmt.Sprintf("%s▸ drop %s %s", indent, s.Hover.Mode, target.Title)
	} else {
		text = fmt.Sprintf("%s✗ cannot drop %s %s", indent, s.Hover.Mode, target.Title)
	}

	style := styles.ModeColor(accepted)
	out := []string{style.Render(text)}
	for n := 1; n < m.opts.TargetSize; n++ {
		out = append(out, style.Render(indent+"┆"))
	}
	return out
}

func (m *BoardModel) renderRow(row domain.Row, i int, carried bool) string {
	indent := ""
	prefix := styles.TreeLeaf
	style := styles.RowItem
	switch {
	case row.Level() > 0:
		indent = "  "
		prefix = styles.TreeChild
		style = styles.RowChild
	case row.HasChildren:
		prefix = styles.TreeParent
		style = styles.RowParent
	}

	text := row.Title
	if row.Note != "" {
		text += " ✎"
	}

	switch {
	case carried:
		prefix = styles.TreeGrip
		text = styles.RowDragged.Render(text)
	case !m.Dragging() && i == m.cursor:
		text = styles.RowSelected.Render(text)
	default:
		text = style.Render(text)
	}

	return fmt.Sprintf("%s%s%s  %s", indent, styles.TreeBranch.Render(prefix), text, styles.RowKey.Render(string(row.Key)))
}

// Rows returns the rows currently shown, for tests and callers that need
// the flattened order
func (m *BoardModel) Rows() []domain.Row {
	return m.rows
}

// String renders the list as plain indented text
func (m *BoardModel) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		if r.Level() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(string(r.Key))
		b.WriteByte('\n')
	}
	return b.String()
}
