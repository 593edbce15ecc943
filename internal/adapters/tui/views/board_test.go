package views

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nestlist/internal/adapters/sqlite"
	"nestlist/internal/domain"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s := sqlite.NewStore(nil)
	if err := s.Open(filepath.Join(t.TempDir(), "board.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	err := s.Save(context.Background(), &domain.Outline{
		Name: "inbox",
		Items: []domain.Item{
			{Key: "a", Title: "Alpha"},
			{Key: "b", Title: "Bravo", Children: []domain.Child{
				{Key: "b1", Title: "Bravo one"},
				{Key: "b2", Title: "Bravo two"},
			}},
			{Key: "c", Title: "Charlie", Note: "see you"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newTestBoard(t *testing.T, opts DragOptions) *BoardModel {
	t.Helper()
	m := NewBoardModel(newTestStore(t), "inbox", opts, nil)
	run(t, m, m.Init())
	return m
}

// run executes cmd and feeds its message back into m, following any
// command chain the model returns.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = m.Update(msg)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends each key and runs the resulting commands
func press(t *testing.T, m *BoardModel, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		run(t, m, cmd)
	}
}

func TestBoard_Loads(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	if got := m.String(); got != "a\nb\n  b1\n  b2\nc\n" {
		t.Errorf("rows:\n%s", got)
	}
	if m.List() != "inbox" {
		t.Errorf("List() = %q", m.List())
	}
}

func TestBoard_Drops(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		want       string
		wantCursor domain.Key
	}{
		{
			name:       "top level after",
			keys:       []string{"space", "j", "j", "j", "j", "a", "enter"},
			want:       "b\n  b1\n  b2\nc\na\n",
			wantCursor: "a",
		},
		{
			name:       "into children",
			keys:       []string{"space", "j", "j", "j", "enter"},
			want:       "b\n  b1\n  a\n  b2\nc\n",
			wantCursor: "a",
		},
		{
			name:       "as child of leaf",
			keys:       []string{"j", "j", "j", "j", "space", "k", "k", "k", "k", "c", "enter"},
			want:       "a\n  c\nb\n  b1\n  b2\n",
			wantCursor: "c",
		},
		{
			name:       "child out to top level",
			keys:       []string{"j", "j", "j", "space", "k", "k", "k", "b", "enter"},
			want:       "b2\na\nb\n  b1\nc\n",
			wantCursor: "b2",
		},
		{
			name:       "onto itself",
			keys:       []string{"space", "enter"},
			want:       "a\nb\n  b1\n  b2\nc\n",
			wantCursor: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})
			press(t, m, tt.keys...)

			if m.MessageErr {
				t.Fatalf("unexpected error: %s", m.Message)
			}
			if got := m.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
			if m.Dragging() {
				t.Error("still dragging after drop")
			}
			if row, _ := m.selected(); row.Key != tt.wantCursor {
				t.Errorf("cursor on %s, want %s", row.Key, tt.wantCursor)
			}

			// The store holds the same order.
			fresh := NewBoardModel(m.repo, "inbox", m.opts, nil)
			run(t, fresh, fresh.Init())
			if got := fresh.String(); got != tt.want {
				t.Errorf("stored\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBoard_RejectedDrop(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	// b has children, so it cannot be placed at level 1.
	press(t, m, "j", "space", "j", "a")
	if view := m.View(); !strings.Contains(view, "cannot drop after Bravo one") {
		t.Errorf("expected rejected marker in view:\n%s", view)
	}

	press(t, m, "enter")
	if !m.MessageErr || !strings.Contains(m.Message, "Drop rejected") {
		t.Errorf("message = %q", m.Message)
	}
	if m.Dragging() {
		t.Error("a rejected drop still ends the drag")
	}
	if got := m.String(); got != "a\nb\n  b1\n  b2\nc\n" {
		t.Errorf("list changed:\n%s", got)
	}
}

func TestBoard_ChildOfChildFails(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	press(t, m, "space", "j", "j", "c")
	if view := m.View(); !strings.Contains(view, "cannot drop child Bravo one") {
		t.Errorf("child rows cannot take children, expected a rejected marker:\n%s", view)
	}

	press(t, m, "enter")
	if !m.MessageErr || !strings.Contains(m.Message, "only top-level items") {
		t.Fatalf("expected a rejection, got %q", m.Message)
	}
	if got := m.String(); got != "a\nb\n  b1\n  b2\nc\n" {
		t.Errorf("list changed:\n%s", got)
	}
}

func TestBoard_AfterParentMarksBelowChildren(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	press(t, m, "space", "j", "a")
	lines, _ := m.lines()
	index := func(sub string) int {
		for i, l := range lines {
			if strings.Contains(l, sub) {
				return i
			}
		}
		t.Fatalf("%q not in\n%s", sub, strings.Join(lines, "\n"))
		return -1
	}

	marker := index("drop after Bravo")
	if marker < index("Bravo two") || marker > index("Charlie") {
		t.Errorf("marker should sit between the last child and the next item:\n%s", strings.Join(lines, "\n"))
	}

	press(t, m, "enter")
	if got := m.String(); got != "b\n  b1\n  b2\na\nc\n" {
		t.Errorf("got:\n%s", got)
	}
}

func TestBoard_ChildOntoParentRejected(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	// b already has children; the drop point is before b1 instead.
	press(t, m, "space", "j", "c")
	if view := m.View(); !strings.Contains(view, "cannot drop child Bravo") {
		t.Errorf("expected a rejected marker:\n%s", view)
	}
	press(t, m, "enter")
	if !m.MessageErr || !strings.Contains(m.Message, "already has children") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestBoard_Cancel(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})

	press(t, m, "space", "j", "j")
	if !m.Dragging() {
		t.Fatal("expected to be dragging")
	}
	press(t, m, "esc")
	if m.Dragging() {
		t.Error("esc should cancel the drag")
	}
	if m.Message != "Drag cancelled" {
		t.Errorf("message = %q", m.Message)
	}
}

func TestBoard_Markers(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true, TargetSize: 2})
	if strings.Contains(m.View(), "┄") {
		t.Error("idle board should not draw drop slots")
	}

	press(t, m, "space", "j")
	lines, _ := m.lines()
	found := -1
	for i, l := range lines {
		if strings.Contains(l, "drop before Bravo") {
			found = i
		}
	}
	if found < 0 {
		t.Fatalf("no marker in\n%s", strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[found+1], "┆") {
		t.Errorf("marker should be two lines tall, next line %q", lines[found+1])
	}

	always := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: false, TargetSize: 1})
	lines, _ = always.lines()
	if n := strings.Count(strings.Join(lines, "\n"), "┄┄┄"); n != 6 {
		t.Errorf("expected a slot around each of 5 rows, got %d", n)
	}
}

func TestBoard_IdleKeys(t *testing.T) {
	m := newTestBoard(t, DragOptions{TargetsOnlyWhileDragging: true})
	m.cursor = 2 // b1

	tests := []struct {
		key   string
		check func(tea.Msg) bool
	}{
		{"n", func(msg tea.Msg) bool {
			e, ok := msg.(SwitchToEditMsg)
			return ok && e.Mode == EditCreate
		}},
		{"N", func(msg tea.Msg) bool {
			e, ok := msg.(SwitchToEditMsg)
			return ok && e.Mode == EditCreateChild && e.Row.Key == "b"
		}},
		{"r", func(msg tea.Msg) bool {
			e, ok := msg.(SwitchToEditMsg)
			return ok && e.Mode == EditRename && e.Row.Key == "b1"
		}},
		{"d", func(msg tea.Msg) bool {
			e, ok := msg.(SwitchToDeleteMsg)
			return ok && e.Row.Key == "b1" && e.List == "inbox"
		}},
		{"e", func(msg tea.Msg) bool {
			e, ok := msg.(OpenNoteMsg)
			return ok && e.Key == "b1"
		}},
		{"/", func(msg tea.Msg) bool {
			_, ok := msg.(SwitchToSearchMsg)
			return ok
		}},
		{"?", func(msg tea.Msg) bool {
			_, ok := msg.(SwitchToHelpMsg)
			return ok
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(keyMsg(tt.key))
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if msg := cmd(); !tt.check(msg) {
				t.Errorf("unexpected message %#v", msg)
			}
		})
	}
}

func TestBoard_CopyKey(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	defer func() { copyToClipboard = orig }()

	m := newTestBoard(t, DragOptions{})
	press(t, m, "j", "y")
	if copied != "b" {
		t.Errorf("copied %q, want b", copied)
	}
	if m.Message != "Copied b" {
		t.Errorf("message = %q", m.Message)
	}
}

func TestBoard_NextList(t *testing.T) {
	m := newTestBoard(t, DragOptions{})
	if err := m.repo.Save(context.Background(), &domain.Outline{Name: "work", Items: []domain.Item{{Key: "w", Title: "Work"}}}); err != nil {
		t.Fatal(err)
	}

	press(t, m, "L")
	if m.List() != "work" || m.String() != "w\n" {
		t.Errorf("list = %s, rows = %q", m.List(), m.String())
	}
	press(t, m, "L")
	if m.List() != "inbox" {
		t.Errorf("list = %s, want inbox", m.List())
	}
}

func TestScroller(t *testing.T) {
	s := NewScroller(3)
	s.SetTotal(10)

	tests := []struct {
		follow    int
		wantStart int
		wantEnd   int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 1, 4},
		{9, 7, 10},
		{5, 5, 8},
		{12, 7, 10},
	}

	for _, tt := range tests {
		s.Follow(tt.follow)
		start, end := s.VisibleRange()
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Follow(%d): range = [%d,%d), want [%d,%d)", tt.follow, start, end, tt.wantStart, tt.wantEnd)
		}
	}

	s.SetTotal(2)
	if start, end := s.VisibleRange(); start != 0 || end != 2 {
		t.Errorf("after shrink: [%d,%d)", start, end)
	}
}
