package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

func testComponents(t *testing.T) []Component {
	t.Helper()
	points := []geo.Point{
		{X: 0}, {X: 1}, {X: 10}, {X: 11}, {X: 20},
	}
	res := &pipeline.Result{
		PointCount: len(points),
		Tree: []pipeline.TreeEdge{
			{A: 0, B: 1, Weight: 1},
			{A: 2, B: 3, Weight: 1},
		},
	}
	components, err := collectComponents(res, points)
	if err != nil {
		t.Fatalf("collectComponents() failed: %v", err)
	}
	return components
}

func TestCollectComponents(t *testing.T) {
	components := testComponents(t)

	if len(components) != 3 {
		t.Fatalf("got %d components, want 3", len(components))
	}
	// Largest first; equal sizes order by smallest member.
	if got := components[0].Members; len(got) != 2 || got[0] != 0 {
		t.Errorf("component 1 members = %v, want [0 1]", got)
	}
	if got := components[1].Members; len(got) != 2 || got[0] != 2 {
		t.Errorf("component 2 members = %v, want [2 3]", got)
	}
	if got := components[2].Members; len(got) != 1 || got[0] != 4 {
		t.Errorf("component 3 members = %v, want [4]", got)
	}
	for i, comp := range components {
		if comp.Rank != i+1 {
			t.Errorf("component %d rank = %d", i, comp.Rank)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestComponentListModelNavigation(t *testing.T) {
	m := NewComponentListModel(testComponents(t))

	next, _ := m.Update(keyMsg("down"))
	m = next.(ComponentListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(ComponentListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Cursor clamps at the top.
	next, _ = m.Update(keyMsg("up"))
	m = next.(ComponentListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.Cursor)
	}
}

func TestComponentListModelSelection(t *testing.T) {
	m := NewComponentListModel(testComponents(t))

	next, cmd := m.Update(keyMsg("down"))
	m = next.(ComponentListModel)
	next, cmd = m.Update(keyMsg("enter"))
	m = next.(ComponentListModel)

	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if m.Selected == nil {
		t.Fatal("enter should set the selection")
	}
	if m.Selected.Rank != 2 {
		t.Errorf("selected rank = %d, want 2", m.Selected.Rank)
	}
}

func TestComponentListModelQuit(t *testing.T) {
	m := NewComponentListModel(testComponents(t))

	next, cmd := m.Update(keyMsg("q"))
	m = next.(ComponentListModel)
	if cmd == nil {
		t.Error("q should quit the program")
	}
	if m.Selected != nil {
		t.Error("q should not select anything")
	}
}

func TestComponentListModelView(t *testing.T) {
	m := NewComponentListModel(testComponents(t))
	view := m.View()

	for _, want := range []string{"Select Component", "#1", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestMemberPreview(t *testing.T) {
	if got := memberPreview([]int{1, 2}); got != "1, 2" {
		t.Errorf("memberPreview = %q", got)
	}
	if got := memberPreview([]int{1, 2, 3, 4, 5, 6}); got != "1, 2, 3, 4, …" {
		t.Errorf("memberPreview = %q", got)
	}
}
