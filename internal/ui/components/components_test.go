package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smarttest/internal/ui/theme"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestChoiceListSingleSelect(t *testing.T) {
	c := NewChoiceList([]string{"A", "B", "C"}, false)
	if c.HasSelection() {
		t.Fatal("expected no selection initially")
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if got := c.Chosen(); len(got) != 1 || got[0] != "B" {
		t.Fatalf("Chosen = %v, want [B]", got)
	}

	// Picking another option replaces the first.
	c, _ = c.Update(press('3'))
	if got := c.Chosen(); len(got) != 1 || got[0] != "C" {
		t.Fatalf("Chosen = %v, want [C]", got)
	}
}

func TestChoiceListMultiSelect(t *testing.T) {
	c := NewChoiceList([]string{"A", "B", "C"}, true)
	c, _ = c.Update(press('1'))
	c, _ = c.Update(press('3'))
	if got := c.Chosen(); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("Chosen = %v, want [A C]", got)
	}

	// Toggling again removes it.
	c, _ = c.Update(press('1'))
	if got := c.Chosen(); len(got) != 1 || got[0] != "C" {
		t.Fatalf("Chosen = %v, want [C]", got)
	}
}

func TestChoiceListIgnoresOutOfRangeDigit(t *testing.T) {
	c := NewChoiceList([]string{"A", "B"}, false)
	c, _ = c.Update(press('5'))
	if c.HasSelection() {
		t.Error("digit beyond option count should be ignored")
	}
}

func TestChoiceListView(t *testing.T) {
	c := NewChoiceList([]string{"alpha", "beta"}, true)
	c, _ = c.Update(press('2'))
	v := c.View()
	if !strings.Contains(v, "[x] 2. beta") {
		t.Errorf("expected checked beta in view:\n%s", v)
	}
	if !strings.Contains(v, "[ ] 1. alpha") {
		t.Errorf("expected unchecked alpha in view:\n%s", v)
	}
}

func TestPickerRequiresFocus(t *testing.T) {
	p := NewPicker("Topic:", []string{"Go", "Networks"})
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if p.Value() != "" {
		t.Fatal("unfocused picker should ignore keys")
	}

	p.Focused = true
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if p.Value() != "Networks" {
		t.Errorf("Value = %q, want Networks", p.Value())
	}
}

func TestPickerPick(t *testing.T) {
	p := NewPicker("Topic:", []string{"Go", "Networks"})
	p.Pick("Go")
	if p.Value() != "Go" {
		t.Errorf("Value = %q, want Go", p.Value())
	}
	p.Pick("Missing")
	if p.Value() != "Go" {
		t.Errorf("unknown item should not change pick, got %q", p.Value())
	}
}

func TestPickerStylesIdleItems(t *testing.T) {
	p := NewPicker("Topic:", []string{"Go", "Networks"})
	p.Pick("Go")
	view := p.View()
	if !strings.Contains(view, theme.Unselected.Render("    ( ) Networks")) {
		t.Errorf("idle item not rendered with the unselected style:\n%q", view)
	}
	if strings.Contains(view, theme.Unselected.Render("    (•) Go")) {
		t.Error("picked item rendered as idle")
	}
}

func TestCheckboxToggle(t *testing.T) {
	c := Checkbox{Label: "Shuffle", Focused: true}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !c.Checked {
		t.Fatal("expected checked after space")
	}
	if !strings.Contains(c.View(), "[x] Shuffle") {
		t.Errorf("unexpected view: %q", c.View())
	}
}

func TestButtonPress(t *testing.T) {
	pressed := false
	b := NewButton("Next", false, func() tea.Cmd {
		pressed = true
		return nil
	})
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Fatal("inactive button must not fire")
	}

	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("active button should fire on enter")
	}
}

func TestProgressFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 4, 0},
		{2, 4, 0.5},
		{4, 4, 1},
		{5, 4, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.done, tt.total, 40)
		if got := p.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
	if v := NewProgressBar(1, 3, 40).View(); !strings.Contains(v, "1/3") {
		t.Errorf("progress view missing counter: %q", v)
	}
}
