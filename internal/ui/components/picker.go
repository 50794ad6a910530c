package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/ui/theme"
)

// Picker is a vertical single-select list, used for choosing a topic.
// Nothing is picked until the user presses space or enter on an item.
type Picker struct {
	Label   string
	Items   []string
	Cursor  int
	Picked  int
	Focused bool
}

// NewPicker creates a picker with no item picked.
func NewPicker(label string, items []string) Picker {
	return Picker{Label: label, Items: items, Picked: -1}
}

// Update handles keyboard navigation. Only active while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Items)-1 {
			p.Cursor++
		}
	case "space", " ":
		if p.Cursor < len(p.Items) {
			p.Picked = p.Cursor
		}
	}
	return p, nil
}

// Value returns the picked item or "".
func (p Picker) Value() string {
	if p.Picked < 0 || p.Picked >= len(p.Items) {
		return ""
	}
	return p.Items[p.Picked]
}

// Pick selects item if present.
func (p *Picker) Pick(item string) {
	for i, it := range p.Items {
		if it == item {
			p.Picked = i
			p.Cursor = i
			return
		}
	}
}

// View renders the list.
func (p Picker) View() string {
	var b strings.Builder
	marker := "  "
	if p.Focused {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
	}
	b.WriteString(marker + theme.Label.Render(p.Label))
	if len(p.Items) == 0 {
		b.WriteString(theme.Hint.Render("(no topics)"))
		return b.String()
	}
	b.WriteString("\n")

	for i, item := range p.Items {
		mark := "( ) "
		if i == p.Picked {
			mark = "(•) "
		}
		line := "    " + mark + item
		style := theme.Unselected
		switch {
		case p.Focused && i == p.Cursor:
			style = theme.Selected
		case i == p.Picked:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		if i < len(p.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
