package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/ui/theme"
)

// ChoiceList shows answer options as radio buttons (single choice) or
// checkboxes (multiple choice).
type ChoiceList struct {
	Options  []string
	Multiple bool
	Cursor   int
	checked  []bool
}

// NewChoiceList creates a choice list with nothing selected.
func NewChoiceList(options []string, multiple bool) ChoiceList {
	return ChoiceList{
		Options:  options,
		Multiple: multiple,
		checked:  make([]bool, len(options)),
	}
}

// Update handles cursor movement and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.toggle(c.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Options) {
				c.Cursor = i
				c.toggle(i)
			}
		}
	}
	return c, nil
}

func (c *ChoiceList) toggle(i int) {
	if i < 0 || i >= len(c.Options) {
		return
	}
	if c.Multiple {
		c.checked[i] = !c.checked[i]
		return
	}
	for j := range c.checked {
		c.checked[j] = j == i
	}
}

// Chosen returns the selected options in display order.
func (c ChoiceList) Chosen() []string {
	var out []string
	for i, on := range c.checked {
		if on {
			out = append(out, c.Options[i])
		}
	}
	return out
}

// HasSelection reports whether anything is selected.
func (c ChoiceList) HasSelection() bool {
	for _, on := range c.checked {
		if on {
			return true
		}
	}
	return false
}

// View renders the options.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		mark := "( )"
		if c.Multiple {
			mark = "[ ]"
		}
		if c.checked[i] {
			mark = "(•)"
			if c.Multiple {
				mark = "[x]"
			}
		}

		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)
		style := theme.Unselected
		switch {
		case i == c.Cursor:
			style = theme.Selected
		case c.checked[i]:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
