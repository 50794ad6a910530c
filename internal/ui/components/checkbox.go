package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/ui/theme"
)

// Checkbox is a labelled on/off toggle.
type Checkbox struct {
	Label   string
	Checked bool
	Focused bool
}

// Update toggles on space while focused.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "space", " ", "x":
			c.Checked = !c.Checked
		}
	}
	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View() string {
	box := "[ ] "
	if c.Checked {
		box = "[x] "
	}
	marker := "  "
	style := theme.Unselected
	if c.Focused {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		style = theme.Selected
	}
	return marker + style.Render(box+c.Label)
}
