package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smarttest/internal/ui/theme"
)

const bannerArt = `
 ███████╗███╗   ███╗ █████╗ ██████╗ ████████╗
 ██╔════╝████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝
 ███████╗██╔████╔██║███████║██████╔╝   ██║
 ╚════██║██║╚██╔╝██║██╔══██║██╔══██╗   ██║
 ███████║██║ ╚═╝ ██║██║  ██║██║  ██║   ██║
 ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
          ████████╗███████╗███████╗████████╗
          ╚══██╔══╝██╔════╝██╔════╝╚══██╔══╝
             ██║   █████╗  ███████╗   ██║
             ██║   ██╔══╝  ╚════██║   ██║
             ██║   ███████╗███████║   ██║
             ╚═╝   ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "S M A R T T E S T"

// RenderBanner returns the banner in the primary color, or a compact
// one-liner when the terminal is narrower than the art.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 || height < lipgloss.Height(bannerArt)+8 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
