package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/backdrop/internal/theme"
)

func renderStatus(t theme.Theme, fps float64, scroll, limit float64, paused bool) string {
	s := fmt.Sprintf("%s %s  %.0f fps  %s", t.Icon(), t.String(), fps, renderScroll(scroll, limit))
	if paused {
		s += "  ❚❚ paused"
	}
	return s
}

func renderScroll(scroll, limit float64) string {
	if limit <= 0 {
		return "scroll -"
	}
	ratio := scroll / limit
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return fmt.Sprintf("scroll %d%%", int(ratio*100+0.5))
}

// joinStatus lays left and right out on one line of the given width.
func joinStatus(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
