package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sedecim/internal/config"
)

// Draw paints a layout into a width x height frame.
func Draw(l Layout, styles *config.Styles, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 2 {
		return ""
	}

	rows := make([]string, 0, innerH)
	for i := 0; i < innerH-1; i++ {
		if i < len(l.Content) {
			rows = append(rows, drawLine(l.Content[i], styles, styles.Normal, innerW))
		} else {
			rows = append(rows, "")
		}
	}
	rows = append(rows, drawLine(l.Status, styles, styles.Status, innerW))

	border := lipgloss.NormalBorder()
	name := runewidth.Truncate(l.Title, innerW, "")
	fill := innerW - runewidth.StringWidth(name)
	top := styles.Border.Render(border.TopLeft) +
		styles.Title.Render(name) +
		styles.Border.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Width(innerW).
		Border(border, false, true, true, true).
		BorderForeground(styles.Border.GetForeground()).
		Render(strings.Join(rows, "\n"))

	return top + "\n" + body
}

func drawLine(l Line, styles *config.Styles, base lipgloss.Style, width int) string {
	var b strings.Builder
	left := width
	for _, seg := range l {
		if left <= 0 {
			break
		}
		text := seg.Text
		if runewidth.StringWidth(text) > left {
			text = runewidth.Truncate(text, left, "")
		}
		left -= runewidth.StringWidth(text)
		b.WriteString(segmentStyle(seg.Style, styles, base).Render(text))
	}
	return b.String()
}

func segmentStyle(s Style, styles *config.Styles, base lipgloss.Style) lipgloss.Style {
	switch s {
	case StyleCursor:
		return styles.Cursor
	case StyleCaret:
		return styles.Caret
	case StyleError:
		return styles.Error
	default:
		return base
	}
}
