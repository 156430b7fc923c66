package render

import "github.com/charmbracelet/lipgloss"

// heatColors runs from dim blue through cyan up to bright yellow-white, one
// entry per intensity level. Levels past the end clamp to the hottest color.
var heatColors = []string{
	"240", "24", "25", "26", "32", "38", "44", "50", "228", "227", "231",
}

// Heat returns a style for the given intensity level.
func Heat(level uint8) lipgloss.Style {
	idx := int(level)
	if idx >= len(heatColors) {
		idx = len(heatColors) - 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(heatColors[idx]))
}

// ColorLabel is Label with a heat-mapped foreground. The visible width stays
// at three columns, so it slots into MeshFunc directly.
func ColorLabel(level uint8) string {
	if level == 0 {
		return "   "
	}
	return Heat(level).Render(Label(level))
}
