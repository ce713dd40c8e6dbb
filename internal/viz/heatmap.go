package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/commanderjcc/hotplate/internal/plate"
)

// ramp runs cold to hot through the 256-color cube.
var ramp = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("49")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("83")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("154")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("190")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// Heatmap renders the plate as colored blocks, two characters per cell,
// normalized to the plate's own min/max range.
func Heatmap(p *plate.Plate) string {
	min, max, _ := p.MinMaxMean()
	span := max - min
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Cols(); col++ {
			t := (p.At(row, col) - min) / span
			idx := int(t * float64(len(ramp)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			sb.WriteString(ramp[idx].Render("██"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
