// Package viz renders plates in the terminal: a lipgloss color-ramp
// heatmap and a Bubble Tea model that animates the relaxation sweep by
// sweep.
package viz
