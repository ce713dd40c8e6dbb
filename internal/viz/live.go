package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/commanderjcc/hotplate/internal/relax"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 300

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the relaxation one sweep per tick and renders a heatmap
// alongside convergence stats.
type Model struct {
	initial   *plate.Plate
	cur, next *plate.Plate
	cfg       relax.Config

	iteration int
	delta     float64
	converged bool
	running   bool
	deltas    []float64
}

func NewModel(p *plate.Plate, cfg relax.Config) Model {
	return Model{
		initial: p.Clone(),
		cur:     p.Clone(),
		next:    p.Clone(),
		cfg:     cfg,
		running: true,
		deltas:  make([]float64, 0, historyCapacity),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && !m.converged && m.iteration < m.cfg.MaxIterations {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	if err := relax.Sweep(m.cur, m.next); err != nil {
		return
	}
	m.iteration++
	m.delta = relax.MaxDelta(m.cur, m.next)
	m.cur, m.next = m.next, m.cur

	m.deltas = append(m.deltas, m.delta)
	if len(m.deltas) > historyCapacity {
		m.deltas = m.deltas[1:]
	}

	if m.iteration > 1 && m.delta <= m.cfg.Epsilon {
		m.converged = true
	}
}

func (m *Model) reset() {
	m.cur = m.initial.Clone()
	m.next = m.initial.Clone()
	m.iteration = 0
	m.delta = 0
	m.converged = false
	m.running = true
	m.deltas = m.deltas[:0]
}

func (m Model) View() string {
	header := headerStyle.Render("hotplate · jacobi relaxation")

	min, max, mean := m.cur.MinMaxMean()
	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.converged {
		status = doneStyle.Render("converged")
	}

	stats := statsStyle.Render(
		statLine("status", status) + "\n" +
			statLine("iteration", fmt.Sprintf("%d", m.iteration)) + "\n" +
			statLine("max delta", fmt.Sprintf("%.6f", m.delta)) + "\n" +
			statLine("epsilon", fmt.Sprintf("%.4f", m.cfg.Epsilon)) + "\n" +
			statLine("min", fmt.Sprintf("%.3f", min)) + "\n" +
			statLine("max", fmt.Sprintf("%.3f", max)) + "\n" +
			statLine("mean", fmt.Sprintf("%.3f", mean)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, Heatmap(m.cur), "  ", stats)

	out := header + "\n" + body
	if len(m.deltas) >= 2 {
		graph := asciigraph.Plot(m.deltas,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("max delta per sweep"),
		)
		out += "\n" + graphStyle.Render(graph)
	}
	out += "\n" + helpStyle.Render("space pause · r reset · q quit")
	return out
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
