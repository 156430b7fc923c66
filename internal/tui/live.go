// Package tui is the live terminal view: the triangular mesh redrawn in
// place while the simulation runs, with a stats panel alongside.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/technolapin/triangle-automata/internal/render"
	"github.com/technolapin/triangle-automata/internal/sim"
	"github.com/technolapin/triangle-automata/pkg/core"
)

const (
	framesPerSecond = 30
	historyCapacity = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).PaddingTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg drives the frame loop.
type TickMsg time.Time

// Model is the live terminal view around a running simulation.
type Model struct {
	sim     sim.Sim
	pace    *core.FixedStep
	seed    int64
	gen     int
	running bool
	totals  []float64
}

// New builds the live view for s. Frames draw at a fixed rate; sim steps are
// paced separately at tps.
func New(s sim.Sim, seed int64, tps int) Model {
	return Model{
		sim:     s,
		pace:    core.NewFixedStep(tps),
		seed:    seed,
		running: true,
		totals:  make([]float64, 0, historyCapacity),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles input events and paces the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.step()
		case "r":
			m.reset(m.seed)
		case "s":
			m.reset(time.Now().UnixNano())
		}
	case TickMsg:
		if m.running && m.pace.ShouldStep() {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Step()
	m.gen++
	total := 0.0
	for _, v := range m.sim.Cells() {
		total += float64(v)
	}
	m.totals = append(m.totals, total)
	if len(m.totals) > historyCapacity {
		m.totals = m.totals[1:]
	}
}

func (m *Model) reset(seed int64) {
	m.seed = seed
	m.sim.Reset(seed)
	m.gen = 0
	m.totals = m.totals[:0]
}

// View renders the mesh, the stats panel and the key help.
func (m Model) View() string {
	size := m.sim.Size()
	mesh := render.MeshFunc(size, m.sim.Cells(), render.ColorLabel)

	lit, total, peak := 0, 0, 0
	for _, v := range m.sim.Cells() {
		if v > 0 {
			lit++
		}
		total += int(v)
		if int(v) > peak {
			peak = int(v)
		}
	}

	status := "running"
	if !m.running {
		status = "paused"
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	panel := strings.Join([]string{
		row("sim", m.sim.Name()),
		row("status", status),
		row("generation", fmt.Sprintf("%d", m.gen)),
		row("grid", fmt.Sprintf("%dx%d", size.W, size.H)),
		row("lit cells", fmt.Sprintf("%d", lit)),
		row("total light", fmt.Sprintf("%d", total)),
		row("peak level", fmt.Sprintf("%d", peak)),
	}, "\n")
	if len(m.totals) > 1 {
		graph := asciigraph.Plot(m.totals,
			asciigraph.Height(6),
			asciigraph.Width(32),
			asciigraph.Caption("total light"),
		)
		panel += "\n" + graphStyle.Render(graph)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(mesh),
		statsStyle.Render(panel),
	)
	help := helpStyle.Render("space pause | n step | r reset | s reseed | q quit")
	return headerStyle.Render("triangle-automata — "+m.sim.Name()) + "\n" + body + "\n" + help
}
