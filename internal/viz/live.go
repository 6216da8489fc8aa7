package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/integrate"
	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	canvasWidth    = 60
	canvasHeight   = 22
	trailCapacity  = 2000
	energyCapacity = 240
	stepsPerFrame  = 4
)

type TickMsg time.Time

// Model animates one orbit integration in the terminal: the trail on a
// braille canvas, a stats panel, and an energy-drift sparkline.
type Model struct {
	sys     *orbit.TwoBody
	stepper integrate.Stepper
	tau     float64

	state   orbit.State
	t       float64
	initial orbit.State

	trailX, trailY []float64
	energyHistory  []float64
	energy0        float64

	running bool
	canvas  *Canvas
}

// NewModel initializes the live view at the given initial state.
func NewModel(sys *orbit.TwoBody, st integrate.Stepper, s0 orbit.State, tau float64) Model {
	return Model{
		sys:           sys,
		stepper:       st,
		tau:           tau,
		state:         s0,
		initial:       s0,
		trailX:        make([]float64, 0, trailCapacity),
		trailY:        make([]float64, 0, trailCapacity),
		energyHistory: make([]float64, 0, energyCapacity),
		energy0:       sys.Energy(s0),
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

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
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) reset() {
	m.state = m.initial
	m.t = 0
	m.trailX = m.trailX[:0]
	m.trailY = m.trailY[:0]
	m.energyHistory = m.energyHistory[:0]
}

func (m *Model) step() {
	for i := 0; i < stepsPerFrame; i++ {
		m.state = m.stepper.Step(m.sys, m.state, m.tau)
		m.t += m.tau
	}

	m.trailX = append(m.trailX, m.state.X)
	m.trailY = append(m.trailY, m.state.Y)
	if len(m.trailX) > trailCapacity {
		m.trailX = m.trailX[1:]
		m.trailY = m.trailY[1:]
	}

	m.energyHistory = append(m.energyHistory, m.sys.Energy(m.state))
	if len(m.energyHistory) > energyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawTrajectory(m.trailX, m.trailY)

	drift := 0.0
	if m.energy0 != 0 {
		drift = math.Abs(m.sys.Energy(m.state)-m.energy0) / math.Abs(m.energy0)
	}

	stats := headerStyle.Render(fmt.Sprintf("orbit / %s", m.stepper.Name())) + "\n" +
		statLine("t", fmt.Sprintf("%.4f", m.t)) +
		statLine("tau", fmt.Sprintf("%.4f", m.tau)) +
		statLine("position", fmt.Sprintf("%+.4f %+.4f", m.state.X, m.state.Y)) +
		statLine("velocity", fmt.Sprintf("%+.4f %+.4f", m.state.U, m.state.V)) +
		statLine("radius", fmt.Sprintf("%.4f", m.state.Radius())) +
		statLine("energy drift", fmt.Sprintf("%.2e", drift))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)

	var graph string
	if len(m.energyHistory) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("specific orbital energy"),
		))
	}

	help := helpStyle.Render("space pause · r reset · q quit")

	return main + "\n" + graph + "\n" + help
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
