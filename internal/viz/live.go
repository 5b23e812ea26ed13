// Package viz renders a live terminal view of the generator: the raw
// chaotic mix signal on top, the distribution of emitted values below.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/yatoub/tych/internal/rng"
	"github.com/yatoub/tych/internal/stats"
)

const (
	graphWidth    = 80
	graphHeight   = 10
	mixHistory    = 240
	ticksPerFrame = 40
	histBins      = 10
)

type TickMsg time.Time

// Model drives the live view. One frame advances the generator several
// ticks so motion is visible despite the tiny integration step.
type Model struct {
	gen     *rng.Generator
	noise   float64
	mixes   []float64
	values  []float64
	emitted int
	running bool
}

func NewModel(pendulums int, noiseLevel float64) Model {
	return Model{
		gen:     rng.New(pendulums, noiseLevel),
		noise:   noiseLevel,
		mixes:   make([]float64, 0, mixHistory),
		values:  make([]float64, 0, 4096),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
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
			m.gen = rng.New(m.gen.Pendulums(), m.noise)
			m.mixes = m.mixes[:0]
			m.values = m.values[:0]
			m.emitted = 0
		}
	case TickMsg:
		if m.running {
			for i := 0; i < ticksPerFrame; i++ {
				s := m.gen.Next()
				m.mixes = append(m.mixes, s.Mix)
				m.values = append(m.values, s.Value)
				m.emitted++
			}
			if len(m.mixes) > mixHistory {
				m.mixes = m.mixes[len(m.mixes)-mixHistory:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("tych live — chaotic mix signal"))
	b.WriteString("\n")

	if len(m.mixes) > 1 {
		graph := asciigraph.Plot(m.mixes,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("pre-whitening mix"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHistogram())
	b.WriteString("\n")

	sum := stats.Summarize(m.values)
	b.WriteString(labelStyle.Render("emitted") + valueStyle.Render(fmt.Sprintf("%d", m.emitted)) + "\n")
	b.WriteString(labelStyle.Render("mean") + valueStyle.Render(fmt.Sprintf("%.4f", sum.Mean)) + "\n")
	b.WriteString(labelStyle.Render("std") + valueStyle.Render(fmt.Sprintf("%.4f", sum.Std)) + "\n")
	b.WriteString(labelStyle.Render("resets") + valueStyle.Render(fmt.Sprintf("%d", m.gen.Resets())) + "\n")

	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	return b.String()
}

func (m Model) renderHistogram() string {
	counts := stats.Histogram(m.values, histBins, 0, 1)
	if counts == nil {
		return ""
	}

	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	var b strings.Builder
	for i, c := range counts {
		lo := float64(i) / histBins
		hi := float64(i+1) / histBins
		bar := strings.Repeat("█", c*40/max)
		b.WriteString(fmt.Sprintf("[%.1f-%.1f] %s %d\n", lo, hi, barStyle.Render(bar), c))
	}
	return b.String()
}
