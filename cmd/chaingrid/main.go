// Command chaingrid animates a chain-cover build in the terminal: the grid
// is drawn as a lattice of points colored per chain, one build step per
// animation tick, with live coverage stats and constraint toggles.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chaingrid/constraint"
	"github.com/katalvlaran/chaingrid/cover"
	"github.com/katalvlaran/chaingrid/grid"
)

// Animation pacing bounds.
const (
	minStepDelay = 10 * time.Millisecond
	maxStepDelay = 2 * time.Second
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	// chainPalette colors finalized chains by id.
	chainPalette = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("171")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	}
)

type keyMap struct {
	Quit        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Faster      key.Binding
	Slower      key.Binding
	NonCrossing key.Binding
	MaxDist     key.Binding
	MinDist     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Faster:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
		NonCrossing: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle non-crossing")),
		MaxDist:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle max-distance")),
		MinDist:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle min-distance")),
	}
}

type tickMsg time.Time

type model struct {
	g     *grid.Grid
	b     *cover.Builder
	keys  keyMap
	delay time.Duration

	paused   bool
	finished bool
}

func newModel(g *grid.Grid, b *cover.Builder, delay time.Duration) model {
	b.Start()
	return model{
		g:     g,
		b:     b,
		keys:  defaultKeyMap(),
		delay: delay,
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Restart):
			m.b.Start()
			m.finished = false
			m.paused = false
		case key.Matches(msg, m.keys.Faster):
			if m.delay > minStepDelay {
				m.delay /= 2
			}
		case key.Matches(msg, m.keys.Slower):
			if m.delay < maxStepDelay {
				m.delay *= 2
			}
		case key.Matches(msg, m.keys.NonCrossing):
			m.toggleConstraint(constraint.NonCrossingName)
		case key.Matches(msg, m.keys.MaxDist):
			m.toggleConstraint(constraint.MaxDistanceName)
		case key.Matches(msg, m.keys.MinDist):
			m.toggleConstraint(constraint.MinDistanceName)
		}
		return m, nil

	case tickMsg:
		if !m.paused && !m.finished {
			if !m.b.Step() && m.b.Done() {
				m.finished = true
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// toggleConstraint flips one constraint. Toggles affect validation of future
// connections only; already realized links stay as they are.
func (m *model) toggleConstraint(name string) {
	if m.g.ConstraintEnabled(name) {
		m.g.DisableConstraint(name)
	} else {
		m.g.EnableConstraint(name)
	}
}

func (m model) View() string {
	gridPane := paneStyle.Render(m.renderGrid())
	statusPane := paneStyle.Render(m.renderStatus())
	help := subtleStyle.Render(
		"space pause/resume • r restart • +/- speed • n/x/m toggle constraints • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("chaingrid — chain cover"),
		lipgloss.JoinHorizontal(lipgloss.Top, gridPane, statusPane),
		help,
	) + "\n"
}

// renderGrid draws the lattice: dim dots for unconnected points, colored
// dots for chain members, bright for the in-flight chain.
func (m model) renderGrid() string {
	currentID := -1
	if c := m.b.Current(); c != nil {
		currentID = c.ID()
	}

	var sb strings.Builder
	for x := 0; x < m.g.Rows(); x++ {
		if x > 0 {
			sb.WriteByte('\n')
		}
		for y := 0; y < m.g.Cols(); y++ {
			if y > 0 {
				sb.WriteByte(' ')
			}
			p := m.g.PointAt(x, y)
			id, ok := p.ChainID()
			switch {
			case !ok:
				sb.WriteString(freeStyle.Render("·"))
			case id == currentID:
				sb.WriteString(activeStyle.Render("●"))
			default:
				sb.WriteString(chainPalette[id%len(chainPalette)].Render("●"))
			}
		}
	}
	return sb.String()
}

// renderStatus shows coverage stats and the constraint toggles.
func (m model) renderStatus() string {
	s := m.b.Stats()

	var sb strings.Builder
	switch {
	case m.finished:
		sb.WriteString(okStyle.Render("complete"))
	case m.paused:
		sb.WriteString(warnStyle.Render("paused"))
	default:
		sb.WriteString("building…")
	}
	fmt.Fprintf(&sb, "\n\ncoverage  %5.1f%%\n", s.CoveragePercent)
	fmt.Fprintf(&sb, "points    %d/%d\n", s.ConnectedPoints, s.TotalPoints)
	fmt.Fprintf(&sb, "chains    %d (avg len %.2f)\n", s.TotalChains, s.AverageChainLength)
	fmt.Fprintf(&sb, "step delay %s\n", m.delay)

	enabled, total := m.g.ConstraintCounts()
	fmt.Fprintf(&sb, "\nconstraints (%d/%d enabled)\n", enabled, total)
	for _, name := range m.g.ConstraintNames() {
		mark := subtleStyle.Render("off")
		if m.g.ConstraintEnabled(name) {
			mark = okStyle.Render("on ")
		}
		fmt.Fprintf(&sb, "  %s %s\n", mark, name)
	}

	if m.finished {
		if m.b.ValidateSolution() {
			sb.WriteString("\n" + okStyle.Render("solution valid"))
		} else {
			sb.WriteString("\n" + warnStyle.Render("solution INVALID"))
		}
	}
	return sb.String()
}

func main() {
	rows := flag.Int("rows", 10, "grid rows (≥ 1)")
	cols := flag.Int("cols", 10, "grid columns (≥ 1)")
	maxConns := flag.Int("max", 5, "max connections per chain (≥ 0)")
	seed := flag.Int64("seed", 0, "tie-break seed (0 = fixed default)")
	delay := flag.Duration("speed", 80*time.Millisecond, "delay between build steps")
	flag.Parse()

	g, err := grid.New(*rows, *cols)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chaingrid:", err)
		os.Exit(1)
	}
	b, err := cover.NewBuilder(g, *maxConns, cover.Options{Seed: *seed})
	if err != nil {
		fmt.Fprintln(os.Stderr, "chaingrid:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(g, b, *delay), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chaingrid:", err)
		os.Exit(1)
	}
}
