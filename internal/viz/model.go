package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hanoisim/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// FrameMsg delivers a new frame to the program.
type FrameMsg render.Frame

// Model is the Bubble Tea model behind Terminal.
type Model struct {
	title  string
	frames int
	grid   *Grid
	frame  render.Frame
	width  int
	height int
}

func NewModel(title string) Model {
	return Model{title: title}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case FrameMsg:
		f := render.Frame(msg)
		// redraws of an unchanged board keep the grid
		if m.grid == nil || f.Iteration != m.frame.Iteration {
			m.grid = Rasterize(f)
		}
		m.frame = f
		m.frames++
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	if m.grid == nil {
		s.WriteString(statusStyle.Render("waiting for the first frame...") + "\n")
	} else {
		s.WriteString(canvasStyle.Render(strings.TrimSuffix(m.grid.Render(), "\n")) + "\n")
		s.WriteString(statusStyle.Render(fmt.Sprintf("move %d  frames %d", m.frame.Iteration, m.frames)) + "\n")
	}
	s.WriteString(helpStyle.Render("Q: close"))
	return s.String()
}

// Iteration returns the move shown by the latest frame.
func (m Model) Iteration() int { return m.frame.Iteration }
