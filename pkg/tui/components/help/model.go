package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Binding is one line of the key reference.
type Binding struct {
	Keys string
	Help string
}

// Section groups bindings under a heading.
type Section struct {
	Title    string
	Bindings []Binding
}

// Sections is the key reference for the tracker.
var Sections = []Section{
	{Title: "Habits", Bindings: []Binding{
		{"j k ↑ ↓", "move between habits"},
		{"h l ← →", "move the selected day"},
		{"space enter", "toggle the selected day"},
		{"1 a", "add a habit"},
		{"2 d", "delete the highlighted habit"},
		{"3 r", "rename the highlighted habit"},
		{"4 c", "open the month calendar"},
		{"5 q esc", "save and quit"},
		{"?", "show this help"},
	}},
	{Title: "Calendar", Bindings: []Binding{
		{"h j k l", "move by day or week"},
		{"space enter", "toggle the selected day"},
		{"q esc", "back to habits"},
	}},
	{Title: "Prompts", Bindings: []Binding{
		{"enter", "accept"},
		{"esc", "cancel"},
		{"y n", "answer a confirmation"},
	}},
}

const keyColumn = 13

// Model renders the key reference inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame   lipgloss.Style
	heading lipgloss.Style
	key     lipgloss.Style
}

// New constructs a help overlay sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		key:     lipgloss.NewStyle().Bold(true).Width(keyColumn),
	}
	model.SetSize(width, height)
	return model
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the reference inside a rounded frame.
func (m *Model) View() string {
	return m.frame.Render(m.viewport.View())
}

// SetSize configures the overlay dimensions and re-renders the content.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.viewport.SetContent(m.render())
	m.viewport.SetYOffset(0)
}

func (m *Model) render() string {
	var b strings.Builder
	for i, s := range Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.heading.Render(s.Title))
		b.WriteString("\n")
		for _, binding := range s.Bindings {
			b.WriteString(m.key.Render(binding.Keys))
			b.WriteString(binding.Help)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
