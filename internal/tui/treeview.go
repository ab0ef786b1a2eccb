// Package tui renders trees in the terminal: a plain ASCII rendering for
// one-shot output and a scrollable bubbletea viewer.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"utilkit/pkg/tree"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	absentStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Render returns the tree as indented branch-glyph lines, one node per
// line, in pre-order.
func Render(t *tree.Tree[string]) string {
	var b strings.Builder
	b.WriteString(label(t.Root()))
	b.WriteByte('\n')
	renderChildren(&b, t.Root(), "")
	return b.String()
}

func renderChildren(b *strings.Builder, n *tree.Node[string], prefix string) {
	children := n.Children()
	for i, child := range children {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(children)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		b.WriteString(branchStyle.Render(prefix + connector))
		b.WriteString(label(child))
		b.WriteByte('\n')
		renderChildren(b, child, childPrefix)
	}
}

func label(n *tree.Node[string]) string {
	data, ok := n.Data()
	if !ok {
		return absentStyle.Render("<none>")
	}
	return data
}

// Model is a read-only scrollable viewer for a rendered tree.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel returns a viewer for t titled title.
func NewModel(title string, t *tree.Tree[string]) Model {
	return Model{
		title:   title,
		content: Render(t),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	return titleStyle.Render(m.title)
}

func (m Model) footerView() string {
	return helpStyle.Render("↑/↓ scroll · q quit")
}
