// Package labeledswitch wraps a flipswitch with title, state readout, and
// help text. This is the arrangement the demo uses for every switch row.
package labeledswitch

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuikit/flipswitch/internal/tui/components/flipswitch"
	"github.com/tuikit/flipswitch/internal/tui/style"
)

// Model displays a switch with a title above and help text below.
type Model struct {
	Switch flipswitch.Model
	Title  string
	Help   string
}

// New creates a labeled switch with the given configuration.
func New(sw flipswitch.Model, title, help string) Model {
	return Model{
		Switch: sw,
		Title:  title,
		Help:   help,
	}
}

// Init returns the initial command for the wrapped switch.
func (ls Model) Init() tea.Cmd {
	return ls.Switch.Init()
}

// Update forwards messages to the wrapped switch.
func (ls Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	ls.Switch, cmd = ls.Switch.Update(teaMsg)

	return ls, cmd
}

// View renders the title, the switch row, its state, and the help text.
func (ls Model) View() string {
	return ls.ViewFocused(false)
}

// ViewFocused renders the labeled switch, marking the title when it has
// keyboard focus.
func (ls Model) ViewFocused(focused bool) string {
	var sb strings.Builder

	title := style.Title.Render(ls.Title)
	if focused {
		title = style.Focus.Render("» ") + title
	}

	sb.WriteString(title)
	sb.WriteString("\n")

	sb.WriteString(ls.Switch.View())
	sb.WriteString("  ")
	sb.WriteString(style.Muted.Render(ls.Switch.Machine().State().String()))
	sb.WriteString("\n")

	sb.WriteString(style.Help.Render(ls.Help))

	return sb.String()
}
