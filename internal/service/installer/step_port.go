package installer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPort = "8080"

// PortStep collects the liveness endpoint port. An empty answer keeps the default.
type PortStep struct {
	input textinput.Model
	err   string
}

func NewPortStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 5
	ti.Width = 10
	ti.Placeholder = defaultPort

	return &PortStep{
		input: ti,
	}
}

func (s *PortStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PortStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			port := strings.TrimSpace(s.input.Value())
			if port == "" {
				port = defaultPort
			}
			if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
				s.err = "port must be a number between 1 and 65535"
				return s, nil
			}
			state.Settings.Port = port
			return nil, nil
		}
	}
	return s, cmd
}

func (s *PortStep) View(state *InstallState) string {
	view := "Port for the health check endpoint:\n\n" +
		s.input.View() + "\n\n"
	if s.err != "" {
		view += errorStyle.Render(s.err) + "\n\n"
	}
	return view + "(press enter to keep " + defaultPort + ")\n"
}
