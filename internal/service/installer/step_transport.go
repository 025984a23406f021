package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type transportChoice struct {
	label    string
	telegram bool
	cli      bool
}

// TransportStep selects which chat transports are enabled.
type TransportStep struct {
	choices []transportChoice
	cursor  int
}

func NewTransportStep() Step {
	return &TransportStep{
		choices: []transportChoice{
			{label: "Telegram", telegram: true},
			{label: "Terminal (CLI)", cli: true},
			{label: "Telegram + Terminal", telegram: true, cli: true},
		},
	}
}

func (s *TransportStep) Init() tea.Cmd {
	return nil
}

func (s *TransportStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			choice := s.choices[s.cursor]
			state.Settings.EnableTelegram = choice.telegram
			state.Settings.EnableCLI = choice.cli
			return nil, nil
		}
	}
	return s, nil
}

func (s *TransportStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Where should the bot listen for messages?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
