package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal yes/no prompt shown before touching a real
// device.
type confirmModel struct {
	question string
	answer   bool
	decided  bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y", "enter":
			m.answer = true
			m.decided = true
			return m, tea.Quit
		case "n", "q", "esc", "ctrl+c":
			m.decided = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.decided {
		return ""
	}
	return StyleWarning.Render(iconWarning) + " " + m.question + " " +
		StyleDim.Render("[Y/n]") + " "
}

// confirm asks the user a yes/no question on the terminal. It returns
// false when the prompt is dismissed or the program cannot run.
func confirm(question string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{question: question}).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m, ok := final.(confirmModel)
	return ok && m.answer, nil
}
