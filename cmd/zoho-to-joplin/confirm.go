package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// confirmModel asks a single y/N question. Any key other than y answers no.
type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return promptStyle.Render(m.prompt) + " " + answer + "\n"
	}
	return promptStyle.Render(m.prompt) + " " + hintStyle.Render("(y/N)") + " "
}

// confirm runs the prompt as a Bubble Tea program on a terminal and falls
// back to reading one line when input is piped.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if !isTerminalReader(in) {
		io.WriteString(out, confirmModel{prompt: prompt}.View())
		return readAnswer(in)
	}

	final, err := tea.NewProgram(confirmModel{prompt: prompt}, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	return ok && m.confirmed, nil
}

func readAnswer(in io.Reader) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "y"), nil
}

func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
