// Package console renders status messages for the terminal.
package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var (
	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Console writes "[HH:MM:SS] LEVEL: message" lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

func New(out io.Writer) *Console {
	return &Console{out: out, now: time.Now}
}

func (c *Console) Report(level Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := clockStyle.Render("["+c.now().Format("15:04:05")+"]") + " "
	switch level {
	case LevelWarn:
		line += warnStyle.Render(level.String()+":") + " "
	case LevelError:
		line += errorStyle.Render(level.String()+":") + " "
	}
	fmt.Fprintln(c.out, line+msg)
}

func (c *Console) Infof(format string, args ...any) {
	c.Report(LevelInfo, fmt.Sprintf(format, args...))
}

func (c *Console) Errorf(format string, args ...any) {
	c.Report(LevelError, fmt.Sprintf(format, args...))
}

// Discard drops every message.
type Discard struct{}

func (Discard) Report(Level, string) {}
