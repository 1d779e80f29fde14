package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRootCommandExportsWithYesFlag(t *testing.T) {
	input, output := prepareCLIFixture(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{input, output, "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v\noutput:\n%s", err, out.String())
	}

	notePath := filepath.Join(output, "export_data", "Work", "Hello 0.md")
	b, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read exported note: %v\noutput:\n%s", err, out.String())
	}
	if !strings.Contains(string(b), "title: Hello\n") {
		t.Fatalf("expected title in front matter, got:\n%s", string(b))
	}
	if !strings.Contains(out.String(), "Line breaks between <div>'s: true") {
		t.Fatalf("expected settings summary, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "exported 1 notes") {
		t.Fatalf("expected final summary, got:\n%s", out.String())
	}
}

func TestRootCommandAbortsWithoutConfirmation(t *testing.T) {
	input, output := prepareCLIFixture(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{input, output})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(output, "export_data")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing to be written, stat err: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing was written") {
		t.Fatalf("expected abort message, got:\n%s", out.String())
	}
}

func TestRootCommandReadsEnvironment(t *testing.T) {
	input, output := prepareCLIFixture(t)
	t.Setenv("ZOHO_TO_JOPLIN_YES", "true")
	t.Setenv("ZOHO_TO_JOPLIN_NOLINEBREAKS", "true")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{input, output})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), "Line breaks between <div>'s: false") {
		t.Fatalf("expected line breaks to be disabled, got:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(output, "export_data", "Work", "Hello 0.md")); err != nil {
		t.Fatalf("expected note without prompting: %v", err)
	}
}

func TestRootCommandReadsConfigFile(t *testing.T) {
	input, output := prepareCLIFixture(t)
	cfg := filepath.Join(t.TempDir(), "zoho-to-joplin.yaml")
	if err := os.WriteFile(cfg, []byte("yes: true\nnolinebreaks: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{input, output, "--config", cfg})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Line breaks between <div>'s: false") {
		t.Fatalf("expected config to disable line breaks, got:\n%s", out.String())
	}
}

func TestRootCommandReportsMissingInput(t *testing.T) {
	output := t.TempDir()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{filepath.Join(output, "missing"), output, "--yes"})
	err := cmd.Execute()
	if err != errReported {
		t.Fatalf("expected reported error, got %v", err)
	}
	if !strings.Contains(out.String(), "ERROR: input path does not exist") {
		t.Fatalf("expected error line, got:\n%s", out.String())
	}
}

func TestRootCommandRequiresInputFolder(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected argument error")
	}
}

func TestConfirmModelAnswers(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{name: "lower y", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, want: true},
		{name: "upper Y", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, want: true},
		{name: "n", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, want: false},
		{name: "enter", key: tea.KeyMsg{Type: tea.KeyEnter}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := confirmModel{prompt: "Continue?"}.Update(tt.key)
			m := next.(confirmModel)
			if !m.done || m.confirmed != tt.want {
				t.Fatalf("expected done=true confirmed=%v, got %+v", tt.want, m)
			}
			if cmd == nil {
				t.Fatalf("expected quit command")
			}
			if !strings.Contains(m.View(), "Continue?") {
				t.Fatalf("expected prompt in view, got %q", m.View())
			}
		})
	}
}

func TestConfirmReadsPipedAnswer(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "yes\n": true, "Y": true, "n\n": false, "": false, "\n": false} {
		got, err := confirm(strings.NewReader(input), &bytes.Buffer{}, "Continue?")
		if err != nil {
			t.Fatalf("confirm(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("confirm(%q) = %v, want %v", input, got, want)
		}
	}
}

func prepareCLIFixture(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	input := filepath.Join(root, "input")
	output := filepath.Join(root, "output")
	for _, dir := range []string{input, output} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	index := `<html><body><ul><li><a href="hello.html">Hello</a></li></ul></body></html>`
	note := `<html><head><title>Hello</title></head>` +
		`<body data-notebook="{&quot;name&quot;:&quot;Work&quot;,&quot;created_date&quot;:&quot;2021-03-04T10:00:00+0000&quot;,&quot;modified_date&quot;:&quot;2021-03-05T11:30:00+0000&quot;}">` +
		`<div>first line</div><div>second line</div></body></html>`
	if err := os.WriteFile(filepath.Join(input, "index.html"), []byte(index), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(input, "hello.html"), []byte(note), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	return input, output
}
