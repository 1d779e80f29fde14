package exporter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/charmbracelet/bubbles/progress"
	zohodomain "github.com/sleroq/zoho-to-joplin/internal/domain/zoho"
	"github.com/sleroq/zoho-to-joplin/internal/infra/console"
	"github.com/sleroq/zoho-to-joplin/internal/infra/exportfs"
	"github.com/sleroq/zoho-to-joplin/internal/infra/zohohtml"
)

// SaveFolder is created inside the output directory and holds one
// subdirectory per notebook.
const SaveFolder = "export_data"

var (
	ErrInputNotFound  = errors.New("input path does not exist")
	ErrInputNotDir    = errors.New("input path must point to a folder, not a file")
	ErrIndexNotFound  = errors.New("input folder does not contain index.html")
	ErrOutputNotFound = errors.New("output path does not exist")
)

// Reporter receives user-facing status messages.
type Reporter interface {
	Report(level console.Level, msg string)
}

type Exporter struct {
	InputDir          string
	OutputDir         string
	DisableLineBreaks bool
	Reporter          Reporter
}

type Stats struct {
	Notes    int
	Files    int
	Skipped  int
	Warnings int
}

type note = zohodomain.Note

type exportProgressBar struct {
	enabled         bool
	total           int
	current         int
	lastRenderWidth int
	label           string
	bar             progress.Model
}

func newExportProgressBar(total int) exportProgressBar {
	if total <= 0 {
		total = 1
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 36

	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		width := cols - 40
		if width < 16 {
			width = 16
		}
		if width > 64 {
			width = 64
		}
		bar.Width = width
	}

	return exportProgressBar{
		enabled: isTerminal(os.Stderr),
		total:   total,
		bar:     bar,
	}
}

func (p *exportProgressBar) Advance(label string) {
	if !p.enabled {
		return
	}
	p.current++
	if p.current > p.total {
		p.current = p.total
	}
	p.label = label
	p.render()
}

func (p *exportProgressBar) Finish(label string) {
	if !p.enabled {
		return
	}
	p.current = p.total
	p.label = label
	p.render()
	fmt.Fprint(os.Stderr, "\n")
	p.lastRenderWidth = 0
}

func (p *exportProgressBar) Close() {
	if !p.enabled {
		return
	}
	if p.lastRenderWidth > 0 {
		fmt.Fprint(os.Stderr, "\n")
		p.lastRenderWidth = 0
	}
}

func (p *exportProgressBar) render() {
	percent := float64(p.current) / float64(p.total)
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	line := fmt.Sprintf("%s %3.0f%% %d/%d %s", p.bar.ViewAs(percent), percent*100, p.current, p.total, strings.TrimSpace(p.label))
	pad := ""
	if p.lastRenderWidth > len(line) {
		pad = strings.Repeat(" ", p.lastRenderWidth-len(line))
	}
	fmt.Fprintf(os.Stderr, "\r%s%s", line, pad)
	p.lastRenderWidth = len(line)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// run carries the state of one Exporter.Run call.
type run struct {
	Exporter
	reporter Reporter
	markdown *converter.Converter
	stats    Stats
}

func (r *run) warnf(format string, args ...any) {
	r.stats.Warnings++
	r.reporter.Report(console.LevelWarn, fmt.Sprintf(format, args...))
}

func (e Exporter) checkPaths() error {
	info, err := os.Stat(e.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, e.InputDir)
		}
		return fmt.Errorf("stat input dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotDir, e.InputDir)
	}

	info, err = os.Stat(e.OutputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrOutputNotFound, e.OutputDir)
		}
		return fmt.Errorf("stat output dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputNotFound, e.OutputDir)
	}
	return nil
}

// Run converts every note listed in the export index. All notes are parsed
// before anything is written. Missing or broken notes are reported and
// skipped; path problems and failures to create directories abort the run.
func (e Exporter) Run() (Stats, error) {
	if e.InputDir == "" || e.OutputDir == "" {
		return Stats{}, fmt.Errorf("input and output directories are required")
	}
	if err := e.checkPaths(); err != nil {
		return Stats{}, err
	}

	entries, err := zohohtml.ReadIndex(e.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, fmt.Errorf("%w: %s", ErrIndexNotFound, e.InputDir)
		}
		return Stats{}, fmt.Errorf("read index: %w", err)
	}

	r := &run{
		Exporter: e,
		reporter: e.Reporter,
		markdown: newMarkdownConverter(),
	}
	if r.reporter == nil {
		r.reporter = console.Discard{}
	}

	progressBar := newExportProgressBar(2 * len(entries))
	defer progressBar.Close()

	notes := make([]note, 0, len(entries))
	for _, entry := range entries {
		n, ok := r.readNote(entry)
		progressBar.Advance("reading notes")
		if !ok {
			r.stats.Skipped++
			continue
		}
		notes = append(notes, n)
	}

	exportDir := filepath.Join(e.OutputDir, SaveFolder)
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return r.stats, fmt.Errorf("create %s: %w", exportDir, err)
	}

	for _, n := range notes {
		if err := r.writeNote(exportDir, n); err != nil {
			return r.stats, err
		}
		progressBar.Advance("writing notes")
	}

	progressBar.Finish("done")
	return r.stats, nil
}

// readNote builds one note and reports why it was skipped when it fails.
func (r *run) readNote(entry zohodomain.IndexEntry) (note, bool) {
	if entry.Href == "" {
		r.warnf("Index entry %d has no note link", entry.Position)
		return note{}, false
	}

	n, err := r.buildNote(entry)
	switch {
	case err == nil:
		return n, true
	case errors.Is(err, fs.ErrNotExist):
		r.warnf("File %s not found", entry.Href)
	case errors.Is(err, syscall.ENOTDIR):
		r.warnf("The path %s does not exist", entry.Href)
	default:
		r.warnf("Could not convert %s: %v", entry.Href, err)
	}
	return note{}, false
}

func (r *run) writeNote(exportDir string, n note) error {
	folder := filepath.Join(exportDir, pathSegment(zohodomain.SanitizeName(n.FolderName, zohodomain.SanitizeFull)))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", folder, err)
	}

	notePath := filepath.Join(folder, noteFileName(n))
	if err := os.WriteFile(notePath, []byte(renderNote(n)), 0o644); err != nil {
		return fmt.Errorf("write note %s: %w", n.SourceFile, err)
	}
	if err := exportfs.ApplyFileTimes(notePath, n.CreatedAt, n.UpdatedAt, setFileCreationTime); err != nil {
		r.warnf("Could not set timestamps on %s: %v", notePath, err)
	}

	copied, err := exportfs.CopyAttachments(n.Attachments, r.InputDir, folder, func(name string, err error) {
		r.warnf("Could not copy %s: %v", name, err)
	})
	if err != nil {
		r.warnf("Could not copy attachments of %s: %v", n.SourceFile, err)
	}
	r.stats.Files += copied
	r.stats.Notes++
	return nil
}
