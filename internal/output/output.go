package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes progress and status lines for the scaffolder.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Command lipgloss.Style
	Path    lipgloss.Style
	Bold    lipgloss.Style
}

// NewPrinter creates a new Printer. Colors are enabled only when isTTY is true.
func NewPrinter(w io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}

	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Command = lipgloss.NewStyle()
		styles.Path = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
	}

	return &Printer{
		w:      w,
		errW:   w,
		isTTY:  isTTY,
		styles: styles,
	}
}

// Discard returns a Printer that drops all output.
func Discard() *Printer {
	return NewPrinter(io.Discard, false)
}

// WithStderr sets a separate writer for errors and warnings.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	mustWrite(fmt.Fprintln(p.w, a...))
}

// Printf writes a formatted plain message.
func (p *Printer) Printf(format string, a ...any) {
	mustWrite(fmt.Fprintf(p.w, format, a...))
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	mustWrite(fmt.Fprintln(p.w))
}

// Success writes a green line.
func (p *Printer) Success(msg string) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
}

// Warn writes a yellow line to the error writer.
func (p *Printer) Warn(msg string) {
	mustWrite(fmt.Fprintln(p.errW, p.styles.Warning.Render(msg)))
}

// Errorln writes a red line to the error writer.
func (p *Printer) Errorln(msg string) {
	mustWrite(fmt.Fprintln(p.errW, p.styles.Error.Render(msg)))
}

// Errorf writes a formatted uncolored message to the error writer.
func (p *Printer) Errorf(format string, a ...any) {
	mustWrite(fmt.Fprintf(p.errW, format, a...))
}

// Cmd renders s as a command (cyan).
func (p *Printer) Cmd(s string) string {
	return p.styles.Command.Render(s)
}

// Path renders s as a path (green).
func (p *Printer) Path(s string) string {
	return p.styles.Path.Render(s)
}

// Red renders s in the error color.
func (p *Printer) Red(s string) string {
	return p.styles.Error.Render(s)
}

// mustWrite discards write errors; there is nowhere else to report them.
func mustWrite(_ int, _ error) {}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
