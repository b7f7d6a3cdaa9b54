package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconConfig  = "⚙️"
	IconFile    = "📄"
	IconRefresh = "🔄"
	IconDot     = "•"
)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// noColor reports whether the default logger has colors turned off
func noColor() bool {
	l, ok := defaultLogger.(*logger)
	if !ok {
		return true
	}
	l.root.mu.Lock()
	defer l.root.mu.Unlock()
	return l.root.noColor
}

func paint(text string, attrs ...color.Attribute) string {
	if noColor() {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// LogSection writes a visual section separator to w
func LogSection(w io.Writer, title string) {
	line := strings.Repeat("=", 50)
	_, _ = fmt.Fprintln(w, paint(line, color.FgCyan))
	_, _ = fmt.Fprintln(w, paint(title, color.FgCyan, color.Bold))
	_, _ = fmt.Fprintln(w, paint(line, color.FgCyan))
}

// LogKeyValue writes a key-value pair to w
func LogKeyValue(w io.Writer, key string, value interface{}) {
	_, _ = fmt.Fprintf(w, "%s %v\n", paint(key+":", color.FgCyan), value)
}

// LogList writes a titled list of items with bullets to w
func LogList(w io.Writer, title string, items []string) {
	_, _ = fmt.Fprintln(w, paint(title, color.Bold))
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  %s %s\n", IconDot, item)
	}
}

// Table represents a simple table for terminal output
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Fprint writes the table to w
func (t *Table) Fprint(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			b.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			if i < len(widths)-1 {
				b.WriteString("  ")
			}
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	writeRow(t.headers)
	separators := make([]string, len(widths))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)
	for _, row := range t.rows {
		writeRow(row)
	}
}
