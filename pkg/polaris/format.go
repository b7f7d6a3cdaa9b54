package polaris

import (
	"strconv"
	"strings"
)

// Vector is a position or axis in model coordinates.
type Vector [3]float64

// FormatFloat renders a number the way POLARIS reads it back.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CommandLine renders one tab separated line of a .cmd file.
func CommandLine(tag string, fields ...string) string {
	var b strings.Builder
	b.WriteByte('\t')
	b.WriteString(tag)
	for _, f := range fields {
		b.WriteByte('\t')
		b.WriteString(f)
	}
	b.WriteByte('\n')
	return b.String()
}

// Quote wraps a string value in double quotes.
func Quote(s string) string {
	return `"` + s + `"`
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatVector(v Vector) []string {
	return []string{FormatFloat(v[0]), FormatFloat(v[1]), FormatFloat(v[2])}
}
