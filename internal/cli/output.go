package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputMode represents the output format.
type OutputMode int

const (
	OutputNormal OutputMode = iota
	OutputMinimal
	OutputTable
	OutputJSON
)

// ParseOutputMode maps a config format name to an OutputMode.
func ParseOutputMode(format string) OutputMode {
	switch format {
	case "minimal":
		return OutputMinimal
	case "table":
		return OutputTable
	case "json":
		return OutputJSON
	default:
		return OutputNormal
	}
}

// outputMode returns the mode for this invocation; --json wins over config.
func (a *app) outputMode() OutputMode {
	if a.jsonOut {
		return OutputJSON
	}
	if a.cfg == nil {
		return OutputNormal
	}
	return ParseOutputMode(a.cfg.Output.Format)
}

// Table provides a simple table formatter.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTableWriter creates a table writing to out.
func NewTableWriter(out io.Writer, headers ...string) *Table {
	t := &Table{
		w:       tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
		headers: headers,
	}
	if len(headers) > 0 {
		_, _ = t.w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// TruncateString truncates a string to maxLen, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
