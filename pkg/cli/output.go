package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
)

// Formatter formats command output.
type Formatter interface {
	FormatTo(w io.Writer, data interface{}) error
}

// TextFormatter writes values with fmt's default formatting.
type TextFormatter struct{}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{Indent: true}
	}
	return &TextFormatter{}
}

// Shared color printers for status lines.
var (
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed)
	colorBold   = color.New(color.Bold)
)

// Success prints a green check-marked status line.
func Success(w io.Writer, format string, args ...interface{}) {
	colorGreen.Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Warning prints a yellow status line.
func Warning(w io.Writer, format string, args ...interface{}) {
	colorYellow.Fprint(w, "! ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Failure prints a red status line.
func Failure(w io.Writer, format string, args ...interface{}) {
	colorRed.Fprint(w, "✗ ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Title renders s in bold.
func Title(s string) string {
	return colorBold.Sprint(s)
}

// KeyValue prints an aligned "key: value" line.
func KeyValue(w io.Writer, key string, value interface{}) {
	fmt.Fprintf(w, "  %-20s %v\n", key+":", value)
}
