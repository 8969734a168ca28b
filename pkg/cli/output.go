package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatCSV is CSV output with an input,output,error header.
	FormatCSV OutputFormat = "csv"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or csv)", s)
	}
}

// Conversion is one converted value. Error is set instead of Output when the
// input was rejected.
type Conversion struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the conversion was rejected.
func (c Conversion) Failed() bool {
	return c.Error != ""
}

// Formatter formats command output.
type Formatter interface {
	Format(data interface{}) ([]byte, error)
	FormatTo(w io.Writer, data interface{}) error
}

// TextFormatter formats output as plain text. Conversions print their output
// alone, one per line, or "error: <input>: <message>" when rejected.
type TextFormatter struct{}

// Format converts data to text format.
func (f *TextFormatter) Format(data interface{}) ([]byte, error) {
	var sb strings.Builder
	if err := f.FormatTo(&sb, data); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	rows, ok := conversionRows(data)
	if !ok {
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err
	}
	for _, row := range rows {
		var err error
		if row.Failed() {
			_, err = fmt.Fprintf(w, "error: %s: %s\n", row.Input, row.Error)
		} else {
			_, err = fmt.Fprintln(w, row.Output)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data interface{}) ([]byte, error) {
	if f.Indent {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// CSVFormatter formats conversions as CSV.
type CSVFormatter struct {
	Headers []string
}

// DefaultCSVHeaders is the header row written for conversions.
var DefaultCSVHeaders = []string{"input", "output", "error"}

// Format converts data to CSV format.
func (f *CSVFormatter) Format(data interface{}) ([]byte, error) {
	var sb strings.Builder
	if err := f.FormatTo(&sb, data); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatTo writes data to writer in CSV format. Only Conversion values and
// slices of them are supported.
func (f *CSVFormatter) FormatTo(w io.Writer, data interface{}) error {
	rows, ok := conversionRows(data)
	if !ok {
		return fmt.Errorf("csv output is not supported for %T", data)
	}

	csvWriter := csv.NewWriter(w)
	if len(f.Headers) > 0 {
		if err := csvWriter.Write(f.Headers); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := csvWriter.Write([]string{row.Input, row.Output, row.Error}); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func conversionRows(data interface{}) ([]Conversion, bool) {
	switch v := data.(type) {
	case Conversion:
		return []Conversion{v}, true
	case []Conversion:
		return v, true
	default:
		return nil, false
	}
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatCSV:
		return &CSVFormatter{Headers: DefaultCSVHeaders}
	default:
		return &TextFormatter{}
	}
}

// NewFormatterFor parses an --output flag value and returns its formatter.
func NewFormatterFor(format string) (Formatter, error) {
	f, err := ParseOutputFormat(format)
	if err != nil {
		return nil, err
	}
	return NewFormatter(f), nil
}
