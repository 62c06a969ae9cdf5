package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", errors.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where results are written.
var Stdout io.Writer = os.Stdout

// PrintName writes the application name. In text format that is a single
// Go-quoted line; structured formats wrap it in a record.
func PrintName(name string) error {
	if OutputFormat == FormatText {
		_, err := fmt.Fprintf(Stdout, "%q\n", name)
		return err
	}
	return Print(struct {
		Name string `yaml:"name" json:"name"`
	}{name})
}

// Print serializes v in the current output format. Text has no structured
// rendering of its own and uses YAML.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML, FormatText:
		return PrintYAML(v)
	default:
		return errors.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.WithMessage(err, "json encode")
	}
	return nil
}

// PrintPrettyJSON serializes v as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.WithMessage(err, "json encode")
	}
	return nil
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Stdout)
	if err := enc.Encode(v); err != nil {
		return errors.WithMessage(err, "yaml encode")
	}
	return enc.Close()
}
