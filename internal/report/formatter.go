package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter writes a report in one output format
type Formatter interface {
	Format(r *Report) error
}

// FormatterOptions configures formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// Compact disables indentation for JSON/YAML
	Compact bool
}

// NewFormatter creates a formatter for the given format string
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{Writer: os.Stdout}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "markdown":
		return &MarkdownFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml, markdown)", format)
	}
}

// JSONFormatter writes the report as JSON
type JSONFormatter struct {
	opts *FormatterOptions
}

// Format writes the report as JSON
func (f *JSONFormatter) Format(r *Report) error {
	encoder := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(r)
}

// YAMLFormatter writes the report as YAML
type YAMLFormatter struct {
	opts *FormatterOptions
}

// Format writes the report as YAML
func (f *YAMLFormatter) Format(r *Report) error {
	encoder := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent(2)
	}
	defer encoder.Close()
	return encoder.Encode(r)
}

// TextFormatter writes the report as styled terminal text
type TextFormatter struct {
	opts *FormatterOptions
}

// Format writes the report as terminal text
func (f *TextFormatter) Format(r *Report) error {
	_, err := io.WriteString(f.opts.Writer, RenderConsole(r))
	return err
}

// MarkdownFormatter writes the report as a markdown comment for PRs
type MarkdownFormatter struct {
	opts *FormatterOptions
}

// Format writes the report as markdown
func (f *MarkdownFormatter) Format(r *Report) error {
	_, err := io.WriteString(f.opts.Writer, RenderMarkdown(r))
	return err
}

var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*YAMLFormatter)(nil)
var _ Formatter = (*TextFormatter)(nil)
var _ Formatter = (*MarkdownFormatter)(nil)
