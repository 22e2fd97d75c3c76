package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tirasundara/activation-service/internal/domain"
)

// ErrUnsupportedFormat is returned for output formats with no formatter
var ErrUnsupportedFormat = errors.New("unsupported output format")

// OutputFormatter defines the interface for formatting activation reports
type OutputFormatter interface {
	Format(report domain.ActivationReport) ([]byte, error)
	FileExtension() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint bool) (OutputFormatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	case "yaml", "yml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// JSONFormatter formats activation reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(report domain.ActivationReport) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// YAMLFormatter formats activation reports as YAML
type YAMLFormatter struct {
	Indent int
}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{
		Indent: 2,
	}
}

// Format implements the OutputFormatter interface for YAML
func (f *YAMLFormatter) Format(report domain.ActivationReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(f.Indent)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("encoding yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml report: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *YAMLFormatter) FileExtension() string {
	return "yaml"
}
