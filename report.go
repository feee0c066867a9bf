package nodeconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DumpOption configures report rendering using the functional options pattern.
type DumpOption func(*dumpConfig)

type format int

const (
	formatText format = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for DumpReport.
type dumpConfig struct {
	format format
	indent string // Indentation for JSON output (default: "  ")
}

// AsJSON renders the report as JSON.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML renders the report as YAML.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML renders the report as TOML.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// report is the machine-readable shape of a validation outcome.
type report struct {
	Valid      bool        `json:"valid" yaml:"valid" toml:"valid"`
	Violations []Violation `json:"violations" yaml:"violations" toml:"violations"`
}

// DumpReport writes the outcome of Validate to w.
// err must be nil or wrap a *ValidationError; anything else is returned as unsupported.
func DumpReport(w io.Writer, err error, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	r := report{Valid: true, Violations: []Violation{}}
	var message string
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("unsupported error: %w", err)
		}
		r.Valid = false
		r.Violations = append(r.Violations, verr.Violations...)
		message = verr.Error()
	}

	var data []byte
	var merr error
	switch config.format {
	case formatJSON:
		if config.indent != "" {
			data, merr = json.MarshalIndent(r, "", config.indent)
		} else {
			data, merr = json.Marshal(r)
		}
		data = append(data, '\n')
	case formatYAML:
		data, merr = yaml.Marshal(r)
	case formatTOML:
		var buf bytes.Buffer
		merr = toml.NewEncoder(&buf).Encode(r)
		data = buf.Bytes()
	default:
		if r.Valid {
			data = []byte("ok\n")
		} else {
			data = []byte(message + "\n")
		}
	}
	if merr != nil {
		return fmt.Errorf("marshal report: %w", merr)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
