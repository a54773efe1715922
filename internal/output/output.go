// Package output encodes command reports as text, JSON, YAML or TOML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format name other than text, json,
// yaml or toml.
var ErrUnknownFormat = errors.New("output: unknown format")

// Format names an encoding for reports.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{Text, JSON, YAML, TOML}
}

// ParseFormat converts a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Answer is one named result of a command.
type Answer struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value int64  `json:"value" yaml:"value" toml:"value"`
}

// Report is everything a command prints.
type Report struct {
	Command string   `json:"command" yaml:"command" toml:"command"`
	Input   string   `json:"input" yaml:"input" toml:"input"`
	Answers []Answer `json:"answers" yaml:"answers" toml:"answers"`
	// Path is the route found, rendered as "(x,y)" strings, if any.
	Path []string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
}

// Add appends a named answer.
func (r *Report) Add(name string, v int64) {
	r.Answers = append(r.Answers, Answer{Name: name, Value: v})
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case Text:
		return writeText(w, r)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// writeText prints one answer value per line, the way puzzle answers are
// usually reported, followed by the path if present.
func writeText(w io.Writer, r Report) error {
	for _, a := range r.Answers {
		if _, err := fmt.Fprintf(w, "%s: %d\n", a.Name, a.Value); err != nil {
			return err
		}
	}
	if len(r.Path) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(r.Path, " ")); err != nil {
			return err
		}
	}
	return nil
}
