// Package export writes the todo list in a portable text format.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

func Formats() []string { return []string{FormatJSON, FormatYAML, FormatTOML} }

// document is the shared top-level shape; TOML cannot encode a bare array.
type document struct {
	Todos []model.Item `json:"todos" yaml:"todos" toml:"todos"`
}

// Write encodes items to w in the given format, preserving order.
func Write(w io.Writer, items []model.Item, format string) error {
	if items == nil {
		items = []model.Item{}
	}
	doc := document{Todos: items}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("yaml close: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("toml encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}
