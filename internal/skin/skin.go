// Package skin loads terminal color schemes from YAML files.
package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultName is the built-in skin that needs no file.
const DefaultName = "default"

// Skin is a named terminal palette. Colors are lipgloss color strings:
// ANSI numbers ("39") or hex ("#0d6efd").
type Skin struct {
	Name   string `yaml:"name"`
	Colors Colors `yaml:"colors"`
}

// Colors are the palette slots the terminal dashboard draws with.
type Colors struct {
	Primary    string `yaml:"primary"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	Critical   string `yaml:"critical"`
	Warning    string `yaml:"warning"`
	Success    string `yaml:"success"`
}

// Default returns the built-in skin.
func Default() Skin {
	return Skin{
		Name: DefaultName,
		Colors: Colors{
			Primary:    "39",
			Accent:     "17",
			Muted:      "244",
			Text:       "255",
			Background: "#1f2d3d",
			Critical:   "196",
			Warning:    "214",
			Success:    "42",
		},
	}
}

// Path returns where skin name is looked up under configDir.
func Path(configDir, name string) string {
	return filepath.Join(configDir, "skins", name+".yml")
}

// Load reads skin name from configDir. The default skin is returned without
// touching the filesystem. Colors missing from the file keep their default.
func Load(configDir, name string) (Skin, error) {
	if name == "" || name == DefaultName {
		return Default(), nil
	}

	data, err := os.ReadFile(Path(configDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("skin %q not found in %s", name, filepath.Join(configDir, "skins"))
		}
		return Default(), fmt.Errorf("reading skin %q: %w", name, err)
	}

	return Parse(name, data)
}

// Parse decodes a skin document, filling unset colors from the default skin.
func Parse(name string, data []byte) (Skin, error) {
	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing skin %q: %w", name, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	s.Colors = s.Colors.withDefaults(Default().Colors)
	return s, nil
}

func (c Colors) withDefaults(d Colors) Colors {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Colors{
		Primary:    pick(c.Primary, d.Primary),
		Accent:     pick(c.Accent, d.Accent),
		Muted:      pick(c.Muted, d.Muted),
		Text:       pick(c.Text, d.Text),
		Background: pick(c.Background, d.Background),
		Critical:   pick(c.Critical, d.Critical),
		Warning:    pick(c.Warning, d.Warning),
		Success:    pick(c.Success, d.Success),
	}
}
