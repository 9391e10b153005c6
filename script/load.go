package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a script from a .yaml, .yml or .toml file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Script{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ParseYAML decodes a YAML script. Unknown fields are rejected.
func ParseYAML(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to parse yaml script: %w", err)
	}
	return s, nil
}

// ParseTOML decodes a TOML script. Unknown keys are rejected.
func ParseTOML(data []byte) (Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse toml script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Script{}, fmt.Errorf("failed to parse toml script: unknown key %q", undecoded[0].String())
	}
	return s, nil
}
