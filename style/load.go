package style

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a style file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatOf picks a Format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("style: unsupported file type %q", filepath.Ext(path))
}

// Load reads partial style options from a YAML or TOML file.
func Load(path string) (Options, error) {
	var opts Options
	if err := decodeFile(path, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadTheme reads a MapTheme with light and dark tables from a YAML or
// TOML file.
func LoadTheme(path string) (MapTheme, error) {
	var t MapTheme
	if err := decodeFile(path, &t); err != nil {
		return MapTheme{}, err
	}
	return t, nil
}

// Decode parses options encoded as f.
func Decode(data []byte, f Format) (Options, error) {
	var opts Options
	if err := decode(data, f, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Encode serializes opts as f.
func Encode(opts Options, f Format) ([]byte, error) {
	switch f {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
			return nil, fmt.Errorf("style: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		out, err := yaml.Marshal(opts)
		if err != nil {
			return nil, fmt.Errorf("style: encode yaml: %w", err)
		}
		return out, nil
	}
}

func decodeFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if err := decode(data, f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func decode(data []byte, f Format, v any) error {
	switch f {
	case FormatTOML:
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("style: decode toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("style: decode yaml: %w", err)
		}
	}
	return nil
}
