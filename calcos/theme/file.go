//go:build !tinygo

package theme

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format is a theme file encoding.
type Format uint8

const (
	FormatYAML Format = iota + 1
	FormatTOML
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("theme: unsupported file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// fileTheme is the on-disk shape; empty fields keep the default colour.
type fileTheme struct {
	Light     string `yaml:"light" toml:"light"`
	Medium    string `yaml:"medium" toml:"medium"`
	Dark      string `yaml:"dark" toml:"dark"`
	Text      string `yaml:"text" toml:"text"`
	Accent    string `yaml:"accent" toml:"accent"`
	Highlight string `yaml:"highlight" toml:"highlight"`
}

// Parse decodes a theme file on top of Default.
func Parse(data []byte, format Format) (Theme, error) {
	var ft fileTheme
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return Theme{}, fmt.Errorf("theme: parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &ft); err != nil {
			return Theme{}, fmt.Errorf("theme: parse toml: %w", err)
		}
	default:
		return Theme{}, fmt.Errorf("theme: unknown format %d", format)
	}

	t := Default()
	fields := []struct {
		name string
		val  string
		dst  *color.RGBA
	}{
		{"light", ft.Light, &t.Light},
		{"medium", ft.Medium, &t.Medium},
		{"dark", ft.Dark, &t.Dark},
		{"text", ft.Text, &t.Text},
		{"accent", ft.Accent, &t.Accent},
		{"highlight", ft.Highlight, &t.Highlight},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		c, err := ParseHex(f.val)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

// Encode writes t in the given format with every role set.
func Encode(t Theme, format Format) ([]byte, error) {
	ft := fileTheme{
		Light:     Hex(t.Light),
		Medium:    Hex(t.Medium),
		Dark:      Hex(t.Dark),
		Text:      Hex(t.Text),
		Accent:    Hex(t.Accent),
		Highlight: Hex(t.Highlight),
	}
	switch format {
	case FormatYAML:
		b, err := yaml.Marshal(&ft)
		if err != nil {
			return nil, fmt.Errorf("theme: encode yaml: %w", err)
		}
		return b, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(ft); err != nil {
			return nil, fmt.Errorf("theme: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("theme: unknown format %d", format)
	}
}

// Fingerprint hashes theme file contents.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Load reads and parses the theme file at path.
//
// It also returns the fingerprint of the raw contents.
func Load(fs afero.Fs, path string) (Theme, uint64, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Theme{}, 0, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Theme{}, 0, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return Theme{}, 0, fmt.Errorf("%s: %w", path, err)
	}
	return t, Fingerprint(data), nil
}
