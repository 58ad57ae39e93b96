//go:build !tinygo

package theme

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"theme.yaml", FormatYAML},
		{"dir/Theme.YML", FormatYAML},
		{"theme.toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil || got != tt.want {
			t.Fatalf("FormatForPath(%q) = %d, %v; want %d", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatForPath("theme.json"); err == nil {
		t.Fatal("expected error for .json")
	}
}

func TestParseKeepsDefaultsForMissingRoles(t *testing.T) {
	yamlDoc := "light: \"#112233\"\naccent: \"#445566\"\n"
	tomlDoc := "light = \"#112233\"\naccent = \"445566\"\n"

	want := Default()
	want.Light, _ = ParseHex("#112233")
	want.Accent, _ = ParseHex("#445566")

	for _, tc := range []struct {
		name   string
		doc    string
		format Format
	}{
		{"yaml", yamlDoc, FormatYAML},
		{"toml", tomlDoc, FormatTOML},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.doc), tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("theme mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejectsBadColour(t *testing.T) {
	_, err := Parse([]byte("dark: \"navy\"\n"), FormatYAML)
	if err == nil || !strings.Contains(err.Error(), "dark") {
		t.Fatalf("expected error naming the role, got %v", err)
	}
	if _, err := Parse([]byte("light = [1"), FormatTOML); err == nil {
		t.Fatal("expected toml syntax error")
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := []byte("text: \"#000000\"\n")
	if err := afero.WriteFile(fs, "/etc/bluecalc/theme.yaml", doc, 0o644); err != nil {
		t.Fatal(err)
	}

	got, sum, err := Load(fs, "/etc/bluecalc/theme.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if Hex(got.Text) != "#000000" || Hex(got.Light) != "#1E90FF" {
		t.Fatalf("unexpected theme text=%s light=%s", Hex(got.Text), Hex(got.Light))
	}
	if sum != Fingerprint(doc) {
		t.Fatalf("fingerprint = %x, want %x", sum, Fingerprint(doc))
	}
	if Fingerprint([]byte("text: \"#000001\"\n")) == sum {
		t.Fatal("expected fingerprint to change with content")
	}

	if _, _, err := Load(fs, "/missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEncodeParsesBack(t *testing.T) {
	want := Default()
	want.Highlight, _ = ParseHex("#ABCDEF")
	for _, format := range []Format{FormatYAML, FormatTOML} {
		b, err := Encode(want, format)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(b, format)
		if err != nil {
			t.Fatalf("format %d: %v\n%s", format, err, b)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("format %d mismatch (-want +got):\n%s", format, diff)
		}
	}
}
