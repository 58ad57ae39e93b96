package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"bluecalc/calcos/theme"
)

func TestRunPrintsDefault(t *testing.T) {
	var out bytes.Buffer
	if err := run(afero.NewMemMapFs(), "", "", &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "light     #1E90FF\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if got := strings.Count(out.String(), "\n"); got != 6 {
		t.Fatalf("expected 6 roles, got %d lines", got)
	}
}

func TestRunConvertsYAMLToTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "in.yaml", []byte("dark: \"#010203\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(fs, "in.yaml", "out.toml", &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	got, _, err := theme.Load(fs, "out.toml")
	if err != nil {
		t.Fatal(err)
	}
	if theme.Hex(got.Dark) != "#010203" || theme.Hex(got.Light) != "#1E90FF" {
		t.Fatalf("converted palette dark=%s light=%s", theme.Hex(got.Dark), theme.Hex(got.Light))
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "bad.yaml", []byte("text: \"#12\"\n"), 0o644)
	if err := run(fs, "bad.yaml", "", &bytes.Buffer{}); err == nil {
		t.Fatal("expected malformed colour error")
	}
	if err := run(fs, "", "out.json", &bytes.Buffer{}); err == nil {
		t.Fatal("expected unsupported output format error")
	}
}
