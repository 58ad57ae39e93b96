// Command mktheme checks calculator palette files and converts them
// between YAML and TOML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"bluecalc/calcos/theme"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input palette (.yaml, .yml or .toml). Empty starts from the default palette.")
		outPath = flag.String("out", "", "Output palette; the extension picks the format. Empty prints the palette.")
	)
	flag.Parse()

	if err := run(afero.NewOsFs(), *inPath, *outPath, os.Stdout); err != nil {
		fatalf("mktheme: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(fs afero.Fs, inPath, outPath string, stdout io.Writer) error {
	t := theme.Default()
	if inPath != "" {
		var err error
		if t, _, err = theme.Load(fs, inPath); err != nil {
			return err
		}
	}

	if outPath == "" {
		roles := []struct {
			name string
			hex  string
		}{
			{"light", theme.Hex(t.Light)},
			{"medium", theme.Hex(t.Medium)},
			{"dark", theme.Hex(t.Dark)},
			{"text", theme.Hex(t.Text)},
			{"accent", theme.Hex(t.Accent)},
			{"highlight", theme.Hex(t.Highlight)},
		}
		for _, r := range roles {
			if _, err := fmt.Fprintf(stdout, "%-9s %s\n", r.name, r.hex); err != nil {
				return err
			}
		}
		return nil
	}

	format, err := theme.FormatForPath(outPath)
	if err != nil {
		return err
	}
	b, err := theme.Encode(t, format)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, outPath, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
