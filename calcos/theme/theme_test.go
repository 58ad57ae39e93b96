package theme

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultPalette(t *testing.T) {
	d := Default()
	want := map[string]string{
		"light":     "#1E90FF",
		"medium":    "#4169E1",
		"dark":      "#000080",
		"text":      "#FFFFFF",
		"accent":    "#87CEEB",
		"highlight": "#00BFFF",
	}
	got := map[string]string{
		"light":     Hex(d.Light),
		"medium":    Hex(d.Medium),
		"dark":      Hex(d.Dark),
		"text":      Hex(d.Text),
		"accent":    Hex(d.Accent),
		"highlight": Hex(d.Highlight),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default palette mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex(" #87ceeb ")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}) {
		t.Fatalf("unexpected colour %v", c)
	}
	if _, err := ParseHex("000080"); err != nil {
		t.Fatalf("bare hex rejected: %v", err)
	}
	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) accepted", bad)
		}
	}
}

func TestColorsRoundTrip(t *testing.T) {
	d := Default()
	got, ok := FromColors(d.Colors())
	if !ok {
		t.Fatal("FromColors rejected a full palette")
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Fatalf("palette changed (-want +got):\n%s", diff)
	}
	if _, ok := FromColors(d.Colors()[:3]); ok {
		t.Fatal("expected short palette to be rejected")
	}
}
