package vtcore

import "testing"

func TestParseXParseColorWidths(t *testing.T) {
	cases := []struct {
		spec          string
		r, g, b uint8
	}{
		{"rgb:f/0/0", 0xf0, 0, 0},
		{"rgb:ff/00/00", 0xff, 0, 0},
		{"rgb:fff/000/000", 0xff, 0, 0},
		{"rgb:ffff/0000/0000", 0xff, 0, 0},
	}
	for _, c := range cases {
		got, ok := ParseXParseColor(c.spec)
		if !ok {
			t.Fatalf("ParseXParseColor(%q) failed", c.spec)
		}
		if got.R != c.r || got.G != c.g || got.B != c.b {
			t.Errorf("ParseXParseColor(%q) = %v, want R=%02x G=%02x B=%02x", c.spec, got, c.r, c.g, c.b)
		}
	}
}

func TestParseXParseColorFallsBackToNamed(t *testing.T) {
	got, ok := ParseXParseColor("red")
	if !ok {
		t.Fatalf("ParseXParseColor(\"red\") failed")
	}
	if got.R != 0xff || got.G != 0 || got.B != 0 {
		t.Errorf("ParseXParseColor(\"red\") = %v, want pure red", got)
	}
}

func TestParseColorSchemeNamed(t *testing.T) {
	fg, bg, _ := ParseColorScheme(NewNopLogger(), SchemeGreenBlack)
	if fg.R != DefaultPalette16[2].R {
		t.Errorf("green-black foreground R = %d, want %d", fg.R, DefaultPalette16[2].R)
	}
	if bg.R != DefaultPalette16[0].R {
		t.Errorf("green-black background R = %d, want %d", bg.R, DefaultPalette16[0].R)
	}
}

func TestParseColorSchemeKeyValue(t *testing.T) {
	fg, _, palette := ParseColorScheme(NewNopLogger(), "foreground:rgb:ff/ff/ff;color1:rgb:10/20/30")
	if fg.R != 0xff || fg.G != 0xff || fg.B != 0xff {
		t.Errorf("foreground = %v, want white", fg)
	}
	c := palette.Get(1)
	if c.R != 0x10 || c.G != 0x20 || c.B != 0x30 {
		t.Errorf("palette[1] = %v, want (0x10,0x20,0x30)", c)
	}
}

func TestParseColorSchemeFallsBackOnError(t *testing.T) {
	fg, bg, _ := ParseColorScheme(NewNopLogger(), "not-a-valid-scheme-at-all")
	if fg.PaletteIndex != ColorForeground || bg.PaletteIndex != ColorBackground {
		t.Errorf("fallback scheme did not set pseudo-indices: fg=%v bg=%v", fg, bg)
	}
}

func TestSelectionLuminance(t *testing.T) {
	white := RGBColor(255, 255, 255)
	black := RGBColor(0, 0, 0)
	if got := SelectionLuminance(white); got != 255 {
		t.Errorf("SelectionLuminance(white) = %d, want 255", got)
	}
	if got := SelectionLuminance(black); got != 0 {
		t.Errorf("SelectionLuminance(black) = %d, want 0", got)
	}
}

func TestNewDefaultPaletteHas256Entries(t *testing.T) {
	p := NewDefaultPalette()
	for i := 0; i < 256; i++ {
		c := p.Get(i)
		if int(c.PaletteIndex) != i {
			t.Fatalf("palette[%d].PaletteIndex = %d, want %d", i, c.PaletteIndex, i)
		}
	}
}
