package vtcore

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color that optionally remembers the palette slot it came
// from, so it can continue tracking a theme change after the fact.
//
// PaletteIndex is one of:
//   - 0..255: a slot in the terminal's 256-entry palette.
//   - ColorRGB (-1): an explicit RGB color with no palette slot.
//   - ColorForeground / ColorBackground: a pseudo-slot that always resolves
//     to whatever the current default foreground/background is.
type Color struct {
	PaletteIndex int16
	R, G, B      uint8
}

// Reserved pseudo palette indices, grounded on
// original_source/src/terminal/display.c's GUAC_TERMINAL_COLOR_FOREGROUND /
// GUAC_TERMINAL_COLOR_BACKGROUND lookup-fallback behavior.
const (
	ColorRGB        int16 = -1
	ColorForeground int16 = -2
	ColorBackground int16 = -3
)

// RGBColor constructs a palette-less explicit RGB color.
func RGBColor(r, g, b uint8) Color {
	return Color{PaletteIndex: ColorRGB, R: r, G: g, B: b}
}

// IndexedColor constructs a color referencing a palette slot, with its RGB
// value resolved from the given palette.
func IndexedColor(index int16, palette *[256]Color) Color {
	if index >= 0 && int(index) < len(palette) {
		c := palette[index]
		c.PaletteIndex = index
		return c
	}
	return Color{PaletteIndex: index}
}

// Palette is the mutable 256-entry color table described in spec.md §4.1:
// 16 ANSI colors extended to 256 with the xterm color cube + greyscale ramp.
type Palette struct {
	entries [256]Color
}

// DefaultPalette16 holds the exact 16 base colors from
// original_source/src/terminal/palette.c (guac_terminal_palette).
var DefaultPalette16 = [16]Color{
	{0, 0x00, 0x00, 0x00},
	{1, 0x99, 0x3E, 0x3E},
	{2, 0x3E, 0x99, 0x3E},
	{3, 0x99, 0x99, 0x3E},
	{4, 0x3E, 0x3E, 0x99},
	{5, 0x99, 0x3E, 0x99},
	{6, 0x3E, 0x99, 0x99},
	{7, 0x99, 0x99, 0x99},
	{8, 0x3E, 0x3E, 0x3E},
	{9, 0xFF, 0x67, 0x67},
	{10, 0x67, 0xFF, 0x67},
	{11, 0xFF, 0xFF, 0x67},
	{12, 0x67, 0x67, 0xFF},
	{13, 0xFF, 0x67, 0xFF},
	{14, 0x67, 0xFF, 0xFF},
	{15, 0xFF, 0xFF, 0xFF},
}

// NewDefaultPalette builds the 256-entry palette: the 16 base colors
// followed by the standard 6x6x6 color cube (16-231) and a 24-step
// greyscale ramp (232-255), as xterm defines it.
func NewDefaultPalette() *Palette {
	p := &Palette{}
	for i, c := range DefaultPalette16 {
		c.PaletteIndex = int16(i)
		p.entries[i] = c
	}

	i := 16
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.entries[i] = Color{int16(i), levels[r], levels[g], levels[b]}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p.entries[232+j] = Color{int16(232 + j), gray, gray, gray}
	}

	return p
}

// Get returns the color at the given index, or a zero Color if out of range.
func (p *Palette) Get(index int) Color {
	if index < 0 || index >= len(p.entries) {
		return Color{}
	}
	return p.entries[index]
}

// Set assigns a new RGB value to a palette slot. The palette index of
// the stored color is always normalized to the slot it was written to.
func (p *Palette) Set(index int, c Color) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	c.PaletteIndex = int16(index)
	p.entries[index] = c
	return true
}

// Array returns a pointer to the raw 256-entry array, for callers (such as
// color-scheme parsing) that need direct indexed access.
func (p *Palette) Array() *[256]Color {
	return &p.entries
}

// Named color-scheme specifiers recognized by ParseColorScheme, grounded on
// original_source/src/terminal/terminal/color-scheme.h.
const (
	SchemeBlackWhite = "black-white"
	SchemeGrayBlack  = "gray-black"
	SchemeGreenBlack = "green-black"
	SchemeWhiteBlack = "white-black"
)

var namedSchemes = map[string]string{
	SchemeGrayBlack:  "foreground:color7;background:color0",
	SchemeBlackWhite: "foreground:color0;background:color15",
	SchemeGreenBlack: "foreground:color2;background:color0",
	SchemeWhiteBlack: "foreground:color15;background:color0",
}

// ParseColorScheme parses a color-scheme specifier per spec.md §4.1's
// grammar: either one of the four named schemes, or a semicolon-separated
// list of "key: value" pairs where key is foreground, background, or
// colorN (0..255), and value is colorN or an xparsecolor spec.
//
// On any parse error, the scheme falls back to gray-black and a warning is
// logged, matching the error policy in spec.md §4.1.
func ParseColorScheme(log Logger, scheme string) (foreground, background Color, palette *Palette) {
	palette = NewDefaultPalette()
	foreground = palette.Get(int(DefaultPalette16[7].PaletteIndex))
	background = palette.Get(int(DefaultPalette16[0].PaletteIndex))

	if scheme == "" {
		foreground.PaletteIndex = ColorForeground
		background.PaletteIndex = ColorBackground
		return
	}

	if expansion, ok := namedSchemes[scheme]; ok {
		scheme = expansion
	}

	for _, pair := range strings.Split(scheme, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			log.Warn("invalid color-scheme pair, expecting colon", "pair", pair)
			palette = NewDefaultPalette()
			foreground = palette.Get(int(DefaultPalette16[7].PaletteIndex))
			background = palette.Get(int(DefaultPalette16[0].PaletteIndex))
			break
		}

		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		target, ok := resolveSchemeName(name, &foreground, &background, palette)
		if !ok {
			log.Warn("unknown color-scheme name", "name", name)
			palette = NewDefaultPalette()
			foreground = palette.Get(int(DefaultPalette16[7].PaletteIndex))
			background = palette.Get(int(DefaultPalette16[0].PaletteIndex))
			break
		}

		resolved, ok := resolveSchemeValue(value, palette)
		if !ok {
			log.Warn("invalid color-scheme value", "value", value)
			palette = NewDefaultPalette()
			foreground = palette.Get(int(DefaultPalette16[7].PaletteIndex))
			background = palette.Get(int(DefaultPalette16[0].PaletteIndex))
			break
		}
		*target = resolved
	}

	foreground.PaletteIndex = ColorForeground
	background.PaletteIndex = ColorBackground
	return
}

func resolveSchemeName(name string, foreground, background *Color, palette *Palette) (*Color, bool) {
	switch name {
	case "foreground":
		return foreground, true
	case "background":
		return background, true
	}

	if strings.HasPrefix(name, "color") {
		if n, err := strconv.Atoi(strings.TrimPrefix(name, "color")); err == nil && n >= 0 && n <= 255 {
			return &palette.entries[n], true
		}
	}
	return nil, false
}

func resolveSchemeValue(value string, palette *Palette) (Color, bool) {
	if strings.HasPrefix(value, "color") {
		if n, err := strconv.Atoi(strings.TrimPrefix(value, "color")); err == nil && n >= 0 && n <= 255 {
			return palette.Get(n), true
		}
	}

	if c, ok := ParseXParseColor(value); ok {
		return c, true
	}

	return Color{}, false
}

// ParseXParseColor parses an xparsecolor-style spec: "rgb:H/H/H",
// "rgb:HH/HH/HH", "rgb:HHH/HHH/HHH", or "rgb:HHHH/HHHH/HHHH", normalized to
// 8-bit channels (zero-extend short specs, truncate to the high byte for
// long ones). Falls back to a named-color lookup if the spec isn't an rgb:
// literal. Grounded on original_source/src/terminal/xparsecolor.c.
func ParseXParseColor(spec string) (Color, bool) {
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(strings.TrimPrefix(spec, "rgb:"), "/")
		if len(parts) == 3 {
			widths := map[int]bool{1: true, 2: true, 3: true, 4: true}
			w := len(parts[0])
			if widths[w] && len(parts[1]) == w && len(parts[2]) == w {
				r, err1 := strconv.ParseUint(parts[0], 16, 32)
				g, err2 := strconv.ParseUint(parts[1], 16, 32)
				b, err3 := strconv.ParseUint(parts[2], 16, 32)
				if err1 == nil && err2 == nil && err3 == nil {
					return Color{
						PaletteIndex: ColorRGB,
						R:            normalizeChannel(uint32(r), w),
						G:            normalizeChannel(uint32(g), w),
						B:            normalizeChannel(uint32(b), w),
					}, true
				}
			}
		}
	}

	return LookupNamed(spec)
}

func normalizeChannel(v uint32, hexDigits int) uint8 {
	switch hexDigits {
	case 1:
		return uint8(v << 4)
	case 2:
		return uint8(v)
	case 3:
		return uint8(v >> 4)
	case 4:
		return uint8(v >> 8)
	}
	return uint8(v)
}

// LookupNamed resolves an X11 color name (e.g. "dark slate blue", case and
// whitespace insensitive) to RGB. Returns false if the name is unknown.
func LookupNamed(name string) (Color, bool) {
	key := normalizeColorName(name)
	if rgb, ok := namedColorTable[key]; ok {
		return Color{PaletteIndex: ColorRGB, R: rgb[0], G: rgb[1], B: rgb[2]}, true
	}
	return Color{}, false
}

// LookupIndex returns the color stored at palette index i, or false if i is
// out of the valid 0..255 range.
func LookupIndex(palette *Palette, i int) (Color, bool) {
	if i < 0 || i > 255 {
		return Color{}, false
	}
	return palette.Get(i), true
}

func normalizeColorName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "")
}

// SelectionLuminance approximates perceived luminance of an RGB color using
// the weighting spec.md §4.1 specifies: (3R + 12G + B) / 16.
func SelectionLuminance(c Color) int {
	return (3*int(c.R) + 12*int(c.G) + int(c.B)) / 16
}

// String implements fmt.Stringer for debugging/log output.
func (c Color) String() string {
	if c.PaletteIndex >= 0 {
		return fmt.Sprintf("color%d(#%02x%02x%02x)", c.PaletteIndex, c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
