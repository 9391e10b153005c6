package godeck

import (
	"strconv"
	"strings"
)

// Color is a palette entry as 8 upper-case hex digits, alpha first
// ("FF003366" is opaque dark blue).
type Color struct {
	ARGB string
}

// ColorBlack is what NewColor yields for a malformed value.
var ColorBlack = Color{ARGB: "FF000000"}

// NewColor parses "RRGGBB" or "AARRGGBB", with or without a leading "#" and
// in either case. Six digits are taken as opaque. Anything else is black.
func NewColor(hex string) Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if !IsValidARGB(hex) {
		return ColorBlack
	}
	return Color{ARGB: hex}
}

// IsValidARGB reports whether s is exactly 8 upper-case hex digits, the
// form written into presentation files.
func IsValidARGB(s string) bool {
	return len(s) == 8 && strings.Trim(s, "0123456789ABCDEF") == ""
}

// RGB returns the colour without its alpha channel, or "000000" when the
// value is malformed.
func (c Color) RGB() string {
	if len(c.ARGB) == 8 {
		return c.ARGB[2:]
	}
	return "000000"
}

// GetAlpha returns the alpha channel (0-255).
func (c Color) GetAlpha() uint8 { return c.channel(0) }

// GetRed returns the red channel.
func (c Color) GetRed() uint8 { return c.channel(1) }

// GetGreen returns the green channel.
func (c Color) GetGreen() uint8 { return c.channel(2) }

// GetBlue returns the blue channel.
func (c Color) GetBlue() uint8 { return c.channel(3) }

// channel decodes byte i of the ARGB value; malformed values read as 0.
func (c Color) channel(i int) uint8 {
	if len(c.ARGB) < 2*i+2 {
		return 0
	}
	v, err := strconv.ParseUint(c.ARGB[2*i:2*i+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// Border is a solid outline around a shape.
type Border struct {
	Color Color
	Width int64 // in EMU
}

// HorizontalAlignment is a paragraph alignment, valued as its OOXML token.
type HorizontalAlignment string

const (
	HorizontalLeft   HorizontalAlignment = "l"
	HorizontalCenter HorizontalAlignment = "ctr"
	HorizontalRight  HorizontalAlignment = "r"
)
