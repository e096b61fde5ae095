// ABOUTME: Label color parsing from settings: X11/CSS color names or hex triplets
// ABOUTME: Names resolve via x/image/colornames; hex via gookit/color's converter

package config

import (
	"fmt"
	"image/color"
	"strings"

	gcolor "github.com/gookit/color"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a color setting such as "dimgray", "DimGray", "#696969" or "#ccc".
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	name := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(v)
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(v, "0x"); ok {
		v = "#" + hex
	}
	if strings.HasPrefix(v, "#") {
		rgb := gcolor.HexToRgb(v)
		if len(rgb) == 3 {
			return color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xff}, nil
		}
	}

	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// MustParseColor is ParseColor falling back to DefaultColor on error.
func MustParseColor(s string) color.RGBA {
	if c, err := ParseColor(s); err == nil {
		return c
	}
	return colornames.Dimgray
}
