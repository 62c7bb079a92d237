package imaging

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseColor parses a "#RRGGBB" or "#RGB" hex string into an opaque color.
// The leading '#' is optional.
func ParseColor(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.RGBA{}, errors.New("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
