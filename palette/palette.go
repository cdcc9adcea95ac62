package palette

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	saturation = 100
	lightness  = 50

	hslPrefix = "hsl("
	hslSuffix = ")"
)

// HueSource yields a hue in degrees. Values outside [0,360) are wrapped by Fresh.
type HueSource func() float64

// RandomHue draws a uniformly random hue from the global generator
func RandomHue() float64 {
	return rand.Float64() * 360
}

// SeededHue returns a HueSource drawing from r, for reproducible runs
func SeededHue(r *rand.Rand) HueSource {
	return func() float64 { return r.Float64() * 360 }
}

// FixedHue always returns h
func FixedHue(h float64) HueSource {
	return func() float64 { return h }
}

// Fresh produces a new cell color from src
func Fresh(src HueSource) string {
	if src == nil {
		src = RandomHue
	}
	return Format(src())
}

// Format renders a hue as a fully saturated, mid-lightness HSL color string.
// The hue is wrapped into [0,360); NaN and infinities become 0.
func Format(hue float64) string {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		hue = 0
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 { // tiny negatives round up to 360
		hue = 0
	}
	return hslPrefix + strconv.FormatFloat(hue, 'f', -1, 64) + ", " +
		strconv.Itoa(saturation) + "%, " + strconv.Itoa(lightness) + "%" + hslSuffix
}

// ToRGB converts a cell color to 8-bit RGB. It understands the HSL strings
// produced by Format as well as "#rrggbb" hex colors.
func ToRGB(color string) (r, g, b uint8, ok bool) {
	color = strings.TrimSpace(color)
	if strings.HasPrefix(color, "#") {
		c, err := colorful.Hex(color)
		if err != nil {
			return 0, 0, 0, false
		}
		r, g, b = c.RGB255()
		return r, g, b, true
	}

	h, s, l, ok := parseHSL(color)
	if !ok {
		return 0, 0, 0, false
	}
	r, g, b = colorful.Hsl(h, s, l).Clamped().RGB255()
	return r, g, b, true
}

// parseHSL returns hue in degrees and saturation/lightness in [0,1]
func parseHSL(color string) (h, s, l float64, ok bool) {
	if !strings.HasPrefix(color, hslPrefix) || !strings.HasSuffix(color, hslSuffix) {
		return 0, 0, 0, false
	}

	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(color, hslPrefix), hslSuffix), ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}

	return vals[0], vals[1] / 100, vals[2] / 100, true
}
