package palette

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		hue  float64
		want string
	}{
		{0, "hsl(0, 100%, 50%)"},
		{120, "hsl(120, 100%, 50%)"},
		{359.5, "hsl(359.5, 100%, 50%)"},
		{360, "hsl(0, 100%, 50%)"},
		{-90, "hsl(270, 100%, 50%)"},
		{-1e-20, "hsl(0, 100%, 50%)"},
		{math.NaN(), "hsl(0, 100%, 50%)"},
		{math.Inf(1), "hsl(0, 100%, 50%)"},
		{math.Inf(-1), "hsl(0, 100%, 50%)"},
	}

	for _, tt := range tests {
		if got := Format(tt.hue); got != tt.want {
			t.Fatalf("Format(%v) = %q, expected %q", tt.hue, got, tt.want)
		}
	}
}

func TestFreshUsesSource(t *testing.T) {
	if got := Fresh(FixedHue(42)); got != "hsl(42, 100%, 50%)" {
		t.Fatalf("Fresh(FixedHue(42)) = %q", got)
	}

	if got := Fresh(FixedHue(math.NaN())); got != "hsl(0, 100%, 50%)" {
		t.Fatalf("Fresh(FixedHue(NaN)) = %q", got)
	}
	if _, _, _, ok := ToRGB(Fresh(FixedHue(math.Inf(1)))); !ok {
		t.Fatal("color from an infinite hue should still be renderable")
	}

	if got := Fresh(nil); !strings.HasPrefix(got, "hsl(") {
		t.Fatalf("Fresh(nil) = %q, expected an hsl color", got)
	}
}

func TestSeededHueIsReproducible(t *testing.T) {
	a := SeededHue(rand.New(rand.NewPCG(7, 0)))
	b := SeededHue(rand.New(rand.NewPCG(7, 0)))
	for i := 0; i < 10; i++ {
		ha, hb := a(), b()
		if ha != hb {
			t.Fatalf("draw %d differs: %v vs %v", i, ha, hb)
		}
		if ha < 0 || ha >= 360 {
			t.Fatalf("hue %v out of range", ha)
		}
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		color   string
		r, g, b uint8
		ok      bool
	}{
		{"hsl(0, 100%, 50%)", 255, 0, 0, true},
		{"hsl(120, 100%, 50%)", 0, 255, 0, true},
		{"hsl(240, 100%, 50%)", 0, 0, 255, true},
		{"#ff8000", 255, 128, 0, true},
		{"red", 0, 0, 0, false},
		{"hsl(1, 2)", 0, 0, 0, false},
		{"hsl(x, 100%, 50%)", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}

	for _, tt := range tests {
		r, g, b, ok := ToRGB(tt.color)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("ToRGB(%q) = (%d,%d,%d,%v), expected (%d,%d,%d,%v)",
				tt.color, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
		}
	}
}
