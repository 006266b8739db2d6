package stamp

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"white", "#FFFFFF", RGBA{1, 1, 1, 1}},
		{"black", "000000", RGBA{0, 0, 0, 1}},
		{"short red", "#F00", RGBA{1, 0, 0, 1}},
		{"short with alpha", "#F00A", RGBA{1, 0, 0, 170.0 / 255}},
		{"with alpha", "#FF000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"invalid length", "#12345", RGBA{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if math.Abs(got.R-tt.want.R) > 1e-9 ||
				math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 ||
				math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  float64
	}{
		{"in range", 0.15, 0.15},
		{"below range", -0.5, 0},
		{"above range", 1.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := White.WithAlpha(tt.alpha)
			if got.A != tt.want {
				t.Errorf("WithAlpha(%v).A = %v, want %v", tt.alpha, got.A, tt.want)
			}
			if got.R != 1 || got.G != 1 || got.B != 1 {
				t.Errorf("WithAlpha changed color channels: %+v", got)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(c.Color())
	const tol = 1.0 / 255 // 8-bit quantization through color.NRGBA
	if math.Abs(got.R-c.R) > tol || math.Abs(got.G-c.G) > tol ||
		math.Abs(got.B-c.B) > tol || math.Abs(got.A-c.A) > tol {
		t.Errorf("FromColor(Color()) = %+v, want ≈%+v", got, c)
	}
}
