package stamp

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want float64
	}{
		{"in range", -30, -30},
		{"boundary high", 180, 180},
		{"boundary low", -180, -180},
		{"wraps high", 270, -90},
		{"wraps low", -270, 90},
		{"full turn", 360, 0},
		{"many turns", 750, 30},
		{"negative turns", -750, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDegrees(tt.deg); math.Abs(got-tt.want) > epsilon {
				t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Text != "© COPYRIGHT" {
		t.Errorf("Text = %q", cfg.Text)
	}
	if cfg.Angle != -30 || cfg.FontSize != 36 || cfg.Opacity != 0.15 || cfg.Spacing != 24 {
		t.Errorf("numeric defaults = %+v", cfg)
	}
	if cfg.Color != White {
		t.Errorf("Color = %+v, want white", cfg.Color)
	}
	if cfg.Locked {
		t.Error("Locked = true, want false")
	}
	if cfg.Frame != nil {
		t.Error("Frame stored on first run, want nil")
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{Angle: 400, Opacity: 2, Spacing: -5}.Normalize()
	if cfg.Angle != 40 {
		t.Errorf("Angle = %v, want 40", cfg.Angle)
	}
	if cfg.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", cfg.Opacity)
	}
	if cfg.Spacing != 0 {
		t.Errorf("Spacing = %v, want 0", cfg.Spacing)
	}
}

func TestConfigPaintFoldsOpacity(t *testing.T) {
	cfg := DefaultConfig()
	paint := cfg.Paint()
	if math.Abs(paint.Color.A-0.15) > epsilon {
		t.Errorf("paint alpha = %v, want 0.15", paint.Color.A)
	}
	if paint.Color.R != 1 || paint.Color.G != 1 || paint.Color.B != 1 {
		t.Errorf("paint color channels changed: %+v", paint.Color)
	}

	// A translucent color compounds with overlay opacity.
	cfg.Color = RGBA{R: 1, G: 0, B: 0, A: 0.5}
	cfg.Opacity = 0.5
	if got := cfg.Paint().Color.A; math.Abs(got-0.25) > epsilon {
		t.Errorf("compound alpha = %v, want 0.25", got)
	}
}
