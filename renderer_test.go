package stamp

import (
	"math"
	"testing"
)

// fixedMeasurer reports a constant extent regardless of text, standing
// in for a real font stack in geometry tests.
type fixedMeasurer struct {
	w, h float64
}

func (m fixedMeasurer) MeasureString(string, float64) (float64, float64) {
	return m.w, m.h
}

func newTestRenderer(w, h float64) *Renderer {
	return NewRenderer(WithMeasurer(fixedMeasurer{w: w, h: h}))
}

func TestRenderPlacementGridScenario(t *testing.T) {
	// 480x320 viewport, 10x20 text extent, spacing 0: step 10x20,
	// inset 40, grid 56 columns by 20 rows.
	r := newTestRenderer(10, 20)
	cfg := DefaultConfig()
	cfg.Text = "A"
	cfg.Spacing = 0

	frame := r.Render(cfg, Sz(480, 320))
	if got, want := len(frame.Placements), 56*20; got != want {
		t.Fatalf("placement count = %d, want %d", got, want)
	}

	first := frame.Placements[0]
	if first.Pos != Pt(-40, -40) {
		t.Errorf("first placement at %v, want (-40,-40)", first.Pos)
	}
	if first.Text != "A" {
		t.Errorf("placement text = %q, want %q", first.Text, "A")
	}

	// Row-major order with exact steps: second placement one stepX over.
	if frame.Placements[1].Pos != Pt(-30, -40) {
		t.Errorf("second placement at %v, want (-30,-40)", frame.Placements[1].Pos)
	}
}

func TestRenderPlacementCountBounded(t *testing.T) {
	tests := []struct {
		name     string
		viewport Size
		extent   Size
		spacing  float64
	}{
		{"small viewport", Sz(100, 100), Sz(10, 20), 0},
		{"default viewport", Sz(480, 320), Sz(120, 40), 24},
		{"wide viewport", Sz(1920, 100), Sz(30, 30), 5},
		{"tall viewport", Sz(100, 1920), Sz(30, 30), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(tt.extent.W, tt.extent.H)
			cfg := DefaultConfig()
			cfg.Spacing = tt.spacing

			frame := r.Render(cfg, tt.viewport)

			stepX := tt.extent.W + tt.spacing
			stepY := tt.extent.H + tt.spacing
			step := math.Max(stepX, stepY)
			bound := math.Ceil((tt.viewport.W+4*step)/stepX+1) *
				math.Ceil((tt.viewport.H+4*step)/stepY+1)
			if got := float64(len(frame.Placements)); got > bound {
				t.Errorf("placement count %v exceeds coverage bound %v", got, bound)
			}
			if len(frame.Placements) == 0 {
				t.Error("no placements for a non-degenerate config")
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := newTestRenderer(37, 11)
	cfg := DefaultConfig()
	viewport := Sz(640, 480)

	a := r.Render(cfg, viewport)
	b := r.Render(cfg, viewport)

	if len(a.Placements) != len(b.Placements) {
		t.Fatalf("placement counts differ: %d vs %d", len(a.Placements), len(b.Placements))
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a.Placements[i], b.Placements[i])
		}
	}
	if a.Transform != b.Transform {
		t.Errorf("transforms differ: %+v vs %+v", a.Transform, b.Transform)
	}
	if a.Style != b.Style || a.Clip != b.Clip {
		t.Error("style or clip differ between identical renders")
	}
}

func TestRenderDegenerateInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		r      *Renderer
	}{
		{"empty text", func(c *Config) { c.Text = "" }, newTestRenderer(10, 20)},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, newTestRenderer(10, 20)},
		{"negative font size", func(c *Config) { c.FontSize = -5 }, newTestRenderer(10, 20)},
		{"zero step", func(c *Config) { c.Spacing = 0 }, newTestRenderer(0, 0)},
		{"no measurer", func(*Config) {}, NewRenderer()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			frame := tt.r.Render(cfg, Sz(480, 320))
			if len(frame.Placements) != 0 {
				t.Errorf("degenerate input produced %d placements, want 0", len(frame.Placements))
			}
		})
	}
}

func TestRenderEmptyViewport(t *testing.T) {
	r := newTestRenderer(10, 20)
	frame := r.Render(DefaultConfig(), Sz(0, 0))
	if len(frame.Placements) != 0 {
		t.Errorf("empty viewport produced %d placements", len(frame.Placements))
	}
}

func TestRenderTransformRotatesAboutViewportCenter(t *testing.T) {
	r := newTestRenderer(10, 20)
	cfg := DefaultConfig()
	cfg.Angle = -30
	viewport := Sz(480, 320)

	frame := r.Render(cfg, viewport)
	center := viewport.Center()
	if got := frame.Transform.TransformPoint(center); !pointsClose(got, center) {
		t.Errorf("viewport center moved under transform: %v", got)
	}

	// The transform is the configured rotation: a point one unit right
	// of center lands cos/sin away.
	p := frame.Transform.TransformPoint(center.Add(Pt(1, 0)))
	rad := Radians(-30)
	want := center.Add(Pt(math.Cos(rad), math.Sin(rad)))
	if !pointsClose(p, want) {
		t.Errorf("rotated offset = %v, want %v", p, want)
	}
}

func TestRenderAngleNormalizedBeforeRotation(t *testing.T) {
	r := newTestRenderer(10, 20)
	viewport := Sz(480, 320)

	a := DefaultConfig()
	a.Angle = -30
	b := DefaultConfig()
	b.Angle = 330

	fa := r.Render(a, viewport)
	fb := r.Render(b, viewport)
	if math.Abs(fa.Transform.A-fb.Transform.A) > epsilon ||
		math.Abs(fa.Transform.B-fb.Transform.B) > epsilon {
		t.Errorf("equivalent angles produced different transforms: %+v vs %+v",
			fa.Transform, fb.Transform)
	}
}

func TestRenderStyleDoesNotAffectGeometry(t *testing.T) {
	r := newTestRenderer(10, 20)
	viewport := Sz(480, 320)

	a := DefaultConfig()
	b := DefaultConfig()
	b.Opacity = 0.9
	b.Color = Hex("#FF0000")

	fa := r.Render(a, viewport)
	fb := r.Render(b, viewport)
	if len(fa.Placements) != len(fb.Placements) {
		t.Fatal("style change altered placement count")
	}
	for i := range fa.Placements {
		if fa.Placements[i] != fb.Placements[i] {
			t.Fatalf("style change moved placement %d", i)
		}
	}
}

func TestRenderStep(t *testing.T) {
	r := newTestRenderer(10, 20)
	cfg := DefaultConfig()
	cfg.Spacing = 4

	sx, sy := r.Step(cfg)
	if sx != 14 || sy != 24 {
		t.Errorf("Step = (%v, %v), want (14, 24)", sx, sy)
	}

	cfg.Text = ""
	if sx, sy = r.Step(cfg); sx != 0 || sy != 0 {
		t.Errorf("degenerate Step = (%v, %v), want (0, 0)", sx, sy)
	}
}
