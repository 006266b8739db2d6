package stamp

import "testing"

func TestClipRegionContains(t *testing.T) {
	c := NewClipRegion(Sz(480, 320))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(240, 160), true},
		{"edge midpoint", Pt(0, 160), true},
		{"outside viewport", Pt(-1, 160), false},
		{"square corner cut off", Pt(0, 0), false},
		{"just inside corner arc", Pt(8, 8), true},
		{"inside corner square off arc", Pt(1, 1), false},
		{"opposite corner cut off", Pt(480, 320), false},
		{"near corner but past it", Pt(479.9, 319.9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClipRegionZeroRadiusIsRect(t *testing.T) {
	c := ClipRegion{Viewport: Sz(100, 50)}
	if !c.Contains(Pt(0, 0)) || !c.Contains(Pt(100, 50)) {
		t.Error("zero-radius clip should include square corners")
	}
}

func TestClipRegionPathUsesFixedRadius(t *testing.T) {
	c := NewClipRegion(Sz(480, 320))
	if c.Radius != ClipCornerRadius {
		t.Errorf("Radius = %v, want %v", c.Radius, ClipCornerRadius)
	}
	if got := countVerbs(c.Path(), VerbCubicTo); got != 4 {
		t.Errorf("clip path corner curves = %d, want 4", got)
	}
}
