package stamp

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rc(10, 20, 100, 50)
	if r.MinX() != 10 || r.MaxX() != 110 {
		t.Errorf("horizontal edges = %v..%v, want 10..110", r.MinX(), r.MaxX())
	}
	if r.MinY() != 20 || r.MaxY() != 70 {
		t.Errorf("vertical edges = %v..%v, want 20..70", r.MinY(), r.MaxY())
	}
	if got, want := r.Center(), Pt(60, 45); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rc(0, 0, 100, 50)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(50, 25), true},
		{"corner", Pt(0, 0), true},
		{"edge", Pt(100, 25), true},
		{"outside right", Pt(100.1, 25), false},
		{"outside below", Pt(50, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectOutset(t *testing.T) {
	r := Rc(10, 10, 80, 40).Outset(5)
	want := Rc(5, 5, 90, 50)
	if r != want {
		t.Errorf("Outset(5) = %+v, want %+v", r, want)
	}
	if back := r.Outset(-5); back != Rc(10, 10, 80, 40) {
		t.Errorf("Outset(-5) = %+v, want original", back)
	}
}

func TestRectClampSize(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"above minimum unchanged", Rc(0, 0, 480, 320), Rc(0, 0, 480, 320)},
		{"width raised", Rc(5, 5, 40, 200), Rc(5, 5, 120, 200)},
		{"height raised", Rc(5, 5, 200, 10), Rc(5, 5, 200, 80)},
		{"both raised", Rc(5, 5, 1, 1), Rc(5, 5, 120, 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ClampSize(MinWidth, MinHeight); got != tt.want {
				t.Errorf("ClampSize = %+v, want %+v", got, tt.want)
			}
		})
	}
}
