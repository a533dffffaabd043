package geom

import "testing"

func TestClampFloorsAtLowWhenRangeInverted(t *testing.T) {
	// World narrower than the viewport gives hi < lo; offset must floor at 0.
	if got := Clamp(50, 0, -200); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Expected 100, got %v", got)
	}
}

func TestPercentResolve(t *testing.T) {
	p := Percent{X: 74, Y: 66}
	got := p.Resolve(Size{W: 2000, H: 1000})
	if got.X != 1480 || got.Y != 660 {
		t.Errorf("Expected (1480, 660), got (%v, %v)", got.X, got.Y)
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	for _, p := range []Point{{10, 10}, {30, 30}, {20, 15}} {
		if !r.Contains(p) {
			t.Errorf("Expected %v inside %v", p, r)
		}
	}
	if r.Contains(Point{X: 31, Y: 20}) {
		t.Error("Expected point right of rect to be outside")
	}
}

func TestDistanceAndLerp(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Expected 5, got %v", d)
	}
	if v := Lerp(0, 100, 0.15); v != 15 {
		t.Errorf("Expected 15, got %v", v)
	}
}

func TestRectPercentOf(t *testing.T) {
	got := Rect{X: 50, Y: 10, W: 25, H: 50}.PercentOf(Rect{X: 100, Y: 20, W: 800, H: 400})
	want := Rect{X: 500, Y: 60, W: 200, H: 200}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
