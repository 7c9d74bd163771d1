package types

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 10, Y: 20}
	if got := p.Add(Point{X: 5, Y: -3}); got != (Point{X: 15, Y: 17}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Point{X: 4, Y: 25}); got != (Point{X: 6, Y: -5}) {
		t.Errorf("Sub = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Min: Point{X: 10, Y: 4}, Max: Point{X: 30, Y: 20}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 4}, true},  // top-left corner
		{Point{X: 30, Y: 20}, true}, // bottom-right corner
		{Point{X: 20, Y: 12}, true},
		{Point{X: 9, Y: 12}, false},
		{Point{X: 31, Y: 12}, false},
		{Point{X: 20, Y: 3}, false},
		{Point{X: 20, Y: 21}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
