package fluffy

import (
	"strings"
	"testing"
)

func TestVec4Kinds(t *testing.T) {
	if p := Point(1, 2, 3); !p.IsPoint() || p.IsVector() {
		t.Errorf("Point(1,2,3) = %v, want a point", p)
	}
	if v := Vector(1, 2, 3); !v.IsVector() || v.IsPoint() {
		t.Errorf("Vector(1,2,3) = %v, want a vector", v)
	}
}

func TestVec4Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec4
		want Vec4
	}{
		{"vector + vector", Vector(1, 2, 3).Add(Vector(4, 5, 6)), Vector(5, 7, 9)},
		{"point + vector", Point(1, 2, 3).Add(Vector(4, 5, 6)), Point(5, 7, 9)},
		{"point + point caps w", Point(1, 2, 3).Add(Point(1, 1, 1)), Point(2, 3, 4)},
		{"point - point", Point(5, 7, 9).Sub(Point(1, 2, 3)), Vector(4, 5, 6)},
		{"point - vector", Point(5, 7, 9).Sub(Vector(1, 2, 3)), Point(4, 5, 6)},
		{"scale keeps w", Vector(1, -2, 3).Scale(2), Vector(2, -4, 6)},
		{"mul", Vector(1, 2, 3).Mul(Vector(10, 100, 1000)), Vector(10, 200, 3000)},
		{"lerp mid", Point(0, 0, 0).Lerp(Point(2, 4, 6), 0.5), Point(1, 2, 3)},
		{"lerp start", Point(1, 1, 1).Lerp(Point(2, 4, 6), 0), Point(1, 1, 1)},
		{"lerp out of range", Point(1, 1, 1).Lerp(Point(2, 4, 6), 1.5), Vec4{}},
		{"lerp negative", Point(1, 1, 1).Lerp(Point(2, 4, 6), -0.1), Vec4{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec4Dot(t *testing.T) {
	if got := Vector(1, 2, 3).Dot(Vector(4, -5, 6)); got != 12 {
		t.Errorf("Dot() = %v, want 12", got)
	}
	// W does not contribute.
	if got := Point(1, 0, 0).Dot(Point(1, 0, 0)); got != 1 {
		t.Errorf("Dot() of points = %v, want 1", got)
	}
}

func TestVec4String(t *testing.T) {
	if s := Point(1, 2, 3).String(); !strings.HasPrefix(s, "Point ") {
		t.Errorf("String() = %q, want Point prefix", s)
	}
	if s := Vector(1, 2, 3).String(); !strings.HasPrefix(s, "Vector") {
		t.Errorf("String() = %q, want Vector prefix", s)
	}
}
