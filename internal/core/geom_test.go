package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	screen := NewRect(0, 0, 64, 128)

	got := screen.Intersect(NewRect(-5, 120, 10, 20))
	if got != NewRect(0, 120, 5, 8) {
		t.Errorf("Intersect() = %+v, expected {0 120 5 8}", got)
	}

	if !screen.Intersect(NewRect(70, 0, 4, 4)).Empty() {
		t.Error("Intersect() of disjoint rects should be empty")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(20, 5).Sub(Pt(32, 18))
	if p != Pt(-12, -13) {
		t.Errorf("Sub() = %+v, expected (-12, -13)", p)
	}
	if Pt(15, 0).Add(Pt(6, 12)) != Pt(21, 12) {
		t.Error("Add() should translate both axes")
	}
}

func TestSaturatingAdd(t *testing.T) {
	if SaturatingAdd(3, 4) != 7 {
		t.Error("SaturatingAdd(3, 4) should be 7")
	}
	if SaturatingAdd(maxInt, 1) != maxInt {
		t.Error("SaturatingAdd should stop at the maximum int")
	}
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Error("Abs should drop the sign")
	}
}
