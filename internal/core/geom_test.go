package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero height box inside",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 5, 10, 0),
			expected: true,
		},
		{
			name:     "zero height box on bottom edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}

			// Intersection should be symmetric
			reverse := tc.b.Intersects(tc.a)
			if reverse != tc.expected {
				t.Errorf("Reverse Intersects() = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestSquareAround(t *testing.T) {
	b := SquareAround(80, 300, 12)

	if b.X != 68 || b.Y != 288 {
		t.Errorf("SquareAround origin = (%v, %v), expected (68, 288)", b.X, b.Y)
	}
	if b.W != 24 || b.H != 24 {
		t.Errorf("SquareAround size = %vx%v, expected 24x24", b.W, b.H)
	}
	if b.Right() != 92 || b.Bottom() != 312 {
		t.Errorf("SquareAround edges = (%v, %v), expected (92, 312)", b.Right(), b.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-0.8, -0.4, 0.6); got != -0.4 {
		t.Errorf("ClampF(-0.8) = %v, expected -0.4", got)
	}
	if got := ClampF(0.9, -0.4, 0.6); got != 0.6 {
		t.Errorf("ClampF(0.9) = %v, expected 0.6", got)
	}
	if got := ClampF(0.1, -0.4, 0.6); got != 0.1 {
		t.Errorf("ClampF(0.1) = %v, expected 0.1", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Error("Min(3, 5) should be 3")
	}
	if Min(5, 3) != 3 {
		t.Error("Min(5, 3) should be 3")
	}
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
}
