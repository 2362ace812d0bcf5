package core

import (
	"image/color"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"negative origin", NewRect(-5, -5, 10, 10), NewRect(0, 0, 20, 20), NewRect(0, 0, 5, 5)},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.expected {
				t.Errorf("Intersect() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if NewRect(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Just inside bottom-right
		{30, 30, false}, // Bottom-right corner (exclusive)
		{5, 15, false},
		{15, 35, false},
	}

	for _, tt := range tests {
		got := r.Contains(tt.x, tt.y)
		if got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestColor(t *testing.T) {
	if got := FromFloat(1, 0, 0.5).Hex(); got != "#ff0080" {
		t.Errorf("Hex() = %q, expected #ff0080", got)
	}
	if got := FromFloat(2, -1, 0); got != red {
		t.Errorf("FromFloat clamps to %v, expected %v", got, red)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name     string
		in       color.Color
		expected Color
	}{
		{"opaque", color.NRGBA{R: 255, G: 0, B: 128, A: 255}, Color{255, 0, 128}},
		{"half transparent", color.NRGBA{R: 255, G: 0, B: 0, A: 128}, red},
		{"transparent", color.NRGBA{R: 255, G: 255, B: 255, A: 0}, black},
		{"round trip", Color{12, 34, 56}, Color{12, 34, 56}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.expected {
				t.Errorf("FromColor() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
