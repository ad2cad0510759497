package core

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		in    string
		lower bool
		want  string
	}{
		{in: "  CSE ", want: "CSE"},
		{in: "\tAdmin\n", lower: true, want: "admin"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := CleanString(tt.in, tt.lower); got != tt.want {
			t.Errorf("CleanString(%q, %v) = %q, want %q", tt.in, tt.lower, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole float64
		want        float64
	}{
		{1, 2, 50},
		{2, 3, 66.67},
		{1, 3, 33.33},
		{5, 0, 0},
		{0, 4, 0},
		{4, 4, 100},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%v, %v) = %v, want %v", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Rajesh Kumar", "KUMAR") {
		t.Error("ContainsFold() should ignore case")
	}
	if ContainsFold("Rajesh", "priya") {
		t.Error("ContainsFold() matched a missing substring")
	}
}
