package units

import (
	"math"
	"testing"
)

func TestParseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want System
	}{
		{"Metric", Metric},
		{"metric", Metric},
		{"1", Metric},
		{"British", Imperial},
		{"0", Imperial},
		{"", Imperial},
	}
	for _, tt := range tests {
		if got := ParseSystem(tt.in); got != tt.want {
			t.Errorf("ParseSystem(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestToMetric(t *testing.T) {
	tests := []struct {
		q    Quantity
		in   float64
		want float64
	}{
		{LengthLong, 100, 30.48},
		{LengthSmall, 12, 304.8},
		{Weight, 2240, 1016.05},
		{Area, 100, 9.29},
		{Power, 1000, 745.7},
	}
	for _, tt := range tests {
		if got := ToMetric(tt.in, tt.q); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("ToMetric(%v, %v): expected %v, got %v",
				tt.in, tt.q, tt.want, got)
		}
	}
}
