package perf

import (
	"math"
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func toPlace(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// testShip is a bare 7000 ton, 500 ft hull with no weapons or machinery.
func testShip() *ship.Ship {
	s := ship.New()
	s.Year = 1905
	h := &s.Hull

	h.SetDisplacement(7000)
	h.SetLwl(500)
	h.B = 50
	h.BB = h.B
	h.T = 10

	h.FcLen = 0.20
	h.FcFwd = 10
	h.FcAft = 10

	h.FdLen = 0.30
	h.FdFwd = 0.20
	h.FdAft = 0.20

	h.AdFwd = 0.20
	h.AdAft = 0.20

	h.QdLen = 0.15
	h.QdFwd = 0.20
	h.QdAft = 0.20

	return s
}

func TestYearAdj(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{1889, 0.985},
		{1890, 1.0},
		{1949, 1.0},
		{1950, 1.0},
		{1951, 0.0},
	}
	for _, tt := range tests {
		if got := toPlace(YearAdj(tt.year), 5); got != tt.want {
			t.Errorf("YearAdj(%d): expected %v, got %v", tt.year, tt.want, got)
		}
	}
}

func TestCrew(t *testing.T) {
	s := testShip()
	s.Hull.SetDisplacement(0)
	m := New(s)
	if m.CrewMax() != 0 || m.CrewMin() != 0 {
		t.Errorf("expected no crew at zero displacement, got %d/%d",
			m.CrewMax(), m.CrewMin())
	}

	s.Hull.SetDisplacement(1000)
	if m.CrewMax() != 115 {
		t.Errorf("expected crew max 115 at 1000 tons, got %d", m.CrewMax())
	}
	if m.CrewMin() != 88 {
		t.Errorf("expected crew min 88 at 1000 tons, got %d", m.CrewMin())
	}
}

func torpShip(kind ship.TorpMountKind) *ship.Ship {
	s := testShip()
	s.Torps[0] = ship.Torpedoes{
		Year:   1920,
		Num:    3,
		Mounts: 2,
		Diam:   20,
		Len:    10,
		Mount:  kind,
	}
	s.Torps[1].Num = 0
	return s
}

func TestDeckSpace(t *testing.T) {
	tests := []struct {
		kind ship.TorpMountKind
		want float64
	}{
		{ship.TorpFixedTubes, 0.0020},
		{ship.TorpDeckSideTubes, 0.0039},
		{ship.TorpCenterTubes, 0.0415},
		{ship.TorpDeckReloads, 0.0039},
		{ship.TorpBowTubes, 0.0},
		{ship.TorpSternTubes, 0.0},
		{ship.TorpBowAndSternTubes, 0.0},
		{ship.TorpSubmergedSideTubes, 0.0},
		{ship.TorpSubmergedReloads, 0.0},
	}
	for _, tt := range tests {
		m := New(torpShip(tt.kind))
		if got := toPlace(m.DeckSpace(), 4); got != tt.want {
			t.Errorf("DeckSpace(%s): expected %v, got %v", tt.kind, tt.want, got)
		}
	}
}

func TestHullSpace(t *testing.T) {
	tests := []struct {
		kind ship.TorpMountKind
		want float64
	}{
		{ship.TorpFixedTubes, 0.0},
		{ship.TorpDeckSideTubes, 0.0},
		{ship.TorpCenterTubes, 0.0},
		{ship.TorpDeckReloads, 0.0},
		{ship.TorpBowTubes, 0.0064},
		{ship.TorpSternTubes, 0.0064},
		{ship.TorpBowAndSternTubes, 0.0064},
		{ship.TorpSubmergedSideTubes, 0.0064},
		{ship.TorpSubmergedReloads, 0.0011},
	}
	for _, tt := range tests {
		m := New(torpShip(tt.kind))
		if got := toPlace(m.HullSpace(), 4); got != tt.want {
			t.Errorf("HullSpace(%s): expected %v, got %v", tt.kind, tt.want, got)
		}
	}
}

func TestDisplacements(t *testing.T) {
	s := testShip()
	m := New(s)

	// No machinery or magazines: the load is stores only.
	if !approxEqual(m.WgtLoad(), 140, 0.01) {
		t.Errorf("expected 140 tons of stores, got %f", m.WgtLoad())
	}
	if !approxEqual(m.DLite(), 6860, 0.01) {
		t.Errorf("expected light displacement 6860, got %f", m.DLite())
	}
	if m.DStd() != 7000 || m.DMax() != 7000 {
		t.Errorf("expected std and max at 7000 without bunkers, got %f/%f",
			m.DStd(), m.DMax())
	}
}
