package perf

import (
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

// gunShip is the bare test hull with a twin pair of 12 in turrets.
func gunShip() *ship.Ship {
	s := testShip()
	b := &s.Batteries[0]
	b.Num = 4
	b.Diam = 12
	b.Len = 40
	b.Year = 1900
	b.Shells = 80
	b.Mount = ship.MountTurret
	b.MountNum = 2
	b.Groups[0] = ship.GunGroup{On: 2, Layout: ship.LayoutTwin, Dist: ship.CenterlineEven}
	return s
}

func TestStabilityAdjAtNeutralTrim(t *testing.T) {
	m := New(gunShip())
	if !approxEqual(m.StabilityAdj(), 2.0960, 0.001) {
		t.Errorf("expected stability 2.0960 at neutral trim, got %f", m.StabilityAdj())
	}
}

func TestRecoilDividesBySteadiness(t *testing.T) {
	s := gunShip()
	m := New(s)

	// Steadiness here is well below the neutral trim of 50, so a
	// divisor built on trim instead would give 0.15060.
	if !approxEqual(m.Steadiness(), 13.895, 0.001) {
		t.Errorf("expected steadiness 13.895, got %f", m.Steadiness())
	}
	if !approxEqual(m.Recoil(), 0.12138, 0.0001) {
		t.Errorf("expected recoil 0.12138, got %f", m.Recoil())
	}
}

func TestSeaGradeKeepsUnratedBand(t *testing.T) {
	s := testShip()
	h := &s.Hull

	// A high-sided hull with low trim lands between the poor and good
	// seaboat grades.
	h.FcFwd, h.FcAft = 20, 20
	h.FdFwd, h.FdAft = 20, 20
	h.AdFwd, h.AdAft = 20, 20
	h.QdFwd, h.QdAft = 20, 20
	s.Trim = 30

	m := New(s)
	sk := m.Seakeeping()
	if sk < 0.995 || sk >= 1.2 {
		t.Fatalf("expected seakeeping inside 0.995..1.2, got %f", sk)
	}
	if m.SeaGrade() != ErrorSea {
		t.Errorf("expected the unrated grade, got %v", m.SeaGrade())
	}

	desc := m.SeakeepingDesc()
	found := false
	for _, line := range desc {
		if line == "Invalid SeaType" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the unrated band advisory, got %v", desc)
	}

	r := m.Findings()
	if !hasFinding(r.Cautions, "Seakeeping falls in an unrated band (0.995 to 1.2)") {
		t.Errorf("expected the unrated band caution, got %v", r.Cautions)
	}
}
