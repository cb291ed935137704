package perf

import (
	"math"
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

func hasFinding(fs []Finding, msg string) bool {
	for _, f := range fs {
		if f.Message == msg {
			return true
		}
	}
	return false
}

func TestBareHullIsSound(t *testing.T) {
	m := New(testShip())
	r := m.Findings()

	if !r.Sound {
		t.Errorf("expected bare hull to be sound, got %+v", r)
	}
	if len(r.Failures) != 0 {
		t.Errorf("expected no failures, got %v", r.Failures)
	}
	// 10 ft of bow freeboard on 500 ft of hull is low.
	if !hasFinding(r.Info, "Ship tends to be wet forward") {
		t.Errorf("expected wet forward note, got %v", r.Info)
	}
}

func TestImpossibleDimensions(t *testing.T) {
	s := testShip()
	s.Hull.SetDisplacement(10000)
	r := New(s).Findings()

	if r.Sound {
		t.Error("expected Cb over 1.0 to be unsound")
	}
	if !hasFinding(r.Failures, "Displacement impossible with given dimensions") {
		t.Errorf("expected dimension failure, got %v", r.Failures)
	}
}

func TestArmorOverweight(t *testing.T) {
	s := testShip()
	s.Armor.Main = ship.Section{Thick: 50, Len: 500, Hgt: 20}
	r := New(s).Findings()

	if r.Sound {
		t.Error("expected 50in belt on 7000 tons to be unsound")
	}
	if !hasFinding(r.Failures, "Armour weight too much for hull") {
		t.Errorf("expected armour failure, got %v", r.Failures)
	}
}

func TestArmorFailureMonotonic(t *testing.T) {
	s := testShip()
	m := New(s)

	failed := false
	prev := 0.0
	for _, thick := range []float64{1, 5, 10, 20, 40, 60, 80} {
		s.Armor.Main = ship.Section{Thick: thick, Len: 500, Hgt: 20}

		if wgt := m.WgtArmor(); wgt < prev {
			t.Fatalf("armor weight fell from %f to %f at %f in", prev, wgt, thick)
		} else {
			prev = wgt
		}

		over := hasFinding(m.Findings().Failures, "Armour weight too much for hull")
		if failed && !over {
			t.Fatalf("armor failure cleared at %f in", thick)
		}
		failed = failed || over
	}
	if !failed {
		t.Error("expected the thickest belt to overweigh the hull")
	}
}

func TestFindingsReportSummary(t *testing.T) {
	r := NewReport()
	if !r.Sound {
		t.Error("expected empty report to be sound")
	}

	r.AddCaution("a")
	if !r.Sound {
		t.Error("expected cautions not to sink soundness")
	}

	r.AddFailure("b")
	if r.Sound {
		t.Error("expected failure to mark the report unsound")
	}
	if r.Summary != "1 failures, 1 cautions, 0 info" {
		t.Errorf("unexpected summary %q", r.Summary)
	}

	other := NewReport()
	other.AddInfo("c")
	r.Merge(other)
	if len(r.Info) != 1 || r.Sound {
		t.Errorf("merge lost findings: %+v", r)
	}
}

func TestFlotation(t *testing.T) {
	s := testShip()
	m := New(s)

	if m.Flotation() <= 0 {
		t.Errorf("expected positive flotation, got %f", m.Flotation())
	}

	s.Year = 1951
	if m.Flotation() != 0 {
		t.Errorf("expected zero flotation past the model horizon, got %f",
			m.Flotation())
	}
}

func TestFlotationFallsWithStability(t *testing.T) {
	s := testShip()
	h := &s.Hull
	h.FcFwd, h.FcAft = 20, 20
	h.FdFwd, h.FdAft = 20, 20
	h.AdFwd, h.AdAft = 20, 20
	h.QdFwd, h.QdAft = 20, 20
	m := New(s)

	// Trim moves only the stability adjustment; everything else in the
	// flotation chain holds still.
	prev := math.Inf(1)
	for _, trim := range []float64{60, 80, 100} {
		s.Trim = trim
		if sa := m.StabilityAdj(); sa >= 1.0 {
			t.Fatalf("expected unstable ship at trim %f, got %f", trim, sa)
		}
		f := m.Flotation()
		if f >= prev {
			t.Errorf("flotation did not fall at trim %f: %f -> %f", trim, prev, f)
		}
		prev = f
	}
}

func TestClassifyBroadsideIronclad(t *testing.T) {
	s := testShip()
	s.Batteries[0].Num = 10
	s.Batteries[0].Diam = 8
	s.Batteries[0].Mount = ship.MountBroadside
	s.Batteries[0].MountNum = 10
	s.Batteries[0].Groups[0].Below = 10
	s.Armor.Main = ship.Section{Thick: 4, Len: 300, Hgt: 8}
	s.Hull.FcLen = 0.1
	s.Hull.FdLen = 0.2

	types := New(s).Classify()
	found := false
	for _, ty := range types {
		if ty == "Armoured Frigate (Broadside Ironclad)" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a broadside ironclad, got %v", types)
	}
}
