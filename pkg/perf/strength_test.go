package perf

import "testing"

func TestCompositeStrengthEqual(t *testing.T) {
	if got := CompositeStrength(1.5, 1.5); got != 1.5 {
		t.Errorf("expected equal inputs to collapse, got %f", got)
	}
}

func TestCompositeStrengthWeighsWeakerSide(t *testing.T) {
	// A weak girder is punished harder than a weak cross-section.
	weakLong := CompositeStrength(2, 1)
	weakCross := CompositeStrength(1, 2)

	if !approxEqual(weakLong, 1.1892, 0.001) {
		t.Errorf("expected 1.1892 for weak girder, got %f", weakLong)
	}
	if !approxEqual(weakCross, 1.0718, 0.001) {
		t.Errorf("expected 1.0718 for weak cross-section, got %f", weakCross)
	}
	if weakCross >= weakLong {
		t.Error("expected a weak cross-section to drag the composite lower")
	}
}

func TestCompositeStrengthDegenerate(t *testing.T) {
	if got := CompositeStrength(0, 5); got != 0 {
		t.Errorf("expected zero cross strength to dominate, got %f", got)
	}
	if got := CompositeStrength(5, -1); got != -1 {
		t.Errorf("expected negative girder strength to dominate, got %f", got)
	}
}

func TestStrengthPositiveForBareHull(t *testing.T) {
	m := New(testShip())

	if m.StrCross() <= 0 {
		t.Errorf("expected positive cross strength, got %f", m.StrCross())
	}
	if m.StrLong() <= 0 {
		t.Errorf("expected positive girder strength, got %f", m.StrLong())
	}
	if m.StrComp() <= 0 {
		t.Errorf("expected positive composite strength, got %f", m.StrComp())
	}
}
