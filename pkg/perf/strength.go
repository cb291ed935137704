package perf

import (
	"math"

	"github.com/orionarts/sharpie/pkg/ship"
)

// strengthenedBulkheadWgt returns the torpedo bulkhead weight when it is
// worked into the hull girder, zero when it is merely additional plating.
func (m *Model) strengthenedBulkheadWgt() float64 {
	s := m.s
	if s.Armor.BHKind != ship.BulkheadStrengthened {
		return 0
	}
	return s.Armor.Bulkhead.Wgt(s.Hull.Lwl, s.Hull.Cwp(), s.Hull.B)
}

// gunConcentration sums the per-battery broadside concentration penalty.
func (m *Model) gunConcentration() float64 {
	total := m.WgtBroad()
	var c float64
	for i := range m.s.Batteries {
		c += m.s.Batteries[i].Concentration(total)
	}
	return c
}

// StrCross is relative cross-sectional strength.
func (m *Model) StrCross() float64 {
	s := m.s
	h := &s.Hull

	concentration := 1.0
	if m.WgtBroad() > 0 {
		concentration = 1.0 + m.gunConcentration()
	}

	gunLoad := (m.WgtBroad() + m.WgtBorne() + m.WgtGunArmor() +
		s.Armor.CTFwd.Wgt(h.Disp) + s.Armor.CTAft.Wgt(h.Disp)) *
		concentration * m.GunSuperFactor()
	loading := (h.Disp + gunLoad + math.Max(s.Engine.HpMax(h), 0)/100.0) / h.Disp

	cross := m.WgtStruct() /
		math.Sqrt(h.BB*(h.T+h.FreeboardDist())) / loading * 0.6

	if s.Year < 1900 {
		cross *= 1.0 - (1900.0-float64(s.Year))/100.0
	}
	return cross
}

// StrLong is relative longitudinal strength.
func (m *Model) StrLong() float64 {
	s := m.s
	h := &s.Hull

	girder := m.WgtHullPlus() + m.strengthenedBulkheadWgt()

	bending := math.Pow(h.Lwl/(h.T+h.FreeCap(m.AllBroadsideBelow())), 2.0) *
		(h.Disp +
			s.Armor.End.Wgt(h.Lwl, h.Cwp(), h.B)*3.0 +
			(m.WgtBorne()+m.WgtGunArmor())*m.SuperFactorLong()*2.0)

	era := 1.0
	if s.Year < 1900 {
		// Intentional integer truncation.
		era = float64(1 - (1900-s.Year)/100)
	}

	return girder / bending * 850.0 * era
}

// CompositeStrength blends cross-sectional and longitudinal strength,
// weighting whichever is weaker. Equal inputs collapse to themselves.
func CompositeStrength(cross, long float64) float64 {
	if cross <= 0 || long <= 0 {
		return math.Min(cross, long)
	}
	if cross > long {
		return long * math.Pow(cross/long, 0.25)
	}
	return cross * math.Pow(long/cross, 0.1)
}

// StrComp is the composite hull strength; below 0.5 the hull fails.
func (m *Model) StrComp() float64 {
	return CompositeStrength(m.StrCross(), m.StrLong())
}
