package perf

import "math"

// stability is the inherent stability before the trim adjustment: a
// ratio of righting moment to the moment of everything carried high.
func (m *Model) stability() float64 {
	s := m.s
	h := &s.Hull
	cwp := h.Cwp()

	a := (s.Armor.CTFwd.Wgt(h.Disp)+s.Armor.CTAft.Wgt(h.Disp))*5.0 +
		(m.WgtBorne()+m.WgtGunArmor())*(2.0*m.GunSuperFactor()-1.0)*4.0 +
		float64(s.Wgts.Hull)*2.0 +
		float64(s.Wgts.On)*3.0 +
		float64(s.Wgts.Above)*4.0 +
		s.Armor.Upper.Wgt(h.Lwl, cwp, h.B)*2.0 +
		s.Armor.Main.Wgt(h.Lwl, cwp, h.B) +
		s.Armor.End.Wgt(h.Lwl, cwp, h.B) +
		s.Armor.Deck.Wgt(h, m.WgtMag(), m.deckEngine()) +
		(m.WgtHullPlus()+m.WgtGuns()+m.WgtGunMounts()-m.WgtBorne())*1.5*h.Freeboard()/h.T

	b := a
	if dr := m.DeckRoom(); dr < 1.0 {
		b += (m.WgtEngine() + float64(s.Wgts.Vital) + float64(s.Wgts.Void)) *
			(1.0 - math.Pow(dr, 2.0))
	}

	if b <= 0 {
		return b
	}
	return math.Sqrt(h.Disp*(h.BB/h.T)/b*0.5) *
		math.Pow(8.76755/h.Len2Beam(), 0.25)
}

// StabilityAdj is stability after the trim adjustment. Below 1.00 the
// ship is unstable.
func (m *Model) StabilityAdj() float64 {
	return m.stability() * ((50.0-m.s.Trim)/150.0 + 1.0)
}

// Metacenter is the metacentric height in feet.
func (m *Model) Metacenter() float64 {
	return math.Pow(m.s.Hull.B, 1.5) * (m.StabilityAdj() - 0.5) / 0.5 / 200.0
}

// RollPeriod is the natural roll period in seconds. Zero when the ship
// has no positive metacentric height to roll about.
func (m *Model) RollPeriod() float64 {
	mc := m.Metacenter()
	if mc <= 0 {
		return 0
	}
	return 0.42 * m.s.Hull.BB / math.Sqrt(mc)
}

// seaboat folds freeboard, stability, topweight and hull proportions
// into one hull-quality figure, capped at 2.
func (m *Model) seaboat() float64 {
	s := m.s
	h := &s.Hull
	freeCap := h.FreeCap(m.AllBroadsideBelow())

	topweight := h.Disp +
		s.Armor.End.Wgt(h.Lwl, h.Cwp(), h.B)*3.0 +
		m.WgtHullPlus()/3.0 +
		(m.WgtBorne()+m.WgtGunArmor())*m.SuperFactorLong()

	a := math.Sqrt(freeCap/(2.4*math.Pow(h.Disp, 0.2))) *
		math.Pow(m.stability()*5.0*(h.BB/h.Lwl), 0.2) *
		math.Sqrt(freeCap/h.Lwl*20.0) *
		(h.Disp / topweight) * 8.0

	b := a
	if h.T/h.BB < 0.3 {
		b *= math.Sqrt(h.T / h.BB / 0.3)
	}

	c := b
	rf := s.Engine.Rf(s.Engine.VMax, h.WS())
	rw := s.Engine.Rw(s.Engine.VMax, h)
	if frac := rf / (rf + rw); frac < 0.55 && s.Engine.VMax > 0 {
		c *= math.Pow(frac, 2.0)
	} else {
		c *= 0.3025
	}

	return math.Min(c, 2.0)
}

// Steadiness is the dynamic steadiness as a gun platform, 0 to 100.
func (m *Model) Steadiness() float64 {
	return math.Min(m.s.Trim*m.seaboat(), 100.0)
}

// Seakeeping is the overall seaboat quality; 1.00 is average.
func (m *Model) Seakeeping() float64 {
	return m.seaboat() * math.Min(m.Steadiness(), 50.0) / 50.0
}

// Recoil measures the ship's ability to absorb her own gunfire.
// Above 1.00 the firing arcs must be restricted.
func (m *Model) Recoil() float64 {
	s := m.s
	h := &s.Hull
	r := (m.WgtBroad() / h.Disp * h.FreeboardDist() * m.GunSuperFactor() / h.BB) *
		math.Pow(math.Pow(h.Disp, 1.0/3.0)/h.BB*3.0, 2.0) * 7.0
	if sa := m.StabilityAdj(); sa > 0 {
		r /= sa * ((50.0-m.Steadiness())/150.0 + 1.0)
	}
	return r
}

// Sea grades overall seakeeping.
type Sea int

const (
	BadSea Sea = iota
	PoorSea
	ErrorSea
	GoodSea
	FineSea
)

// SeaGrade converts the seakeeping figure into its grade. The band
// between 0.995 and 1.2 falls between PoorSea and GoodSea without a
// name of its own; it is kept as the Error grade, not merged into a
// neighbour.
func (m *Model) SeaGrade() Sea {
	sk := m.Seakeeping()
	switch {
	case sk < 0.7:
		return BadSea
	case sk < 0.995:
		return PoorSea
	case sk >= 1.5:
		return FineSea
	case sk >= 1.2:
		return GoodSea
	default:
		return ErrorSea
	}
}

// IsSteady reports a slow, easy roll.
func (m *Model) IsSteady() bool {
	return m.Steadiness() >= 69.5
}

// IsUnsteady reports a quick, lively roll.
func (m *Model) IsUnsteady() bool {
	return m.Steadiness() < 30.0
}

// SeakeepingDesc returns the report lines covering steadiness and
// seaworthiness.
func (m *Model) SeakeepingDesc() []string {
	var s []string

	if m.IsSteady() {
		s = append(s, "Ship has slow easy roll, a good steady, gun platform")
	} else if m.IsUnsteady() {
		s = append(s, "Ship has quick, lively roll, not a steady gun platform")
	}

	switch m.SeaGrade() {
	case BadSea:
		s = append(s, "Caution: Lacks seaworthiness - very limited seakeeping ability")
	case PoorSea:
		s = append(s, "Poor seaboat, wet and uncomfortable, reduced performance in heavy weather")
	case GoodSea:
		s = append(s, "Good seaboat, rides out heavy weather easily")
	case FineSea:
		tail := "rides out heavy weather easily"
		if m.WgtGuns() > 0 {
			tail = "can fire her guns in the heaviest weather"
		}
		s = append(s, "Excellent seaboat, comfortable, "+tail)
	default:
		s = append(s, "Invalid SeaType")
	}

	return s
}
