package perf

import "math"

// deckEngine returns the machinery term fed to the deck armor crown.
// See DeckFeedbackBreak.
func (m *Model) deckEngine() float64 {
	if !m.opt.ResolveDeckFeedback {
		return DeckFeedbackBreak
	}
	t := 0.0
	for i := 0; i < 8; i++ {
		t = m.wgtEngineAt(t)
	}
	return t
}

// wgtArmorAt is WgtArmor with an explicit machinery crown term, so the
// fixed-point pass can thread its iterate through without recursing.
func (m *Model) wgtArmorAt(engineTerm float64) float64 {
	s := m.s
	return s.Armor.Wgt(&s.Hull, m.WgtMag(), engineTerm) + m.WgtGunArmor()
}

func (m *Model) dFactorAt(engineTerm float64) float64 {
	s := m.s
	div := s.Engine.DEngine(&s.Hull) +
		8.0*m.WgtBorne() + m.wgtArmorAt(engineTerm) + float64(s.Wgts.Wgt())
	if div <= 0 {
		return 10.0
	}
	return math.Min(s.Hull.Disp/div, 10.0)
}

func (m *Model) wgtEngineAt(engineTerm float64) float64 {
	s := m.s
	d := s.Hull.Disp
	df := m.dFactorAt(engineTerm)

	p := 0.0
	switch {
	case d < 5000.0 && d >= 600.0 && df < 1.0:
		p = 1.0 - d/5000.0
	case d < 600.0 && df < 1.0:
		p = 0.88
	}

	return s.Engine.DEngine(&s.Hull) / 2.0 * math.Pow(df, p)
}

// DFactor is the displacement-to-loading factor, capped at 10. It
// lightens the machinery of small, heavily stressed hulls.
func (m *Model) DFactor() float64 {
	return m.dFactorAt(m.deckEngine())
}

// WgtEngine returns installed machinery weight in tons, adjusted by the
// displacement factor.
func (m *Model) WgtEngine() float64 {
	return m.wgtEngineAt(m.deckEngine())
}

// WgtGuns returns the weight of all guns, excluding mounts.
func (m *Model) WgtGuns() float64 {
	var wgt float64
	for i := range m.s.Batteries {
		wgt += m.s.Batteries[i].GunWgt()
	}
	return wgt
}

// WgtGunMounts returns the weight of all gun mounts.
func (m *Model) WgtGunMounts() float64 {
	var wgt float64
	for i := range m.s.Batteries {
		wgt += m.s.Batteries[i].MountWgt()
	}
	return wgt
}

// WgtGunArmor returns the weight of all gun mount armor.
func (m *Model) WgtGunArmor() float64 {
	var wgt float64
	for i := range m.s.Batteries {
		wgt += m.s.Batteries[i].ArmorWgt(&m.s.Hull)
	}
	return wgt
}

// WgtMag returns the weight of the magazines.
func (m *Model) WgtMag() float64 {
	var wgt float64
	for i := range m.s.Batteries {
		wgt += m.s.Batteries[i].MagWgt()
	}
	return wgt
}

// WgtBroad returns the weight of shell on the full broadside, pounds.
func (m *Model) WgtBroad() float64 {
	var broad float64
	for i := range m.s.Batteries {
		broad += m.s.Batteries[i].BroadsideWgt()
	}
	return broad
}

// WgtBorne is the mount-adjusted gun weight the hull structure carries.
func (m *Model) WgtBorne() float64 {
	var wgt float64
	for i := range m.s.Batteries {
		b := &m.s.Batteries[i]
		wgt += b.GunWgt() * b.Mount.WgtAdj()
	}
	return wgt * 2.0
}

// WgtWeaps returns the weight of torpedoes, mines and ASW gear.
func (m *Model) WgtWeaps() float64 {
	var wgt float64
	for i := range m.s.Torps {
		wgt += m.s.Torps[i].WgtTotal()
	}
	for i := range m.s.ASW {
		wgt += m.s.ASW[i].WgtTotal()
	}
	return wgt + m.s.Mines.WgtTotal()
}

// WgtArmor returns ship plus battery armor weight.
func (m *Model) WgtArmor() float64 {
	return m.wgtArmorAt(m.deckEngine())
}

// WgtDeckArmor returns the deck armor weight alone.
func (m *Model) WgtDeckArmor() float64 {
	return m.s.Armor.Deck.Wgt(&m.s.Hull, m.WgtMag(), m.deckEngine())
}

// WgtHull returns hull structure weight: whatever displacement is left
// after everything carried is accounted for.
func (m *Model) WgtHull() float64 {
	return m.s.Hull.Disp -
		m.WgtGuns() -
		m.WgtGunMounts() -
		m.WgtWeaps() -
		m.WgtArmor() -
		m.WgtEngine() -
		m.WgtLoad() -
		float64(m.s.Wgts.Wgt())
}

// WgtHullPlus is hull structure plus guns and mounts, less the borne
// weight already charged to the structure.
func (m *Model) WgtHullPlus() float64 {
	return m.WgtHull() + m.WgtGuns() + m.WgtGunMounts() - m.WgtBorne()
}

// WgtStruct returns structure weight per square foot of hull surface,
// pounds.
func (m *Model) WgtStruct() float64 {
	s := m.s
	plus := m.WgtHullPlus() + m.strengthenedBulkheadWgt()
	area := s.Hull.WS() +
		2.0*s.Hull.Lwl*s.Hull.FreeCap(m.AllBroadsideBelow()) +
		s.Hull.WP()
	if area <= 0 {
		return 0
	}
	return plus * poundsPerTon / area
}
