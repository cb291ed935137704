package perf

import (
	"math"

	"github.com/orionarts/sharpie/pkg/ship"
)

// gunWtf is the height-and-mount weighted gun burden on the structure.
func (m *Model) gunWtf() float64 {
	var wtf float64
	for i := range m.s.Batteries {
		b := &m.s.Batteries[i]
		if b.Diam == 0 {
			continue
		}
		wtf += (b.GunWgt() + b.MountWgt() + b.ArmorWgt(&m.s.Hull)) *
			b.Super() * b.Mount.WgtAdj()
	}
	return wtf
}

// GunSuperFactor is the ratio of the weighted gun burden to the plain
// gun weight: how much higher than the deck the guns effectively ride.
// A ship without guns carries no burden.
func (m *Model) GunSuperFactor() float64 {
	div := m.WgtGunArmor() + m.WgtGuns() + m.WgtGunMounts()
	if div <= 0 {
		return 1.0
	}
	return m.gunWtf() / div
}

// evenSpread reports whether a distribution spreads mounts evenly.
func evenSpread(d ship.Distribution) bool {
	return d == ship.CenterlineEven || d == ship.SidesEven
}

// g2Position places the secondary group for the co-location test,
// honoring the corrected-superfire option.
func (m *Model) g2Position(d ship.Distribution, fdLen, adLen float64) float64 {
	if m.opt.CorrectedSuperfire {
		return d.G1Position(fdLen, adLen)
	}
	return d.G2Position(fdLen, adLen)
}

// GroupSuperfiring reports whether a group's raised mounts fire over
// mounts carried lower. The primary group is measured against the rest
// of the battery; the second group against itself, which can disagree
// for the same arrangement. CorrectedSuperfire measures both against
// the battery.
func (m *Model) GroupSuperfiring(b *ship.Battery, gi int) bool {
	g := &b.Groups[gi]
	if gi == 0 {
		return g.Above < b.MountNum-b.Groups[1].Above
	}
	if m.opt.CorrectedSuperfire {
		return g.Above < b.MountNum-b.Groups[0].Above
	}
	return g.Above < 2*g.Mounts()-g.Above
}

// SuperFactorLong is the longitudinal-strength penalty of the main
// battery arrangement: stacked or end-concentrated mounts bend the hull
// girder harder than spread ones.
func (m *Model) SuperFactorLong() float64 {
	s := m.s
	b := &s.Batteries[0]
	g0, g1 := &b.Groups[0], &b.Groups[1]

	a := m.HullRoom()
	if (evenSpread(g0.Dist) || evenSpread(g1.Dist)) &&
		(b.MountNum == 3 || b.MountNum == 4) {
		a *= m.GunSuperFactor()
	}

	fdLen, adLen := s.Hull.FdLen, s.Hull.AdLen()
	colocated := g0.Mounts() > 0 && g1.Mounts() > 0 &&
		math.Abs(g0.Dist.G1Position(fdLen, adLen)-
			m.g2Position(g1.Dist, fdLen, adLen)) < 0.2

	stacked := (g0.Mounts() > 0 && g1.Mounts() == 0 && g0.Dist.SuperfireEligible()) ||
		(g1.Mounts() > 0 && g0.Mounts() == 0 && g1.Dist.SuperfireEligible()) ||
		colocated

	if stacked {
		return a * (0.8 * m.GunSuperFactor())
	}
	return a * (2.0*m.GunSuperFactor() - 1.0)
}
