package perf

import (
	"math"

	"github.com/orionarts/sharpie/pkg/ship"
)

// AllBroadsideBelow reports whether every battery is either absent or
// carried on the gundeck in broadside mounts, keeping the weather deck
// sealed.
func (m *Model) AllBroadsideBelow() bool {
	for i := range m.s.Batteries {
		if !m.s.Batteries[i].BroadAndBelow() {
			return false
		}
	}
	return true
}

// Flotation estimates the pounds of non-critical shell hits needed to
// sink or destroy the ship.
func (m *Model) Flotation() float64 {
	s := m.s
	h := &s.Hull

	var free float64
	if m.AllBroadsideBelow() {
		free = h.FreeCap(true)
	} else {
		free = h.FreeboardDist()
	}

	f := (free*h.WP()/ship.Ft3PerTonSea + h.Disp) / 2.0

	exp := 4.0
	if m.StabilityAdj() > 1.0 {
		exp = 0.5
	}
	f *= math.Pow(m.StabilityAdj(), exp)

	if sc := m.StrComp(); sc < 1.0 {
		f *= sc
	}

	room := m.room()
	if room > 0 {
		exp = 1.0
		if room > 1.0 {
			exp = 2.0
		}
		f /= math.Pow(room, exp)
	}

	return math.Max(f*YearAdj(s.Year), 0)
}

// DamageShellSize is the shell caliber used for the hit count: the main
// battery's, or 6 inches for a ship without one.
func (m *Model) DamageShellSize() float64 {
	if m.s.Batteries[0].Diam > 0 {
		return m.s.Batteries[0].Diam
	}
	return 6.0
}

// DamageShellNum is the number of non-critical shell hits needed to
// sink the ship.
func (m *Model) DamageShellNum() float64 {
	div := math.Pow(m.DamageShellSize(), 3.0) / 2.0 * YearAdj(m.s.Year)
	if div <= 0 {
		return 0
	}
	return m.Flotation() / div
}

// DamageTorpNum is the number of non-critical 20 inch torpedo hits
// needed to sink the ship.
func (m *Model) DamageTorpNum() float64 {
	s := m.s
	h := &s.Hull

	bulk := math.Pow(
		(s.Armor.Bulkhead.Thick/2.0*s.Armor.Bulkhead.Len/h.Lwl)/
			0.65*s.Armor.Bulkhead.Hgt/h.T, 1.0/3.0) *
		m.Flotation() / 35000.0 * h.BB / 50.0

	base := math.Pow(m.Flotation()/10000.0, 1.0/3.0) +
		math.Pow(h.BB/75.0, 2.0) + bulk

	n := base / m.room() * h.Lwl / (h.Lwl + h.BB)

	if sa := m.StabilityAdj(); sa < 1.0 {
		n *= math.Pow(sa, 4.0)
	}
	n *= 1.0 - m.HullSpace()

	if t := &s.Torps[0]; t.WgtWeaps() > 0 {
		n *= 1.313 / (t.WgtWeaps() / float64(t.Num))
	}
	return n
}
