package perf

import "github.com/orionarts/sharpie/pkg/ship"

// DeckSpace is the fraction of the waterplane taken by deck-mounted
// torpedo gear.
func (m *Model) DeckSpace() float64 {
	var space float64
	for i := range m.s.Torps {
		space += m.s.Torps[i].DeckArea(m.s.Hull.B)
	}
	wp := m.s.Hull.WP()
	if wp <= 0 {
		return 0
	}
	return space / wp
}

// HullSpace is the fraction of underwater volume taken by hull-mounted
// torpedo gear.
func (m *Model) HullSpace() float64 {
	var space float64
	for i := range m.s.Torps {
		space += m.s.Torps[i].HullVolume()
	}
	vol := m.s.Hull.Disp * ship.Ft3PerTonSea
	if vol <= 0 {
		return 0
	}
	return space / vol
}

// room is the raw ratio of the internal consumers of hull volume to the
// volume available.
func (m *Model) room() float64 {
	s := m.s
	if s.Hull.Disp <= 0 {
		return 0
	}
	return (m.WgtMag() +
		s.Hull.Disp*0.02 +
		m.WgtBorne()*6.4 +
		m.WgtEngine()*3.0 +
		float64(s.Wgts.Vital) +
		float64(s.Wgts.Hull)) /
		(s.Hull.Disp * 0.94) / (1.0 - m.HullSpace())
}

// HullRoom is the demand on below-water volume. Torpedo bulkheads pinch
// the usable beam, inflating the demand.
func (m *Model) HullRoom() float64 {
	s := m.s
	r := m.room()
	if s.Armor.Bulkhead.Wgt(s.Hull.Lwl, s.Hull.Cwp(), s.Hull.B) > 0.1 {
		r *= s.Hull.B / s.Armor.BHBeam
	}
	return r
}

// DeckRoom is the above-water accommodation and working space per head.
func (m *Model) DeckRoom() float64 {
	crew := m.CrewMin()
	if crew == 0 {
		return 0
	}
	s := m.s
	return s.Hull.WP() / ship.Ft3PerTonSea / 15.0 *
		(1.0 - m.DeckSpace()) / float64(crew) * s.Hull.FreeboardDist()
}

// DeckRoomQuality grades DeckRoom for the report.
func (m *Model) DeckRoomQuality() string {
	sp := m.DeckRoom()
	switch {
	case sp > 1.2:
		return "Excellent"
	case sp > 0.9:
		return "Adequate"
	case sp >= 0.5:
		return "Cramped"
	default:
		return "Poor"
	}
}

// HullRoomQuality grades HullRoom for the report.
func (m *Model) HullRoomQuality() string {
	sp := m.HullRoom()
	switch {
	case sp < 5.0/6.0:
		return "Excellent"
	case sp < 1.1111112:
		return "Adequate"
	case sp <= 2.0:
		return "Cramped"
	default:
		return "Extremely poor"
	}
}

// VitalSpace is the forecastle and quarterdeck length left over after
// covering engine and magazine spaces, percent.
func (m *Model) VitalSpace() float64 {
	return (1.0-0.65*m.HullRoom())*50.0 - 0.01
}

// VitalSpaceLength is the minimum belt length to cover engine and
// magazine spaces, feet.
func (m *Model) VitalSpaceLength() float64 {
	return m.s.Hull.Lwl*0.65*m.HullRoom() + 0.01
}
