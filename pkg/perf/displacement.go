package perf

import "math"

// WgtBunker returns normal bunkerage in tons.
func (m *Model) WgtBunker() float64 {
	return m.s.Engine.Bunker(&m.s.Hull)
}

// WgtLoad returns bunkerage, magazines and ship's stores.
func (m *Model) WgtLoad() float64 {
	return m.s.Hull.Disp*0.02 + m.WgtBunker() + m.WgtMag()
}

// DLite is light displacement: no bunkerage, magazines or stores.
func (m *Model) DLite() float64 {
	return m.s.Hull.Disp - m.WgtLoad()
}

// DStd is standard displacement per the Washington and London naval
// treaties: no bunkerage or reserve feedwater.
func (m *Model) DStd() float64 {
	return m.s.Hull.Disp - m.WgtBunker()
}

// DMax is displacement with full bunkers, magazines, feedwater and stores.
func (m *Model) DMax() float64 {
	return m.s.Hull.Disp + 0.8*m.WgtBunker()
}

// TMax is draft at maximum displacement.
func (m *Model) TMax() float64 {
	return m.s.Hull.DraftAt(m.DMax())
}

// CbMax is the block coefficient at maximum displacement.
func (m *Model) CbMax() float64 {
	return m.s.Hull.CbAt(m.DMax(), m.TMax())
}

// CrewMax estimates the maximum crew from displacement.
func (m *Model) CrewMax() int {
	return int(math.Pow(m.s.Hull.Disp, 0.75) * 0.65)
}

// CrewMin estimates the minimum crew.
func (m *Model) CrewMin() int {
	return int(float64(m.CrewMax()) * 0.7692)
}

// CostDollar is the first cost in millions of US dollars.
func (m *Model) CostDollar() float64 {
	s := m.s
	cost := (s.Hull.Disp-m.WgtLoad())*0.00014 +
		m.WgtEngine()*0.00056 +
		m.WgtBorne()*8.0*0.00042
	if float64(s.Year)+2.0 > 1914.0 {
		cost *= 1.0 + (float64(s.Year)+1.5-1914.0)/5.5
	}
	return cost
}

// CostPounds is the first cost in millions of pounds sterling.
func (m *Model) CostPounds() float64 {
	return m.CostDollar() / 4.0
}
