package perf

import (
	"fmt"

	"github.com/orionarts/sharpie/pkg/ship"
)

// Severity grades a finding.
type Severity string

const (
	SeverityFailure Severity = "failure"
	SeverityCaution Severity = "caution"
	SeverityInfo    Severity = "info"
)

// Finding is a single design check result.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects the design checks for a ship.
type Report struct {
	Sound    bool      `json:"sound"`
	Failures []Finding `json:"failures"`
	Cautions []Finding `json:"cautions"`
	Info     []Finding `json:"info"`
	Summary  string    `json:"summary"`
}

// NewReport returns an empty, sound report.
func NewReport() *Report {
	return &Report{
		Sound:    true,
		Failures: []Finding{},
		Cautions: []Finding{},
		Info:     []Finding{},
	}
}

// AddFailure records a fatal design flaw and marks the design unsound.
func (r *Report) AddFailure(msg string) {
	r.Failures = append(r.Failures, Finding{Severity: SeverityFailure, Message: msg})
	r.Sound = false
	r.updateSummary()
}

// AddCaution records a non-fatal design concern.
func (r *Report) AddCaution(msg string) {
	r.Cautions = append(r.Cautions, Finding{Severity: SeverityCaution, Message: msg})
	r.updateSummary()
}

// AddInfo records a note.
func (r *Report) AddInfo(msg string) {
	r.Info = append(r.Info, Finding{Severity: SeverityInfo, Message: msg})
	r.updateSummary()
}

// Merge folds another report into this one.
func (r *Report) Merge(other *Report) {
	r.Failures = append(r.Failures, other.Failures...)
	r.Cautions = append(r.Cautions, other.Cautions...)
	r.Info = append(r.Info, other.Info...)
	if !other.Sound {
		r.Sound = false
	}
	r.updateSummary()
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d failures, %d cautions, %d info",
		len(r.Failures), len(r.Cautions), len(r.Info))
}

// TenderWarn reports excessive risk of capsizing.
func (m *Model) TenderWarn() bool {
	return m.StabilityAdj() <= 0.995
}

// CapsizeWarn reports that the ship will capsize.
func (m *Model) CapsizeWarn() bool {
	return m.Metacenter() <= 0
}

// HullStrained reports that the hull will strain in the open sea: strong
// enough to float, too weak for her size or sluggishness.
func (m *Model) HullStrained() bool {
	sc := m.StrComp()
	return sc >= 0.5 && sc < 0.885 &&
		(m.s.Engine.VMax < 24.0 || m.s.Hull.Disp > 4000.0)
}

// Findings runs every design check.
func (m *Model) Findings() *Report {
	r := NewReport()
	s := m.s

	if cb := s.Hull.Cb(); cb <= 0 || cb > 1.0 {
		r.AddFailure("Displacement impossible with given dimensions")
	}
	if s.Hull.Disp < m.WgtBroad()/4.0 {
		r.AddFailure("Gun weight too much for hull")
	}
	if m.WgtArmor() > s.Hull.Disp {
		r.AddFailure("Armour weight too much for hull")
	}
	if m.StrComp() < 0.5 {
		r.AddFailure("Overall load weight too much for hull")
	}
	if m.CapsizeWarn() {
		r.AddFailure("Ship will capsize")
	}

	if m.TenderWarn() && !m.CapsizeWarn() {
		r.AddCaution("Poor stability - excessive risk of capsizing")
	}
	if m.HullStrained() {
		r.AddCaution("Hull subject to strain in open-sea")
	}
	if m.SeaGrade() == ErrorSea {
		r.AddCaution("Seakeeping falls in an unrated band (0.995 to 1.2)")
	}

	if s.Engine.VMax > 0 && s.Engine.Shafts > 0 {
		perShaft := s.Engine.HpMax(&s.Hull) / float64(s.Engine.Shafts)
		if perShaft > 20000.0 && s.Engine.Boiler.IsReciprocating() {
			r.AddCaution("Too much power for reciprocating engines.")
		} else if perShaft > 75000.0 {
			r.AddCaution("Too much power for number of propellor shafts.")
		}
		if m.WgtEngine() < s.Engine.DEngine(&s.Hull)/5.0 {
			r.AddCaution("Delicate, lightweight machinery.")
		}
	}

	if s.Armor.Main.Thick > 0 &&
		s.Armor.BeltCoverage(s.Hull.Lwl) < m.HullRoom() {
		r.AddInfo("Main belt does not fully cover magazines and engineering spaces")
	}
	if s.Hull.IsWetFwd() {
		r.AddInfo("Ship tends to be wet forward")
	}

	return r
}

// Classify names the ship type implied by gun distribution, mounts and
// armor, one line per matching type.
func (m *Model) Classify() []string {
	s := m.s
	var out []string

	main, sec, ter := &s.Batteries[0], &s.Batteries[1], &s.Batteries[2]

	if main.Mount == ship.MountOpenBarbette || sec.Mount == ship.MountOpenBarbette {
		out = append(out, "Barbette Ship")
	}

	if main.Groups[0].Dist == ship.CenterlineFD || main.Groups[0].Dist == ship.SidesEnds {
		out = append(out, "Central Citadel Ship")
	}

	mainBroad := main.Mount == ship.MountBroadside
	secBroad := sec.Mount == ship.MountBroadside
	terBroad := ter.Mount == ship.MountBroadside

	below := func(b *ship.Battery) bool {
		return b.Groups[0].Below+b.Groups[1].Below > 0
	}
	noBack := func(b *ship.Battery) bool { return b.ArmorFace > 0 }

	broadBelow := mainBroad && below(main) || secBroad && below(sec) || terBroad && below(ter)
	broadNoBack := mainBroad && noBack(main) || secBroad && noBack(sec) || terBroad && noBack(ter)

	cwp := s.Hull.Cwp()
	hasBelt := s.Armor.Main.Wgt(s.Hull.Lwl, cwp, s.Hull.B)+
		s.Armor.End.Wgt(s.Hull.Lwl, cwp, s.Hull.B)+
		s.Armor.Upper.Wgt(s.Hull.Lwl, cwp, s.Hull.B) > 0

	if mainBroad || secBroad || terBroad {
		switch {
		case hasBelt && broadNoBack:
			out = append(out, "Armoured Casemate Ship")
		case hasBelt && s.Hull.FcLen+s.Hull.FdLen < 0.5 && broadBelow:
			out = append(out, "Armoured Frigate (Broadside Ironclad)")
		case hasBelt && s.Hull.FcLen+s.Hull.FdLen < 0.5:
			out = append(out, "Armoured Corvette (Broadside Ironclad)")
		case hasBelt && broadBelow:
			out = append(out, "Armoured Frigate (Central Battery Ironclad)")
		case hasBelt:
			out = append(out, "Armoured Corvette (Central Battery Ironclad)")
		case broadBelow:
			out = append(out, "Frigate (Unarmoured)")
		default:
			out = append(out, "Corvette (Unarmoured)")
		}
	}

	return out
}
