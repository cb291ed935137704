package perf

// Summary is the headline performance of a design, in one flat record
// for JSON output and library storage.
type Summary struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Kind    string `json:"kind"`
	Year    int    `json:"year"`

	DispLight  float64 `json:"disp_light"`
	DispStd    float64 `json:"disp_std"`
	DispNormal float64 `json:"disp_normal"`
	DispMax    float64 `json:"disp_max"`

	SpeedMax    float64 `json:"speed_max"`
	SpeedCruise float64 `json:"speed_cruise"`
	Range       float64 `json:"range"`
	HpMax       float64 `json:"hp_max"`

	CrewMin int `json:"crew_min"`
	CrewMax int `json:"crew_max"`

	StabilityAdj float64 `json:"stability_adj"`
	Metacenter   float64 `json:"metacenter"`
	RollPeriod   float64 `json:"roll_period"`
	Steadiness   float64 `json:"steadiness"`
	Seakeeping   float64 `json:"seakeeping"`

	StrCross float64 `json:"str_cross"`
	StrLong  float64 `json:"str_long"`
	StrComp  float64 `json:"str_comp"`

	Flotation float64 `json:"flotation"`
	ShellHits float64 `json:"shell_hits"`
	TorpHits  float64 `json:"torp_hits"`

	HullRoom float64 `json:"hull_room"`
	DeckRoom float64 `json:"deck_room"`

	CostDollar float64 `json:"cost_dollar"`
	CostPounds float64 `json:"cost_pounds"`

	Sound bool `json:"sound"`
}

// Summarize evaluates the headline figures of a design.
func (m *Model) Summarize() Summary {
	s := m.s
	return Summary{
		Name:    s.Name,
		Country: s.Country,
		Kind:    s.Kind,
		Year:    s.Year,

		DispLight:  m.DLite(),
		DispStd:    m.DStd(),
		DispNormal: s.Hull.Disp,
		DispMax:    m.DMax(),

		SpeedMax:    s.Engine.VMax,
		SpeedCruise: s.Engine.VCruise,
		Range:       s.Engine.Range,
		HpMax:       s.Engine.HpMax(&s.Hull),

		CrewMin: m.CrewMin(),
		CrewMax: m.CrewMax(),

		StabilityAdj: m.StabilityAdj(),
		Metacenter:   m.Metacenter(),
		RollPeriod:   m.RollPeriod(),
		Steadiness:   m.Steadiness(),
		Seakeeping:   m.Seakeeping(),

		StrCross: m.StrCross(),
		StrLong:  m.StrLong(),
		StrComp:  m.StrComp(),

		Flotation: m.Flotation(),
		ShellHits: m.DamageShellNum(),
		TorpHits:  m.DamageTorpNum(),

		HullRoom: m.HullRoom(),
		DeckRoom: m.DeckRoom(),

		CostDollar: m.CostDollar(),
		CostPounds: m.CostPounds(),

		Sound: m.Findings().Sound,
	}
}
