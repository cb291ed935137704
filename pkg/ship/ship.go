// Package ship holds the design record of a pre-modern steel warship:
// hull, machinery, weapons, protection and the fixed weights the designer
// enters directly. Everything here is entered or stored data and the
// component-level figures derived from a single component; whole-ship
// performance lives in pkg/perf.
package ship

// MiscWeights are the designer-entered fixed weights, tons, split by how
// high in the ship they ride. Void is trapped-air reserve buoyancy.
type MiscWeights struct {
	Vital int `yaml:"vital"`
	Hull  int `yaml:"hull"`
	On    int `yaml:"on"`
	Above int `yaml:"above"`
	Void  int `yaml:"void"`
}

// Wgt returns the total miscellaneous weight in tons.
func (w *MiscWeights) Wgt() int {
	return w.Vital + w.Hull + w.On + w.Above + w.Void
}

// Ship is a complete design record.
type Ship struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	Kind    string `yaml:"kind"`
	Year    int    `yaml:"year"`

	Hull   Hull   `yaml:"hull"`
	Engine Engine `yaml:"engine"`
	Armor  Armor  `yaml:"armor"`

	Batteries []Battery   `yaml:"batteries"`
	Torps     []Torpedoes `yaml:"torps"`
	Mines     Mines       `yaml:"mines"`
	ASW       []ASW       `yaml:"asw"`

	Wgts MiscWeights `yaml:"wgts"`

	// Trim is the steadiness-vs-seakeeping ballast split, 0 to 100.
	Trim float64 `yaml:"trim"`

	Notes []string `yaml:"notes"`
}

// New returns an empty design: five gun batteries, two torpedo outfits,
// two anti-submarine outfits, and the trim centered.
func New() *Ship {
	return &Ship{
		Batteries: make([]Battery, 5),
		Torps:     make([]Torpedoes, 2),
		ASW:       make([]ASW, 2),
		Trim:      50,
	}
}
