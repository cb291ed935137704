package ship

import (
	"math"

	"github.com/orionarts/sharpie/pkg/units"
)

// plateLbPerFt2In is the weight of one square foot of armor plate one
// inch thick, pounds.
const plateLbPerFt2In = 40.8

// Section is one armor strake: a belt, bulkhead or bulge run. Thick is
// inches, Len and Hgt feet. Len is the run along one side; the weight
// covers both sides.
type Section struct {
	Thick float64 `yaml:"thick"`
	Len   float64 `yaml:"len"`
	Hgt   float64 `yaml:"hgt"`
}

// Wgt returns the strake weight in tons. A fine waterplane bows the
// strake out around the hull, so the plated girth runs a little longer
// than the straight-line length.
func (s *Section) Wgt(lwl, cwp, beam float64) float64 {
	if s.Thick <= 0 || s.Len <= 0 || s.Hgt <= 0 {
		return 0
	}
	curve := 1.0 + 0.3*(1.0-cwp)
	return 2.0 * s.Len * curve * s.Hgt * s.Thick * plateLbPerFt2In / 2240.0
}

// ConningTower is an armored conning position.
type ConningTower struct {
	Thick float64 `yaml:"thick"`
}

// Wgt returns the tower weight in tons, scaled to the ship: a larger
// hull gets a roomier tower and trunk.
func (c *ConningTower) Wgt(d float64) float64 {
	if c.Thick <= 0 || d <= 0 {
		return 0
	}
	return c.Thick * math.Pow(d, 2.0/3.0) * plateLbPerFt2In / 2240.0
}

// DeckKind selects the protective scheme of the armor deck.
type DeckKind int

const (
	DeckArmorDeck DeckKind = iota
	DeckProtectiveDeck
)

func (k DeckKind) String() string {
	if k == DeckProtectiveDeck {
		return "protective deck"
	}
	return "armour deck"
}

// Deck is the horizontal protection: a midships thickness plus separate
// forecastle and quarterdeck thicknesses, all inches.
type Deck struct {
	MD   float64  `yaml:"md"`
	FC   float64  `yaml:"fc"`
	QD   float64  `yaml:"qd"`
	Kind DeckKind `yaml:"kind"`
}

// Wgt returns deck armor weight in tons. Magazine and machinery crowns
// get an extra run of the midships thickness over their own plan area.
// A protective deck slopes down to the belt edges and runs longer plate.
func (dk *Deck) Wgt(h *Hull, wgtMag, wgtEngine float64) float64 {
	wp := h.WP()
	mid := h.AdLen() + h.FdLen
	area := dk.MD*mid + dk.FC*h.FcLen + dk.QD*h.QdLen
	w := area * wp * plateLbPerFt2In / 2240.0
	if dk.Kind == DeckProtectiveDeck {
		w *= 1.15
	}
	crownArea := (wgtMag + wgtEngine) * Ft3PerTonSea / 8.0
	w += dk.MD * crownArea * 0.5 * plateLbPerFt2In / 2240.0
	return w
}

// BulkheadKind says whether the torpedo bulkhead is extra plating or
// worked into the hull girder.
type BulkheadKind int

const (
	BulkheadAdditional BulkheadKind = iota
	BulkheadStrengthened
)

func (k BulkheadKind) String() string {
	if k == BulkheadStrengthened {
		return "strengthened structural bulkheads"
	}
	return "additional bulkheads"
}

// Armor is the complete protection scheme.
type Armor struct {
	Main     Section `yaml:"main"`
	End      Section `yaml:"end"`
	Upper    Section `yaml:"upper"`
	Bulkhead Section `yaml:"bulkhead"`
	Bulge    Section `yaml:"bulge"`

	// Belt incline from vertical, degrees.
	Incline float64 `yaml:"incline"`

	BHKind BulkheadKind `yaml:"bh_kind"`
	// Beam between the torpedo bulkheads, feet.
	BHBeam float64 `yaml:"bh_beam"`

	Deck  Deck         `yaml:"deck"`
	CTFwd ConningTower `yaml:"ct_fwd"`
	CTAft ConningTower `yaml:"ct_aft"`

	Units units.System `yaml:"units"`
}

// inclineFactor grows belt area for an inclined strake: the plate runs
// the same vertical cover on a longer diagonal.
func (a *Armor) inclineFactor() float64 {
	rad := a.Incline * math.Pi / 180.0
	c := math.Cos(rad)
	if c <= 0.5 {
		return 2.0
	}
	return 1.0 / c
}

// BeltCoverage returns the fraction of the waterline the main belt spans.
func (a *Armor) BeltCoverage(lwl float64) float64 {
	if lwl <= 0 {
		return 0
	}
	return a.Main.Len / lwl
}

// Wgt returns the weight of all ship armor in tons, excluding gun mount
// armor which belongs to the batteries.
func (a *Armor) Wgt(h *Hull, wgtMag, wgtEngine float64) float64 {
	cwp := h.Cwp()
	incl := a.inclineFactor()
	return a.Main.Wgt(h.Lwl, cwp, h.B)*incl +
		a.End.Wgt(h.Lwl, cwp, h.B)*incl +
		a.Upper.Wgt(h.Lwl, cwp, h.B) +
		a.Bulkhead.Wgt(h.Lwl, cwp, h.B) +
		a.Bulge.Wgt(h.Lwl, cwp, h.B) +
		a.CTFwd.Wgt(h.Disp) + a.CTAft.Wgt(h.Disp) +
		a.Deck.Wgt(h, wgtMag, wgtEngine)
}
