package ship

import (
	"math"

	"github.com/orionarts/sharpie/pkg/units"
)

// Ft3PerTonSea is the volume of one long ton of seawater, cubic feet.
const Ft3PerTonSea = 35.0

// BowKind selects the bow profile.
type BowKind int

const (
	BowNormal BowKind = iota
	BowRam
	BowClipper
)

func (b BowKind) String() string {
	switch b {
	case BowRam:
		return "A ram bow"
	case BowClipper:
		return "A clipper bow"
	default:
		return "A normal bow"
	}
}

// SternKind selects the stern profile.
type SternKind int

const (
	SternCruiser SternKind = iota
	SternTransomSmall
	SternTransomLarge
	SternRound
)

func (s SternKind) String() string {
	switch s {
	case SternTransomSmall:
		return "a small transom stern"
	case SternTransomLarge:
		return "a large transom stern"
	case SternRound:
		return "a round stern"
	default:
		return "a cruiser stern"
	}
}

// Hull holds the primary dimensions and deck geometry. All lengths are feet,
// displacement long tons, regardless of the Units tag (which records what the
// designer typed and drives display conversion only).
//
// Disp is the stored normal displacement. Block coefficient is derived from
// Disp and the dimensions, so SetDisplacement and SetCb are alternate entry
// points: each rewrites Disp and leaves the dimensions alone. Setting Lwl
// after locking displacement silently changes Cb; callers that want a fixed
// Cb must re-apply SetCb afterwards. The two setters are not reconciled.
type Hull struct {
	Disp float64 `yaml:"displacement"`
	Lwl  float64 `yaml:"lwl"`
	B    float64 `yaml:"beam"`
	BB   float64 `yaml:"beam_bulges"`
	T    float64 `yaml:"draft"`

	// Deck sections, bow to stern: forecastle, forward deck, aft deck,
	// quarterdeck. Lengths are fractions of Lwl (the aft deck takes the
	// remainder); heights are freeboard in feet at the fore and aft end
	// of each section.
	FcLen float64 `yaml:"fc_len"`
	FcFwd float64 `yaml:"fc_fwd"`
	FcAft float64 `yaml:"fc_aft"`
	FdLen float64 `yaml:"fd_len"`
	FdFwd float64 `yaml:"fd_fwd"`
	FdAft float64 `yaml:"fd_aft"`
	AdFwd float64 `yaml:"ad_fwd"`
	AdAft float64 `yaml:"ad_aft"`
	QdLen float64 `yaml:"qd_len"`
	QdFwd float64 `yaml:"qd_fwd"`
	QdAft float64 `yaml:"qd_aft"`

	BowAngle      float64 `yaml:"bow_angle"`
	SternOverhang float64 `yaml:"stern_overhang"`

	Bow    BowKind   `yaml:"bow"`
	RamLen float64   `yaml:"ram_len"`
	Stern  SternKind `yaml:"stern"`

	Units units.System `yaml:"units"`
}

// SetDisplacement locks the hull to the given normal displacement.
// Cb becomes a derived quantity of Disp and the current dimensions.
func (h *Hull) SetDisplacement(d float64) {
	h.Disp = d
}

// SetLwl sets the waterline length. Displacement is kept; Cb shifts.
func (h *Hull) SetLwl(l float64) {
	h.Lwl = l
}

// SetCb locks the block coefficient by storing the displacement it implies
// at the current dimensions.
func (h *Hull) SetCb(cb float64) {
	h.Disp = cb * h.Lwl * h.B * h.T / Ft3PerTonSea
}

// Cb returns the block coefficient at normal displacement.
// Undefined when any of Lwl, B, T is non-positive; callers guard.
func (h *Hull) Cb() float64 {
	return h.CbAt(h.Disp, h.T)
}

// CbAt returns the block coefficient at an alternate displacement and draft.
func (h *Hull) CbAt(d, t float64) float64 {
	return Ft3PerTonSea * d / (h.Lwl * h.B * t)
}

// DraftAt returns the draft at an alternate displacement, from the
// tons-per-inch immersion of the normal waterplane.
func (h *Hull) DraftAt(d float64) float64 {
	tpi := h.TPI()
	if tpi <= 0 {
		return h.T
	}
	return h.T + (d-h.Disp)/tpi/12.0
}

// Cm returns the midship section coefficient for a block coefficient,
// from the usual empirical fit.
func Cm(cb float64) float64 {
	return 1.006 - 0.0056*math.Pow(cb, -3.56)
}

// Cp returns the prismatic coefficient for a block coefficient.
func Cp(cb float64) float64 {
	return cb / Cm(cb)
}

// Cwp returns the waterplane coefficient.
func (h *Hull) Cwp() float64 {
	return (1.0 + 2.0*h.Cb()) / 3.0
}

// Cs returns the sharpness coefficient used by the resistance formulas,
// blending underwater and waterplane fullness.
func (h *Hull) Cs() float64 {
	return (Cp(h.Cb()) + h.Cwp()) / 2.0
}

// WP returns the waterplane area in square feet.
func (h *Hull) WP() float64 {
	return h.Cwp() * h.Lwl * h.B
}

// WS returns the wetted surface in square feet (Denny's approximation).
func (h *Hull) WS() float64 {
	return 1.7*h.Lwl*h.T + Ft3PerTonSea*h.Disp/h.T
}

// TPI returns tons per inch immersion.
func (h *Hull) TPI() float64 {
	return h.WP() / 420.0
}

// Len2Beam returns the length-to-beam ratio.
func (h *Hull) Len2Beam() float64 {
	return h.Lwl / h.B
}

// Vn returns the "natural speed" for the waterline length, knots.
func (h *Hull) Vn() float64 {
	return 1.34 * math.Sqrt(h.Lwl)
}

// StemLen returns the horizontal projection of the stem beyond the
// waterline, from the bow angle and any ram.
func (h *Hull) StemLen() float64 {
	l := h.FcFwd * math.Tan(h.BowAngle*math.Pi/180.0)
	if h.Bow == BowRam {
		l += h.RamLen
	}
	return math.Max(l, 0)
}

// Loa returns the length overall.
func (h *Hull) Loa() float64 {
	return h.Lwl + h.StemLen() + math.Max(h.SternOverhang, 0)
}

// Leff returns the effective hydrodynamic length: waterline length plus
// credit for stern overhang, transom, and bow form.
func (h *Hull) Leff() float64 {
	l := h.Lwl + 0.5*h.SternOverhang
	switch h.Stern {
	case SternTransomSmall:
		l += 0.015 * h.Lwl
	case SternTransomLarge:
		l += 0.03 * h.Lwl
	}
	if h.Bow == BowClipper {
		l += 0.5 * h.StemLen()
	}
	return l
}

// AdLen returns the aft-deck length fraction (the remainder of Lwl).
func (h *Hull) AdLen() float64 {
	return 1.0 - h.FcLen - h.FdLen - h.QdLen
}

// sectionMeans returns the mean freeboard and length fraction of each deck
// section, bow to stern.
func (h *Hull) sectionMeans() (mean [4]float64, frac [4]float64) {
	mean = [4]float64{
		(h.FcFwd + h.FcAft) / 2.0,
		(h.FdFwd + h.FdAft) / 2.0,
		(h.AdFwd + h.AdAft) / 2.0,
		(h.QdFwd + h.QdAft) / 2.0,
	}
	frac = [4]float64{h.FcLen, h.FdLen, h.AdLen(), h.QdLen}
	return mean, frac
}

// Freeboard returns the length-weighted average freeboard, feet.
func (h *Hull) Freeboard() float64 {
	mean, frac := h.sectionMeans()
	var sum, tot float64
	for i := range mean {
		sum += mean[i] * frac[i]
		tot += frac[i]
	}
	if tot <= 0 {
		return 0
	}
	return sum / tot
}

// FreeboardDist returns the effective freeboard for seakeeping and strength,
// weighting the forecastle double: a high bow keeps the seas off the whole
// deck, not just its own section.
func (h *Hull) FreeboardDist() float64 {
	mean, frac := h.sectionMeans()
	w := [4]float64{2.0, 1.0, 1.0, 1.0}
	var sum, tot float64
	for i := range mean {
		sum += mean[i] * frac[i] * w[i]
		tot += frac[i] * w[i]
	}
	if tot <= 0 {
		return 0
	}
	return sum / tot
}

// FreeCap returns the reserve-buoyancy freeboard. When every battery is
// broadside-mounted below deck the sealed gundeck counts toward the
// watertight side height.
func (h *Hull) FreeCap(allBroadsideBelow bool) float64 {
	if allBroadsideBelow {
		return h.FreeboardDist() * 1.25
	}
	return h.FreeboardDist()
}

// FreeboardAt returns the freeboard at a position given as a fraction of
// Lwl from the bow, interpolating within the deck section it falls in.
func (h *Hull) FreeboardAt(pos float64) float64 {
	pos = math.Max(0, math.Min(pos, 1))
	type sect struct{ len, fwd, aft float64 }
	sects := []sect{
		{h.FcLen, h.FcFwd, h.FcAft},
		{h.FdLen, h.FdFwd, h.FdAft},
		{h.AdLen(), h.AdFwd, h.AdAft},
		{h.QdLen, h.QdFwd, h.QdAft},
	}
	start := 0.0
	for _, s := range sects {
		if s.len <= 0 {
			continue
		}
		if pos <= start+s.len {
			t := (pos - start) / s.len
			return s.fwd + (s.aft-s.fwd)*t
		}
		start += s.len
	}
	return h.QdAft
}

// FreeboardDesc describes the deck profile for the report.
func (h *Hull) FreeboardDesc() string {
	fc := (h.FcFwd + h.FcAft) / 2.0
	fd := (h.FdFwd + h.FdAft) / 2.0
	qd := (h.QdFwd + h.QdAft) / 2.0

	raisedFc := fc > fd*1.05
	lowQd := qd < fd*0.95

	switch {
	case raisedFc && lowQd:
		return "a raised forecastle and a low quarterdeck"
	case raisedFc:
		return "a raised forecastle"
	case lowQd:
		return "a low quarterdeck"
	default:
		return "a flush deck"
	}
}

// IsWetFwd reports whether the bow freeboard is low for the length.
func (h *Hull) IsWetFwd() bool {
	return h.FcFwd < 0.5*math.Sqrt(h.Lwl)
}
