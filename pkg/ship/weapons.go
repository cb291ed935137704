package ship

import (
	"fmt"
	"math"

	"github.com/orionarts/sharpie/pkg/units"
)

// GunKind names the loading mechanism of a battery.
type GunKind int

const (
	GunBreechLoading GunKind = iota
	GunMuzzleLoading
	GunQuickFiring
	GunAutomatic
	GunMachine
)

func (g GunKind) String() string {
	switch g {
	case GunMuzzleLoading:
		return "muzzle loading gun"
	case GunQuickFiring:
		return "quick firing gun"
	case GunAutomatic:
		return "automatic rapid fire gun"
	case GunMachine:
		return "machine gun"
	default:
		return "breech loading gun"
	}
}

// MountKind names how a battery is carried.
type MountKind int

const (
	MountBroadside MountKind = iota
	MountCasemate
	MountDeck
	MountColesTurret
	MountOpenBarbette
	MountBarbette
	MountTurret
)

func (m MountKind) String() string {
	switch m {
	case MountBroadside:
		return "broadside mount"
	case MountCasemate:
		return "casemate mount"
	case MountDeck:
		return "deck mount"
	case MountColesTurret:
		return "Coles turret"
	case MountOpenBarbette:
		return "open barbette mount"
	case MountBarbette:
		return "barbette mount"
	default:
		return "turret"
	}
}

// WgtAdj returns the battery weight multiplier for the mount kind.
// Broadside guns need no training gear; power-worked turrets carry the
// full penalty of machinery and shielding structure.
func (m MountKind) WgtAdj() float64 {
	switch m {
	case MountBroadside:
		return 0.5
	case MountCasemate:
		return 0.6
	case MountDeck:
		return 0.7
	case MountColesTurret:
		return 1.25
	case MountOpenBarbette:
		return 0.8
	case MountBarbette:
		return 0.9
	default:
		return 1.0
	}
}

// mountFactor returns mount structure weight as a multiple of gun weight.
func (m MountKind) mountFactor() float64 {
	switch m {
	case MountBroadside:
		return 0.25
	case MountCasemate:
		return 0.4
	case MountDeck:
		return 0.35
	case MountColesTurret:
		return 1.6
	case MountOpenBarbette:
		return 0.7
	case MountBarbette:
		return 1.1
	default:
		return 1.4
	}
}

// GunLayout is the number of barrels per mount.
type GunLayout int

const (
	LayoutSingle GunLayout = iota
	LayoutTwin
	LayoutTriple
	LayoutQuad
)

func (l GunLayout) String() string {
	switch l {
	case LayoutTwin:
		return "twin"
	case LayoutTriple:
		return "triple"
	case LayoutQuad:
		return "quadruple"
	default:
		return "single"
	}
}

// Distribution places a gun group along the hull.
type Distribution int

const (
	CenterlineEven Distribution = iota
	CenterlineFD
	CenterlineAD
	CenterlineEnds
	SidesEven
	SidesFD
	SidesAD
	SidesEnds
)

func (d Distribution) String() string {
	switch d {
	case CenterlineEven:
		return "centreline, evenly spread"
	case CenterlineFD:
		return "centreline, forward deck forward"
	case CenterlineAD:
		return "centreline, aft deck aft"
	case CenterlineEnds:
		return "centreline ends, majority forward"
	case SidesEven:
		return "sides, evenly spread"
	case SidesFD:
		return "sides, forward deck forward"
	case SidesAD:
		return "sides, aft deck aft"
	default:
		return "side ends, majority forward"
	}
}

// onSides reports whether mounts are sponsoned out rather than on the
// centreline, halving the broadside.
func (d Distribution) onSides() bool {
	return d >= SidesEven
}

// SuperAft reports whether the raised mounts of the group sit aft.
func (d Distribution) SuperAft() bool {
	return d == CenterlineAD || d == SidesAD
}

// SuperfireEligible reports whether the arrangement can pay the
// superfiring blast and trunk weight penalty at all. Evenly spread
// groups never stack mounts.
func (d Distribution) SuperfireEligible() bool {
	return d != CenterlineEven && d != SidesEven
}

// G1Position returns the centroid of a primary group as a fraction of
// waterline length from the bow.
func (d Distribution) G1Position(fdLen, adLen float64) float64 {
	switch d {
	case CenterlineFD, SidesFD:
		return 0.2 + 0.3*fdLen
	case CenterlineAD, SidesAD:
		return 0.8 - 0.3*adLen
	default:
		return 0.5
	}
}

// G2Position returns the centroid of a secondary group. Forward-deck
// groups sit at a fixed station independent of deck length, which can
// disagree with G1Position for the same arrangement; corrected layouts
// use G1Position for both.
func (d Distribution) G2Position(fdLen, adLen float64) float64 {
	switch d {
	case CenterlineFD, SidesFD:
		return 0.2
	case CenterlineAD, SidesAD:
		return 0.8 - 0.3*adLen
	default:
		return 0.5
	}
}

// GunGroup places part of a battery's mounts by deck level.
type GunGroup struct {
	Above int `yaml:"above"`
	On    int `yaml:"on"`
	Below int `yaml:"below"`

	Layout      GunLayout    `yaml:"layout"`
	Dist        Distribution `yaml:"dist"`
	TwoMountsUp bool         `yaml:"two_mounts_up"`
	LowerDeck   bool         `yaml:"lower_deck"`
}

// Mounts returns the total mounts in the group.
func (g *GunGroup) Mounts() int {
	return g.Above + g.On + g.Below
}

// Battery is one caliber of guns, its mounts, magazines and mount armor.
// Diam is the bore in inches, Len the barrel length in calibers.
type Battery struct {
	Num      int     `yaml:"num"`
	Diam     float64 `yaml:"diam"`
	Len      float64 `yaml:"len"`
	Kind     GunKind `yaml:"kind"`
	Year     int     `yaml:"year"`
	ShellWgt float64 `yaml:"shell_wgt"`
	Shells   int     `yaml:"shells"`

	Mount    MountKind `yaml:"mount"`
	MountNum int       `yaml:"mount_num"`

	// Gunhouse face, other gunhouse plates, and barbette trunk, inches.
	ArmorFace float64 `yaml:"armor_face"`
	ArmorBack float64 `yaml:"armor_back"`
	ArmorBarb float64 `yaml:"armor_barb"`

	Groups [2]GunGroup `yaml:"groups"`

	Units units.System `yaml:"units"`
}

// ShellWeight returns the projectile weight in pounds, deriving the
// period-typical cubic default when none is stored.
func (b *Battery) ShellWeight() float64 {
	if b.ShellWgt > 0 {
		return b.ShellWgt
	}
	return math.Pow(b.Diam, 3) / 2.0
}

// yearFactor scales gun weight for construction era.
func (b *Battery) yearFactor() float64 {
	switch {
	case b.Year < 1895:
		return 1.2
	case b.Year < 1920:
		return 1.0
	default:
		return 0.9
	}
}

// GunWgt returns the bare gun weight of the battery in tons.
func (b *Battery) GunWgt() float64 {
	perGun := b.ShellWeight() * b.Len / 660.0 * b.yearFactor()
	return float64(b.Num) * perGun
}

// MountWgt returns the mount structure weight in tons.
func (b *Battery) MountWgt() float64 {
	return b.GunWgt() * b.Mount.mountFactor()
}

// MagWgt returns magazine weight in tons: shells plus charges and handling.
func (b *Battery) MagWgt() float64 {
	return float64(b.Num*b.Shells) * b.ShellWeight() * 1.5 / 2240.0
}

// gunhouseScale returns the characteristic plate dimension of one mount
// in feet.
func (b *Battery) gunhouseScale() float64 {
	return math.Max(b.Diam, 3.0)
}

// ArmorWgt returns the weight of gunhouse and barbette armor in tons.
// Barbette trunks run from the weather deck to the magazines, so their
// height follows the hull's effective freeboard plus hold depth.
func (b *Battery) ArmorWgt(h *Hull) float64 {
	if b.MountNum == 0 {
		return 0
	}
	s := b.gunhouseScale()
	face := b.ArmorFace * s * s * 0.6
	rest := b.ArmorBack * s * s * 2.2
	trunk := b.ArmorBarb * math.Pi * s * (h.FreeboardDist() + h.T*0.5)
	return (face + rest + trunk) * plateLbPerFt2In / 2240.0 * float64(b.MountNum)
}

// broadsideFraction returns the share of guns bearing on one broadside.
func (b *Battery) broadsideFraction() float64 {
	mounts := b.MountNum
	if mounts == 0 {
		return 0
	}
	var sum float64
	for i := range b.Groups {
		g := &b.Groups[i]
		f := 1.0
		if g.Dist.onSides() {
			f = 0.5
		}
		sum += f * float64(g.Mounts())
	}
	return sum / float64(mounts)
}

// BroadsideWgt returns the weight of shell thrown on one broadside, pounds.
func (b *Battery) BroadsideWgt() float64 {
	return float64(b.Num) * b.broadsideFraction() * b.ShellWeight()
}

// Concentration returns the stress penalty for firing a large share of
// the total broadside from one battery.
func (b *Battery) Concentration(totalBroadside float64) float64 {
	if totalBroadside <= 0 {
		return 0
	}
	share := b.BroadsideWgt() / totalBroadside
	return share * share * 0.25
}

// Super returns the height factor of the battery's carried weight: raised
// mounts push weight up, hull mounts pull it down.
func (b *Battery) Super() float64 {
	mounts := b.Groups[0].Mounts() + b.Groups[1].Mounts()
	if mounts == 0 {
		return 1.0
	}
	above := b.Groups[0].Above + b.Groups[1].Above
	below := b.Groups[0].Below + b.Groups[1].Below
	f := 1.0 + 0.3*float64(above)/float64(mounts) - 0.2*float64(below)/float64(mounts)
	if b.Groups[0].TwoMountsUp || b.Groups[1].TwoMountsUp {
		f += 0.15
	}
	return math.Max(f, 0.5)
}

// BroadAndBelow reports whether the battery is absent or carried entirely
// on the gundeck in broadside mounts.
func (b *Battery) BroadAndBelow() bool {
	if b.Num == 0 {
		return true
	}
	if b.Mount != MountBroadside {
		return false
	}
	for i := range b.Groups {
		if b.Groups[i].Above > 0 || b.Groups[i].On > 0 {
			return false
		}
	}
	return true
}

// Free returns the hull freeboard at the battery's primary group.
func (b *Battery) Free(h *Hull) float64 {
	pos := b.Groups[0].Dist.G1Position(h.FdLen, h.AdLen())
	return h.FreeboardAt(pos)
}

// TorpMountKind places torpedo tubes on or in the hull.
type TorpMountKind int

const (
	TorpFixedTubes TorpMountKind = iota
	TorpDeckSideTubes
	TorpCenterTubes
	TorpDeckReloads
	TorpBowTubes
	TorpSternTubes
	TorpBowAndSternTubes
	TorpSubmergedSideTubes
	TorpSubmergedReloads
)

func (m TorpMountKind) String() string {
	switch m {
	case TorpFixedTubes:
		return "fixed tubes"
	case TorpDeckSideTubes:
		return "deck mounted side tubes"
	case TorpCenterTubes:
		return "deck mounted centreline tubes"
	case TorpDeckReloads:
		return "deck mounted tubes with reloads"
	case TorpBowTubes:
		return "bow tubes"
	case TorpSternTubes:
		return "stern tubes"
	case TorpBowAndSternTubes:
		return "bow and stern tubes"
	case TorpSubmergedSideTubes:
		return "submerged side tubes"
	default:
		return "submerged tubes with reloads"
	}
}

// IsDeck reports whether the mount occupies weather deck rather than hull
// volume.
func (m TorpMountKind) IsDeck() bool {
	switch m {
	case TorpFixedTubes, TorpDeckSideTubes, TorpCenterTubes, TorpDeckReloads:
		return true
	}
	return false
}

// mountWgtFactor returns tube and training gear weight as a multiple of
// torpedo weight, per mount.
func (m TorpMountKind) mountWgtFactor() float64 {
	switch m {
	case TorpFixedTubes:
		return 0.15
	case TorpDeckSideTubes, TorpCenterTubes, TorpDeckReloads:
		return 0.35
	default:
		return 0.5
	}
}

// Torpedoes is one torpedo outfit. Diam is inches, Len feet.
type Torpedoes struct {
	Num    int           `yaml:"num"`
	Mounts int           `yaml:"mounts"`
	Diam   float64       `yaml:"diam"`
	Len    float64       `yaml:"len"`
	Mount  TorpMountKind `yaml:"mount"`
	Year   int           `yaml:"year"`

	Units units.System `yaml:"units"`
}

// UnitWgt returns the weight of one torpedo in tons.
func (t *Torpedoes) UnitWgt() float64 {
	return t.Diam * t.Diam * t.Len / 6000.0
}

// WgtWeaps returns the weight of the torpedoes alone, tons.
func (t *Torpedoes) WgtWeaps() float64 {
	return float64(t.Num) * t.UnitWgt()
}

// WgtTotal returns torpedoes plus tubes and handling gear, tons.
func (t *Torpedoes) WgtTotal() float64 {
	return t.WgtWeaps() + float64(t.Mounts)*t.UnitWgt()*t.Mount.mountWgtFactor()
}

// DeckArea returns the weather deck footprint in square feet. Hull-mounted
// outfits take none; trainable mounts need their sweep circle, centreline
// mounts the full beam to train over it.
func (t *Torpedoes) DeckArea(beam float64) float64 {
	m := float64(t.Mounts)
	switch t.Mount {
	case TorpFixedTubes:
		return 0.125 * m * t.Len * t.Diam
	case TorpDeckSideTubes, TorpDeckReloads:
		return 0.24 * m * t.Len * t.Diam
	case TorpCenterTubes:
		return 1.024 * m * t.Len * beam
	}
	return 0
}

// HullVolume returns the hull volume claimed in cubic feet. Deck mounts
// take none; reload stowage is far denser than tube rooms.
func (t *Torpedoes) HullVolume() float64 {
	n := float64(t.Num)
	switch t.Mount {
	case TorpBowTubes, TorpSternTubes, TorpBowAndSternTubes, TorpSubmergedSideTubes:
		return 0.13 * n * t.Diam * t.Diam * t.Len
	case TorpSubmergedReloads:
		return 0.0225 * n * t.Diam * t.Diam * t.Len
	}
	return 0
}

// MineMountKind places mine stowage and launch gear.
type MineMountKind int

const (
	MineRailsAboveDeck MineMountKind = iota
	MineBelowDeck
	MineChutes
)

func (m MineMountKind) String() string {
	switch m {
	case MineBelowDeck:
		return "below deck stowage"
	case MineChutes:
		return "stern chutes"
	default:
		return "above deck rails"
	}
}

// Mines is the mine outfit. Wgt is the weight of one mine in pounds.
type Mines struct {
	Num    int           `yaml:"num"`
	Reload int           `yaml:"reload"`
	Wgt    float64       `yaml:"wgt"`
	Mount  MineMountKind `yaml:"mount"`
	Year   int           `yaml:"year"`

	Units units.System `yaml:"units"`
}

// WgtWeaps returns the weight of the mines alone, tons.
func (m *Mines) WgtWeaps() float64 {
	return float64(m.Num+m.Reload) * m.Wgt / 2240.0
}

// WgtTotal returns mines plus rails and stowage, tons.
func (m *Mines) WgtTotal() float64 {
	return m.WgtWeaps() * 1.1
}

// ASWKind names the anti-submarine launch gear.
type ASWKind int

const (
	ASWRacks ASWKind = iota
	ASWThrowers
	ASWRacksAndThrowers
	ASWMortar
	ASWHedgehog
)

func (k ASWKind) String() string {
	switch k {
	case ASWThrowers:
		return "depth charge throwers"
	case ASWRacksAndThrowers:
		return "depth charge racks and throwers"
	case ASWMortar:
		return "anti-submarine mortar"
	case ASWHedgehog:
		return "hedgehog spigot mortar"
	default:
		return "depth charge racks"
	}
}

// FiresAbeam reports whether the gear projects charges to the sides
// rather than dropping them over the stern.
func (k ASWKind) FiresAbeam() bool {
	return k != ASWRacks
}

// ASW is the anti-submarine outfit. Wgt is one charge in pounds.
type ASW struct {
	Num    int     `yaml:"num"`
	Reload int     `yaml:"reload"`
	Wgt    float64 `yaml:"wgt"`
	Kind   ASWKind `yaml:"kind"`
	Year   int     `yaml:"year"`

	Units units.System `yaml:"units"`
}

// WgtWeaps returns the weight of the charges alone, tons.
func (a *ASW) WgtWeaps() float64 {
	return float64(a.Num+a.Reload) * a.Wgt / 2240.0
}

// WgtTotal returns charges plus launch gear, tons.
func (a *ASW) WgtTotal() float64 {
	return a.WgtWeaps() * 1.15
}

// BatteryDesc formats the headline line for a battery's guns.
func BatteryDesc(b *Battery) string {
	return fmt.Sprintf("%d x %.2f\" %.0f cal %s", b.Num, b.Diam, b.Len, b.Kind)
}
