package ship

import (
	"math"
	"strings"

	"github.com/orionarts/sharpie/pkg/units"
)

// Fuel is a bitset of bunker fuels carried.
type Fuel uint8

const (
	FuelCoal Fuel = 1 << iota
	FuelOil
	FuelDiesel
	FuelGasoline
	FuelBattery
)

var fuelNames = []struct {
	f    Fuel
	name string
}{
	{FuelCoal, "coal"},
	{FuelOil, "oil"},
	{FuelDiesel, "diesel"},
	{FuelGasoline, "gasoline"},
	{FuelBattery, "battery"},
}

func (f Fuel) Has(x Fuel) bool { return f&x != 0 }

func (f Fuel) String() string {
	var parts []string
	for _, fn := range fuelNames {
		if f.Has(fn.f) {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " and ")
}

// Boiler is a bitset of steam plant types fitted.
type Boiler uint8

const (
	BoilerSimple Boiler = 1 << iota
	BoilerComplex
	BoilerTurbine
	BoilerInternalCombustion
)

var boilerNames = []struct {
	b    Boiler
	name string
}{
	{BoilerSimple, "simple reciprocating steam engines"},
	{BoilerComplex, "complex reciprocating steam engines"},
	{BoilerTurbine, "steam turbines"},
	{BoilerInternalCombustion, "internal combustion motors"},
}

func (b Boiler) Has(x Boiler) bool { return b&x != 0 }

// IsReciprocating reports whether any reciprocating steam plant is fitted.
func (b Boiler) IsReciprocating() bool {
	return b.Has(BoilerSimple) || b.Has(BoilerComplex)
}

func (b Boiler) String() string {
	var parts []string
	for _, bn := range boilerNames {
		if b.Has(bn.b) {
			parts = append(parts, bn.name)
		}
	}
	if len(parts) == 0 {
		return "no engines"
	}
	return strings.Join(parts, " and ")
}

// HpType returns the horsepower convention the plant is rated in.
func (b Boiler) HpType() string {
	if b.IsReciprocating() && !b.Has(BoilerTurbine) {
		return "ihp"
	}
	return "shp"
}

// Drive is a bitset of transmission types fitted.
type Drive uint8

const (
	DriveDirect Drive = 1 << iota
	DriveGeared
	DriveElectric
	DriveHydraulic
)

var driveNames = []struct {
	d    Drive
	name string
}{
	{DriveDirect, "direct drive"},
	{DriveGeared, "geared drive"},
	{DriveElectric, "electric motors"},
	{DriveHydraulic, "hydraulic drive"},
}

func (d Drive) Has(x Drive) bool { return d&x != 0 }

func (d Drive) String() string {
	var parts []string
	for _, dn := range driveNames {
		if d.Has(dn.d) {
			parts = append(parts, dn.name)
		}
	}
	if len(parts) == 0 {
		return "no drive"
	}
	return strings.Join(parts, " plus ")
}

// propCoeff returns the best propulsive coefficient available in the set.
func (d Drive) propCoeff() float64 {
	pc := 0.5
	if d.Has(DriveDirect) {
		pc = math.Max(pc, 0.55)
	}
	if d.Has(DriveHydraulic) {
		pc = math.Max(pc, 0.58)
	}
	if d.Has(DriveElectric) {
		pc = math.Max(pc, 0.60)
	}
	if d.Has(DriveGeared) {
		pc = math.Max(pc, 0.62)
	}
	return pc
}

// Engine is the propulsion record. Speeds are knots, range nautical miles.
// A VMax of zero means no propulsion at all (a towed or moored hull) and
// short-circuits every performance figure to zero.
type Engine struct {
	VMax    float64 `yaml:"v_max"`
	VCruise float64 `yaml:"v_cruise"`
	Range   float64 `yaml:"range"`
	PctCoal float64 `yaml:"pct_coal"`
	Shafts  int     `yaml:"shafts"`
	Year    int     `yaml:"year"`

	Fuel   Fuel   `yaml:"fuel"`
	Boiler Boiler `yaml:"boiler"`
	Drive  Drive  `yaml:"drive"`

	Units units.System `yaml:"units"`
}

// Rf returns frictional resistance in pounds at speed v, given the
// wetted surface.
func (e *Engine) Rf(v, ws float64) float64 {
	if v <= 0 {
		return 0
	}
	return 0.01 * ws * math.Pow(v, 1.825)
}

// Rw returns residuary (wave-making) resistance in pounds at speed v.
func (e *Engine) Rw(v float64, h *Hull) float64 {
	if v <= 0 || h.Lwl <= 0 {
		return 0
	}
	vn := h.Vn()
	return h.Disp * 2240.0 * h.Cs() * math.Pow(v/vn, 6) / 40.0
}

// Pw returns the wave-making fraction of total resistance at speed v.
func (e *Engine) Pw(v float64, h *Hull) float64 {
	rf := e.Rf(v, h.WS())
	rw := e.Rw(v, h)
	if rf+rw <= 0 {
		return 0
	}
	return rw / (rf + rw)
}

// PwMax returns the wave-making fraction at maximum speed.
func (e *Engine) PwMax(h *Hull) float64 { return e.Pw(e.VMax, h) }

// hpAt returns the installed horsepower to make speed v.
func (e *Engine) hpAt(v float64, h *Hull) float64 {
	if v <= 0 {
		return 0
	}
	ehp := (e.Rf(v, h.WS()) + e.Rw(v, h)) * v * 1.689 / 550.0
	hp := ehp / e.Drive.propCoeff()
	if leff := h.Leff(); leff > 0 {
		hp *= math.Sqrt(h.Lwl / leff)
	}
	return hp
}

// HpMax returns the installed horsepower for maximum speed.
func (e *Engine) HpMax(h *Hull) float64 { return e.hpAt(e.VMax, h) }

// HpCruise returns the horsepower needed at cruise speed.
func (e *Engine) HpCruise(h *Hull) float64 { return e.hpAt(e.VCruise, h) }

// plantRate returns the specific plant weight in pounds per horsepower.
func (e *Engine) plantRate() float64 {
	rate := 500.0 * math.Exp(-float64(e.Year-1860)/30.0)
	rate = math.Max(rate, 30.0)
	mult := 1.0
	switch {
	case e.Boiler.Has(BoilerTurbine):
		mult = 0.55
	case e.Boiler.Has(BoilerInternalCombustion):
		mult = 0.70
	case e.Boiler.Has(BoilerComplex):
		mult = 1.0
	case e.Boiler.Has(BoilerSimple):
		mult = 1.15
	}
	switch {
	case e.Drive.Has(DriveGeared):
		mult *= 0.95
	case e.Drive.Has(DriveElectric):
		mult *= 1.2
	case e.Drive.Has(DriveHydraulic):
		mult *= 1.1
	}
	if e.Fuel.Has(FuelBattery) {
		mult *= 1.5
	}
	return rate * mult
}

// DEngine returns the volumetric size of the machinery spaces expressed
// in tons of displacement.
func (e *Engine) DEngine(h *Hull) float64 {
	return e.HpMax(h) * e.plantRate() / 2240.0
}

// sfc returns the specific fuel consumption in pounds per horsepower-hour,
// blending the coal share with the best liquid fuel carried.
func (e *Engine) sfc() float64 {
	base := 5.0
	switch {
	case e.Boiler.Has(BoilerInternalCombustion):
		base = math.Max(0.45, 1.4-0.01*float64(e.Year-1890))
	case e.Boiler.Has(BoilerTurbine):
		base = math.Max(0.7, 2.6-0.03*float64(e.Year-1860))
	case e.Boiler.Has(BoilerComplex):
		base = math.Max(0.9, 3.2-0.04*float64(e.Year-1860))
	default:
		base = math.Max(1.2, 5.0-0.05*float64(e.Year-1860))
	}

	liquid := 1.0
	if e.Fuel.Has(FuelOil) {
		liquid = 0.85
	}
	if e.Fuel.Has(FuelGasoline) {
		liquid = math.Min(liquid, 0.6)
	}
	if e.Fuel.Has(FuelDiesel) {
		liquid = math.Min(liquid, 0.5)
	}

	pct := math.Max(0, math.Min(e.PctCoal, 1))
	if !e.Fuel.Has(FuelCoal) {
		pct = 0
	}
	return base * (pct + (1-pct)*liquid)
}

// Bunker returns the normal bunkerage in tons for the design range.
func (e *Engine) Bunker(h *Hull) float64 {
	if e.VCruise <= 0 || e.Range <= 0 {
		return 0
	}
	hours := e.Range / e.VCruise
	return e.HpCruise(h) * e.sfc() * hours / 2240.0
}

// BunkerMax returns bunkerage at maximum displacement.
func (e *Engine) BunkerMax(h *Hull) float64 {
	return 1.8 * e.Bunker(h)
}
