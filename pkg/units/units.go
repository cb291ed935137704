// Package units converts between the imperial quantities the model computes
// in and the metric equivalents the report displays. Conversion is
// display-only; no formula consumes a converted value.
package units

// System tags which measurement system a record was entered in.
type System int

const (
	Imperial System = iota
	Metric
)

// ParseSystem maps the legacy file's unit labels onto a System tag.
// Unrecognized labels fall back to Imperial.
func ParseSystem(s string) System {
	switch s {
	case "Metric", "metric", "1":
		return Metric
	default:
		return Imperial
	}
}

func (s System) String() string {
	if s == Metric {
		return "Metric"
	}
	return "Imperial"
}

// Quantity selects the dimension being converted.
type Quantity int

const (
	// LengthLong converts feet to metres.
	LengthLong Quantity = iota
	// LengthSmall converts inches to millimetres.
	LengthSmall
	// Weight converts pounds to kilograms.
	Weight
	// Area converts square feet to square metres.
	Area
	// Power converts horsepower to kilowatts.
	Power
	// WeightPerArea converts lb/ft² to kg/m².
	WeightPerArea
)

const (
	ftToM       = 0.3048
	inToMM      = 25.4
	lbToKg      = 0.45359237
	ft2ToM2     = 0.09290304
	hpToKW      = 0.7457
	lbft2ToKgm2 = 4.8824276
)

// ToMetric converts an imperial value of the given quantity to metric.
func ToMetric(v float64, q Quantity) float64 {
	switch q {
	case LengthLong:
		return v * ftToM
	case LengthSmall:
		return v * inToMM
	case Weight:
		return v * lbToKg
	case Area:
		return v * ft2ToM2
	case Power:
		return v * hpToKW
	case WeightPerArea:
		return v * lbft2ToKgm2
	}
	return v
}
