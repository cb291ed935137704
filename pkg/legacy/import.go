// Package legacy imports SpringSharp 3 save files. The format is a bare
// sequence of lines whose meaning is fixed entirely by position, so the
// importer is a schema: an ordered table of named fields, each with its
// decoder, consumed by one generic loop. Parse failures report the field
// name and line number instead of a bare offset.
package legacy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/orionarts/sharpie/pkg/ship"
	"github.com/orionarts/sharpie/pkg/units"
)

var (
	// ErrUnsupportedVersion marks a SpringSharp file from a release older
	// than 3.0.
	ErrUnsupportedVersion = errors.New("springsharp file too old")

	// ErrUnknownFormat marks a file that is not a SpringSharp save at all.
	ErrUnknownFormat = errors.New("unknown file format")
)

type reader struct {
	sc   *bufio.Scanner
	line int
}

func (r *reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	r.line++
	return strings.TrimRight(r.sc.Text(), "\r"), nil
}

// step decodes one positional field into the ship record.
type step struct {
	name  string
	apply func(r *reader, s *ship.Ship) error
}

func custom(name string, fn func(s *ship.Ship, v string) error) step {
	return step{name, func(r *reader, s *ship.Ship) error {
		v, err := r.next()
		if err != nil {
			return err
		}
		return fn(s, v)
	}}
}

func strF(name string, sel func(*ship.Ship) *string) step {
	return custom(name, func(s *ship.Ship, v string) error {
		*sel(s) = v
		return nil
	})
}

// floatF strips thousands separators before parsing; SpringSharp writes
// shell weights with commas.
func floatF(name string, sel func(*ship.Ship) *float64) step {
	return custom(name, func(s *ship.Ship, v string) error {
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return err
		}
		*sel(s) = f
		return nil
	})
}

// pctF parses a percentage and stores the fraction.
func pctF(name string, sel func(*ship.Ship) *float64) step {
	return custom(name, func(s *ship.Ship, v string) error {
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return err
		}
		*sel(s) = f / 100.0
		return nil
	})
}

func intF(name string, sel func(*ship.Ship) *int) step {
	return custom(name, func(s *ship.Ship, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*sel(s) = n
		return nil
	})
}

// boolF treats the literal "True" as true, anything else as false.
func boolF(name string, sel func(*ship.Ship) *bool) step {
	return custom(name, func(s *ship.Ship, v string) error {
		*sel(s) = v == "True"
		return nil
	})
}

func unitsF(name string, sel func(*ship.Ship) *units.System) step {
	return custom(name, func(s *ship.Ship, v string) error {
		*sel(s) = parseUnits(v)
		return nil
	})
}

func skipF(name string) step {
	return step{name, func(r *reader, s *ship.Ship) error {
		_, err := r.next()
		return err
	}}
}

// schema is the positional layout of a SpringSharp 3 save, in file
// order. Duplicated and dead stretches of the format are named skips.
var schema = buildSchema()

func buildSchema() []step {
	var t []step
	add := func(s ...step) { t = append(t, s...) }

	add(
		strF("name", func(s *ship.Ship) *string { return &s.Name }),
		strF("country", func(s *ship.Ship) *string { return &s.Country }),
		strF("kind", func(s *ship.Ship) *string { return &s.Kind }),

		unitsF("hull units", func(s *ship.Ship) *units.System { return &s.Hull.Units }),
	)
	for i := 0; i < 5; i++ {
		i := i
		add(unitsF(fmt.Sprintf("battery %d units", i),
			func(s *ship.Ship) *units.System { return &s.Batteries[i].Units }))
	}
	add(
		unitsF("torpedo units", func(s *ship.Ship) *units.System { return &s.Torps[0].Units }),
		unitsF("armor units", func(s *ship.Ship) *units.System { return &s.Armor.Units }),

		intF("year", func(s *ship.Ship) *int { return &s.Year }),
		intF("vital weights", func(s *ship.Ship) *int { return &s.Wgts.Vital }),

		custom("waterline length", func(s *ship.Ship, v string) error {
			f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
			if err != nil {
				return err
			}
			s.Hull.SetLwl(f)
			return nil
		}),
		floatF("beam", func(s *ship.Ship) *float64 { return &s.Hull.B }),
		floatF("draft", func(s *ship.Ship) *float64 { return &s.Hull.T }),
		custom("stern type", func(s *ship.Ship, v string) error {
			s.Hull.Stern = parseStern(v)
			return nil
		}),
		custom("block coefficient", func(s *ship.Ship, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			s.Hull.SetCb(f)
			return nil
		}),

		floatF("qd aft freeboard", func(s *ship.Ship) *float64 { return &s.Hull.QdAft }),
		floatF("stern overhang", func(s *ship.Ship) *float64 { return &s.Hull.SternOverhang }),
		pctF("qd length", func(s *ship.Ship) *float64 { return &s.Hull.QdLen }),
		floatF("qd fwd freeboard", func(s *ship.Ship) *float64 { return &s.Hull.QdFwd }),
		floatF("ad aft freeboard", func(s *ship.Ship) *float64 { return &s.Hull.AdAft }),
		pctF("fd length", func(s *ship.Ship) *float64 { return &s.Hull.FdLen }),
		floatF("ad fwd freeboard", func(s *ship.Ship) *float64 { return &s.Hull.AdFwd }),
		floatF("fd aft freeboard", func(s *ship.Ship) *float64 { return &s.Hull.FdAft }),
		pctF("fc length", func(s *ship.Ship) *float64 { return &s.Hull.FcLen }),
		floatF("fd fwd freeboard", func(s *ship.Ship) *float64 { return &s.Hull.FdFwd }),
		floatF("fc aft freeboard", func(s *ship.Ship) *float64 { return &s.Hull.FcAft }),
		floatF("fc fwd freeboard", func(s *ship.Ship) *float64 { return &s.Hull.FcFwd }),
		floatF("bow angle", func(s *ship.Ship) *float64 { return &s.Hull.BowAngle }),
	)

	for i := 0; i < 5; i++ {
		i := i
		add(
			intF(fmt.Sprintf("battery %d guns", i),
				func(s *ship.Ship) *int { return &s.Batteries[i].Num }),
			floatF(fmt.Sprintf("battery %d caliber", i),
				func(s *ship.Ship) *float64 { return &s.Batteries[i].Diam }),
			custom(fmt.Sprintf("battery %d gun kind", i), func(s *ship.Ship, v string) error {
				s.Batteries[i].Kind = parseGunKind(v)
				return nil
			}),
			intF(fmt.Sprintf("battery %d group 0 raised", i),
				func(s *ship.Ship) *int { return &s.Batteries[i].Groups[0].Above }),
			intF(fmt.Sprintf("battery %d group 0 hull", i),
				func(s *ship.Ship) *int { return &s.Batteries[i].Groups[0].Below }),
			floatF(fmt.Sprintf("battery %d shell weight", i),
				func(s *ship.Ship) *float64 { return &s.Batteries[i].ShellWgt }),
		)
	}

	add(intF("battery 0 shells", func(s *ship.Ship) *int { return &s.Batteries[0].Shells }))
	for i := 0; i < 5; i++ {
		i := i
		add(
			intF(fmt.Sprintf("battery %d mounts", i),
				func(s *ship.Ship) *int { return &s.Batteries[i].MountNum }),
			custom(fmt.Sprintf("battery %d mount kind", i), func(s *ship.Ship, v string) error {
				s.Batteries[i].Mount = parseMountKind(v)
				return nil
			}),
			custom(fmt.Sprintf("battery %d group 0 distribution", i), func(s *ship.Ship, v string) error {
				s.Batteries[i].Groups[0].Dist = parseDistribution(v)
				return nil
			}),
		)
	}

	add(
		intF("torpedoes", func(s *ship.Ship) *int { return &s.Torps[0].Num }),
		intF("2nd torpedoes", func(s *ship.Ship) *int { return &s.Torps[1].Num }),
		floatF("torpedo diameter", func(s *ship.Ship) *float64 { return &s.Torps[0].Diam }),
	)

	belt := func(label string, sel func(*ship.Ship) *ship.Section) {
		add(
			floatF(label+" thickness", func(s *ship.Ship) *float64 { return &sel(s).Thick }),
			floatF(label+" length", func(s *ship.Ship) *float64 { return &sel(s).Len }),
			floatF(label+" height", func(s *ship.Ship) *float64 { return &sel(s).Hgt }),
		)
	}
	belt("main belt", func(s *ship.Ship) *ship.Section { return &s.Armor.Main })
	belt("end belt", func(s *ship.Ship) *ship.Section { return &s.Armor.End })
	belt("upper belt", func(s *ship.Ship) *ship.Section { return &s.Armor.Upper })
	belt("torpedo bulkhead", func(s *ship.Ship) *ship.Section { return &s.Armor.Bulkhead })

	for i := 0; i < 5; i++ {
		i := i
		add(
			floatF(fmt.Sprintf("battery %d face armor", i),
				func(s *ship.Ship) *float64 { return &s.Batteries[i].ArmorFace }),
			floatF(fmt.Sprintf("battery %d gunhouse armor", i),
				func(s *ship.Ship) *float64 { return &s.Batteries[i].ArmorBack }),
			floatF(fmt.Sprintf("battery %d barbette armor", i),
				func(s *ship.Ship) *float64 { return &s.Batteries[i].ArmorBarb }),
		)
	}

	add(
		floatF("deck armor", func(s *ship.Ship) *float64 { return &s.Armor.Deck.MD }),
		floatF("forward conning tower", func(s *ship.Ship) *float64 { return &s.Armor.CTFwd.Thick }),
		floatF("max speed", func(s *ship.Ship) *float64 { return &s.Engine.VMax }),
		floatF("cruise speed", func(s *ship.Ship) *float64 { return &s.Engine.VCruise }),
		floatF("range", func(s *ship.Ship) *float64 { return &s.Engine.Range }),
		intF("shafts", func(s *ship.Ship) *int { return &s.Engine.Shafts }),
		pctF("coal fraction", func(s *ship.Ship) *float64 { return &s.Engine.PctCoal }),
	)

	fuel := func(name string, bit ship.Fuel) {
		add(custom(name, func(s *ship.Ship, v string) error {
			if v == "True" {
				s.Engine.Fuel |= bit
			}
			return nil
		}))
	}
	fuel("coal fuel", ship.FuelCoal)
	fuel("oil fuel", ship.FuelOil)
	fuel("diesel fuel", ship.FuelDiesel)
	fuel("gasoline fuel", ship.FuelGasoline)
	fuel("battery fuel", ship.FuelBattery)

	boiler := func(name string, bit ship.Boiler) {
		add(custom(name, func(s *ship.Ship, v string) error {
			if v == "True" {
				s.Engine.Boiler |= bit
			}
			return nil
		}))
	}
	boiler("simple engines", ship.BoilerSimple)
	boiler("complex engines", ship.BoilerComplex)
	boiler("turbines", ship.BoilerTurbine)

	drive := func(name string, bit ship.Drive) {
		add(custom(name, func(s *ship.Ship, v string) error {
			if v == "True" {
				s.Engine.Drive |= bit
			}
			return nil
		}))
	}
	drive("direct drive", ship.DriveDirect)
	drive("geared drive", ship.DriveGeared)
	drive("electric drive", ship.DriveElectric)
	drive("hydraulic drive", ship.DriveHydraulic)

	add(
		floatF("trim", func(s *ship.Ship) *float64 { return &s.Trim }),
		floatF("bulge beam", func(s *ship.Ship) *float64 { return &s.Hull.BB }),
		intF("engine year", func(s *ship.Ship) *int { return &s.Engine.Year }),
	)

	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d year", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Year }))
	}

	add(
		custom("bow type", func(s *ship.Ship, v string) error {
			s.Hull.Bow = parseBow(v)
			return nil
		}),
		custom("ram length", func(s *ship.Ship, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			if s.Hull.Bow == ship.BowRam {
				s.Hull.RamLen = f
			}
			return nil
		}),

		unitsF("2nd torpedo units", func(s *ship.Ship) *units.System { return &s.Torps[1].Units }),
		unitsF("mine units", func(s *ship.Ship) *units.System { return &s.Mines.Units }),
		unitsF("asw units", func(s *ship.Ship) *units.System { return &s.ASW[0].Units }),
		unitsF("2nd asw units", func(s *ship.Ship) *units.System { return &s.ASW[1].Units }),
	)

	for i := 0; i < 5; i++ {
		i := i
		add(floatF(fmt.Sprintf("battery %d barrel length", i),
			func(s *ship.Ship) *float64 { return &s.Batteries[i].Len }))
	}
	for i := 1; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d shells", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Shells }))
	}

	for i := 0; i < 5; i++ {
		i := i
		add(custom(fmt.Sprintf("battery %d group 1 distribution", i), func(s *ship.Ship, v string) error {
			s.Batteries[i].Groups[1].Dist = parseDistribution(v)
			return nil
		}))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 1 raised", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[1].Above }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(boolF(fmt.Sprintf("battery %d group 1 double raised", i),
			func(s *ship.Ship) *bool { return &s.Batteries[i].Groups[1].TwoMountsUp }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 1 deck", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[1].On }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 1 hull", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[1].Below }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(boolF(fmt.Sprintf("battery %d group 1 lower deck", i),
			func(s *ship.Ship) *bool { return &s.Batteries[i].Groups[1].LowerDeck }))
	}

	add(
		intF("torpedo mounts", func(s *ship.Ship) *int { return &s.Torps[0].Mounts }),
		intF("2nd torpedo mounts", func(s *ship.Ship) *int { return &s.Torps[1].Mounts }),
		floatF("2nd torpedo diameter", func(s *ship.Ship) *float64 { return &s.Torps[1].Diam }),
		floatF("torpedo length", func(s *ship.Ship) *float64 { return &s.Torps[0].Len }),
		floatF("2nd torpedo length", func(s *ship.Ship) *float64 { return &s.Torps[1].Len }),
		custom("torpedo mount kind", func(s *ship.Ship, v string) error {
			s.Torps[0].Mount = parseTorpMount(v)
			return nil
		}),
		custom("2nd torpedo mount kind", func(s *ship.Ship, v string) error {
			s.Torps[1].Mount = parseTorpMount(v)
			return nil
		}),

		intF("mines", func(s *ship.Ship) *int { return &s.Mines.Num }),
		intF("mine reloads", func(s *ship.Ship) *int { return &s.Mines.Reload }),
		floatF("mine weight", func(s *ship.Ship) *float64 { return &s.Mines.Wgt }),
		custom("mine mount kind", func(s *ship.Ship, v string) error {
			s.Mines.Mount = parseMineMount(v)
			return nil
		}),

		intF("asw charges", func(s *ship.Ship) *int { return &s.ASW[0].Num }),
		intF("2nd asw charges", func(s *ship.Ship) *int { return &s.ASW[1].Num }),
		intF("asw reloads", func(s *ship.Ship) *int { return &s.ASW[0].Reload }),
		intF("2nd asw reloads", func(s *ship.Ship) *int { return &s.ASW[1].Reload }),
		floatF("asw weight", func(s *ship.Ship) *float64 { return &s.ASW[0].Wgt }),
		floatF("2nd asw weight", func(s *ship.Ship) *float64 { return &s.ASW[1].Wgt }),
		custom("asw kind", func(s *ship.Ship, v string) error {
			s.ASW[0].Kind = parseASWKind(v)
			return nil
		}),
		custom("2nd asw kind", func(s *ship.Ship, v string) error {
			s.ASW[1].Kind = parseASWKind(v)
			return nil
		}),

		intF("hull weights", func(s *ship.Ship) *int { return &s.Wgts.Hull }),
		intF("deck weights", func(s *ship.Ship) *int { return &s.Wgts.On }),
		intF("above deck weights", func(s *ship.Ship) *int { return &s.Wgts.Above }),

		floatF("belt incline", func(s *ship.Ship) *float64 { return &s.Armor.Incline }),
		floatF("bulge thickness", func(s *ship.Ship) *float64 { return &s.Armor.Bulge.Thick }),
		floatF("bulge length", func(s *ship.Ship) *float64 { return &s.Armor.Bulge.Len }),
		floatF("bulge height", func(s *ship.Ship) *float64 { return &s.Armor.Bulge.Hgt }),

		custom("bulkhead kind", func(s *ship.Ship, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			if n == 0 {
				s.Armor.BHKind = ship.BulkheadAdditional
			} else {
				s.Armor.BHKind = ship.BulkheadStrengthened
			}
			return nil
		}),
		floatF("bulkhead beam", func(s *ship.Ship) *float64 { return &s.Armor.BHBeam }),
		floatF("forecastle deck armor", func(s *ship.Ship) *float64 { return &s.Armor.Deck.FC }),
		floatF("quarterdeck armor", func(s *ship.Ship) *float64 { return &s.Armor.Deck.QD }),
		custom("deck armor kind", func(s *ship.Ship, v string) error {
			s.Armor.Deck.Kind = parseDeckKind(v)
			return nil
		}),
		floatF("aft conning tower", func(s *ship.Ship) *float64 { return &s.Armor.CTAft.Thick }),
	)

	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 0 raised (dup)", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[0].Above }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 0 hull (dup)", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[0].Below }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 1 raised (dup)", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[1].Above }))
	}
	// The file repeats each group 1 deck count here; the earlier copy wins.
	for i := 0; i < 5; i++ {
		add(skipF(fmt.Sprintf("battery %d group 1 deck (dup)", i)))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(intF(fmt.Sprintf("battery %d group 1 hull (dup)", i),
			func(s *ship.Ship) *int { return &s.Batteries[i].Groups[1].Below }))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(custom(fmt.Sprintf("battery %d group 0 layout", i), func(s *ship.Ship, v string) error {
			s.Batteries[i].Groups[0].Layout = parseLayout(v)
			return nil
		}))
	}
	for i := 0; i < 5; i++ {
		i := i
		add(custom(fmt.Sprintf("battery %d group 1 layout", i), func(s *ship.Ship, v string) error {
			s.Batteries[i].Groups[1].Layout = parseLayout(v)
			return nil
		}))
	}

	add(intF("void weights", func(s *ship.Ship) *int { return &s.Wgts.Void }))

	// Unused tail of the fixed-position area.
	for i := 0; i < 33; i++ {
		add(skipF(fmt.Sprintf("reserved %d", i)))
	}

	return t
}

// Import reads a SpringSharp 3 save file.
func Import(path string) (*ship.Ship, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportReader(f)
}

// ImportReader decodes a SpringSharp 3 save from a stream.
func ImportReader(rd io.Reader) (*ship.Ship, error) {
	r := &reader{sc: bufio.NewScanner(rd)}

	head, err := r.next()
	if err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(head, "SpringSharp Version 3.0"):
	case strings.Contains(head, "SpringSharp"):
		return nil, ErrUnsupportedVersion
	default:
		return nil, ErrUnknownFormat
	}

	s := ship.New()
	for _, st := range schema {
		if err := st.apply(r, s); err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", r.line, st.name, err)
		}
	}

	// Anything after the fixed-position area is the designer's notes.
	for {
		line, err := r.next()
		if err != nil {
			break
		}
		s.Notes = append(s.Notes, line)
	}

	backfill(s)
	return s, nil
}

// backfill derives the fields SpringSharp never stores.
func backfill(s *ship.Ship) {
	// Deck-level mounts of the primary group are the remainder of the
	// mount total.
	for i := range s.Batteries {
		b := &s.Batteries[i]
		b.Groups[0].On = b.MountNum -
			b.Groups[0].Above - b.Groups[0].Below -
			b.Groups[1].Above - b.Groups[1].On - b.Groups[1].Below
	}

	// SpringSharp reuses the hull year for the underwater weapons.
	for i := range s.Torps {
		s.Torps[i].Year = s.Year
	}
	s.Mines.Year = s.Year
	for i := range s.ASW {
		s.ASW[i].Year = s.Year
	}
}
