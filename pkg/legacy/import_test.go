package legacy

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

// fixture builds a SpringSharp 3 save for an 1900 armoured cruiser, in
// the fixed field order of the format.
func fixture() string {
	var l []string
	add := func(v ...string) { l = append(l, v...) }
	rep := func(v string, n int) {
		for i := 0; i < n; i++ {
			l = append(l, v)
		}
	}

	add("Repulse, Testland Armoured Cruiser laid down 1900 (SpringSharp Version 3.0.3)")

	add("Repulse", "Testland", "Armoured Cruiser")
	rep("British", 8) // hull, five battery, torpedo and armor units
	add("1900", "100")
	add("400.00", "60.00", "20.00", "Cruiser stern", "0.550")
	// Quarterdeck aft, stern overhang, qd length, qd fwd, ad aft,
	// fd length, ad fwd, fd aft, fc length, fd fwd, fc aft, fc fwd,
	// bow angle.
	add("12.00", "0.00", "15.00", "12.00", "12.00", "30.00", "12.00",
		"12.00", "20.00", "12.00", "18.00", "18.00", "0.00")

	// Battery 0 guns, caliber, kind, raised, hull, shell weight.
	add("8", "12.00", "Breech loading", "2", "0", "1,250.00")
	for i := 0; i < 4; i++ {
		add("0", "0.00", "Breech loading", "0", "0", "0.00")
	}
	add("80") // battery 0 shells
	add("4", "Turret", "Centre-line, evenly spread")
	for i := 0; i < 4; i++ {
		add("0", "Turret", "Centre-line, evenly spread")
	}

	add("12", "0", "18.00") // torpedoes, 2nd torpedoes, diameter

	// Main, end, upper belt and torpedo bulkhead.
	add("6.00", "260.00", "8.00")
	add("2.00", "140.00", "6.00")
	add("0.00", "0.00", "0.00")
	add("0.00", "0.00", "0.00")

	// Battery face, gunhouse, barbette armor.
	add("8.00", "3.00", "6.00")
	rep("0.00", 12)

	// Deck armor, fwd conning tower, speeds, range, shafts, coal share.
	add("2.00", "9.00", "21.00", "10.00", "5000", "2", "100.00")
	add("True", "False", "False", "False", "False") // fuels
	add("False", "True", "False")                   // boilers
	add("True", "False", "False", "False")          // drives
	add("50.00", "60.00", "1900")                   // trim, bulge beam, engine year
	rep("1900", 5)                                  // battery years
	add("Normal bow", "0.00")
	rep("British", 4) // 2nd torpedo, mine and asw units

	add("40.00")   // battery 0 barrel length
	rep("0.00", 4) // other barrel lengths
	rep("0", 4)    // other shell outfits

	rep("Centre-line, evenly spread", 5) // group 1 distributions
	rep("0", 5)                          // group 1 raised
	rep("False", 5)                      // group 1 double raised
	rep("0", 5)                          // group 1 deck
	rep("0", 5)                          // group 1 hull
	rep("False", 5)                      // group 1 lower deck

	add("4", "0", "0.00", "15.00", "0.00", "Deck side tubes", "Deck side tubes")
	add("0", "0", "0.00", "Rails above deck")
	add("0", "0", "0", "0", "0.00", "0.00",
		"Depth charge racks", "Depth charge racks")

	add("100", "50", "25")              // hull, deck and above-deck weights
	add("0.00", "0.00", "0.00", "0.00") // incline and bulge
	add("0", "60.00", "1.00", "1.00", "Armour deck", "6.00")

	// Duplicated mount counts; must agree with the first copies.
	add("2", "0", "0", "0", "0") // group 0 raised
	rep("0", 5)                  // group 0 hull
	rep("0", 5)                  // group 1 raised
	rep("0", 5)                  // group 1 deck (ignored)
	rep("0", 5)                  // group 1 hull

	add("Twin")
	rep("Single", 4) // group 0 layouts
	rep("Single", 5) // group 1 layouts

	add("10") // void weights
	rep("0", 33)

	add("Trial design.")

	return strings.Join(l, "\n") + "\n"
}

func TestImport(t *testing.T) {
	s, err := ImportReader(strings.NewReader(fixture()))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if s.Name != "Repulse" || s.Country != "Testland" || s.Kind != "Armoured Cruiser" {
		t.Errorf("identity wrong: %q %q %q", s.Name, s.Country, s.Kind)
	}
	if s.Year != 1900 || s.Wgts.Vital != 100 {
		t.Errorf("year/vital wrong: %d %d", s.Year, s.Wgts.Vital)
	}

	h := &s.Hull
	if h.Lwl != 400 || h.B != 60 || h.T != 20 {
		t.Errorf("dimensions wrong: %f %f %f", h.Lwl, h.B, h.T)
	}
	// Cb 0.550 at 400x60x20.
	if math.Abs(h.Disp-7542.86) > 0.01 {
		t.Errorf("expected 7542.86 tons from block coefficient, got %f", h.Disp)
	}
	if h.QdLen != 0.15 || h.FdLen != 0.30 || h.FcLen != 0.20 {
		t.Errorf("deck lengths wrong: %f %f %f", h.QdLen, h.FdLen, h.FcLen)
	}
	if h.FcFwd != 18 || h.QdAft != 12 {
		t.Errorf("freeboards wrong: %f %f", h.FcFwd, h.QdAft)
	}

	b := &s.Batteries[0]
	if b.Num != 8 || b.Diam != 12 || b.Len != 40 || b.Year != 1900 {
		t.Errorf("main battery wrong: %+v", b)
	}
	if b.ShellWgt != 1250 {
		t.Errorf("expected comma-separated shell weight 1250, got %f", b.ShellWgt)
	}
	if b.Shells != 80 || b.MountNum != 4 || b.Mount != ship.MountTurret {
		t.Errorf("mounts wrong: %+v", b)
	}
	if b.Groups[0].Above != 2 || b.Groups[0].Layout != ship.LayoutTwin {
		t.Errorf("group 0 wrong: %+v", b.Groups[0])
	}
	// Deck mounts are the remainder of the mount total.
	if b.Groups[0].On != 2 {
		t.Errorf("expected 2 deck mounts backfilled, got %d", b.Groups[0].On)
	}

	tp := &s.Torps[0]
	if tp.Num != 12 || tp.Diam != 18 || tp.Mounts != 4 || tp.Len != 15 {
		t.Errorf("torpedoes wrong: %+v", tp)
	}
	if tp.Mount != ship.TorpDeckSideTubes || tp.Year != 1900 {
		t.Errorf("torpedo mount wrong: %+v", tp)
	}

	e := &s.Engine
	if e.VMax != 21 || e.VCruise != 10 || e.Range != 5000 || e.Shafts != 2 {
		t.Errorf("engine wrong: %+v", e)
	}
	if e.PctCoal != 1.0 || !e.Fuel.Has(ship.FuelCoal) ||
		!e.Boiler.Has(ship.BoilerComplex) || !e.Drive.Has(ship.DriveDirect) {
		t.Errorf("plant wrong: %+v", e)
	}

	a := &s.Armor
	if a.Main.Thick != 6 || a.Main.Len != 260 || a.Main.Hgt != 8 {
		t.Errorf("main belt wrong: %+v", a.Main)
	}
	if a.BHKind != ship.BulkheadAdditional || a.BHBeam != 60 {
		t.Errorf("bulkhead wrong: %+v", a)
	}
	if a.Deck.MD != 2 || a.Deck.FC != 1 || a.CTFwd.Thick != 9 || a.CTAft.Thick != 6 {
		t.Errorf("deck and towers wrong: %+v", a)
	}

	if s.Wgts.Hull != 100 || s.Wgts.On != 50 || s.Wgts.Above != 25 || s.Wgts.Void != 10 {
		t.Errorf("misc weights wrong: %+v", s.Wgts)
	}
	if s.Trim != 50 {
		t.Errorf("trim wrong: %f", s.Trim)
	}

	if len(s.Notes) != 1 || s.Notes[0] != "Trial design." {
		t.Errorf("notes wrong: %v", s.Notes)
	}
}

func TestImportOldVersion(t *testing.T) {
	in := "Test, laid down 1900 (SpringSharp Version 2.1)\n"
	_, err := ImportReader(strings.NewReader(in))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestImportUnknownFormat(t *testing.T) {
	_, err := ImportReader(strings.NewReader("just some text\n"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestImportTruncated(t *testing.T) {
	lines := strings.SplitAfter(fixture(), "\n")
	in := strings.Join(lines[:10], "")
	_, err := ImportReader(strings.NewReader(in))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}
