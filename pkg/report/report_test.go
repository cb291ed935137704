package report

import (
	"strings"
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

func testShip() *ship.Ship {
	s := ship.New()
	s.Name = "Repulse"
	s.Country = "Testland"
	s.Kind = "Armoured Cruiser"
	s.Year = 1900

	h := &s.Hull
	h.SetDisplacement(7000)
	h.SetLwl(400)
	h.B = 60
	h.BB = h.B
	h.T = 20
	h.FcLen = 0.20
	h.FcFwd, h.FcAft = 18, 18
	h.FdLen = 0.30
	h.FdFwd, h.FdAft = 12, 12
	h.AdFwd, h.AdAft = 12, 12
	h.QdLen = 0.15
	h.QdFwd, h.QdAft = 12, 12

	s.Batteries[0] = ship.Battery{
		Num: 8, Diam: 12, Len: 40, Year: 1900,
		Shells: 80, Mount: ship.MountTurret, MountNum: 4,
	}
	s.Batteries[0].Groups[0].On = 4
	s.Batteries[0].Groups[0].Layout = ship.LayoutTwin

	s.Engine = ship.Engine{
		VMax: 21, VCruise: 10, Range: 5000, PctCoal: 1,
		Shafts: 2, Year: 1900,
		Fuel:   ship.FuelCoal,
		Boiler: ship.BoilerComplex,
		Drive:  ship.DriveDirect,
	}

	s.Armor.Main = ship.Section{Thick: 6, Len: 260, Hgt: 8}
	return s
}

func TestRenderHeader(t *testing.T) {
	out := Render(testShip())

	for _, want := range []string{
		"Repulse, Testland Armoured Cruiser laid down 1900",
		"Displacement:",
		"Armament:",
		"Machinery:",
		"Hull form characteristics:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "DESIGN FAILURE") {
		t.Errorf("unexpected design failure in report:\n%s", out)
	}
}

func TestRenderSuperfiring(t *testing.T) {
	s := testShip()
	b := &s.Batteries[0]
	b.Groups[0].On = 3
	b.Groups[0].Above = 1
	b.Groups[0].Dist = ship.CenterlineEnds

	out := Render(s)
	if !strings.Contains(out, "1 raised mount - superfiring") {
		t.Errorf("expected superfiring label for end-mounted guns, got:\n%s", out)
	}

	// A raised mount on the forward deck is not called superfiring.
	b.Groups[0].Dist = ship.CenterlineFD
	out = Render(s)
	if !strings.Contains(out, "1 raised mount") {
		t.Errorf("expected raised mount line, got:\n%s", out)
	}
	if strings.Contains(out, "superfiring") {
		t.Errorf("unexpected superfiring label for forward deck guns:\n%s", out)
	}
}

func TestRenderImmobile(t *testing.T) {
	s := testShip()
	s.Engine = ship.Engine{}

	out := Render(s)
	if !strings.Contains(out, "Immobile floating battery") {
		t.Error("expected immobile note for unpowered hull")
	}
}

func TestRenderFailure(t *testing.T) {
	s := testShip()
	s.Hull.SetDisplacement(30000) // impossible on these dimensions

	out := Render(s)
	if !strings.Contains(out, "DESIGN FAILURE: Displacement impossible with given dimensions") {
		t.Error("expected dimension failure in report")
	}
}
