// Package report renders the full design study of a ship as text, the
// layout naval wargamers trade with each other: header, armament,
// armor, machinery, weights, survivability, hull form and comments.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/orionarts/sharpie/pkg/perf"
	"github.com/orionarts/sharpie/pkg/ship"
	"github.com/orionarts/sharpie/pkg/units"
)

// num formats a value with thousands separators and at most the given
// number of decimals.
func num(v float64, digits int) string {
	return humanize.CommafWithDigits(v, digits)
}

func metric(v float64, q units.Quantity) float64 {
	return units.ToMetric(v, q)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// inches formats an armor thickness with its metric equivalent.
func inches(v float64) string {
	digits := 2
	if v >= 10.0 {
		digits = 1
	}
	return fmt.Sprintf("%s\" / %.0f mm", num(v, digits), metric(v, units.LengthSmall))
}

type writer struct {
	lines []string
}

func (w *writer) add(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func (w *writer) blank() {
	w.lines = append(w.lines, "")
}

// Render produces the complete design study.
func Render(s *ship.Ship) string {
	return RenderWithOptions(s, perf.Options{})
}

// RenderWithOptions produces the design study with explicit evaluation
// options.
func RenderWithOptions(s *ship.Ship, opt perf.Options) string {
	m := perf.NewWithOptions(s, opt)
	w := &writer{}

	header(w, s, m)
	armament(w, s, m)
	weapons(w, s)
	armor(w, s, m)
	machinery(w, s, m)
	complement(w, m)
	weights(w, s, m)
	survivability(w, m)
	hullForm(w, s, m)
	space(w, s, m)

	w.blank()
	w.lines = append(w.lines, s.Notes...)

	return strings.Join(w.lines, "\n")
}

func header(w *writer, s *ship.Ship, m *perf.Model) {
	engine := ""
	if s.Year != s.Engine.Year {
		engine = fmt.Sprintf(" (Engine %d)", s.Engine.Year)
	}
	w.add("%s, %s %s laid down %d%s", s.Name, s.Country, s.Kind, s.Year, engine)

	for _, t := range m.Classify() {
		w.add("%s", t)
	}

	r := m.Findings()
	for _, f := range r.Failures {
		w.add("DESIGN FAILURE: %s", f.Message)
	}
	w.blank()

	w.add("Displacement:")
	w.add("    %s t light; %s t standard; %s t normal; %s t full load",
		num(m.DLite(), 0), num(m.DStd(), 0),
		num(s.Hull.Disp, 0), num(m.DMax(), 0))
	w.blank()

	w.add("Dimensions: Length (overall / waterline) x beam x draught (normal/deep)")
	bulges := ""
	if s.Hull.BB > s.Hull.B {
		bulges = fmt.Sprintf("(Bulges %.2f ft) ", s.Hull.BB)
	}
	w.add("    (%.2f ft / %.2f ft) x %.2f ft %sx (%.2f / %.2f ft)",
		s.Hull.Loa(), s.Hull.Lwl, s.Hull.B, bulges, s.Hull.T, m.TMax())
	bulges = ""
	if s.Hull.BB > s.Hull.B {
		bulges = fmt.Sprintf("(Bulges %.2f m) ", metric(s.Hull.BB, units.LengthLong))
	}
	w.add("    (%.2f m / %.2f m) x %.2f m %sx (%.2f / %.2f m)",
		metric(s.Hull.Loa(), units.LengthLong),
		metric(s.Hull.Lwl, units.LengthLong),
		metric(s.Hull.B, units.LengthLong),
		bulges,
		metric(s.Hull.T, units.LengthLong),
		metric(m.TMax(), units.LengthLong))
	w.blank()
}

func distDesc(d ship.Distribution) string {
	return d.String()
}

func armament(w *writer, s *ship.Ship, m *perf.Model) {
	w.add("Armament:")
	for i := range s.Batteries {
		b := &s.Batteries[i]
		mainGun := i == 0
		if b.Num == 0 {
			continue
		}

		mmDigits := 0
		if b.Diam*25.4 < 100.0 {
			mmDigits = 1
		}
		w.add("    %d - %.2f\" / %s mm %.1f cal gun%s - %slbs / %skg shells, %s per gun",
			b.Num, b.Diam, num(metric(b.Diam, units.LengthSmall), mmDigits),
			b.Len, plural(b.Num),
			num(b.ShellWeight(), 2),
			num(metric(b.ShellWeight(), units.Weight), 2),
			num(float64(b.Shells), 0))
		w.add("        %s%s in %s%s, %d Model",
			b.Kind, plural(b.Num), b.Mount, plural(b.Num), b.Year)

		for gi := range b.Groups {
			g := &b.Groups[gi]
			if g.Mounts() == 0 {
				continue
			}

			w.add("        %d x %s mount%s on %s",
				g.Mounts(), g.Layout, plural(g.Mounts()), distDesc(g.Dist))

			if g.Above > 0 {
				double := ""
				if g.TwoMountsUp {
					double = "double "
				}
				suffix := ""
				switch {
				case g.Above > 1:
					suffix = "s"
				case g.Dist.SuperAft() && mainGun:
					suffix = " aft"
				}
				super := ""
				if m.GroupSuperfiring(b, gi) &&
					(g.Dist == ship.CenterlineEnds || g.Dist == ship.SidesEnds) &&
					b.Mount != ship.MountBroadside &&
					b.Mount != ship.MountColesTurret {
					super = " - superfiring"
				}
				w.add("        %d %sraised mount%s%s", g.Above, double, suffix, super)
			}

			if g.Below > 0 {
				var place string
				if b.Mount == ship.MountBroadside {
					if g.LowerDeck {
						place = "on gundeck"
					} else {
						place = "on upperdeck"
					}
				} else {
					lower := ""
					if g.LowerDeck {
						lower = "lower "
					}
					place = fmt.Sprintf("in %scasemate%s", lower, plural(g.Below))
				}

				free := b.Free(&s.Hull)
				var sea string
				switch {
				case free < 12.0 || (free < 19.0 && g.LowerDeck):
					sea = "any sea"
				case free < 16.0 || (free < 24.0 && g.LowerDeck):
					sea = "all but light seas"
				default:
					sea = "heavy seas"
				}
				w.add("        %d hull mount%s %s - Limited use in %s",
					g.Below, plural(g.Below), place, sea)
			}
		}
	}
	w.add("    Weight of broadside %s lbs / %s kg",
		num(m.WgtBroad(), 0), num(metric(m.WgtBroad(), units.Weight), 0))
}

func ordinal(i int) string {
	switch i {
	case 0:
		return "Main"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	case 3:
		return "4th"
	case 4:
		return "5th"
	}
	return "Other"
}

func weapons(w *writer, s *ship.Ship) {
	for i := range s.Torps {
		t := &s.Torps[i]
		if t.Num == 0 {
			continue
		}
		w.add("%s Torpedoes", ordinal(i))
		each := " -"
		if t.Num != 1 {
			each = fmt.Sprintf("es - %.3f t each,", t.WgtWeaps()/float64(t.Num))
		}
		w.add("%d - %.1f\" / %.0f mm, %.2f ft / %.2f m torpedo%s %.3f t total",
			t.Num, t.Diam, metric(t.Diam, units.LengthSmall),
			t.Len, metric(t.Len, units.LengthLong),
			each, t.WgtWeaps())
		w.add("    In %d sets of %s", t.Mounts, t.Mount)
	}

	if s.Mines.Num != 0 {
		w.add("Mines")
		reloads := ""
		if s.Mines.Reload > 0 {
			reloads = fmt.Sprintf(" + %d reloads", s.Mines.Reload)
		}
		w.add("%d - %.2f lbs / %.2f kg mines%s - %.3f t total",
			s.Mines.Num, s.Mines.Wgt, metric(s.Mines.Wgt, units.Weight),
			reloads, s.Mines.WgtWeaps())
		w.add("    Carried on %s", s.Mines.Mount)
	}

	for i := range s.ASW {
		a := &s.ASW[i]
		if a.Num == 0 {
			continue
		}
		w.add("%s DC/AS Mortars", ordinal(i))
		reloads := ""
		if a.Reload > 0 {
			reloads = fmt.Sprintf(" + %d reloads", a.Reload)
		}
		w.add("%d - %.2f lbs / %.2f kg %s%s - %.3f t total",
			a.Num, a.Wgt, metric(a.Wgt, units.Weight), a.Kind, reloads,
			a.WgtWeaps())
		if a.Kind.FiresAbeam() {
			w.add("    Projectors fire to both sides")
		}
	}
}

func armor(w *writer, s *ship.Ship, m *perf.Model) {
	w.blank()
	w.add("Armour:")

	a := &s.Armor
	if a.Main.Thick+a.End.Thick+a.Upper.Thick+a.Bulkhead.Thick > 0 {
		w.add(" - Belts:    Width (max)    Length (avg)    Height (avg)")
		if a.Main.Thick > 0 {
			w.add("    Main:    %s    %.2f ft / %.2f m    %.2f ft / %.2f m",
				inches(a.Main.Thick),
				a.Main.Len, metric(a.Main.Len, units.LengthLong),
				a.Main.Hgt, metric(a.Main.Hgt, units.LengthLong))
		}
		if a.End.Thick > 0 {
			w.add("    Ends:    %s    %.2f ft / %.2f m    %.2f ft / %.2f m",
				inches(a.End.Thick),
				a.End.Len, metric(a.End.Len, units.LengthLong),
				a.End.Hgt, metric(a.End.Hgt, units.LengthLong))
			if bare := s.Hull.Lwl - a.Main.Len - a.End.Len; bare > 0 {
				w.add("    %.2f ft / %.2f m Unarmoured ends",
					bare, metric(bare, units.LengthLong))
			}
		} else if a.Main.Len < s.Hull.Lwl {
			w.add("    Ends:    Unarmoured")
		}
		if a.Upper.Thick > 0 {
			w.add("    Upper:    %s    %.2f ft / %.2f m    %.2f ft / %.2f m",
				inches(a.Upper.Thick),
				a.Upper.Len, metric(a.Upper.Len, units.LengthLong),
				a.Upper.Hgt, metric(a.Upper.Hgt, units.LengthLong))
		}

		if a.Main.Thick > 0 {
			w.add("    Main Belt covers %.0f %% of normal length",
				a.BeltCoverage(s.Hull.Lwl)*100.0)
			if a.BeltCoverage(s.Hull.Lwl) < m.HullRoom() {
				w.add("    Main belt does not fully cover magazines and engineering spaces")
			}
		}
		if a.Incline != 0 {
			w.add("    Main Belt inclined %.2f degrees (positive = in)", a.Incline)
		}

		if a.Bulkhead.Thick > 0 {
			w.blank()
			kind := "Additional damage containing"
			if a.BHKind == ship.BulkheadStrengthened {
				kind = "Strengthened structural"
			}
			w.add("- Torpedo Bulkhead - %s bulkheads:", kind)
			w.add("        %s    %.2f ft / %.2f m    %.2f ft / %.2f m",
				inches(a.Bulkhead.Thick),
				a.Bulkhead.Len, metric(a.Bulkhead.Len, units.LengthLong),
				a.Bulkhead.Hgt, metric(a.Bulkhead.Hgt, units.LengthLong))
			w.add("    Beam between torpedo bulkheads %.2f ft / %.2f m",
				a.BHBeam, metric(a.BHBeam, units.LengthLong))
			w.blank()
		}

		if a.Bulge.Thick > 0 || s.Wgts.Void > 0 {
			kind := "Bulges"
			if s.Hull.B == s.Hull.BB {
				kind = "void"
			}
			w.add("- Hull %s:", kind)
			w.add("        %s    %.2f ft / %.2f m    %.2f ft / %.2f m",
				inches(a.Bulge.Thick),
				a.Bulge.Len, metric(a.Bulge.Len, units.LengthLong),
				a.Bulge.Hgt, metric(a.Bulge.Hgt, units.LengthLong))
			w.blank()
		}
	}

	if m.WgtGunArmor() > 0 {
		w.add("- Gun armour:    Face (max)    Other gunhouse (avg)    Barbette/hoist (max)")
		for i := range s.Batteries {
			b := &s.Batteries[i]
			if b.ArmorFace == 0 && b.ArmorBack == 0 && b.ArmorBarb == 0 {
				continue
			}
			plate := func(v float64) string {
				if v == 0 {
					return "-"
				}
				return inches(v)
			}
			w.add("    %s:    %s        %s            %s",
				ordinal(i), plate(b.ArmorFace), plate(b.ArmorBack), plate(b.ArmorBarb))
		}
		w.blank()
	}

	if a.Deck.FC+a.Deck.MD+a.Deck.QD > 0 {
		w.add("- %s:", a.Deck.Kind)
		w.add("    Fore and Aft decks: %.2f\" / %.0f mm",
			a.Deck.MD, metric(a.Deck.MD, units.LengthSmall))
		w.add("    Forecastle: %.2f\" / %.0f mm    Quarterdeck: %.2f\" / %.0f mm",
			a.Deck.FC, metric(a.Deck.FC, units.LengthSmall),
			a.Deck.QD, metric(a.Deck.QD, units.LengthSmall))
		w.blank()
	}

	if a.CTFwd.Thick+a.CTAft.Thick > 0 {
		w.add("- Conning towers: Forward %.2f\" / %.0f mm, Aft %.2f\" / %.0f mm",
			a.CTFwd.Thick, metric(a.CTFwd.Thick, units.LengthSmall),
			a.CTAft.Thick, metric(a.CTAft.Thick, units.LengthSmall))
		w.blank()
	}
}

func machinery(w *writer, s *ship.Ship, m *perf.Model) {
	w.add("Machinery:")
	e := &s.Engine
	if e.VMax == 0 {
		w.add("    Immobile floating battery")
		w.blank()
		return
	}

	w.add("    %s, %s,", e.Fuel, e.Boiler)
	w.add("    %s, %d shaft%s, %s %s / %s Kw = %.2f kts",
		e.Drive, e.Shafts, plural(e.Shafts),
		num(e.HpMax(&s.Hull), 0), e.Boiler.HpType(),
		num(metric(e.HpMax(&s.Hull), units.Power), 0),
		e.VMax)
	w.add("    Range %snm at %.2f kts", num(e.Range, 0), e.VCruise)
	coal := ""
	if e.PctCoal > 0 {
		coal = fmt.Sprintf(" (%.0f%% coal)", e.PctCoal*100.0)
	}
	w.add("    Bunker at max displacement = %s tons%s",
		num(e.BunkerMax(&s.Hull), 0), coal)

	if e.Shafts > 0 {
		ratio := e.HpMax(&s.Hull) / float64(e.Shafts)
		if ratio > 20000.0 && e.Boiler.IsReciprocating() {
			w.add("    Caution: Too much power for reciprocating engines.")
		} else if ratio > 75000.0 {
			w.add("    Caution: Too much power for number of propellor shafts.")
		}
	}
	if m.WgtEngine() < e.DEngine(&s.Hull)/5.0 {
		w.add("    Caution: Delicate, lightweight machinery.")
	}
	w.blank()
}

func complement(w *writer, m *perf.Model) {
	w.add("Complement:")
	w.add("    %d - %d", m.CrewMin(), m.CrewMax())
	w.blank()

	w.add("Cost:")
	w.add("    £%.3f million / $%.3f million", m.CostPounds(), m.CostDollar())
	w.blank()
}

// pct formats a weight with its share of normal displacement.
func pct(portion, d float64) string {
	share := 0.0
	if d > 0 {
		share = portion / d * 100.0
	}
	return fmt.Sprintf("%s tons, %.1f %%", num(portion, 0), share)
}

func weights(w *writer, s *ship.Ship, m *perf.Model) {
	d := s.Hull.Disp
	w.add("Distribution of weights at normal displacement:")
	w.add("    Armament: %s", pct(m.WgtGuns()+m.WgtGunMounts()+m.WgtWeaps(), d))

	if m.WgtGuns() > 0 {
		w.add("    - Guns: %s", pct(m.WgtGuns()+m.WgtGunMounts(), d))
	}

	var other float64
	for i := range s.Torps {
		other += s.Torps[i].WgtTotal()
	}
	for i := range s.ASW {
		other += s.ASW[i].WgtTotal()
	}
	other += s.Mines.WgtTotal()
	if other > 0 {
		w.add("    - Weapons: %s", pct(other, d))
	}

	if m.WgtArmor() > 0 {
		w.add("    Armour: %s", pct(m.WgtArmor(), d))

		a := &s.Armor
		cwp := s.Hull.Cwp()
		if a.Main.Thick+a.End.Thick+a.Upper.Thick > 0 {
			w.add("    - Belts: %s", pct(
				a.Main.Wgt(s.Hull.Lwl, cwp, s.Hull.B)+
					a.End.Wgt(s.Hull.Lwl, cwp, s.Hull.B)+
					a.Upper.Wgt(s.Hull.Lwl, cwp, s.Hull.B), d))
		}
		if a.Bulkhead.Thick > 0 {
			w.add("    - Torpedo bulkhead: %s",
				pct(a.Bulkhead.Wgt(s.Hull.Lwl, cwp, s.Hull.B), d))
		}
		if bulge := a.Bulge.Wgt(s.Hull.Lwl, cwp, s.Hull.B); bulge > 0 {
			kind := "Bulges"
			if s.Hull.B == s.Hull.BB {
				kind = "Void"
			}
			w.add("    - %s: %s", kind, pct(bulge, d))
		}
		if m.WgtGunArmor() > 0 {
			w.add("    - Armament: %s", pct(m.WgtGunArmor(), d))
		}
		if a.Deck.FC+a.Deck.MD+a.Deck.QD > 0 {
			w.add("    - Armour Deck: %s", pct(m.WgtDeckArmor(), d))
		}
		if a.CTFwd.Thick+a.CTAft.Thick > 0 {
			ess := ""
			if a.CTFwd.Thick > 0 && a.CTAft.Thick > 0 {
				ess = "s"
			}
			w.add("    - Conning Tower%s: %s", ess,
				pct(a.CTFwd.Wgt(d)+a.CTAft.Wgt(d), d))
		}
	}

	w.add("    Machinery: %s", pct(m.WgtEngine(), d))
	w.add("    Hull, fittings & equipment: %s", pct(m.WgtHull(), d))
	w.add("    Fuel, ammunition & stores: %s", pct(m.WgtLoad(), d))

	if s.Wgts.Wgt() > 0 {
		w.add("    Miscellaneous weights: %s", pct(float64(s.Wgts.Wgt()), d))
		if s.Wgts.Vital > 0 {
			w.add("    - Hull below water: %s tons", num(float64(s.Wgts.Vital), 0))
		}
		if s.Wgts.Void > 0 {
			kind := "Hull"
			if s.Hull.BB > s.Hull.B {
				kind = "Bulge"
			}
			w.add("    - %s void weights: %s tons", kind, num(float64(s.Wgts.Void), 0))
		}
		if s.Wgts.Hull > 0 {
			w.add("    - Hull above water: %d tons", s.Wgts.Hull)
		}
		if s.Wgts.On > 0 {
			w.add("    - On freeboard deck: %d tons", s.Wgts.On)
		}
		if s.Wgts.Above > 0 {
			w.add("    - Above deck: %d tons", s.Wgts.Above)
		}
	}
	w.blank()
}

func survivability(w *writer, m *perf.Model) {
	w.add("Overall survivability and seakeeping ability:")
	w.add("    Survivability (Non-critical penetrating hits needed to sink ship):")
	w.add("    %.0f lbs / %.0f Kg = %.1f x %.1f \" / %.0f mm shells or %.1f torpedoes",
		m.Flotation(), metric(m.Flotation(), units.Weight),
		m.DamageShellNum(), m.DamageShellSize(),
		metric(m.DamageShellSize(), units.LengthSmall),
		m.DamageTorpNum())
	w.add("    Stability (Unstable if below 1.00): %.2f", m.StabilityAdj())
	w.add("    Metacentric height %.1f ft / %.1f m",
		m.Metacenter(), metric(m.Metacenter(), units.LengthLong))
	w.add("    Roll period: %.1f seconds", m.RollPeriod())
	w.add("    Steadiness    - As gun platform (Average = 50 %%): %.0f %%", m.Steadiness())
	w.add("        - Recoil effect (Restricted arc if above 1.00): %.2f", m.Recoil())
	w.add("    Seaboat quality (Average = 1.00): %.2f", m.Seakeeping())
	w.blank()
}

func hullForm(w *writer, s *ship.Ship, m *perf.Model) {
	h := &s.Hull
	w.add("Hull form characteristics:")
	w.add("    Hull has %s,", h.FreeboardDesc())
	w.add("    %s and %s", h.Bow, h.Stern)
	w.add("    Block coefficient (normal/deep): %.3f / %.3f", h.Cb(), m.CbMax())
	w.add("    Length to Beam Ratio: %.2f : 1", h.Len2Beam())
	w.add("    'Natural speed' for length: %.2f kts", h.Vn())
	w.add("    Power going to wave formation at top speed: %.0f %%",
		s.Engine.PwMax(h)*100.0)
	w.add("    Trim (Max stability = 0, Max steadiness = 100): %.0f", s.Trim)
	w.add("    Bow angle (Positive = bow angles forward): %.2f degrees", h.BowAngle)
	w.add("    Stern overhang: %.2f ft / %.2f m",
		h.SternOverhang, metric(h.SternOverhang, units.LengthLong))
	w.add("    Freeboard (%% = length of deck as a percentage of waterline length):")
	w.add("            Fore end, Aft end")
	deck := func(name string, l, fwd, aft float64) {
		w.add("    - %s:    %.2f %%, %.2f ft / %.2f m, %.2f ft / %.2f m",
			name, l*100.0,
			fwd, metric(fwd, units.LengthLong),
			aft, metric(aft, units.LengthLong))
	}
	deck("Forecastle", h.FcLen, h.FcFwd, h.FcAft)
	deck("Forward deck", h.FdLen, h.FdFwd, h.FdAft)
	deck("Aft deck", h.AdLen(), h.AdFwd, h.AdAft)
	deck("Quarter deck", h.QdLen, h.QdFwd, h.QdAft)
	w.add("    - Average freeboard:        %.2f ft / %.2f m",
		h.Freeboard(), metric(h.Freeboard(), units.LengthLong))
	if h.IsWetFwd() {
		w.add("    Ship tends to be wet forward")
	}
	w.blank()
}

func space(w *writer, s *ship.Ship, m *perf.Model) {
	w.add("Ship space, strength and comments:")
	w.add("    Space    - Hull below water (magazines/engines, low = better): %.1f %%",
		m.HullRoom()*100.0)
	w.add("        - Above water (accommodation/working, high = better): %.1f %%",
		m.DeckRoom()*100.0)
	w.add("    Waterplane Area: %s Square feet or %s Square metres",
		num(s.Hull.WP(), 0), num(metric(s.Hull.WP(), units.Area), 0))
	w.add("    Displacement factor (Displacement / loading): %.0f %%",
		m.DFactor()*100.0)
	w.add("    Structure weight / hull surface area: %.0f lbs/sq ft or %.0f Kg/sq metre",
		m.WgtStruct(), metric(m.WgtStruct(), units.WeightPerArea))
	w.add("Hull strength (Relative):")
	w.add("        - Cross-sectional: %.2f", m.StrCross())
	w.add("        - Longitudinal: %.2f", m.StrLong())
	w.add("        - Overall: %.2f", m.StrComp())

	if m.TenderWarn() && !m.CapsizeWarn() {
		w.add("Caution: Poor stability - excessive risk of capsizing")
	}
	if m.HullStrained() {
		w.add("Caution: Hull subject to strain in open-sea")
	}
	w.add("    %s machinery, storage, compartmentation space", m.HullRoomQuality())
	w.add("    %s accommodation and workspace room", m.DeckRoomQuality())
	for _, line := range m.SeakeepingDesc() {
		w.add("    %s", line)
	}
}
