package legacy

import (
	"strings"

	"github.com/orionarts/sharpie/pkg/ship"
	"github.com/orionarts/sharpie/pkg/units"
)

// SpringSharp writes enum fields as display strings. The parsers below
// are tolerant of case and of the wording drifting between releases;
// anything unrecognized falls back to the most common variant rather
// than failing the whole import.

func parseUnits(s string) units.System {
	return units.ParseSystem(s)
}

func parseGunKind(s string) ship.GunKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "muzzle"):
		return ship.GunMuzzleLoading
	case strings.Contains(l, "quick"):
		return ship.GunQuickFiring
	case strings.Contains(l, "auto"):
		return ship.GunAutomatic
	case strings.Contains(l, "machine"):
		return ship.GunMachine
	default:
		return ship.GunBreechLoading
	}
}

func parseMountKind(s string) ship.MountKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "broadside"):
		return ship.MountBroadside
	case strings.Contains(l, "casemate"):
		return ship.MountCasemate
	case strings.Contains(l, "coles"):
		return ship.MountColesTurret
	case strings.Contains(l, "open barbette"):
		return ship.MountOpenBarbette
	case strings.Contains(l, "barbette"):
		return ship.MountBarbette
	case strings.Contains(l, "deck"):
		return ship.MountDeck
	default:
		return ship.MountTurret
	}
}

func parseDistribution(s string) ship.Distribution {
	l := strings.ToLower(s)
	sides := strings.Contains(l, "side")
	switch {
	case strings.Contains(l, "end"):
		if sides {
			return ship.SidesEnds
		}
		return ship.CenterlineEnds
	case strings.Contains(l, "forward"):
		if sides {
			return ship.SidesFD
		}
		return ship.CenterlineFD
	case strings.Contains(l, "aft"):
		if sides {
			return ship.SidesAD
		}
		return ship.CenterlineAD
	default:
		if sides {
			return ship.SidesEven
		}
		return ship.CenterlineEven
	}
}

func parseLayout(s string) ship.GunLayout {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "twin"), strings.Contains(l, "double"):
		return ship.LayoutTwin
	case strings.Contains(l, "triple"):
		return ship.LayoutTriple
	case strings.Contains(l, "quad"):
		return ship.LayoutQuad
	default:
		return ship.LayoutSingle
	}
}

func parseTorpMount(s string) ship.TorpMountKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "fixed"):
		return ship.TorpFixedTubes
	case strings.Contains(l, "centre"), strings.Contains(l, "center"):
		return ship.TorpCenterTubes
	case strings.Contains(l, "reload") && strings.Contains(l, "sub"):
		return ship.TorpSubmergedReloads
	case strings.Contains(l, "reload"):
		return ship.TorpDeckReloads
	case strings.Contains(l, "bow") && strings.Contains(l, "stern"):
		return ship.TorpBowAndSternTubes
	case strings.Contains(l, "bow"):
		return ship.TorpBowTubes
	case strings.Contains(l, "stern"):
		return ship.TorpSternTubes
	case strings.Contains(l, "sub"):
		return ship.TorpSubmergedSideTubes
	default:
		return ship.TorpDeckSideTubes
	}
}

func parseMineMount(s string) ship.MineMountKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "below"):
		return ship.MineBelowDeck
	case strings.Contains(l, "chute"):
		return ship.MineChutes
	default:
		return ship.MineRailsAboveDeck
	}
}

func parseASWKind(s string) ship.ASWKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "hedgehog"):
		return ship.ASWHedgehog
	case strings.Contains(l, "mortar"):
		return ship.ASWMortar
	case strings.Contains(l, "rack") && strings.Contains(l, "thrower"):
		return ship.ASWRacksAndThrowers
	case strings.Contains(l, "thrower"), strings.Contains(l, "projector"):
		return ship.ASWThrowers
	default:
		return ship.ASWRacks
	}
}

func parseBow(s string) ship.BowKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "ram"):
		return ship.BowRam
	case strings.Contains(l, "clipper"):
		return ship.BowClipper
	default:
		return ship.BowNormal
	}
}

func parseStern(s string) ship.SternKind {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "small"):
		return ship.SternTransomSmall
	case strings.Contains(l, "large"), strings.Contains(l, "transom"):
		return ship.SternTransomLarge
	case strings.Contains(l, "round"):
		return ship.SternRound
	default:
		return ship.SternCruiser
	}
}

func parseDeckKind(s string) ship.DeckKind {
	if strings.Contains(strings.ToLower(s), "protect") {
		return ship.DeckProtectiveDeck
	}
	return ship.DeckArmorDeck
}
