// Package perf derives whole-ship performance from a design record:
// displacement breakdown, weights, stability, strength, survivability,
// seakeeping, accommodation and cost. Every figure is computed on demand
// from the record; nothing is cached or stored back.
package perf

import "github.com/orionarts/sharpie/pkg/ship"

// poundsPerTon is pounds in a long ton.
const poundsPerTon = 2240.0

// DeckFeedbackBreak pins the machinery term of the deck armor crown at
// zero. Deck armor weight feeds total weight, which feeds the
// displacement factor, which feeds machinery weight, which would feed
// deck armor weight again. Resolving that loop is the job of the
// fixed-point pass enabled by Options.ResolveDeckFeedback; with it off,
// the crown term over the machinery spaces is simply dropped.
const DeckFeedbackBreak = 0.0

// Options select between the as-shipped figures and corrected ones.
type Options struct {
	// ResolveDeckFeedback iterates the machinery term of the deck armor
	// crown to a fixed point instead of pinning it at DeckFeedbackBreak.
	ResolveDeckFeedback bool

	// CorrectedSuperfire corrects the second firing group's raised-mount
	// detection: its station formula matches the primary group's when
	// testing for superfiring co-location, and its raised mounts are
	// counted against the rest of the battery rather than against the
	// group itself.
	CorrectedSuperfire bool
}

// Model evaluates a design.
type Model struct {
	s   *ship.Ship
	opt Options
}

// New returns a model with default options.
func New(s *ship.Ship) *Model {
	return &Model{s: s}
}

// NewWithOptions returns a model with explicit options.
func NewWithOptions(s *ship.Ship, opt Options) *Model {
	return &Model{s: s, opt: opt}
}

// Ship returns the underlying design record.
func (m *Model) Ship() *ship.Ship { return m.s }

// YearAdj is the era adjustment applied to survivability figures.
// Early steel construction degrades linearly below 1890; past 1950 the
// empirical fits no longer apply at all.
func YearAdj(year int) float64 {
	switch {
	case year <= 1890:
		return 1.0 - float64(1890-year)/66.666664
	case year <= 1950:
		return 1.0
	default:
		return 0.0
	}
}
