package ship

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// testHull is a 7000 ton, 500 ft reference hull with a high forecastle
// and low decks elsewhere.
func testHull() Hull {
	var h Hull

	h.SetDisplacement(7000)
	h.SetLwl(500)
	h.B = 50
	h.BB = h.B
	h.T = 10

	h.FcLen = 0.20
	h.FcFwd = 10
	h.FcAft = 10

	h.FdLen = 0.30
	h.FdFwd = 0.20
	h.FdAft = 0.20

	h.AdFwd = 0.20
	h.AdAft = 0.20

	h.QdLen = 0.15
	h.QdFwd = 0.20
	h.QdAft = 0.20

	return h
}

func TestHullCoefficients(t *testing.T) {
	h := testHull()

	if !approxEqual(h.Cb(), 0.98, 0.0001) {
		t.Errorf("expected Cb 0.98, got %f", h.Cb())
	}
	if !approxEqual(h.Cwp(), 0.98667, 0.0001) {
		t.Errorf("expected Cwp 0.98667, got %f", h.Cwp())
	}
	if !approxEqual(h.WP(), 24666.67, 0.5) {
		t.Errorf("expected WP 24666.67, got %f", h.WP())
	}
	if !approxEqual(h.Len2Beam(), 10, tolerance) {
		t.Errorf("expected L/B 10, got %f", h.Len2Beam())
	}
	if !approxEqual(h.Vn(), 29.96, tolerance) {
		t.Errorf("expected Vn 29.96, got %f", h.Vn())
	}
}

func TestSettersKeepDisplacement(t *testing.T) {
	var h Hull
	h.B = 50
	h.T = 10

	h.SetDisplacement(7000)
	h.SetLwl(500)
	if h.Disp != 7000 {
		t.Errorf("SetLwl changed displacement to %f", h.Disp)
	}

	h.SetCb(0.5)
	if !approxEqual(h.Disp, 3571.43, tolerance) {
		t.Errorf("expected SetCb(0.5) to imply 3571.43 tons, got %f", h.Disp)
	}
}

func TestDraftAt(t *testing.T) {
	h := testHull()

	if !approxEqual(h.DraftAt(h.Disp), h.T, tolerance) {
		t.Errorf("expected draft %f at normal displacement, got %f",
			h.T, h.DraftAt(h.Disp))
	}
	if h.DraftAt(8000) <= h.T {
		t.Errorf("expected deeper draft at 8000 tons, got %f", h.DraftAt(8000))
	}
	if h.DraftAt(6000) >= h.T {
		t.Errorf("expected lighter draft at 6000 tons, got %f", h.DraftAt(6000))
	}
}

func TestFreeboard(t *testing.T) {
	h := testHull()

	if !approxEqual(h.Freeboard(), 2.16, tolerance) {
		t.Errorf("expected mean freeboard 2.16, got %f", h.Freeboard())
	}
	// Double forecastle weight pulls the distribution figure up.
	if !approxEqual(h.FreeboardDist(), 3.4667, tolerance) {
		t.Errorf("expected freeboard dist 3.4667, got %f", h.FreeboardDist())
	}
	if !approxEqual(h.FreeCap(true), h.FreeboardDist()*1.25, tolerance) {
		t.Errorf("expected sealed gundeck credit of 1.25x")
	}
}

func TestFreeboardAt(t *testing.T) {
	h := testHull()

	tests := []struct {
		pos  float64
		want float64
	}{
		{0.0, 10},
		{0.1, 10},
		{0.35, 0.20},
		{1.0, 0.20},
	}
	for _, tt := range tests {
		got := h.FreeboardAt(tt.pos)
		if !approxEqual(got, tt.want, tolerance) {
			t.Errorf("FreeboardAt(%f): expected %f, got %f", tt.pos, tt.want, got)
		}
	}
}

func TestWetForward(t *testing.T) {
	h := testHull()
	if !h.IsWetFwd() {
		t.Error("expected 10 ft bow on 500 ft hull to be wet forward")
	}
	h.FcFwd = 20
	if h.IsWetFwd() {
		t.Error("expected 20 ft bow to be dry")
	}
}

func TestStemAndLeff(t *testing.T) {
	h := testHull()

	if h.StemLen() != 0 {
		t.Errorf("expected zero stem with vertical bow, got %f", h.StemLen())
	}
	h.BowAngle = 45
	if !approxEqual(h.StemLen(), h.FcFwd, tolerance) {
		t.Errorf("expected 45 degree stem to project %f, got %f",
			h.FcFwd, h.StemLen())
	}
	h.Bow = BowRam
	h.RamLen = 5
	if !approxEqual(h.StemLen(), h.FcFwd+5, tolerance) {
		t.Errorf("expected ram to extend stem, got %f", h.StemLen())
	}

	h = testHull()
	if !approxEqual(h.Leff(), 500, tolerance) {
		t.Errorf("expected Leff 500 with cruiser stern, got %f", h.Leff())
	}
	h.Stern = SternTransomLarge
	if !approxEqual(h.Leff(), 515, tolerance) {
		t.Errorf("expected Leff 515 with large transom, got %f", h.Leff())
	}
}

func TestFreeboardDesc(t *testing.T) {
	h := testHull()
	if got := h.FreeboardDesc(); got != "a raised forecastle" {
		t.Errorf("expected raised forecastle, got %q", got)
	}

	h.FcFwd, h.FcAft = 0.20, 0.20
	if got := h.FreeboardDesc(); got != "a flush deck" {
		t.Errorf("expected flush deck, got %q", got)
	}
}
