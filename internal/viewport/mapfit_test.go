package viewport

import "testing"

func TestFitMapWidthConstrained(t *testing.T) {
	// Image is relatively wider than the view: width fills to 90%.
	fit := FitMap(200, 50, 100, 100)
	if !near(fit.Width, 90) {
		t.Errorf("fitted width = %v, want 90", fit.Width)
	}
	if !near(fit.Height, 22.5) {
		t.Errorf("fitted height = %v, want 22.5", fit.Height)
	}
}

func TestFitMapHeightConstrained(t *testing.T) {
	fit := FitMap(100, 100, 100, 50)
	if !near(fit.Height, 45) {
		t.Errorf("fitted height = %v, want 45", fit.Height)
	}
	if !near(fit.Width, 45) {
		t.Errorf("fitted width = %v, want 45", fit.Width)
	}
}

func TestFitMapPreservesAspect(t *testing.T) {
	fit := FitMap(300, 200, 120, 90)
	if !near(fit.Width/fit.Height, 1.5) {
		t.Errorf("fitted aspect = %v, want 1.5", fit.Width/fit.Height)
	}
}

func TestFitMapDegenerateInput(t *testing.T) {
	if fit := FitMap(0, 100, 100, 100); fit.Width != 0 || fit.Height != 0 {
		t.Errorf("degenerate image fit = %v, want zero", fit)
	}
}

func TestFitMapToPlanUsesOrthoExtents(t *testing.T) {
	s := newSys()

	vw, vh := s.PlanExtents()
	if !near(vh, 80) {
		t.Errorf("plan world height = %v, want 80", vh)
	}
	if !near(vw, 80*s.Plan.Aspect()) {
		t.Errorf("plan world width = %v", vw)
	}

	// A square image in the 650x800 plan view is width-constrained.
	fit := s.FitMapToPlan(100, 100)
	if !near(fit.Width, vw*0.9) {
		t.Errorf("fitted width = %v, want %v", fit.Width, vw*0.9)
	}
}
