package building

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func newGable() *Building {
	return newBuilding(rl.Vector3{}, RoofGable)
}

func newFlat() *Building {
	return newBuilding(rl.Vector3{}, RoofFlat)
}

func TestGableDefaults(t *testing.T) {
	b := newGable()
	if !near(b.Params.Width, 10) || !near(b.Params.Depth, 6) {
		t.Errorf("default footprint = %v x %v, want 10 x 6", b.Params.Width, b.Params.Depth)
	}
	if !near(b.Params.EavesHeight, 4) || !near(b.Params.Slope, 2) {
		t.Errorf("default gable eaves/slope = %v/%v, want 4/2", b.Params.EavesHeight, b.Params.Slope)
	}
	if !near(b.RidgeHeight(), 6) {
		t.Errorf("RidgeHeight() = %v, want 6", b.RidgeHeight())
	}
}

func TestSetEavesHeightKeepsRidgeFixed(t *testing.T) {
	b := newGable() // eaves 4, ridge 6

	b.SetEavesHeight(10)
	if !near(b.Params.EavesHeight, 5.5) {
		t.Errorf("eaves = %v, want 5.5 (ridge minus minimum rise)", b.Params.EavesHeight)
	}
	if !near(b.Params.Slope, 0.5) {
		t.Errorf("slope = %v, want 0.5", b.Params.Slope)
	}
	if !near(b.RidgeHeight(), 6) {
		t.Errorf("ridge moved to %v during an eaves edit", b.RidgeHeight())
	}
}

func TestSetEavesHeightFloor(t *testing.T) {
	b := newGable()
	b.SetEavesHeight(0)
	if !near(b.Params.EavesHeight, 1) {
		t.Errorf("eaves = %v, want clamp to 1", b.Params.EavesHeight)
	}
	if !near(b.RidgeHeight(), 6) {
		t.Errorf("ridge = %v, want 6", b.RidgeHeight())
	}
}

func TestSetRidgeHeightKeepsEavesFixed(t *testing.T) {
	b := newGable()

	b.SetRidgeHeight(50)
	if !near(b.RidgeHeight(), 30) {
		t.Errorf("ridge = %v, want cap at 30", b.RidgeHeight())
	}
	if !near(b.Params.EavesHeight, 4) {
		t.Errorf("eaves moved to %v during a ridge edit", b.Params.EavesHeight)
	}

	b.SetRidgeHeight(2) // below the eaves: rise bottoms out at 0.5
	if !near(b.Params.Slope, 0.5) {
		t.Errorf("slope = %v, want 0.5", b.Params.Slope)
	}
	if !near(b.RidgeHeight(), 4.5) {
		t.Errorf("ridge = %v, want 4.5", b.RidgeHeight())
	}
}

func TestSetSlopeClamps(t *testing.T) {
	b := newGable()

	b.SetSlope(40)
	if !near(b.Params.Slope, 30) {
		t.Errorf("slope = %v, want 30", b.Params.Slope)
	}
	b.SetSlope(0.1)
	if !near(b.Params.Slope, 0.5) {
		t.Errorf("slope = %v, want 0.5", b.Params.Slope)
	}
}

func TestSetSlopeNoOpOnFlat(t *testing.T) {
	b := newFlat()
	before := b.Params.Slope
	b.SetSlope(10)
	if b.Params.Slope != before {
		t.Error("slope edits must not apply to flat roofs")
	}
}

func TestFlatEavesRange(t *testing.T) {
	b := newFlat()

	b.SetEavesHeight(0.2)
	if !near(b.Params.EavesHeight, 1) {
		t.Errorf("flat eaves = %v, want 1", b.Params.EavesHeight)
	}
	b.SetEavesHeight(99)
	if !near(b.Params.EavesHeight, 30) {
		t.Errorf("flat eaves = %v, want 30", b.Params.EavesHeight)
	}
}

func TestFlatRidgeIsDisplayOnly(t *testing.T) {
	b := newFlat() // eaves 5

	b.SetRidgeHeight(3) // below eaves: clamps to eaves + 0.5
	if !near(b.RidgeHeight(), 5.5) {
		t.Errorf("flat ridge = %v, want 5.5", b.RidgeHeight())
	}
	// The slab itself never follows the ridge value.
	top := b.Bounds().Max.Y
	if !near(top, b.Params.EavesHeight+SlabThick) {
		t.Errorf("slab top = %v, want %v", top, b.Params.EavesHeight+SlabThick)
	}
}

func TestSetFootprintMinimum(t *testing.T) {
	b := newGable()
	b.SetFootprint(0.25, -3)
	if !near(b.Params.Width, 1) || !near(b.Params.Depth, 1) {
		t.Errorf("footprint = %v x %v, want 1 x 1", b.Params.Width, b.Params.Depth)
	}
}

func TestRebuildReplacesSolids(t *testing.T) {
	b := newGable()
	oldWalls := b.Walls
	oldRoof := b.Roof

	b.SetFootprint(12, 8)

	if b.Walls == oldWalls || b.Roof == oldRoof {
		t.Error("parameter edits must dispose and regenerate solids, not patch them")
	}
	if len(b.Root.Children) != 2 {
		t.Errorf("root has %d children after rebuild, want 2", len(b.Root.Children))
	}
}

func TestSetPositionPinsToGround(t *testing.T) {
	b := newGable()
	b.SetPosition(rl.Vector3{X: 4, Y: 9, Z: -2})
	if b.Position().Y != 0 {
		t.Errorf("position Y = %v, want 0", b.Position().Y)
	}
}
