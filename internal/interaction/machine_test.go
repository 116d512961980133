package interaction

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/picking"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

type rig struct {
	scene    *engine.Scene
	registry *building.Registry
	handles  *handle.Manager
	views    *viewport.System
	machine  *Machine
}

func newRig() *rig {
	scene := engine.NewScene("Test")
	registry := building.NewRegistry(scene)
	handles := handle.NewManager()
	views := viewport.NewSystem(1000, 800)
	picker := picking.New(scene, handles, registry)
	return &rig{
		scene:    scene,
		registry: registry,
		handles:  handles,
		views:    views,
		machine:  NewMachine(scene, registry, handles, views, picker),
	}
}

// planScreen maps a world ground point to canvas coordinates in the plan
// view.
func (r *rig) planScreen(wx, wz float32) (float32, float32) {
	vp := r.views.Plan
	halfH := vp.OrthoSize
	halfW := halfH * vp.Aspect()
	x := vp.Region.X + (wx/halfW+1)/2*vp.Region.Width
	y := vp.Region.Y + (1+wz/halfH)/2*vp.Region.Height
	return x, y
}

func (r *rig) createGable() *building.Building {
	return r.registry.Create(rl.Vector3{}, building.RoofGable)
}

func TestAddToolCommitsOnGroundClick(t *testing.T) {
	r := newRig()

	r.machine.SetTool(ToolAddFlat)
	if r.machine.Mode() != ModeAddPreview {
		t.Fatal("add tool should enter preview mode")
	}

	x, y := r.planScreen(8, -4)
	r.machine.PointerMove(x, y)
	r.machine.PointerDown(x, y)

	b := r.registry.Current()
	if b == nil {
		t.Fatal("commit click should create and select a building")
	}
	if b.Params.Roof != building.RoofFlat {
		t.Error("committed building has the wrong roof type")
	}
	if !near(b.Position().X, 8) || !near(b.Position().Z, -4) {
		t.Errorf("committed at %v, want (8, 0, -4)", b.Position())
	}
	if r.machine.Tool() != ToolSelect || r.machine.Mode() != ModeIdle {
		t.Error("commit should return to the select tool")
	}
	if r.scene.FindByName("AddPreview") != nil {
		t.Error("preview ghost survived the commit")
	}
}

func TestSelectingToolAgainIsIdempotent(t *testing.T) {
	r := newRig()
	r.machine.SetTool(ToolAddGable)
	preview := r.scene.FindByName("AddPreview")

	r.machine.SetTool(ToolAddGable)
	if r.scene.FindByName("AddPreview") != preview {
		t.Error("re-selecting the active tool must not recreate the preview")
	}
}

func TestSelectionGeneratesHandles(t *testing.T) {
	r := newRig()
	r.createGable()

	if len(r.handles.Handles()) != 11 {
		t.Errorf("selection produced %d handles, want 11", len(r.handles.Handles()))
	}

	r.registry.Select(nil)
	if len(r.handles.Handles()) != 0 {
		t.Error("deselect should dispose the handle set")
	}
}

func TestCornerDragResizesAndRecenters(t *testing.T) {
	r := newRig()
	b := r.createGable() // 10x6 at the origin

	// Corner 0 projects over the footprint corner (-5, -3).
	x, y := r.planScreen(-5, -3)
	r.machine.PointerDown(x, y)
	if r.machine.Mode() != ModeDragging {
		t.Fatal("press on a corner handle should start a drag")
	}

	x, y = r.planScreen(-3, -1)
	r.machine.PointerMove(x, y)

	if !near(b.Params.Width, 8) || !near(b.Params.Depth, 4) {
		t.Errorf("footprint = %v x %v, want 8 x 4", b.Params.Width, b.Params.Depth)
	}
	// The fixed corner must not move: the origin re-centers to (1, 1).
	if !near(b.Position().X, 1) || !near(b.Position().Z, 1) {
		t.Errorf("position = %v, want (1, 0, 1)", b.Position())
	}

	// Repeating the same pointer position is a fixed point of the resize.
	r.machine.PointerMove(x, y)
	if !near(b.Params.Width, 8) || !near(b.Params.Depth, 4) {
		t.Errorf("footprint drifted to %v x %v on a stationary pointer", b.Params.Width, b.Params.Depth)
	}
	if !near(b.Position().X, 1) || !near(b.Position().Z, 1) {
		t.Errorf("position drifted to %v on a stationary pointer", b.Position())
	}

	r.machine.PointerUp(x, y)
	if r.machine.Mode() != ModeIdle {
		t.Error("release should end the drag")
	}
}

func TestResizeClampsAtMinimumSize(t *testing.T) {
	r := newRig()
	b := r.createGable()

	x, y := r.planScreen(-5, -3)
	r.machine.PointerDown(x, y)

	// Drag the corner far past the opposite edges.
	x, y = r.planScreen(30, 30)
	r.machine.PointerMove(x, y)

	if !near(b.Params.Width, 1) || !near(b.Params.Depth, 1) {
		t.Errorf("footprint = %v x %v, want the 1 x 1 floor", b.Params.Width, b.Params.Depth)
	}
}

func TestDragSurvivesHandleRegeneration(t *testing.T) {
	r := newRig()
	b := r.createGable()
	first := r.handles.Find(handle.Corner, 0)

	x, y := r.planScreen(-5, -3)
	r.machine.PointerDown(x, y)
	x, y = r.planScreen(-4, -2)
	r.machine.PointerMove(x, y)

	// The resize regenerated the set; the drag must follow the fresh
	// instance of the same kind and index.
	second := r.handles.Find(handle.Corner, 0)
	if second == nil || second == first {
		t.Fatal("resize should regenerate handle instances")
	}
	if r.machine.Mode() != ModeDragging {
		t.Error("drag should survive handle regeneration")
	}

	x, y = r.planScreen(-3, -1)
	r.machine.PointerMove(x, y)
	if !near(b.Params.Width, 8) || !near(b.Params.Depth, 4) {
		t.Errorf("continued drag produced %v x %v, want 8 x 4", b.Params.Width, b.Params.Depth)
	}
}

func TestRotateHandleSetsAbsoluteYaw(t *testing.T) {
	r := newRig()
	b := r.createGable()

	// The rotate handle sits at local (0, 5) beyond the front edge.
	x, y := r.planScreen(0, 5)
	r.machine.PointerDown(x, y)
	if r.machine.Mode() != ModeDragging {
		t.Fatal("press on the rotate handle should start a drag")
	}

	x, y = r.planScreen(10, 0) // due east of the center
	r.machine.PointerMove(x, y)
	if !near(b.RotationY(), rl.Pi/2) {
		t.Errorf("yaw = %v, want pi/2", b.RotationY())
	}

	// Absolute, not incremental: the same pointer gives the same yaw.
	r.machine.PointerMove(x, y)
	if !near(b.RotationY(), rl.Pi/2) {
		t.Errorf("yaw drifted to %v on a stationary pointer", b.RotationY())
	}
}

func TestBodyDragRelocatesInPlan(t *testing.T) {
	r := newRig()
	b := r.createGable()

	x, y := r.planScreen(0, 0) // the ridge line runs under the center
	r.machine.PointerDown(x, y)
	if r.machine.Mode() != ModeDragging {
		t.Fatal("press on the body in plan should start a relocate")
	}

	x, y = r.planScreen(5, 5)
	r.machine.PointerMove(x, y)
	if !near(b.Position().X, 5) || !near(b.Position().Z, 5) {
		t.Errorf("position = %v, want (5, 0, 5)", b.Position())
	}
}

func TestEmptyClickDeselects(t *testing.T) {
	r := newRig()
	r.createGable()

	x, y := r.planScreen(25, 25)
	r.machine.PointerDown(x, y)
	if r.registry.Current() != nil {
		t.Error("empty ground click should clear the selection")
	}
}

func TestGuideDragEditsEavesHeight(t *testing.T) {
	r := newRig()
	b := r.createGable() // eaves 4, ridge 6; elevation aimed at the center

	// The eaves guide at 4m projects to row 700 in the elevation region.
	r.machine.PointerDown(825, 700)
	if r.machine.Mode() != ModeDragging {
		t.Fatal("press on the eaves guide should start a height drag")
	}
	if kind, ok := r.machine.ActiveHeightDrag(); !ok || kind != handle.HeightEaves {
		t.Errorf("active height drag = %v/%v, want the eaves edit", kind, ok)
	}

	// 50px up at 16.67 px/m is +3m; the ridge caps the eaves at 5.5.
	r.machine.PointerMove(825, 650)
	if !near(b.Params.EavesHeight, 5.5) {
		t.Errorf("eaves = %v, want the clamped 5.5", b.Params.EavesHeight)
	}
	if !near(b.RidgeHeight(), 6) {
		t.Errorf("ridge = %v, want 6 untouched", b.RidgeHeight())
	}

	r.machine.PointerUp(825, 650)
	if r.machine.Mode() != ModeIdle {
		t.Error("release should end the height drag")
	}
}

func TestGuideDragIsAnchoredToStart(t *testing.T) {
	r := newRig()
	b := r.createGable()

	r.machine.PointerDown(825, 700)
	r.machine.PointerMove(825, 683) // ~1m up
	r.machine.PointerMove(825, 700) // back to the press row
	if !near(b.Params.EavesHeight, 4) {
		t.Errorf("eaves = %v, want 4 after returning to the press row", b.Params.EavesHeight)
	}
}

func TestPickGuideAtOutsideElevationIsNone(t *testing.T) {
	r := newRig()
	r.createGable()

	if _, ok := r.machine.PickGuideAt(100, 100); ok {
		t.Error("guide query in the plan region must report none")
	}
	if kind, ok := r.machine.PickGuideAt(825, 700); !ok || kind != handle.GuideEaves {
		t.Errorf("guide query = %v/%v, want the eaves guide", kind, ok)
	}
}

func TestViewportPinnedDuringDrag(t *testing.T) {
	r := newRig()
	r.createGable()

	x, y := r.planScreen(-5, -3)
	r.machine.PointerDown(x, y)

	// Crossing into the iso region mid-drag must not steal the camera.
	r.machine.PointerMove(700, 100)
	if r.views.Active().Kind != viewport.Plan {
		t.Error("active viewport changed during a drag")
	}

	r.machine.PointerUp(700, 100)
	if r.views.Active().Kind != viewport.Iso {
		t.Error("release should re-evaluate the viewport under the pointer")
	}
}

func TestDeleteSelected(t *testing.T) {
	r := newRig()
	b := r.createGable()

	r.machine.DeleteSelected()
	if r.registry.Current() != nil {
		t.Error("delete left a selection")
	}
	if r.registry.Get(b.ID) != nil {
		t.Error("deleted building still registered")
	}
	if len(r.handles.Handles()) != 0 {
		t.Error("delete left handles behind")
	}
	if len(r.scene.Entities) != 0 {
		t.Error("delete left the subtree in the scene")
	}
}
