package engine

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestWorldPositionWithParentYaw(t *testing.T) {
	parent := NewEntity("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Z: 5}
	parent.Transform.RotationY = rl.Pi / 2

	child := NewEntity("Child")
	child.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(child)

	// A quarter turn takes local +X to world -Z.
	got := child.WorldPosition()
	if !near(got.X, 10) || !near(got.Z, 4) {
		t.Errorf("WorldPosition() = %v, want (10, 0, 4)", got)
	}
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	e := NewEntity("Box")
	e.Transform.Position = rl.Vector3{X: 3, Z: -2}
	e.Transform.RotationY = 0.7

	world := rl.Vector3{X: 5, Y: 1, Z: 4}
	back := e.LocalToWorld(e.WorldToLocal(world))
	if !near(back.X, world.X) || !near(back.Y, world.Y) || !near(back.Z, world.Z) {
		t.Errorf("round trip = %v, want %v", back, world)
	}
}

func TestWorldToLocalRotated(t *testing.T) {
	e := NewEntity("Box")
	e.Transform.RotationY = rl.Pi / 2

	// World -Z maps back to local +X under a quarter turn.
	local := e.WorldToLocal(rl.Vector3{Z: -4})
	if !near(local.X, 4) || !near(local.Z, 0) {
		t.Errorf("WorldToLocal() = %v, want (4, 0, 0)", local)
	}
}

func TestVisibleTo(t *testing.T) {
	e := NewEntity("E")
	e.Layers = LayerPlan | LayerIso

	if !e.VisibleTo(LayerPlan) {
		t.Error("entity with plan layer should be visible to plan mask")
	}
	if e.VisibleTo(LayerElevation) {
		t.Error("entity without elevation layer should not be visible to elevation mask")
	}

	e.Visible = false
	if e.VisibleTo(LayerPlan) {
		t.Error("hidden entity should never be visible")
	}
}

func TestPickableByHiddenProxy(t *testing.T) {
	e := NewEntity("GuideProxy")
	e.Layers = LayerElevation
	e.Pickable = true
	e.Visible = false

	if e.PickableBy(LayerElevation) {
		t.Error("hidden entity without PickableHidden should not pick")
	}

	e.PickableHidden = true
	if !e.PickableBy(LayerElevation) {
		t.Error("hidden pick proxy should stay pickable")
	}
	if e.PickableBy(LayerPlan) {
		t.Error("proxy must respect the layer mask")
	}
}

func TestSetBoundsFromMesh(t *testing.T) {
	e := NewEntity("Box")
	e.Mesh = BoxMesh(rl.Vector3{X: -1, Y: 0, Z: -2}, rl.Vector3{X: 1, Y: 3, Z: 2})
	e.SetBoundsFromMesh()

	if !near(e.Bounds.Min.X, -1) || !near(e.Bounds.Min.Y, 0) || !near(e.Bounds.Min.Z, -2) {
		t.Errorf("Bounds.Min = %v", e.Bounds.Min)
	}
	if !near(e.Bounds.Max.X, 1) || !near(e.Bounds.Max.Y, 3) || !near(e.Bounds.Max.Z, 2) {
		t.Errorf("Bounds.Max = %v", e.Bounds.Max)
	}
}

func TestBoxMeshTriangleCount(t *testing.T) {
	mesh := BoxMesh(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	if len(mesh) != 12 {
		t.Errorf("BoxMesh produced %d triangles, want 12", len(mesh))
	}
}
