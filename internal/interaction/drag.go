package interaction

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/picking"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

func (m *Machine) beginHandleDrag(hit picking.Hit, vp *viewport.Viewport, cam rl.Camera3D, x, y float32) {
	h := hit.Handle
	b := m.registry.Get(h.Building)
	if b == nil {
		return
	}

	switch h.Kind {
	case handle.Corner, handle.EdgeWidth, handle.EdgeDepth, handle.Rotate:
		// Shape handles are plan/iso gestures; a press on them in the
		// elevation view is ignored.
		if vp.Kind == viewport.Elevation {
			return
		}
		m.mode = ModeDragging
		m.target = dragTarget{kind: h.Kind, index: h.Index}
		m.dragBuilding = b
		m.originOffset = rl.Vector3Subtract(h.Entity.WorldPosition(), hit.Point)
		m.views.SetAppDragging(true)

	case handle.GuideEaves, handle.HeightEaves:
		m.beginHeightDrag(b, handle.HeightEaves, y)

	case handle.GuideRidge, handle.HeightRidge:
		m.beginHeightDrag(b, handle.HeightRidge, y)
	}
}

func (m *Machine) beginHeightDrag(b *building.Building, kind handle.Kind, pixelY float32) {
	m.mode = ModeDragging
	m.target = dragTarget{kind: kind}
	m.dragBuilding = b
	m.startEaves = b.Params.EavesHeight
	m.startRidge = b.RidgeHeight()
	m.startPixelY = pixelY
	m.views.SetAppDragging(true)
}

func (m *Machine) beginRelocate(b *building.Building, vp *viewport.Viewport, cam rl.Camera3D, x, y float32) {
	point, ok := m.picker.GroundPoint(vp, cam, x, y)
	if !ok {
		return
	}
	m.mode = ModeDragging
	m.target = dragTarget{relocate: true}
	m.dragBuilding = b
	m.originOffset = rl.Vector3Subtract(b.Position(), point)
	m.views.SetAppDragging(true)
}

func (m *Machine) updateDrag(x, y float32) {
	b := m.dragBuilding
	if b == nil {
		m.endDrag(x, y)
		return
	}

	if m.target.relocate {
		m.moveRelocate(b, x, y)
		return
	}

	switch m.target.kind {
	case handle.Corner, handle.EdgeWidth, handle.EdgeDepth:
		m.moveResize(b, x, y)
	case handle.Rotate:
		m.moveRotate(b, x, y)
	case handle.HeightEaves:
		m.moveHeight(b, x, y, true)
	case handle.HeightRidge:
		m.moveHeight(b, x, y, false)
	}
}

// dragPoint intersects the pointer ray with the ground plane and applies
// the grab offset recorded at drag start.
func (m *Machine) dragPoint(x, y float32) (rl.Vector3, bool) {
	vp := m.views.Active()
	cam := m.views.Camera(vp.Kind)
	point, ok := m.picker.GroundPoint(vp, cam, x, y)
	if !ok {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(point, m.originOffset), true
}

// moveResize recomputes the footprint from the dragged corner or edge. The
// drag point is carried into the building's local frame, the affected
// bounding edges move to it (each clamped so width/depth never drop below
// MinSize), and the building re-centers on the new bounds so the rebuilt
// geometry stays origin-centered.
func (m *Machine) moveResize(b *building.Building, x, y float32) {
	point, ok := m.dragPoint(x, y)
	if !ok {
		return
	}
	local := b.Root.WorldToLocal(point)

	minX := -b.Params.Width / 2
	maxX := b.Params.Width / 2
	minZ := -b.Params.Depth / 2
	maxZ := b.Params.Depth / 2

	moveLeft := func() { minX = math32.Min(local.X, maxX-building.MinSize) }
	moveRight := func() { maxX = math32.Max(local.X, minX+building.MinSize) }
	moveBack := func() { minZ = math32.Min(local.Z, maxZ-building.MinSize) }
	moveFront := func() { maxZ = math32.Max(local.Z, minZ+building.MinSize) }

	switch m.target.kind {
	case handle.Corner:
		switch m.target.index {
		case 0:
			moveLeft()
			moveBack()
		case 1:
			moveRight()
			moveBack()
		case 2:
			moveRight()
			moveFront()
		case 3:
			moveLeft()
			moveFront()
		}
	case handle.EdgeWidth:
		if m.target.index == 0 {
			moveLeft()
		} else {
			moveRight()
		}
	case handle.EdgeDepth:
		if m.target.index == 0 {
			moveBack()
		} else {
			moveFront()
		}
	}

	// Shift the origin so the new bounds are centered on it, rotating the
	// local center offset into world space.
	center := rl.Vector3{X: (minX + maxX) / 2, Z: (minZ + maxZ) / 2}
	shift := rl.Vector3Transform(center, rl.MatrixRotateY(b.RotationY()))
	b.SetPosition(rl.Vector3Add(b.Position(), shift))

	b.SetFootprint(maxX-minX, maxZ-minZ)
	m.registry.NotifyDimensionsChanged()
}

// moveRotate sets yaw absolutely from the pointer: the building turns to
// face the cursor, not by incremental deltas.
func (m *Machine) moveRotate(b *building.Building, x, y float32) {
	point, ok := m.dragPoint(x, y)
	if !ok {
		return
	}
	center := b.Center()
	dx := point.X - center.X
	dz := point.Z - center.Z
	if dx == 0 && dz == 0 {
		return
	}
	b.SetRotationY(math32.Atan2(dx, dz))
}

func (m *Machine) moveRelocate(b *building.Building, x, y float32) {
	vp := m.views.Active()
	cam := m.views.Camera(vp.Kind)
	point, ok := m.picker.GroundPoint(vp, cam, x, y)
	if !ok {
		return
	}
	b.SetPosition(rl.Vector3Add(point, m.originOffset))
}

// moveHeight converts the vertical pixel delta to meters through the
// elevation view's pixels-per-meter and commits through the clamping
// setters. The elevation camera deliberately stays where it is so the view
// does not snap mid-drag.
func (m *Machine) moveHeight(b *building.Building, x, y float32, eaves bool) {
	ppm := m.views.PixelsPerMeter()
	if ppm <= 0 {
		return
	}
	deltaMeters := (m.startPixelY - y) * m.views.DPIScale / ppm
	if eaves {
		m.registry.SetEavesHeight(m.startEaves + deltaMeters)
	} else {
		m.registry.SetRidgeHeight(m.startRidge + deltaMeters)
	}
}

// reresolveDragTarget re-points an in-flight handle drag at the fresh
// handle instance of the same kind and index after a regeneration. If no
// replacement exists the interaction ends silently rather than mutating
// stale state.
func (m *Machine) reresolveDragTarget() {
	if m.mode != ModeDragging || m.target.relocate {
		return
	}
	switch m.target.kind {
	case handle.Corner, handle.EdgeWidth, handle.EdgeDepth, handle.Rotate:
		if m.handles.Find(m.target.kind, m.target.index) == nil {
			m.endDrag(-1, -1)
		}
	}
}

// endDrag clears all drag bookkeeping, re-attaches free camera control and
// (when pointer coordinates are known) forces the active viewport to
// re-evaluate. Safe to call when no drag is in progress.
func (m *Machine) endDrag(x, y float32) {
	if m.mode != ModeDragging {
		return
	}
	m.mode = ModeIdle
	m.target = dragTarget{}
	m.dragBuilding = nil
	m.originOffset = rl.Vector3{}
	m.views.SetAppDragging(false)
	if x >= 0 && y >= 0 {
		m.views.RefreshInput(x, y)
	}
}
