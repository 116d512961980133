package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/picking"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

type Tool int

const (
	ToolSelect Tool = iota
	ToolAddFlat
	ToolAddGable
)

func (t Tool) String() string {
	switch t {
	case ToolAddFlat:
		return "add-flat"
	case ToolAddGable:
		return "add-gable"
	}
	return "select"
}

type Mode int

const (
	ModeIdle Mode = iota
	ModeAddPreview
	ModeDragging
)

// dragTarget identifies what a drag gesture is mutating. Handle targets are
// held by kind/index, never by instance: rebuilds dispose handle instances
// mid-drag, so the target is re-resolved after every regeneration.
type dragTarget struct {
	kind     handle.Kind
	index    int
	relocate bool
}

// Machine is the pointer-driven interaction state machine. All transitions
// happen synchronously inside pointer-down/move/up; there are no timers and
// no intermediate states survive between events.
type Machine struct {
	scene    *engine.Scene
	registry *building.Registry
	handles  *handle.Manager
	views    *viewport.System
	picker   *picking.Picker

	tool Tool
	mode Mode

	preview     *engine.Entity
	previewRoof building.RoofType

	target       dragTarget
	dragBuilding *building.Building
	originOffset rl.Vector3
	startEaves   float32
	startRidge   float32
	startPixelY  float32

	hovered *handle.Handle

	OnToolChanged engine.EventWithArg[Tool]
}

func NewMachine(scene *engine.Scene, registry *building.Registry, handles *handle.Manager, views *viewport.System, picker *picking.Picker) *Machine {
	m := &Machine{
		scene:    scene,
		registry: registry,
		handles:  handles,
		views:    views,
		picker:   picker,
	}

	// Selection drives handle regeneration and re-aims the elevation
	// orbit. Dimension changes regenerate handles from the new bounds and
	// re-resolve any in-flight drag target, since the old handle instance
	// was just disposed.
	registry.OnSelectionChanged.AddListener(func(info building.SelectionInfo) {
		current := registry.Current()
		m.handles.RebuildFor(current)
		m.hovered = nil
		if current != nil {
			m.views.AimElevationAt(current.Center())
		}
	})
	registry.OnDimensionsChanged.AddListener(func(building.Dimensions) {
		m.handles.RebuildFor(registry.Current())
		m.hovered = nil
		m.reresolveDragTarget()
	})

	return m
}

func (m *Machine) Tool() Tool { return m.tool }

func (m *Machine) Mode() Mode { return m.mode }

// SetTool switches the active tool. Add tools enter preview mode with a
// translucent, non-pickable ghost following the pointer.
func (m *Machine) SetTool(t Tool) {
	if t == m.tool {
		return
	}
	m.endDrag(-1, -1)
	m.disposePreview()
	m.tool = t

	switch t {
	case ToolAddFlat:
		m.enterAddPreview(building.RoofFlat)
	case ToolAddGable:
		m.enterAddPreview(building.RoofGable)
	default:
		m.mode = ModeIdle
	}
	m.OnToolChanged.Invoke(t)
}

func (m *Machine) enterAddPreview(roof building.RoofType) {
	m.mode = ModeAddPreview
	m.previewRoof = roof

	p := building.Params{
		Roof:        roof,
		Width:       building.DefaultWidth,
		Depth:       building.DefaultDepth,
		EavesHeight: building.DefaultGableEaves,
		Slope:       building.DefaultGableSlope,
	}
	if roof == building.RoofFlat {
		p.EavesHeight = building.DefaultFlatEaves
	}
	solids := building.Build(p)

	m.preview = engine.NewEntity("AddPreview")
	m.preview.Mesh = append(solids.Walls, solids.Roof...)
	m.preview.SetBoundsFromMesh()
	m.preview.Color = rl.NewColor(120, 170, 255, 110)
	m.preview.Pickable = false
	m.preview.Visible = false // shown on first ground hit
	m.preview.Layers = engine.LayerPlan | engine.LayerIso
	m.scene.Add(m.preview)
}

func (m *Machine) disposePreview() {
	if m.preview != nil {
		m.scene.Remove(m.preview)
		m.preview = nil
	}
}

// PointerDown routes a press through the active viewport's hit test and
// transitions the state machine.
func (m *Machine) PointerDown(x, y float32) {
	m.views.UpdatePointer(x, y)
	vp := m.views.Active()
	cam := m.views.Camera(vp.Kind)

	if m.mode == ModeAddPreview {
		if point, ok := m.picker.GroundPoint(vp, cam, x, y); ok && vp.Kind != viewport.Elevation {
			roof := m.previewRoof
			m.disposePreview()
			m.registry.Create(point, roof)
			m.tool = ToolSelect
			m.mode = ModeIdle
			m.OnToolChanged.Invoke(ToolSelect)
		}
		return
	}

	if m.mode != ModeIdle || m.tool != ToolSelect {
		return
	}

	hit := m.picker.Pick(vp, cam, x, y)
	switch hit.Kind {
	case picking.HitHandle:
		m.beginHandleDrag(hit, vp, cam, x, y)
	case picking.HitBuilding:
		m.registry.Select(hit.Building)
		if vp.Kind == viewport.Plan {
			m.beginRelocate(hit.Building, vp, cam, x, y)
		}
	default:
		m.registry.Select(nil)
	}
}

// PointerMove advances previews, drags and hover feedback.
func (m *Machine) PointerMove(x, y float32) {
	m.views.UpdatePointer(x, y)

	switch m.mode {
	case ModeAddPreview:
		m.movePreview(x, y)
	case ModeDragging:
		m.updateDrag(x, y)
	case ModeIdle:
		if m.tool == ToolSelect {
			m.updateHover(x, y)
		}
	}
}

// PointerUp ends any drag in its then-current, already-clamped state. The
// teardown always runs, re-attaching free camera control and forcing the
// active viewport to re-evaluate against the pointer.
func (m *Machine) PointerUp(x, y float32) {
	if m.mode == ModeDragging {
		m.endDrag(x, y)
	}
}

func (m *Machine) movePreview(x, y float32) {
	if m.preview == nil {
		return
	}
	vp := m.views.Active()
	if vp.Kind == viewport.Elevation {
		return
	}
	cam := m.views.Camera(vp.Kind)
	if point, ok := m.picker.GroundPoint(vp, cam, x, y); ok {
		m.preview.Visible = true
		m.preview.Transform.Position = rl.Vector3{X: point.X, Z: point.Z}
	}
}

func (m *Machine) updateHover(x, y float32) {
	vp := m.views.Active()
	cam := m.views.Camera(vp.Kind)
	hit := m.picker.Pick(vp, cam, x, y)

	var next *handle.Handle
	if hit.Kind == picking.HitHandle {
		next = hit.Handle
	}
	if next == m.hovered {
		return
	}
	if m.hovered != nil {
		m.hovered.SetHovered(false)
	}
	m.hovered = next
	if m.hovered != nil {
		m.hovered.SetHovered(true)
	}
}

// ActiveHeightDrag reports which height edit, if any, a drag is currently
// driving. The render layer draws that guide solid while it is held.
func (m *Machine) ActiveHeightDrag() (handle.Kind, bool) {
	if m.mode != ModeDragging || m.target.relocate {
		return 0, false
	}
	if m.target.kind == handle.HeightEaves || m.target.kind == handle.HeightRidge {
		return m.target.kind, true
	}
	return 0, false
}

// PickGuideAt reports which guide, if any, sits under an elevation-view
// point. Outside the elevation region the answer is always none.
func (m *Machine) PickGuideAt(x, y float32) (handle.Kind, bool) {
	vp := m.views.At(x, y)
	if vp.Kind != viewport.Elevation {
		return 0, false
	}
	hit := m.picker.Pick(vp, m.views.Camera(vp.Kind), x, y)
	if hit.Kind == picking.HitHandle && hit.Handle.Kind.IsGuide() {
		return hit.Handle.Kind, true
	}
	return 0, false
}

// DeleteSelected removes the current building and its whole subtree.
func (m *Machine) DeleteSelected() {
	current := m.registry.Current()
	if current == nil {
		return
	}
	m.endDrag(-1, -1)
	m.registry.Remove(current)
}
