package handle

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
)

const (
	cornerSize  float32 = 0.8
	edgeSize    float32 = 0.6
	rotateSize  float32 = 0.9
	rotateReach float32 = 2.0 // beyond the front edge
	// Handles float above the highest roof point so the picking priority
	// pass rarely has to beat the building volume at all.
	liftAbove float32 = 1.0
	// Guide proxies extend past the footprint so they stay under the
	// pointer from any compass direction.
	guidePad       float32 = 5.0
	guideThickness float32 = 0.4
)

// Manager owns the handle set of the currently selected building. The set
// is regenerated from current bounds whenever the building changes shape
// and disposed wholesale on deselect.
type Manager struct {
	handles  []*Handle
	byEntity map[*engine.Entity]*Handle
	owner    *building.Building
}

func NewManager() *Manager {
	return &Manager{byEntity: make(map[*engine.Entity]*Handle)}
}

// RebuildFor disposes the current set and produces a fresh one positioned
// from b's bounds. Passing nil just clears.
func (m *Manager) RebuildFor(b *building.Building) {
	m.Clear()
	if b == nil {
		return
	}
	m.owner = b
	m.handles = buildSet(b)
	for _, h := range m.handles {
		b.Root.AddChild(h.Entity)
		m.byEntity[h.Entity] = h
	}
}

// Clear detaches and drops every handle.
func (m *Manager) Clear() {
	if m.owner != nil {
		for _, h := range m.handles {
			m.owner.Root.RemoveChild(h.Entity)
		}
	}
	m.handles = nil
	m.owner = nil
	m.byEntity = make(map[*engine.Entity]*Handle)
}

func (m *Manager) Handles() []*Handle { return m.handles }

// FromEntity resolves a picked entity back to its handle, or nil.
func (m *Manager) FromEntity(e *engine.Entity) *Handle {
	return m.byEntity[e]
}

// Find returns the handle of the given kind and index, or nil. Drag targets
// are re-resolved through this after every regeneration, since the old
// instances are disposed.
func (m *Manager) Find(kind Kind, index int) *Handle {
	for _, h := range m.handles {
		if h.Kind == kind && h.Index == index {
			return h
		}
	}
	return nil
}

// roofTop returns the local height of the highest roof point: gable apex,
// or the flat slab top.
func roofTop(b *building.Building) float32 {
	if b.Params.Roof == building.RoofGable {
		return b.Params.EavesHeight + b.Params.Slope
	}
	return b.Params.EavesHeight + building.SlabThick
}

// GuideEavesY returns the world height of the eaves guide line.
func GuideEavesY(b *building.Building) float32 { return b.Params.EavesHeight }

// GuideRidgeY returns the world height of the ridge guide line (flat roof:
// the slab top, not the display-only ridge value).
func GuideRidgeY(b *building.Building) float32 { return roofTop(b) }

func buildSet(b *building.Building) []*Handle {
	hw := b.Params.Width / 2
	hd := b.Params.Depth / 2
	y := roofTop(b) + liftAbove

	set := make([]*Handle, 0, 11)

	add := func(kind Kind, index int, pos rl.Vector3, size float32) *Handle {
		e := engine.NewEntity(kind.String())
		e.Transform.Position = pos
		e.Mesh = engine.CubeMesh(size)
		e.SetBoundsFromMesh()
		e.Pickable = true
		e.Layers = engine.LayerPlan | engine.LayerIso
		e.Color = rl.NewColor(64, 128, 255, 255)
		h := &Handle{Kind: kind, Index: index, Building: b.ID, Entity: e, BaseScale: 1}
		set = append(set, h)
		return h
	}

	// Corners, counter-clockwise from (minX, minZ).
	corners := [4]rl.Vector3{
		{X: -hw, Y: y, Z: -hd},
		{X: hw, Y: y, Z: -hd},
		{X: hw, Y: y, Z: hd},
		{X: -hw, Y: y, Z: hd},
	}
	for i, p := range corners {
		add(Corner, i, p, cornerSize)
	}

	// Width edges (left/right), depth edges (back/front).
	add(EdgeWidth, 0, rl.Vector3{X: -hw, Y: y, Z: 0}, edgeSize)
	add(EdgeWidth, 1, rl.Vector3{X: hw, Y: y, Z: 0}, edgeSize)
	add(EdgeDepth, 0, rl.Vector3{X: 0, Y: y, Z: -hd}, edgeSize)
	add(EdgeDepth, 1, rl.Vector3{X: 0, Y: y, Z: hd}, edgeSize)

	rot := add(Rotate, 0, rl.Vector3{X: 0, Y: y, Z: hd + rotateReach}, rotateSize)
	rot.Entity.Color = rl.NewColor(255, 176, 48, 255)

	// Guide collision proxies: horizontal slabs at eaves and ridge height,
	// elevation-only, pickable while invisible.
	guide := func(kind Kind, worldY float32) {
		e := engine.NewEntity(kind.String())
		e.Transform.Position = rl.Vector3{X: 0, Y: worldY, Z: 0}
		e.Mesh = engine.BoxMesh(
			rl.Vector3{X: -(hw + guidePad), Y: -guideThickness / 2, Z: -(hd + guidePad)},
			rl.Vector3{X: hw + guidePad, Y: guideThickness / 2, Z: hd + guidePad},
		)
		e.SetBoundsFromMesh()
		e.Visible = false
		e.Pickable = true
		e.PickableHidden = true
		e.Layers = engine.LayerElevation
		set = append(set, &Handle{Kind: kind, Index: 0, Building: b.ID, Entity: e, BaseScale: 1})
	}
	guide(GuideEaves, GuideEavesY(b))
	guide(GuideRidge, GuideRidgeY(b))

	return set
}
