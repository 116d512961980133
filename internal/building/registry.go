package building

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/ufukozkul/solar-case/internal/engine"
)

// Dimensions is the derived parameter snapshot reported to external
// listeners whenever a building's shape changes.
type Dimensions struct {
	Width       float32
	Depth       float32
	EavesHeight float32
	Slope       float32
}

// SelectionInfo describes the current selection for external listeners.
// Selected is false when nothing is selected; the other fields are then
// zero values.
type SelectionInfo struct {
	Selected bool
	ID       uuid.UUID
	Roof     RoofType
	Dimensions
}

// Registry owns the set of buildings and the current selection. All
// mutating commands route through it so state-change events fire from one
// place; commands issued with no selection are no-ops.
type Registry struct {
	scene     *engine.Scene
	buildings []*Building
	selected  *Building

	OnSelectionChanged  engine.EventWithArg[SelectionInfo]
	OnDimensionsChanged engine.EventWithArg[Dimensions]
	OnSlopeChanged      engine.EventWithArg[float32]
}

func NewRegistry(scene *engine.Scene) *Registry {
	return &Registry{
		scene:     scene,
		buildings: make([]*Building, 0),
	}
}

// Create commits a new building at the given ground point with default
// dimensions and selects it.
func (r *Registry) Create(pos rl.Vector3, roof RoofType) *Building {
	b := newBuilding(pos, roof)
	r.buildings = append(r.buildings, b)
	r.scene.Add(b.Root)
	r.Select(b)
	return b
}

// Select makes b the current building (nil deselects). Idempotent.
// Selection reassigns visibility masks: the selected building shows in all
// three viewports, everything else only in Plan and Iso. The elevation
// view is a single-building focus view.
func (r *Registry) Select(b *Building) {
	if b == r.selected {
		return
	}
	r.selected = b

	for _, x := range r.buildings {
		if x == b {
			x.SetLayers(engine.LayerAll)
		} else {
			x.SetLayers(engine.LayerPlan | engine.LayerIso)
		}
	}

	r.OnSelectionChanged.Invoke(r.selectionInfo())
	if b != nil {
		r.OnDimensionsChanged.Invoke(r.dimensions(b))
	}
}

// Current returns the selected building, or nil.
func (r *Registry) Current() *Building { return r.selected }

func (r *Registry) All() []*Building { return r.buildings }

func (r *Registry) Get(id uuid.UUID) *Building {
	for _, b := range r.buildings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Remove destroys a building: deselects it if needed and detaches its whole
// subtree from the scene.
func (r *Registry) Remove(b *Building) {
	if b == nil {
		return
	}
	for i, x := range r.buildings {
		if x == b {
			r.buildings = append(r.buildings[:i], r.buildings[i+1:]...)
			break
		}
	}
	r.scene.Remove(b.Root)
	if r.selected == b {
		r.selected = nil
		r.OnSelectionChanged.Invoke(r.selectionInfo())
	}
}

// SetEavesHeight clamps and commits a new eaves height on the selected
// building. No-op without a selection.
func (r *Registry) SetEavesHeight(h float32) {
	if r.selected == nil {
		return
	}
	r.selected.SetEavesHeight(h)
	r.OnDimensionsChanged.Invoke(r.dimensions(r.selected))
}

// SetRidgeHeight clamps and commits a new ridge height on the selected
// building. No-op without a selection.
func (r *Registry) SetRidgeHeight(h float32) {
	if r.selected == nil {
		return
	}
	r.selected.SetRidgeHeight(h)
	r.OnDimensionsChanged.Invoke(r.dimensions(r.selected))
}

// SetSlope sets the gable rise on the selected building; no-op without a
// selection or when the selected roof is flat.
func (r *Registry) SetSlope(s float32) {
	if r.selected == nil || r.selected.Params.Roof != RoofGable {
		return
	}
	r.selected.SetSlope(s)
	r.OnSlopeChanged.Invoke(r.selected.Params.Slope)
	r.OnDimensionsChanged.Invoke(r.dimensions(r.selected))
}

// NotifyDimensionsChanged re-reports the selected building's dimensions.
// Called by the interaction layer after direct-manipulation edits that
// mutate the building without going through a registry command.
func (r *Registry) NotifyDimensionsChanged() {
	if r.selected == nil {
		return
	}
	r.OnDimensionsChanged.Invoke(r.dimensions(r.selected))
}

func (r *Registry) dimensions(b *Building) Dimensions {
	return Dimensions{
		Width:       b.Params.Width,
		Depth:       b.Params.Depth,
		EavesHeight: b.Params.EavesHeight,
		Slope:       b.Params.Slope,
	}
}

func (r *Registry) selectionInfo() SelectionInfo {
	if r.selected == nil {
		return SelectionInfo{}
	}
	return SelectionInfo{
		Selected:   true,
		ID:         r.selected.ID,
		Roof:       r.selected.Params.Roof,
		Dimensions: r.dimensions(r.selected),
	}
}
