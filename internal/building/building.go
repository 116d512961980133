package building

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/ufukozkul/solar-case/internal/engine"
)

type RoofType int

const (
	RoofFlat RoofType = iota
	RoofGable
)

func (r RoofType) String() string {
	if r == RoofFlat {
		return "Flat"
	}
	return "Gable"
}

// Domain limits. Out-of-range inputs are clamped, never rejected.
const (
	MinSize   float32 = 1.0 // smallest width/depth
	MinEaves  float32 = 1.0
	MinSlope  float32 = 0.5
	MaxSlope  float32 = 30.0
	MaxRidge  float32 = 30.0
	MaxEaves  float32 = 30.0 // flat roofs only; gable eaves are bounded by the ridge
	SlabThick float32 = 0.5  // flat roof slab thickness
)

// Default parameters for newly created buildings.
const (
	DefaultWidth      float32 = 10.0
	DefaultDepth      float32 = 6.0
	DefaultGableEaves float32 = 4.0
	DefaultGableSlope float32 = 2.0
	DefaultFlatEaves  float32 = 5.0
	DefaultFlatRidge  float32 = 25.0
)

// Params is the full parameter set of one building volume.
type Params struct {
	Roof        RoofType
	Width       float32 // meters along local X
	Depth       float32 // meters along local Z
	EavesHeight float32
	// Slope is the gable rise above the eaves line. For flat roofs it
	// carries the display-only "ridge" convention instead; the slab
	// geometry is always EavesHeight + SlabThick.
	Slope float32
}

// Building is a parametric volume on the ground plane. It owns its rendered
// solids as children of Root; both are disposed and rebuilt on any
// parameter change, never patched.
type Building struct {
	ID     uuid.UUID
	Params Params

	Root  *engine.Entity
	Walls *engine.Entity
	Roof  *engine.Entity

	layers uint32
}

func newBuilding(pos rl.Vector3, roof RoofType) *Building {
	p := Params{
		Roof:        roof,
		Width:       DefaultWidth,
		Depth:       DefaultDepth,
		EavesHeight: DefaultGableEaves,
		Slope:       DefaultGableSlope,
	}
	if roof == RoofFlat {
		p.EavesHeight = DefaultFlatEaves
		p.Slope = DefaultFlatRidge
	}

	b := &Building{
		ID:     uuid.New(),
		Params: p,
		Root:   engine.NewEntity(fmt.Sprintf("Building_%s", roof)),
		layers: engine.LayerPlan | engine.LayerIso,
	}
	b.Root.Transform.Position = rl.Vector3{X: pos.X, Y: 0, Z: pos.Z}
	b.Rebuild()
	return b
}

func (b *Building) Position() rl.Vector3 { return b.Root.Transform.Position }

// SetPosition moves the building on the ground plane. Y is pinned to 0.
func (b *Building) SetPosition(p rl.Vector3) {
	b.Root.Transform.Position = rl.Vector3{X: p.X, Y: 0, Z: p.Z}
}

func (b *Building) RotationY() float32 { return b.Root.Transform.RotationY }

func (b *Building) SetRotationY(yaw float32) { b.Root.Transform.RotationY = yaw }

// RidgeHeight is eaves + slope for gable roofs. For flat roofs it is the
// display convention carried in Slope, not the slab top.
func (b *Building) RidgeHeight() float32 {
	if b.Params.Roof == RoofGable {
		return b.Params.EavesHeight + b.Params.Slope
	}
	return b.Params.Slope
}

// SetEavesHeight moves the eaves line while the ridge stays fixed. The
// request is clamped so the gable keeps at least MinSlope of rise.
func (b *Building) SetEavesHeight(h float32) {
	if b.Params.Roof == RoofGable {
		ridge := b.RidgeHeight()
		h = math32.Min(h, ridge-MinSlope)
		h = math32.Max(h, MinEaves)
		b.Params.EavesHeight = h
		b.Params.Slope = ridge - h
	} else {
		b.Params.EavesHeight = clamp(h, MinEaves, MaxEaves)
	}
	b.Rebuild()
}

// SetRidgeHeight moves the ridge while the eaves stay fixed.
func (b *Building) SetRidgeHeight(r float32) {
	if b.Params.Roof == RoofGable {
		r = math32.Min(r, MaxRidge)
		b.Params.Slope = math32.Max(MinSlope, r-b.Params.EavesHeight)
	} else {
		// Display-only convention for flat roofs; the slab is untouched.
		b.Params.Slope = clamp(r, b.Params.EavesHeight+MinSlope, MaxRidge)
	}
	b.Rebuild()
}

// SetSlope sets the gable rise, clamped to the product range. No-op for
// flat roofs.
func (b *Building) SetSlope(s float32) {
	if b.Params.Roof != RoofGable {
		return
	}
	b.Params.Slope = clamp(s, MinSlope, MaxSlope)
	b.Rebuild()
}

// SetFootprint replaces width and depth, each kept at MinSize or above.
func (b *Building) SetFootprint(width, depth float32) {
	b.Params.Width = math32.Max(width, MinSize)
	b.Params.Depth = math32.Max(depth, MinSize)
	b.Rebuild()
}

// Rebuild disposes the current solids and regenerates them from Params.
// Full replacement keeps the geometry consistent with the parameters; there
// are no incremental updates.
func (b *Building) Rebuild() {
	if b.Walls != nil {
		b.Root.RemoveChild(b.Walls)
	}
	if b.Roof != nil {
		b.Root.RemoveChild(b.Roof)
	}

	solids := Build(b.Params)

	b.Walls = engine.NewEntity("Walls")
	b.Walls.Mesh = solids.Walls
	b.Walls.Color = rl.NewColor(222, 214, 196, 255)
	b.Walls.Pickable = true
	b.Walls.SetBoundsFromMesh()
	b.Root.AddChild(b.Walls)

	b.Roof = engine.NewEntity("Roof")
	b.Roof.Mesh = solids.Roof
	b.Roof.Color = rl.NewColor(172, 84, 56, 255)
	b.Roof.Pickable = true
	b.Roof.SetBoundsFromMesh()
	b.Root.AddChild(b.Roof)

	b.applyLayers()
}

// SetLayers assigns the viewport visibility mask to the whole subtree.
func (b *Building) SetLayers(mask uint32) {
	b.layers = mask
	b.applyLayers()
}

func (b *Building) Layers() uint32 { return b.layers }

func (b *Building) applyLayers() {
	b.Root.Layers = b.layers
	b.Walls.Layers = b.layers
	b.Roof.Layers = b.layers
}

// Bounds returns the local-space footprint box including roof height.
func (b *Building) Bounds() rl.BoundingBox {
	top := b.Params.EavesHeight + SlabThick
	if b.Params.Roof == RoofGable {
		top = b.Params.EavesHeight + b.Params.Slope
	}
	return rl.BoundingBox{
		Min: rl.Vector3{X: -b.Params.Width / 2, Y: 0, Z: -b.Params.Depth / 2},
		Max: rl.Vector3{X: b.Params.Width / 2, Y: top, Z: b.Params.Depth / 2},
	}
}

// Center returns the world-space footprint center.
func (b *Building) Center() rl.Vector3 {
	return b.Root.Transform.Position
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
