package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Layer masks control which viewport cameras render and pick an entity.
// An entity is visible to a camera when entity.Layers & camera mask != 0.
const (
	LayerPlan uint32 = 1 << iota
	LayerIso
	LayerElevation

	LayerAll = LayerPlan | LayerIso | LayerElevation
)

type Transform struct {
	Position  rl.Vector3
	RotationY float32 // yaw in radians
	Scale     float32
}

// Entity is a node in the ownership tree: a building root, a wall or roof
// solid, a manipulation handle, or a guide proxy. Geometry is local-space;
// the world transform is translation * yaw * uniform scale.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Transform Transform

	Layers   uint32
	Visible  bool
	Pickable bool
	// PickableHidden keeps an entity in the pick pass while it is not
	// rendered. Used by guide collision proxies in the elevation view.
	PickableHidden bool

	Mesh   []Triangle // local-space render geometry
	Bounds rl.BoundingBox
	Color  rl.Color

	Parent   *Entity
	Children []*Entity
}

// Triangle is a single local-space render triangle.
type Triangle struct {
	A, B, C rl.Vector3
}

func NewEntity(name string) *Entity {
	return &Entity{
		ID:      uuid.New(),
		Name:    name,
		Visible: true,
		Layers:  LayerAll,
		Transform: Transform{
			Scale: 1,
		},
	}
}

func (e *Entity) AddChild(child *Entity) {
	child.Parent = e
	e.Children = append(e.Children, child)
}

func (e *Entity) RemoveChild(child *Entity) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// VisibleTo reports whether the entity is rendered by a camera with the
// given layer mask. Evaluated at render time, never cached.
func (e *Entity) VisibleTo(mask uint32) bool {
	return e.Visible && e.Layers&mask != 0
}

// PickableBy reports whether the entity participates in picking against a
// camera with the given mask. Hidden pick proxies stay eligible.
func (e *Entity) PickableBy(mask uint32) bool {
	if !e.Pickable || e.Layers&mask == 0 {
		return false
	}
	return e.Visible || e.PickableHidden
}

func (e *Entity) WorldPosition() rl.Vector3 {
	if e.Parent == nil {
		return e.Transform.Position
	}
	parentPos := e.Parent.WorldPosition()
	rotated := rl.Vector3Transform(
		rl.Vector3Scale(e.Transform.Position, e.Parent.WorldScale()),
		rl.MatrixRotateY(e.Parent.WorldRotationY()),
	)
	return rl.Vector3Add(parentPos, rotated)
}

func (e *Entity) WorldRotationY() float32 {
	if e.Parent == nil {
		return e.Transform.RotationY
	}
	return e.Parent.WorldRotationY() + e.Transform.RotationY
}

func (e *Entity) WorldScale() float32 {
	if e.Parent == nil {
		return e.Transform.Scale
	}
	return e.Parent.WorldScale() * e.Transform.Scale
}

// WorldMatrix builds the local-to-world transform: scale, then yaw, then
// translation, composed with the parent chain.
func (e *Entity) WorldMatrix() rl.Matrix {
	s := e.Transform.Scale
	m := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateY(e.Transform.RotationY)),
		rl.MatrixTranslate(e.Transform.Position.X, e.Transform.Position.Y, e.Transform.Position.Z),
	)
	if e.Parent != nil {
		m = rl.MatrixMultiply(m, e.Parent.WorldMatrix())
	}
	return m
}

// WorldToLocal maps a world-space point into the entity's local frame.
func (e *Entity) WorldToLocal(p rl.Vector3) rl.Vector3 {
	pos := e.WorldPosition()
	local := rl.Vector3Subtract(p, pos)
	local = rl.Vector3Transform(local, rl.MatrixRotateY(-e.WorldRotationY()))
	s := e.WorldScale()
	if s != 0 && s != 1 {
		local = rl.Vector3Scale(local, 1/s)
	}
	return local
}

// LocalToWorld maps a local-space point into world space.
func (e *Entity) LocalToWorld(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(p, e.WorldMatrix())
}

// SetBoundsFromMesh recomputes the local AABB from the mesh vertices.
func (e *Entity) SetBoundsFromMesh() {
	if len(e.Mesh) == 0 {
		e.Bounds = rl.BoundingBox{}
		return
	}
	min := e.Mesh[0].A
	max := e.Mesh[0].A
	expand := func(v rl.Vector3) {
		min.X = math32.Min(min.X, v.X)
		min.Y = math32.Min(min.Y, v.Y)
		min.Z = math32.Min(min.Z, v.Z)
		max.X = math32.Max(max.X, v.X)
		max.Y = math32.Max(max.Y, v.Y)
		max.Z = math32.Max(max.Z, v.Z)
	}
	for _, t := range e.Mesh {
		expand(t.A)
		expand(t.B)
		expand(t.C)
	}
	e.Bounds = rl.BoundingBox{Min: min, Max: max}
}
