package picking

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

type HitKind int

const (
	HitNone HitKind = iota
	HitHandle
	HitBuilding
	HitGround
)

// Hit is the closed result variant of a pick: exactly one of the payload
// fields is meaningful, dispatched once by kind.
type Hit struct {
	Kind     HitKind
	Handle   *handle.Handle
	Building *building.Building
	Point    rl.Vector3
	Distance float32
}

// Picker routes pointer events to a prioritized hit test against the scene.
type Picker struct {
	scene    *engine.Scene
	handles  *handle.Manager
	registry *building.Registry
}

func New(scene *engine.Scene, handles *handle.Manager, registry *building.Registry) *Picker {
	return &Picker{scene: scene, handles: handles, registry: registry}
}

// Pick hit-tests a canvas point through a viewport's camera in two phases:
// handles first, then the generic scene. The priority pass guarantees small
// handles are never occluded by the building volumes they sit on.
func (p *Picker) Pick(vp *viewport.Viewport, cam rl.Camera3D, x, y float32) Hit {
	ray := RayThrough(vp, cam, x, y)
	mask := vp.Kind.Mask()

	// Phase 1: handles only. Guide proxies never intercept plan clicks
	// even though their collision geometry could be mask-shared.
	best := Hit{Kind: HitNone, Distance: 1e30}
	for _, h := range p.handles.Handles() {
		if h.Kind.IsGuide() && vp.Kind == viewport.Plan {
			continue
		}
		if !h.Entity.PickableBy(mask) {
			continue
		}
		if point, dist, ok := rayEntity(ray, h.Entity); ok && dist < best.Distance {
			best = Hit{Kind: HitHandle, Handle: h, Point: point, Distance: dist}
		}
	}
	if best.Kind == HitHandle {
		return best
	}

	// Phase 2: everything visible to this camera.
	p.scene.Walk(func(e *engine.Entity) {
		if !e.PickableBy(mask) {
			return
		}
		if p.handles.FromEntity(e) != nil {
			// Already covered by the priority pass.
			return
		}
		owner := p.ownerOf(e)
		if owner == nil {
			return
		}
		if point, dist, ok := rayEntity(ray, e); ok && dist < best.Distance {
			best = Hit{Kind: HitBuilding, Building: owner, Point: point, Distance: dist}
		}
	})
	if best.Kind != HitNone {
		return best
	}

	// Fallback: the ground plane, for add-preview and relocate targets.
	if point, ok := GroundHit(ray); ok {
		return Hit{Kind: HitGround, Point: point, Distance: rl.Vector3Length(rl.Vector3Subtract(point, ray.Position))}
	}
	return Hit{Kind: HitNone}
}

// GroundPoint intersects the pointer ray with the ground plane without any
// entity testing. Drag moves use this directly.
func (p *Picker) GroundPoint(vp *viewport.Viewport, cam rl.Camera3D, x, y float32) (rl.Vector3, bool) {
	return GroundHit(RayThrough(vp, cam, x, y))
}

// ownerOf maps a picked solid back to its building via the ownership tree.
func (p *Picker) ownerOf(e *engine.Entity) *building.Building {
	root := e
	for root.Parent != nil {
		root = root.Parent
	}
	for _, b := range p.registry.All() {
		if b.Root == root {
			return b
		}
	}
	return nil
}
