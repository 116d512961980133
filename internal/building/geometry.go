package building

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/engine"
)

// Solids is the renderable output of the geometry builder: local-space
// triangle meshes for the wall prism and the roof.
type Solids struct {
	Walls []engine.Triangle
	Roof  []engine.Triangle
}

// Build generates wall and roof solids for the given parameters. Pure and
// total over the invariant-satisfying domain: same params, same mesh.
//
// The local frame is centered on the footprint, X along width, Z along
// depth, ground at y=0.
func Build(p Params) Solids {
	var s Solids

	s.Walls = engine.BoxMesh(
		rl.Vector3{X: -p.Width / 2, Y: 0, Z: -p.Depth / 2},
		rl.Vector3{X: p.Width / 2, Y: p.EavesHeight, Z: p.Depth / 2},
	)

	switch p.Roof {
	case RoofFlat:
		// Slab overhangs the walls by 0.25 on each side.
		s.Roof = engine.BoxMesh(
			rl.Vector3{X: -(p.Width + 0.5) / 2, Y: p.EavesHeight, Z: -(p.Depth + 0.5) / 2},
			rl.Vector3{X: (p.Width + 0.5) / 2, Y: p.EavesHeight + SlabThick, Z: (p.Depth + 0.5) / 2},
		)
	case RoofGable:
		s.Roof = gableMesh(p.Width, p.Depth, p.EavesHeight, p.Slope)
	}

	return s
}

// gableMesh builds a closed triangular prism: triangle cross-section in the
// depth/height plane (base depth, apex slope above the eaves), extruded
// along the width axis. Elevation views looking along X see the triangular
// gable face; views along Z see the rectangular slope profile.
func gableMesh(width, depth, eaves, slope float32) []engine.Triangle {
	hw := width / 2
	hd := depth / 2
	apex := eaves + slope

	// Cross-section corners at each prism end.
	lBack := rl.Vector3{X: -hw, Y: eaves, Z: -hd}
	lFront := rl.Vector3{X: -hw, Y: eaves, Z: hd}
	lApex := rl.Vector3{X: -hw, Y: apex, Z: 0}
	rBack := rl.Vector3{X: hw, Y: eaves, Z: -hd}
	rFront := rl.Vector3{X: hw, Y: eaves, Z: hd}
	rApex := rl.Vector3{X: hw, Y: apex, Z: 0}

	return []engine.Triangle{
		// end caps
		{A: lFront, B: lBack, C: lApex},
		{A: rBack, B: rFront, C: rApex},
		// back slope (-Z side)
		{A: lBack, B: rBack, C: rApex},
		{A: lBack, B: rApex, C: lApex},
		// front slope (+Z side)
		{A: rFront, B: lFront, C: lApex},
		{A: rFront, B: lApex, C: rApex},
		// underside
		{A: lBack, B: lFront, C: rFront},
		{A: lBack, B: rFront, C: rBack},
	}
}
