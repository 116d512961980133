package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

// GuidePositions is the per-frame report consumed by the external overlay:
// eaves and ridge lines in physical pixels (top-left origin, device pixel
// density applied) plus the meters-to-pixels conversion factor for
// height-drag input.
type GuidePositions struct {
	Valid          bool
	EavesPixel     rl.Vector2
	RidgePixel     rl.Vector2
	PixelsPerMeter float32
}

const (
	clipNear float32 = 0.1
	clipFar  float32 = 500
)

// Sync recomputes overlay coordinates from the elevation camera every
// rendered frame and reports changes.
type Sync struct {
	views *viewport.System
	last  GuidePositions

	OnGuidesChanged engine.EventWithArg[GuidePositions]
}

func NewSync(views *viewport.System) *Sync {
	return &Sync{views: views}
}

// Update projects the selected building's eaves and ridge planes through
// the elevation camera. With no selection the report is invalid and the
// overlay hides its handles.
func (s *Sync) Update(b *building.Building) GuidePositions {
	var g GuidePositions
	if b != nil {
		center := b.Center()
		eaves := rl.Vector3{X: center.X, Y: handle.GuideEavesY(b), Z: center.Z}
		ridge := rl.Vector3{X: center.X, Y: handle.GuideRidgeY(b), Z: center.Z}

		g = GuidePositions{
			Valid:          true,
			EavesPixel:     s.Project(eaves),
			RidgePixel:     s.Project(ridge),
			PixelsPerMeter: s.views.PixelsPerMeter(),
		}
	}
	if g != s.last {
		s.last = g
		s.OnGuidesChanged.Invoke(g)
	}
	return g
}

// Project maps a world point through the elevation camera's
// view-projection into its viewport rectangle, in physical pixels with a
// top-left origin.
func (s *Sync) Project(world rl.Vector3) rl.Vector2 {
	cam := s.views.ElevationCamera()
	vp := s.views.Elevation

	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	half := s.views.ElevationOrthoSize()
	proj := rl.MatrixOrtho(-half*vp.Aspect(), half*vp.Aspect(), -half, half, clipNear, clipFar)

	ndc := rl.Vector3Transform(world, rl.MatrixMultiply(view, proj))

	px := vp.Region.X + (ndc.X+1)/2*vp.Region.Width
	py := vp.Region.Y + (1-(ndc.Y+1)/2)*vp.Region.Height
	return rl.Vector2{X: px * s.views.DPIScale, Y: py * s.views.DPIScale}
}

// Last returns the most recent report without recomputing.
func (s *Sync) Last() GuidePositions { return s.last }
