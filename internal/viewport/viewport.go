package viewport

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/engine"
)

type Kind int

const (
	Plan Kind = iota // orthographic top-down, left 65% of the canvas
	Iso              // perspective free-look, top-right
	Elevation        // orthographic side view, bottom-right
)

func (k Kind) String() string {
	switch k {
	case Plan:
		return "plan"
	case Iso:
		return "iso"
	}
	return "elevation"
}

// Mask returns the layer bit a camera of this kind renders and picks.
func (k Kind) Mask() uint32 {
	switch k {
	case Plan:
		return engine.LayerPlan
	case Iso:
		return engine.LayerIso
	}
	return engine.LayerElevation
}

// Compass is the elevation view direction: which side of the building the
// camera looks from.
type Compass int

const (
	North Compass = iota
	South
	East
	West
)

// Vector returns the horizontal unit vector pointing from the building
// center toward the camera. North is -Z, matching the plan view's up.
func (c Compass) Vector() rl.Vector3 {
	switch c {
	case North:
		return rl.Vector3{Z: -1}
	case South:
		return rl.Vector3{Z: 1}
	case East:
		return rl.Vector3{X: 1}
	}
	return rl.Vector3{X: -1}
}

// Screen split ratios.
const (
	planShare  float32 = 0.65 // plan takes the left 65% of the canvas
	rightSplit float32 = 0.5  // iso above, elevation below
)

const (
	planOrthoSize   float32 = 40.0 // half-height in meters
	elevOrthoSize   float32 = 12.0
	elevTargetY     float32 = 10.0
	elevRadius      float32 = 60.0
	MinZoom         float32 = 0.1
	MaxZoom         float32 = 5.0
	zoomPerDelta    float32 = 0.001
	isoZoomPerDelta float32 = 0.03
)

// Viewport is one of the three fixed screen regions with its own camera.
type Viewport struct {
	Kind      Kind
	Region    rl.Rectangle // logical pixels, top-left origin
	OrthoSize float32      // half-height in meters; zero for perspective
}

// Aspect is the region's width/height ratio.
func (v *Viewport) Aspect() float32 {
	if v.Region.Height == 0 {
		return 1
	}
	return v.Region.Width / v.Region.Height
}

// System owns the three viewports, the exclusive input attachment and the
// elevation zoom/direction state.
type System struct {
	Plan      *Viewport
	Iso       *Viewport
	Elevation *Viewport

	active *Viewport
	// appDragging suppresses pointer-driven viewport reassignment while an
	// interaction drag is in flight. Cleared by the drag's end handler,
	// which then forces a re-evaluation via RefreshInput.
	appDragging bool

	canvasW, canvasH float32
	DPIScale         float32

	elevationZoom float32
	elevationDir  Compass
	elevationAim  rl.Vector3 // selected building center the camera orbits

	// Iso free-look orbit.
	isoYaw      float32
	isoPitch    float32
	isoDistance float32
	isoTarget   rl.Vector3

	OnActiveChanged     engine.EventWithArg[Kind]
	OnPlanAspectChanged engine.EventWithArg[float32]
}

func NewSystem(canvasW, canvasH float32) *System {
	s := &System{
		Plan:          &Viewport{Kind: Plan, OrthoSize: planOrthoSize},
		Iso:           &Viewport{Kind: Iso},
		Elevation:     &Viewport{Kind: Elevation, OrthoSize: elevOrthoSize},
		DPIScale:      1,
		elevationZoom: 1,
		elevationDir:  South,
		isoYaw:        0.9,
		isoPitch:      0.7,
		isoDistance:   55,
	}
	s.Resize(canvasW, canvasH)
	s.active = s.Plan
	return s
}

// Resize recomputes the three regions for a new canvas size and reports the
// plan viewport's aspect ratio to listeners.
func (s *System) Resize(w, h float32) {
	s.canvasW, s.canvasH = w, h
	split := w * planShare
	s.Plan.Region = rl.Rectangle{X: 0, Y: 0, Width: split, Height: h}
	s.Iso.Region = rl.Rectangle{X: split, Y: 0, Width: w - split, Height: h * rightSplit}
	s.Elevation.Region = rl.Rectangle{X: split, Y: h * rightSplit, Width: w - split, Height: h * rightSplit}
	s.OnPlanAspectChanged.Invoke(s.Plan.Aspect())
}

// At resolves which viewport owns a canvas point: x < 65% of the width is
// always Plan, the right column splits at half height.
func (s *System) At(x, y float32) *Viewport {
	if x < s.canvasW*planShare {
		return s.Plan
	}
	if y < s.canvasH*rightSplit {
		return s.Iso
	}
	return s.Elevation
}

// Active returns the viewport whose camera currently has input attached.
func (s *System) Active() *Viewport { return s.active }

// UpdatePointer re-attaches input to the viewport under the pointer.
// Suppressed while an interaction drag is in progress.
func (s *System) UpdatePointer(x, y float32) {
	if s.appDragging {
		return
	}
	s.setActive(s.At(x, y))
}

// SetAppDragging raises or clears the drag-in-progress flag that pins the
// active viewport.
func (s *System) SetAppDragging(on bool) { s.appDragging = on }

// RefreshInput forces re-evaluation of the active viewport against the
// current pointer position, regardless of the drag flag. Called after any
// drag ends so camera control cannot desync from the pointer.
func (s *System) RefreshInput(x, y float32) {
	s.setActive(s.At(x, y))
}

func (s *System) setActive(v *Viewport) {
	if v == s.active {
		return
	}
	s.active = v
	s.OnActiveChanged.Invoke(v.Kind)
}

// Scroll consumes a wheel delta. Over the elevation view it zooms that view
// alone; over the iso view it dollies the orbit. Returns true when the
// delta was consumed.
func (s *System) Scroll(delta float32) bool {
	switch s.active.Kind {
	case Elevation:
		s.elevationZoom = clamp(s.elevationZoom+delta*zoomPerDelta, MinZoom, MaxZoom)
		return true
	case Iso:
		s.isoDistance = math32.Max(5, s.isoDistance*(1-delta*isoZoomPerDelta))
		return true
	}
	return false
}

// OrbitIso applies a free-look drag to the iso camera. Plan never receives
// free camera control and elevation cannot tilt, so this is the only
// pointer-driven camera motion.
func (s *System) OrbitIso(dx, dy float32) {
	if s.active.Kind != Iso || s.appDragging {
		return
	}
	s.isoYaw += dx * 0.01
	s.isoPitch = clamp(s.isoPitch+dy*0.01, 0.1, 1.5)
}

func (s *System) ElevationZoom() float32 { return s.elevationZoom }

func (s *System) SetElevationDirection(d Compass) { s.elevationDir = d }

func (s *System) ElevationDirection() Compass { return s.elevationDir }

// AimElevationAt points the elevation orbit at a building center. Height
// edits deliberately do not re-aim mid-drag; the interaction layer calls
// this only on selection changes.
func (s *System) AimElevationAt(center rl.Vector3) {
	s.elevationAim = rl.Vector3{X: center.X, Z: center.Z}
}

// ElevationOrthoSize is the current half-height of the elevation view in
// meters, zoom applied.
func (s *System) ElevationOrthoSize() float32 {
	return s.Elevation.OrthoSize * s.elevationZoom
}

// PixelsPerMeter converts elevation-view meters to physical overlay pixels.
// Single source of truth for height-drag conversion.
func (s *System) PixelsPerMeter() float32 {
	return s.Elevation.Region.Height * s.DPIScale / (2 * s.ElevationOrthoSize())
}

// PlanCamera is the fixed top-down orthographic camera. Up is -Z so north
// is at the top of the screen.
func (s *System) PlanCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Y: 100},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Z: -1},
		Fovy:       s.Plan.OrthoSize * 2,
		Projection: rl.CameraOrthographic,
	}
}

// IsoCamera is the perspective free-look orbit camera.
func (s *System) IsoCamera() rl.Camera3D {
	cosP := math32.Cos(s.isoPitch)
	offset := rl.Vector3{
		X: s.isoDistance * cosP * math32.Sin(s.isoYaw),
		Y: s.isoDistance * math32.Sin(s.isoPitch),
		Z: s.isoDistance * cosP * math32.Cos(s.isoYaw),
	}
	return rl.Camera3D{
		Position:   rl.Vector3Add(s.isoTarget, offset),
		Target:     s.isoTarget,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// ElevationCamera orbits the aimed building center at fixed radius along
// the compass direction, locked horizontal.
func (s *System) ElevationCamera() rl.Camera3D {
	dir := s.elevationDir.Vector()
	target := rl.Vector3{X: s.elevationAim.X, Y: elevTargetY, Z: s.elevationAim.Z}
	pos := rl.Vector3Add(target, rl.Vector3Scale(dir, elevRadius))
	return rl.Camera3D{
		Position:   pos,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       s.ElevationOrthoSize() * 2,
		Projection: rl.CameraOrthographic,
	}
}

// Camera returns the camera for any viewport kind.
func (s *System) Camera(k Kind) rl.Camera3D {
	switch k {
	case Plan:
		return s.PlanCamera()
	case Iso:
		return s.IsoCamera()
	}
	return s.ElevationCamera()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
