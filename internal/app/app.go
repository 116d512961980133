package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/building"
	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/interaction"
	"github.com/ufukozkul/solar-case/internal/overlay"
	"github.com/ufukozkul/solar-case/internal/picking"
	"github.com/ufukozkul/solar-case/internal/prefs"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

// Config is the startup configuration assembled by the CLI layer.
type Config struct {
	WindowWidth  int32
	WindowHeight int32
	MapPath      string
	MapWidthM    float32
	MapHeightM   float32
}

// App wires the core together and runs the frame loop: pointer events are
// handled synchronously between render ticks, one to completion before the
// next; nothing blocks and nothing runs concurrently.
type App struct {
	Scene    *engine.Scene
	Registry *building.Registry
	Handles  *handle.Manager
	Views    *viewport.System
	Picker   *picking.Picker
	Machine  *interaction.Machine
	Guides   *overlay.Sync

	targets [3]rl.RenderTexture2D

	mapTex       rl.Texture2D
	mapFit       viewport.MapFit
	mapWM, mapHM float32 // real-world size of the map image
	mapSet       bool

	slopeUI  float32
	hasSlope bool
}

func New(cfg Config) *App {
	scene := engine.NewScene("solar-case")
	registry := building.NewRegistry(scene)
	handles := handle.NewManager()
	views := viewport.NewSystem(float32(cfg.WindowWidth), float32(cfg.WindowHeight))
	picker := picking.New(scene, handles, registry)
	machine := interaction.NewMachine(scene, registry, handles, views, picker)

	a := &App{
		Scene:    scene,
		Registry: registry,
		Handles:  handles,
		Views:    views,
		Picker:   picker,
		Machine:  machine,
		Guides:   overlay.NewSync(views),
	}

	registry.OnSelectionChanged.AddListener(func(info building.SelectionInfo) {
		a.hasSlope = info.Selected && info.Roof == building.RoofGable
		if a.hasSlope {
			a.slopeUI = info.Slope
		}
	})
	registry.OnSlopeChanged.AddListener(func(s float32) { a.slopeUI = s })

	return a
}

// Run owns the window and the render loop.
func (a *App) Run(cfg Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.WindowWidth, cfg.WindowHeight, "solar-case")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	InitStyle()

	a.Views.DPIScale = rl.GetWindowScaleDPI().X
	a.createTargets()
	defer a.unloadTargets()

	if cfg.MapPath != "" {
		if err := a.LoadMap(cfg.MapPath, cfg.MapWidthM, cfg.MapHeightM); err != nil {
			fmt.Printf("map image: %v\n", err)
		}
	}

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}

	a.savePrefs()
	if a.mapSet {
		rl.UnloadTexture(a.mapTex)
	}
}

// Update handles resize, pointer and keyboard input for one frame.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Views.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		a.recreateTargets()
		if a.mapSet {
			a.mapFit = a.Views.FitMapToPlan(a.mapWM, a.mapHM)
		}
	}

	pos := rl.GetMousePosition()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Views.UpdatePointer(pos.X, pos.Y)
		a.Views.Scroll(wheel * 100)
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.Views.UpdatePointer(pos.X, pos.Y)
		a.Views.OrbitIso(delta.X, delta.Y)
	}

	if !a.pointerInChrome(pos) {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.Machine.PointerDown(pos.X, pos.Y)
		}
		a.Machine.PointerMove(pos.X, pos.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		// Always delivered, even when the pointer drifted into the
		// chrome: a drag must end in its then-current state.
		a.Machine.PointerUp(pos.X, pos.Y)
	}

	a.handleKeys()

	a.Guides.Update(a.Registry.Current())
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		a.Machine.SetTool(interaction.ToolSelect)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.Machine.SetTool(interaction.ToolAddFlat)
	case rl.IsKeyPressed(rl.KeyThree):
		a.Machine.SetTool(interaction.ToolAddGable)
	case rl.IsKeyPressed(rl.KeyBackspace), rl.IsKeyPressed(rl.KeyDelete):
		a.Machine.DeleteSelected()
	case rl.IsKeyPressed(rl.KeyN):
		a.SetElevationDirection(viewport.North)
	case rl.IsKeyPressed(rl.KeyS):
		a.SetElevationDirection(viewport.South)
	case rl.IsKeyPressed(rl.KeyE):
		a.SetElevationDirection(viewport.East)
	case rl.IsKeyPressed(rl.KeyW):
		a.SetElevationDirection(viewport.West)
	}
}

// LoadMap applies a satellite capture as the plan-view ground image.
func (a *App) LoadMap(path string, widthM, heightM float32) error {
	img := rl.LoadImage(path)
	if img.Width == 0 {
		return fmt.Errorf("could not load %s", path)
	}
	defer rl.UnloadImage(img)

	if a.mapSet {
		rl.UnloadTexture(a.mapTex)
	}
	a.mapTex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(a.mapTex, rl.FilterBilinear)

	if widthM <= 0 || heightM <= 0 {
		widthM, heightM = 100, 100
	}
	a.mapWM, a.mapHM = widthM, heightM
	a.mapFit = a.Views.FitMapToPlan(widthM, heightM)
	a.mapSet = true
	return nil
}

// --- external command surface ---

func (a *App) SetActiveTool(t interaction.Tool) { a.Machine.SetTool(t) }

func (a *App) SetSlope(s float32) { a.Registry.SetSlope(s) }

func (a *App) SetEavesHeight(h float32) { a.Registry.SetEavesHeight(h) }

func (a *App) SetRidgeHeight(h float32) { a.Registry.SetRidgeHeight(h) }

func (a *App) SetElevationDirection(d viewport.Compass) { a.Views.SetElevationDirection(d) }

func (a *App) PickGuideAt(x, y float32) (handle.Kind, bool) { return a.Machine.PickGuideAt(x, y) }

func (a *App) RefreshInput() {
	pos := rl.GetMousePosition()
	a.Views.RefreshInput(pos.X, pos.Y)
}

func (a *App) savePrefs() {
	p := prefs.Default()
	p.WindowWidth = int32(rl.GetScreenWidth())
	p.WindowHeight = int32(rl.GetScreenHeight())
	p.ElevationDir = [...]string{"N", "S", "E", "W"}[a.Views.ElevationDirection()]
	p.ActiveTool = a.Machine.Tool().String()
	if err := prefs.Save(p); err != nil {
		fmt.Printf("prefs: %v\n", err)
	}
}

// ApplyPrefs restores persisted editor preferences.
func (a *App) ApplyPrefs(p prefs.Prefs) {
	switch p.ElevationDir {
	case "N":
		a.Views.SetElevationDirection(viewport.North)
	case "E":
		a.Views.SetElevationDirection(viewport.East)
	case "W":
		a.Views.SetElevationDirection(viewport.West)
	default:
		a.Views.SetElevationDirection(viewport.South)
	}

	switch p.ActiveTool {
	case "add-flat":
		a.Machine.SetTool(interaction.ToolAddFlat)
	case "add-gable":
		a.Machine.SetTool(interaction.ToolAddGable)
	}
}
