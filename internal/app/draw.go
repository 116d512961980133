package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/handle"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

var (
	groundColor   = rl.NewColor(52, 56, 60, 255)
	frameColor    = rl.NewColor(30, 32, 34, 255)
	selectedWires = rl.NewColor(255, 200, 60, 255)
	eavesGuide    = rl.NewColor(90, 200, 120, 255)
	ridgeGuide    = rl.NewColor(240, 120, 90, 255)
)

func (a *App) createTargets() {
	for i, vp := range a.viewports() {
		a.targets[i] = rl.LoadRenderTexture(int32(vp.Region.Width), int32(vp.Region.Height))
	}
}

func (a *App) recreateTargets() {
	a.unloadTargets()
	a.createTargets()
}

func (a *App) unloadTargets() {
	for i := range a.targets {
		if a.targets[i].ID != 0 {
			rl.UnloadRenderTexture(a.targets[i])
			a.targets[i] = rl.RenderTexture2D{}
		}
	}
}

func (a *App) viewports() [3]*viewport.Viewport {
	return [3]*viewport.Viewport{a.Views.Plan, a.Views.Iso, a.Views.Elevation}
}

// Draw renders the three viewports into their offscreen targets, composes
// them onto the canvas and finishes with the 2D overlay and chrome.
func (a *App) Draw() {
	for i, vp := range a.viewports() {
		a.renderViewport(a.targets[i], vp)
	}

	rl.BeginDrawing()
	rl.ClearBackground(frameColor)

	for i, vp := range a.viewports() {
		src := rl.Rectangle{Width: vp.Region.Width, Height: -vp.Region.Height}
		rl.DrawTextureRec(a.targets[i].Texture, src, rl.Vector2{X: vp.Region.X, Y: vp.Region.Y}, rl.White)
	}

	a.drawViewportFrames()
	a.drawGuideLines()
	a.drawChrome()

	rl.EndDrawing()
}

func (a *App) renderViewport(target rl.RenderTexture2D, vp *viewport.Viewport) {
	rl.BeginTextureMode(target)
	rl.ClearBackground(groundColor)

	if vp.Kind == viewport.Plan {
		a.drawMapBackdrop(vp)
	}

	cam := a.Views.Camera(vp.Kind)
	rl.BeginMode3D(cam)

	if !a.mapSet || vp.Kind != viewport.Plan {
		rl.DrawGrid(80, 1)
	}

	mask := vp.Kind.Mask()
	a.Scene.Walk(func(e *engine.Entity) {
		if e.VisibleTo(mask) {
			drawEntity(e)
		}
	})

	if b := a.Registry.Current(); b != nil && vp.Kind != viewport.Elevation {
		drawYawedBoxWires(b.Bounds(), b.Position(), b.RotationY(), selectedWires)
	}

	rl.EndMode3D()
	rl.EndTextureMode()
}

// drawMapBackdrop draws the satellite image under the plan scene, centered
// on the world origin and scaled meters-to-pixels from the plan ortho size.
func (a *App) drawMapBackdrop(vp *viewport.Viewport) {
	if !a.mapSet {
		return
	}
	ppm := vp.Region.Height / (2 * vp.OrthoSize)
	w := a.mapFit.Width * ppm
	h := a.mapFit.Height * ppm
	src := rl.Rectangle{Width: float32(a.mapTex.Width), Height: float32(a.mapTex.Height)}
	dst := rl.Rectangle{
		X:      vp.Region.Width/2 - w/2,
		Y:      vp.Region.Height/2 - h/2,
		Width:  w,
		Height: h,
	}
	rl.DrawTexturePro(a.mapTex, src, dst, rl.Vector2{}, 0, rl.White)
}

// drawEntity pushes the entity's local triangles through its world
// transform. Meshes are small enough that immediate mode is fine.
func drawEntity(e *engine.Entity) {
	world := e.WorldMatrix()
	for _, tri := range e.Mesh {
		rl.DrawTriangle3D(
			rl.Vector3Transform(tri.A, world),
			rl.Vector3Transform(tri.B, world),
			rl.Vector3Transform(tri.C, world),
			e.Color,
		)
	}
}

// drawYawedBoxWires outlines a yaw-rotated box placed at a world position.
func drawYawedBoxWires(box rl.BoundingBox, pos rl.Vector3, yaw float32, color rl.Color) {
	rot := rl.MatrixRotateY(yaw)
	corner := func(x, y, z float32) rl.Vector3 {
		return rl.Vector3Add(rl.Vector3Transform(rl.Vector3{X: x, Y: y, Z: z}, rot), pos)
	}

	lo, hi := box.Min, box.Max
	c := [8]rl.Vector3{
		corner(lo.X, lo.Y, lo.Z), corner(hi.X, lo.Y, lo.Z),
		corner(hi.X, lo.Y, hi.Z), corner(lo.X, lo.Y, hi.Z),
		corner(lo.X, hi.Y, lo.Z), corner(hi.X, hi.Y, lo.Z),
		corner(hi.X, hi.Y, hi.Z), corner(lo.X, hi.Y, hi.Z),
	}

	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		rl.DrawLine3D(c[e[0]], c[e[1]], color)
	}
}

func (a *App) drawViewportFrames() {
	for _, vp := range a.viewports() {
		rl.DrawRectangleLinesEx(vp.Region, 1, frameColor)
	}
}

// drawGuideLines draws the eaves and ridge height guides across the
// elevation view, at the rows the overlay sync reported. Guides are dashed
// at rest and solid while hovered or dragged.
func (a *App) drawGuideLines() {
	g := a.Guides.Last()
	if !g.Valid {
		return
	}
	region := a.Views.Elevation.Region
	scale := a.Views.DPIScale
	if scale <= 0 {
		scale = 1
	}
	dragKind, dragging := a.Machine.ActiveHeightDrag()

	drawGuide := func(kind handle.Kind, heightKind handle.Kind, pixelY float32, color rl.Color) {
		y := pixelY / scale
		if y < region.Y || y > region.Y+region.Height {
			return
		}
		active := dragging && dragKind == heightKind
		if h := a.Handles.Find(kind, 0); h != nil && h.Active {
			active = true
		}
		if active {
			rl.DrawLineEx(rl.Vector2{X: region.X, Y: y}, rl.Vector2{X: region.X + region.Width, Y: y}, 2, color)
		} else {
			drawDashedLine(region.X, region.X+region.Width, y, 8, 5, color)
		}
	}

	drawGuide(handle.GuideEaves, handle.HeightEaves, g.EavesPixel.Y, eavesGuide)
	drawGuide(handle.GuideRidge, handle.HeightRidge, g.RidgePixel.Y, ridgeGuide)
}

func drawDashedLine(x0, x1, y, dash, gap float32, color rl.Color) {
	for x := x0; x < x1; x += dash + gap {
		end := x + dash
		if end > x1 {
			end = x1
		}
		rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: end, Y: y}, 2, color)
	}
}
