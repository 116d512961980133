package app

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/interaction"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

const (
	toolbarPad    float32 = 8
	toolbarBtnW   float32 = 92
	toolbarBtnH   float32 = 26
	compassBtn    float32 = 24
	sliderW       float32 = 180
	readoutHeight float32 = 22
)

var (
	chromeBg   = rl.NewColor(18, 20, 24, 235)
	chromeText = rl.NewColor(205, 208, 214, 255)
)

// InitStyle applies the dark raygui theme once after window creation.
func InitStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(14, 15, 18, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(30, 33, 40, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(42, 46, 56, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 120, 220, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(chromeText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(55, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func (a *App) toolbarRect() rl.Rectangle {
	w := 3*toolbarBtnW + 4*toolbarPad
	return rl.Rectangle{X: toolbarPad, Y: toolbarPad, Width: w, Height: toolbarBtnH + 2*toolbarPad}
}

func (a *App) sidebarRect() rl.Rectangle {
	if a.Registry.Current() == nil {
		return rl.Rectangle{}
	}
	h := 3*readoutHeight + toolbarBtnH + 5*toolbarPad
	return rl.Rectangle{
		X:      toolbarPad,
		Y:      a.toolbarRect().Y + a.toolbarRect().Height + toolbarPad,
		Width:  sliderW + 2*toolbarPad,
		Height: h,
	}
}

func (a *App) compassRect() rl.Rectangle {
	region := a.Views.Elevation.Region
	w := 4*compassBtn + 5*toolbarPad
	return rl.Rectangle{
		X:      region.X + region.Width - w - toolbarPad,
		Y:      region.Y + toolbarPad,
		Width:  w,
		Height: compassBtn + 2*toolbarPad,
	}
}

// pointerInChrome reports whether a canvas point is over UI chrome, in which
// case pointer events must not reach the scene.
func (a *App) pointerInChrome(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, a.toolbarRect()) ||
		rl.CheckCollisionPointRec(p, a.sidebarRect()) ||
		rl.CheckCollisionPointRec(p, a.compassRect())
}

func (a *App) drawChrome() {
	a.drawToolbar()
	a.drawSidebar()
	a.drawCompass()
}

func (a *App) drawToolbar() {
	bar := a.toolbarRect()
	rl.DrawRectangleRec(bar, chromeBg)

	x := bar.X + toolbarPad
	y := bar.Y + toolbarPad
	tools := []struct {
		label string
		tool  interaction.Tool
	}{
		{"Select", interaction.ToolSelect},
		{"Flat Roof", interaction.ToolAddFlat},
		{"Gable Roof", interaction.ToolAddGable},
	}
	for _, t := range tools {
		bounds := rl.Rectangle{X: x, Y: y, Width: toolbarBtnW, Height: toolbarBtnH}
		label := t.label
		if a.Machine.Tool() == t.tool {
			label = "> " + label
		}
		if gui.Button(bounds, label) {
			a.Machine.SetTool(t.tool)
		}
		x += toolbarBtnW + toolbarPad
	}
}

// drawSidebar shows the selected building's dimensions and, for gable
// roofs, the slope slider.
func (a *App) drawSidebar() {
	b := a.Registry.Current()
	if b == nil {
		return
	}
	panel := a.sidebarRect()
	rl.DrawRectangleRec(panel, chromeBg)

	x := int32(panel.X + toolbarPad)
	y := panel.Y + toolbarPad

	rl.DrawText(fmt.Sprintf("W %.1f m   D %.1f m", b.Params.Width, b.Params.Depth), x, int32(y), 14, chromeText)
	y += readoutHeight
	rl.DrawText(fmt.Sprintf("Eaves %.1f m", b.Params.EavesHeight), x, int32(y), 14, chromeText)
	y += readoutHeight
	rl.DrawText(fmt.Sprintf("Ridge %.1f m", b.RidgeHeight()), x, int32(y), 14, chromeText)
	y += readoutHeight + toolbarPad

	if a.hasSlope {
		bounds := rl.Rectangle{X: panel.X + toolbarPad, Y: y, Width: sliderW, Height: toolbarBtnH}
		v := gui.Slider(bounds, "", fmt.Sprintf("%.1f", a.slopeUI), a.slopeUI, 0.5, 30)
		if v != a.slopeUI {
			a.Registry.SetSlope(v)
		}
	}
}

func (a *App) drawCompass() {
	bar := a.compassRect()
	rl.DrawRectangleRec(bar, chromeBg)

	x := bar.X + toolbarPad
	y := bar.Y + toolbarPad
	dirs := []struct {
		label string
		dir   viewport.Compass
	}{
		{"N", viewport.North},
		{"S", viewport.South},
		{"E", viewport.East},
		{"W", viewport.West},
	}
	for _, d := range dirs {
		bounds := rl.Rectangle{X: x, Y: y, Width: compassBtn, Height: compassBtn}
		label := d.label
		if a.Views.ElevationDirection() == d.dir {
			label = "[" + label + "]"
		}
		if gui.Button(bounds, label) {
			a.Views.SetElevationDirection(d.dir)
		}
		x += compassBtn + toolbarPad
	}
}
