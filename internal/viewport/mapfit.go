package viewport

// MapFit is the drawn size of the satellite background image on the ground
// plane, in meters.
type MapFit struct {
	Width  float32
	Height float32
}

const mapPadding float32 = 0.1 // 10% margin inside the plan view

// FitMap sizes a background image (real-world meters) into the plan view's
// ortho extents: fit to the larger dimension with 10% padding, comparing
// the image aspect against the viewport aspect to decide whether width or
// height constrains.
func FitMap(imageW, imageH, viewW, viewH float32) MapFit {
	if imageW <= 0 || imageH <= 0 || viewW <= 0 || viewH <= 0 {
		return MapFit{}
	}
	imageAspect := imageW / imageH
	viewAspect := viewW / viewH

	var fit MapFit
	if imageAspect > viewAspect {
		// Image is relatively wider: width-constrained.
		fit.Width = viewW * (1 - mapPadding)
		fit.Height = fit.Width / imageAspect
	} else {
		fit.Height = viewH * (1 - mapPadding)
		fit.Width = fit.Height * imageAspect
	}
	return fit
}

// PlanExtents returns the plan view's world coverage in meters (full width
// and height) for the current ortho size and region aspect.
func (s *System) PlanExtents() (w, h float32) {
	h = s.Plan.OrthoSize * 2
	return h * s.Plan.Aspect(), h
}

// FitMapToPlan fits an image of the given real-world size into the current
// plan view.
func (s *System) FitMapToPlan(imageW, imageH float32) MapFit {
	vw, vh := s.PlanExtents()
	return FitMap(imageW, imageH, vw, vh)
}
