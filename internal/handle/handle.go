package handle

import (
	"github.com/google/uuid"

	"github.com/ufukozkul/solar-case/internal/engine"
)

type Kind int

const (
	Corner Kind = iota // index 0..3, counter-clockwise from (minX, minZ)
	EdgeWidth          // index 0 = left edge, 1 = right edge
	EdgeDepth          // index 0 = back edge, 1 = front edge
	Rotate
	HeightEaves
	HeightRidge
	GuideEaves
	GuideRidge
)

func (k Kind) String() string {
	switch k {
	case Corner:
		return "corner"
	case EdgeWidth:
		return "edgeWidth"
	case EdgeDepth:
		return "edgeDepth"
	case Rotate:
		return "rotate"
	case HeightEaves:
		return "heightEaves"
	case HeightRidge:
		return "heightRidge"
	case GuideEaves:
		return "guideEaves"
	case GuideRidge:
		return "guideRidge"
	}
	return "unknown"
}

// IsGuide reports whether the kind is an elevation-only guide proxy.
func (k Kind) IsGuide() bool {
	return k == GuideEaves || k == GuideRidge
}

// Handle is a small pickable proxy that drives one specific edit. It holds
// only a weak back-reference (the building ID); the handle's lifetime is
// strictly shorter than the building's, since any bounds change disposes and
// regenerates the whole set.
type Handle struct {
	Kind     Kind
	Index    int
	Building uuid.UUID
	Entity   *engine.Entity

	// BaseScale is the rest scale restored after hover feedback.
	BaseScale float32
	// Active marks a guide as hovered/dragged (drawn solid, not dashed).
	Active bool
}

// SetHovered applies hover feedback: non-guide handles scale up, guides
// switch their line style instead.
func (h *Handle) SetHovered(on bool) {
	if h.Kind.IsGuide() {
		h.Active = on
		return
	}
	if on {
		h.Entity.Transform.Scale = h.BaseScale * HoverScale
	} else {
		h.Entity.Transform.Scale = h.BaseScale
	}
}

// HoverScale is the enlargement factor for hovered non-guide handles.
const HoverScale float32 = 1.3
