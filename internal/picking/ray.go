package picking

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ufukozkul/solar-case/internal/engine"
	"github.com/ufukozkul/solar-case/internal/viewport"
)

// RayThrough builds the world-space pointer ray for a canvas point inside a
// viewport's region. Orthographic cameras shift the ray origin across the
// view plane; perspective cameras fan the direction from the eye.
func RayThrough(vp *viewport.Viewport, cam rl.Camera3D, x, y float32) rl.Ray {
	// Region-local NDC, y up.
	u := (x-vp.Region.X)/vp.Region.Width*2 - 1
	v := 1 - (y-vp.Region.Y)/vp.Region.Height*2

	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)

	if cam.Projection == rl.CameraOrthographic {
		halfH := cam.Fovy / 2
		halfW := halfH * vp.Aspect()
		origin := rl.Vector3Add(cam.Position,
			rl.Vector3Add(rl.Vector3Scale(right, u*halfW), rl.Vector3Scale(up, v*halfH)))
		return rl.Ray{Position: origin, Direction: forward}
	}

	tanFov := math32.Tan(cam.Fovy * rl.Deg2rad / 2)
	dir := rl.Vector3Add(forward,
		rl.Vector3Add(
			rl.Vector3Scale(right, u*tanFov*vp.Aspect()),
			rl.Vector3Scale(up, v*tanFov)))
	return rl.Ray{Position: cam.Position, Direction: rl.Vector3Normalize(dir)}
}

// GroundHit intersects a ray with the ground plane (y = 0).
func GroundHit(ray rl.Ray) (rl.Vector3, bool) {
	return rayPlane(ray, rl.Vector3{}, rl.Vector3{Y: 1})
}

// rayPlane returns where a ray hits a plane defined by point + normal.
func rayPlane(ray rl.Ray, point, normal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(ray.Direction, normal)
	if math32.Abs(denom) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(point, ray.Position), normal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

// rayEntity tests a world ray against an entity's local AABB by carrying
// the ray into the entity's frame (yawed oriented box). Returns the world
// hit point and world distance.
func rayEntity(ray rl.Ray, e *engine.Entity) (rl.Vector3, float32, bool) {
	localOrigin := e.WorldToLocal(ray.Position)
	localDir := rl.Vector3Transform(ray.Direction, rl.MatrixRotateY(-e.WorldRotationY()))
	if s := e.WorldScale(); s != 0 && s != 1 {
		localDir = rl.Vector3Scale(localDir, 1/s)
	}

	t, ok := raySlabs(localOrigin, localDir, e.Bounds)
	if !ok {
		return rl.Vector3{}, 0, false
	}
	local := rl.Vector3Add(localOrigin, rl.Vector3Scale(localDir, t))
	world := e.LocalToWorld(local)
	return world, rl.Vector3Length(rl.Vector3Subtract(world, ray.Position)), true
}

// raySlabs is the classic slab test against an axis-aligned box, returning
// the entry parameter along the (not necessarily unit) direction.
func raySlabs(origin, dir rl.Vector3, box rl.BoundingBox) (float32, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	axis := func(o, d, lo, hi float32) bool {
		if d != 0 {
			t1 := (lo - o) / d
			t2 := (hi - o) / d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
			return true
		}
		return o >= lo && o <= hi
	}

	if !axis(origin.X, dir.X, box.Min.X, box.Max.X) {
		return 0, false
	}
	if !axis(origin.Y, dir.Y, box.Min.Y, box.Max.Y) {
		return 0, false
	}
	if !axis(origin.Z, dir.Z, box.Min.Z, box.Max.Z) {
		return 0, false
	}
	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
