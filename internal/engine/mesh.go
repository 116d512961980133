package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// BoxMesh builds the 12 triangles of an axis-aligned box with outward
// counter-clockwise winding.
func BoxMesh(min, max rl.Vector3) []Triangle {
	v := [8]rl.Vector3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
	return []Triangle{
		// front (+Z)
		{A: v[4], B: v[5], C: v[6]}, {A: v[4], B: v[6], C: v[7]},
		// back (-Z)
		{A: v[1], B: v[0], C: v[3]}, {A: v[1], B: v[3], C: v[2]},
		// right (+X)
		{A: v[5], B: v[1], C: v[2]}, {A: v[5], B: v[2], C: v[6]},
		// left (-X)
		{A: v[0], B: v[4], C: v[7]}, {A: v[0], B: v[7], C: v[3]},
		// top (+Y)
		{A: v[7], B: v[6], C: v[2]}, {A: v[7], B: v[2], C: v[3]},
		// bottom (-Y)
		{A: v[0], B: v[1], C: v[5]}, {A: v[0], B: v[5], C: v[4]},
	}
}

// CubeMesh builds a cube of the given edge length centered on the origin.
func CubeMesh(size float32) []Triangle {
	h := size / 2
	return BoxMesh(rl.Vector3{X: -h, Y: -h, Z: -h}, rl.Vector3{X: h, Y: h, Z: h})
}
