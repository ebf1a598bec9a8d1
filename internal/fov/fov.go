// Package fov computes fields of view over a grid by casting rays from an
// origin to every cell within a radius. An opaque cell is itself visible
// but blocks everything behind it.
package fov

// Point is one grid coordinate.
type Point struct {
	X, Y int
}

// Source is the opacity view of a map that rays are cast through.
type Source interface {
	InBounds(x, y int) bool
	OpaqueAt(x, y int) bool
}

// Compute returns every cell within the Euclidean radius of the origin that
// an unobstructed straight line from the origin can reach. The origin is
// always visible. Cells outside the source's bounds are never returned, and
// a ray that leaves the bounds stops there.
func Compute(src Source, ox, oy, radius int) []Point {
	if radius < 0 || !src.InBounds(ox, oy) {
		return nil
	}

	visible := []Point{{ox, oy}}
	for y := oy - radius; y <= oy+radius; y++ {
		for x := ox - radius; x <= ox+radius; x++ {
			if x == ox && y == oy {
				continue
			}
			dx, dy := x-ox, y-oy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if !src.InBounds(x, y) {
				continue
			}
			if lineReaches(src, ox, oy, x, y) {
				visible = append(visible, Point{x, y})
			}
		}
	}
	return visible
}

// lineReaches walks the Bresenham line from (ox,oy) to (tx,ty) and reports
// whether every cell strictly before the target is transparent. The target
// cell's own opacity does not matter: walls at the edge of sight are seen.
func lineReaches(src Source, ox, oy, tx, ty int) bool {
	dx := abs(tx - ox)
	dy := -abs(ty - oy)
	sx := sign(tx - ox)
	sy := sign(ty - oy)
	errAcc := dx + dy

	x, y := ox, oy
	for {
		if x == tx && y == ty {
			return true
		}
		// Cells between origin and target must be transparent.
		if (x != ox || y != oy) && (!src.InBounds(x, y) || src.OpaqueAt(x, y)) {
			return false
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x += sx
		}
		if e2 <= dx {
			errAcc += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
