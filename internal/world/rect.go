package world

// Rect is an axis-aligned room rectangle with inclusive bounds.
// X1,Y1 is the top-left corner and X2,Y2 the bottom-right; the carved
// interior of a room excludes the X1/Y1 edge, so a Rect describes the room
// together with its surrounding wall line.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from a top-left corner and a width/height.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether the two closed rectangles overlap, edges
// included. Rooms whose wall lines merely touch still count as overlapping
// so the generator keeps them apart.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
