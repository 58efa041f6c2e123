package bidi

// Rect is an axis-aligned rectangle: origin (X,Y) plus Width and Height.
// A zero-area rect is valid and denotes "empty".
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectOf constructs a Rect from origin and size.
func RectOf(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the rect covers no cells.
// Complexity: O(1).
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns Width*Height, or 0 for an empty rect.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.Width * r.Height
}

// MaxX returns the x coordinate one to the right of the right-most column.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the y coordinate one below the bottom-most row.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Min returns the top-left corner.
func (r Rect) Min() Coord { return Coord{X: r.X, Y: r.Y} }

// Contains reports whether (x,y) lies inside the rect.
// Complexity: O(1).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// ContainsCoord reports whether c lies inside the rect.
func (r Rect) ContainsCoord(c Coord) bool { return r.Contains(c.X, c.Y) }

// ContainsRect reports whether other is fully inside r.
// An empty other is contained in any rect.
func (r Rect) ContainsRect(other Rect) bool {
	if other.Empty() {
		return true
	}

	return other.X >= r.X && other.Y >= r.Y && other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Intersect returns the intersection of r and other. If the rects do not
// overlap, the result is empty (Width and Height are 0; origin is clamped
// to the overlap candidate and carries no meaning).
// Complexity: O(1).
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.MaxX(), other.MaxX()) - x
	h := min(r.MaxY(), other.MaxY()) - y
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Rect{X: x, Y: y, Width: w, Height: h}
}

// ClipTo clips r against a width×height boundary anchored at the origin.
// The result is always fully contained in [0,width)×[0,height).
func (r Rect) ClipTo(width, height int) Rect {
	return r.Intersect(Rect{Width: width, Height: height})
}
