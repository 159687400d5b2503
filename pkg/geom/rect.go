package geom

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is an axis-aligned rectangle with inclusive corners: Max is the
// bottom-right pixel inside the rectangle, not one past it.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Size returns the rectangle's dimensions in pixels.
func (r Rect) Size() Size {
	return Size{Width: r.Max.X - r.Min.X + 1, Height: r.Max.Y - r.Min.Y + 1}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Outline returns the rectangle's border as a closed polygon: the four
// corners clockwise from Min, ending back at Min.
func (r Rect) Outline() Polygon {
	return Polygon{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
		r.Min,
	}
}

// BoundingRect returns the smallest rectangle containing every point.
// The zero rectangle is returned for an empty slice.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
