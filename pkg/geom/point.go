// Package geom provides the integer pixel geometry used throughout
// img2swipes: points, sizes, rectangles, and ordered point sequences
// (polygons). All types are plain values; coordinates follow image
// conventions (x grows right, y grows down).
package geom

// Point is an integer pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbors returns the 8-connected neighbors of p in a fixed order:
// left, right, up, down, then the four diagonals (up-left, down-left,
// up-right, down-right). The stroke algorithms break ties by this order,
// so changing it changes which strokes are produced.
func (p Point) Neighbors() [8]Point {
	return [8]Point{
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y - 1},
		{p.X - 1, p.Y + 1},
		{p.X + 1, p.Y - 1},
		{p.X + 1, p.Y + 1},
	}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Chebyshev returns the chessboard distance between p and q. Two distinct
// points are 8-adjacent exactly when their Chebyshev distance is 1.
func (p Point) Chebyshev(q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	return max(dx, dy)
}

// Less orders points row-major: by Y, then by X. It is the total order
// used wherever a deterministic "first" point is needed.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
