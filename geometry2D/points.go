package geometry2D

import "math"

const (
	// GEOMTOL is the relative tolerance for comparisons of derived geometric
	// quantities. Checks scale it by the magnitudes of the operands (edge
	// lengths, span extents), so it acts as a relative epsilon rather than
	// an absolute one.
	GEOMTOL = 1.e-12
)

// Point is a position in the planform plane: X chordwise, positive
// downstream, Y spanwise. A Point has no identity beyond its value.
type Point struct {
	X, Y float64
}

// Vector is a displacement between points.
type Vector struct {
	X, Y float64
}

// To returns the displacement from p to q.
func (p Point) To(q Point) (v Vector) {
	v = Vector{q.X - p.X, q.Y - p.Y}
	return
}

// Translate returns p displaced by v.
func (p Point) Translate(v Vector) (q Point) {
	q = Point{p.X + v.X, p.Y + v.Y}
	return
}

func Midpoint(p, q Point) (m Point) {
	m = Point{0.5 * (p.X + q.X), 0.5 * (p.Y + q.Y)}
	return
}

func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y} }

func (v Vector) Scale(a float64) Vector { return Vector{a * v.X, a * v.Y} }

func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of v x w, the only nonzero component for
// in-plane vectors.
func (v Vector) Cross(w Vector) float64 { return v.X*w.Y - v.Y*w.X }

func (v Vector) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// IsParallel reports whether v and w are parallel, comparing their cross
// product against GEOMTOL scaled by both magnitudes. Zero vectors are
// parallel to everything.
func IsParallel(v, w Vector) bool {
	return math.Abs(v.Cross(w)) <= GEOMTOL*v.Norm()*w.Norm()
}

// QuadrilateralArea computes the area of the quadrilateral with corners
// p1..p4 taken in winding order, via the shoelace formula. Either winding
// gives the same positive result. Convexity and ordering sanity are the
// caller's responsibility.
func QuadrilateralArea(p1, p2, p3, p4 Point) (area float64) {
	area = 0.5 * math.Abs(
		p1.X*p2.Y-p2.X*p1.Y+
			p2.X*p3.Y-p3.X*p2.Y+
			p3.X*p4.Y-p4.X*p3.Y+
			p4.X*p1.Y-p1.X*p4.Y)
	return
}

// DistPointToLine returns the perpendicular distance from p to the infinite
// line through a and b. Degenerates to the point distance |p-a| when a and b
// coincide.
func DistPointToLine(p, a, b Point) (h float64) {
	var (
		t = a.To(b)
		r = a.To(p)
		L = t.Norm()
	)
	if L == 0. {
		h = r.Norm()
		return
	}
	h = math.Abs(t.Cross(r)) / L
	return
}
