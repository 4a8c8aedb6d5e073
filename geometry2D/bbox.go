package geometry2D

// BoundingBox is the axis-aligned extent of a set of points, used to
// summarize a planform and to pick field points clear of it.
type BoundingBox struct {
	Min, Max Point
}

func NewBoundingBox(geometry []Point) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = &BoundingBox{Min: geometry[0], Max: geometry[0]}
	for _, p := range geometry {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
	}
	return box
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	centroid = Point{
		0.5 * (bb.Max.X + bb.Min.X),
		0.5 * (bb.Max.Y + bb.Min.Y),
	}
	return
}

// Diagonal is the length scale of the box, corner to corner.
func (bb *BoundingBox) Diagonal() (d float64) {
	d = bb.Min.To(bb.Max).Norm()
	return
}

func (bb *BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}
