package vortices

/*
Horseshoe vortex for a lifting surface panel, after Katz & Plotkin, "Low-Speed
Aerodynamics", Ch. 12: a finite bound filament A->D on the quarter chord line
and two trailing filaments leaving A and D, carried here as true semi-infinite
rays. The circulation path runs from downstream infinity into A, through the
bound segment to D, and back out to downstream infinity, so positive Gamma
produces downwash (negative W) behind the bound vortex.

Each straight filament induces
	V = Gamma/(4 pi h) * (cos theta1 - cos theta2) * e
with h the perpendicular distance from the field point to the filament line,
theta1 and theta2 the angles between the filament direction and the lines from
the filament ends to the field point, and e the unit vector normal to the
plane containing filament and field point. The semi-infinite legs take
cos theta2 = -1.
*/

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/govlm/geometry2D"
)

const (
	// CUTOFF is the filament core radius. A field point within CUTOFF of a
	// filament's carrier line and within the filament's extent makes the
	// Biot-Savart kernel singular and the evaluation degenerate.
	CUTOFF = 1.e-10
)

var (
	ErrDegenerateGeometry   = errors.New("degenerate panel geometry")
	ErrDegenerateEvaluation = errors.New("degenerate evaluation: field point on a vortex filament")
)

// Velocity is an induced velocity with components along x (chordwise), y
// (spanwise) and z (normal). In-plane filaments evaluated at in-plane field
// points induce only W, the downwash component; U and V stay zero.
type Velocity struct {
	U, V, W float64
}

func (vel Velocity) Add(b Velocity) Velocity {
	return Velocity{vel.U + b.U, vel.V + b.V, vel.W + b.W}
}

func (vel Velocity) Scale(a float64) Velocity {
	return Velocity{a * vel.U, a * vel.V, a * vel.W}
}

func (vel Velocity) Norm() float64 {
	return math.Sqrt(vel.U*vel.U + vel.V*vel.V + vel.W*vel.W)
}

// Horseshoe holds the four points defining the vortex: bound segment A->D on
// the quarter chord, trailing legs leaving A and D through the downstream
// anchors B and C and continuing to infinity along those directions.
type Horseshoe struct {
	A, B, C, D geometry2D.Point
}

// PositionInPanel places the horseshoe vortex and control point inside the
// panel with corners p1..p4 (corner convention documented in package panel):
//
//	A = P2 + (P1-P2)/4    D = P3 + (P4-P3)/4    bound segment A->D
//	B = A + (P1-P2)       C = D + (P4-P3)       trailing leg anchors
//	pc = midpoint of the two 3/4 chord edge points
//
// A near-zero chordwise edge leaves the leg direction undefined and a
// near-zero bound segment leaves no filament to carry circulation; both are
// degenerate geometry.
func PositionInPanel(p1, p2, p3, p4 geometry2D.Point) (pc geometry2D.Point, hs Horseshoe, err error) {
	var (
		chordBottom = p2.To(p1)
		chordTop    = p3.To(p4)
	)
	if chordBottom.Norm() < CUTOFF {
		err = fmt.Errorf("chordwise edge P1P2 has near-zero length: %w", ErrDegenerateGeometry)
		return
	}
	if chordTop.Norm() < CUTOFF {
		err = fmt.Errorf("chordwise edge P3P4 has near-zero length: %w", ErrDegenerateGeometry)
		return
	}
	hs.A = p2.Translate(chordBottom.Scale(0.25))
	hs.D = p3.Translate(chordTop.Scale(0.25))
	hs.B = hs.A.Translate(chordBottom)
	hs.C = hs.D.Translate(chordTop)
	if hs.A.To(hs.D).Norm() < CUTOFF {
		err = fmt.Errorf("bound vortex segment AD has near-zero length: %w", ErrDegenerateGeometry)
		return
	}
	pc = geometry2D.Midpoint(
		p2.Translate(chordBottom.Scale(0.75)),
		p3.Translate(chordTop.Scale(0.75)))
	return
}

// InducedVelocity evaluates the velocity the horseshoe induces at fp with
// circulation gamma (1 when omitted). The inbound leg carries -gamma relative
// to its outbound ray direction, keeping a single circulation sense along the
// whole vortex line.
func (hs Horseshoe) InducedVelocity(fp geometry2D.Point, gammaO ...float64) (vel Velocity, err error) {
	var (
		gamma   = 1.
		contrib Velocity
	)
	if len(gammaO) != 0 {
		gamma = gammaO[0]
	}
	if contrib, err = InducedBySemiInfinite(fp, hs.A, hs.A.To(hs.B), -gamma); err != nil {
		return
	}
	vel = vel.Add(contrib)
	if contrib, err = InducedByFiniteSegment(fp, hs.A, hs.D, gamma); err != nil {
		return
	}
	vel = vel.Add(contrib)
	if contrib, err = InducedBySemiInfinite(fp, hs.D, hs.D.To(hs.C), gamma); err != nil {
		return
	}
	vel = vel.Add(contrib)
	return
}

// InducedByFiniteSegment evaluates the velocity induced at fp by the straight
// filament from s to e carrying circulation gamma in the s->e direction.
// A field point on the filament (within CUTOFF of the carrier line, between
// the endpoints or within CUTOFF of one) is a degenerate evaluation. On the
// carrier line beyond the endpoints the integrand dl x r vanishes and the
// contribution is exactly zero.
func InducedByFiniteSegment(fp, s, e geometry2D.Point, gamma float64) (vel Velocity, err error) {
	var (
		t = s.To(e)
		L = t.Norm()
	)
	if L < CUTOFF {
		err = fmt.Errorf("filament %v->%v has near-zero length: %w", s, e, ErrDegenerateEvaluation)
		return
	}
	var (
		r1 = s.To(fp)
		r2 = e.To(fp)
		d1 = r1.Norm()
		d2 = r2.Norm()
		h  = geometry2D.DistPointToLine(fp, s, e)
	)
	if h < CUTOFF {
		if d1 < CUTOFF || d2 < CUTOFF || (t.Dot(r1) > 0 && t.Dot(r2) < 0) {
			err = fmt.Errorf("field point %v on filament %v->%v: %w", fp, s, e, ErrDegenerateEvaluation)
		}
		return
	}
	var (
		cosT1 = t.Dot(r1) / (L * d1)
		cosT2 = t.Dot(r2) / (L * d2)
		side  = math.Copysign(1., t.Cross(r1))
	)
	vel.W = side * gamma * (cosT1 - cosT2) / (4. * math.Pi * h)
	return
}

// InducedBySemiInfinite evaluates the velocity induced at fp by the straight
// filament starting at anchor and running to infinity along dir, carrying
// circulation gamma in the outbound direction. A field point on the ray is a
// degenerate evaluation; on the carrier line upstream of the anchor the
// contribution is exactly zero.
func InducedBySemiInfinite(fp, anchor geometry2D.Point, dir geometry2D.Vector, gamma float64) (vel Velocity, err error) {
	var (
		L = dir.Norm()
	)
	if L < CUTOFF {
		err = fmt.Errorf("trailing leg at %v has near-zero direction: %w", anchor, ErrDegenerateEvaluation)
		return
	}
	var (
		r1 = anchor.To(fp)
		d1 = r1.Norm()
		h  = math.Abs(dir.Cross(r1)) / L
	)
	if h < CUTOFF {
		if d1 < CUTOFF || dir.Dot(r1) > 0 {
			err = fmt.Errorf("field point %v on trailing leg from %v: %w", fp, anchor, ErrDegenerateEvaluation)
		}
		return
	}
	var (
		cosT1 = dir.Dot(r1) / (L * d1)
		side  = math.Copysign(1., dir.Cross(r1))
	)
	vel.W = side * gamma * (cosT1 + 1.) / (4. * math.Pi * h)
	return
}
