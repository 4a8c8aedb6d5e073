/*
Package panel implements the quadrilateral lifting surface panel of a vortex
lattice: four ordered corners, a horseshoe vortex on the quarter chord line
and a control point at the three quarter chord.

Corner convention, in the planform plane (x chordwise downstream, y spanwise):

	   y ^
	     |
	P3---+--D-----------P4 ~~~> C
	 |      |            |
	 |      |     pc     |
	 |      |            |
	P2---+--A-----------P1 ~~~> B
	     |  c/4              x -->

P2->P1 and P3->P4 are the chordwise edges, P2->P3 and P1->P4 the spanwise
ones. A legal panel has parallel chordwise edges and equal spanwise y-extents
on both sides; both invariants are enforced at construction, so every Panel
value in circulation is valid.
*/
package panel

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/govlm/geometry2D"
	"github.com/notargets/govlm/vortices"
)

var (
	ErrEdgesNotParallel = errors.New("panel incorrectly defined: edges P1P2 and P3P4 not parallel")
	ErrSpanMismatch     = errors.New("panel incorrectly defined: spanwise extents |P3.y-P2.y| and |P4.y-P1.y| differ")
)

// Panel is an immutable quadrilateral panel. NewPanel is the only
// constructor; the zero value is unusable.
type Panel struct {
	p1, p2, p3, p4 geometry2D.Point
}

// NewPanel validates the corner quadrilateral and returns the panel value.
// The two failure modes are distinguished: ErrEdgesNotParallel when the
// chordwise edges cross-check fails, ErrSpanMismatch when the two spanwise
// y-extents disagree beyond tolerance.
func NewPanel(P1, P2, P3, P4 geometry2D.Point) (p Panel, err error) {
	var (
		chordBottom = P2.To(P1)
		chordTop    = P3.To(P4)
	)
	if !geometry2D.IsParallel(chordBottom, chordTop) {
		err = fmt.Errorf("cross product %g: %w", chordBottom.Cross(chordTop), ErrEdgesNotParallel)
		return
	}
	if err = checkSpans(P1, P2, P3, P4); err != nil {
		return
	}
	p = Panel{P1, P2, P3, P4}
	return
}

func checkSpans(P1, P2, P3, P4 geometry2D.Point) (err error) {
	var (
		b1 = math.Abs(P3.Y - P2.Y)
		b2 = math.Abs(P4.Y - P1.Y)
	)
	if math.Abs(b1-b2) > geometry2D.GEOMTOL*math.Max(b1, b2) {
		err = fmt.Errorf("%g vs %g: %w", b1, b2, ErrSpanMismatch)
	}
	return
}

// Corners returns the four corner points in convention order.
func (p Panel) Corners() (P1, P2, P3, P4 geometry2D.Point) {
	P1, P2, P3, P4 = p.p1, p.p2, p.p3, p.p4
	return
}

// Area is the planform area of the panel, shoelace formula on the corners.
func (p Panel) Area() (area float64) {
	area = geometry2D.QuadrilateralArea(p.p1, p.p2, p.p3, p.p4)
	return
}

// Span returns the spanwise extent |P3.y - P2.y|, re-validating it against
// |P4.y - P1.y| on every call rather than trusting construction alone.
func (p Panel) Span() (b float64, err error) {
	if err = checkSpans(p.p1, p.p2, p.p3, p.p4); err != nil {
		return
	}
	b = math.Abs(p.p3.Y - p.p2.Y)
	return
}

// ControlPoint returns the three quarter chord control point.
func (p Panel) ControlPoint() (pc geometry2D.Point, err error) {
	pc, _, err = vortices.PositionInPanel(p.p1, p.p2, p.p3, p.p4)
	return
}

// Horseshoe returns the panel's horseshoe vortex geometry, for callers that
// need the filament endpoints themselves.
func (p Panel) Horseshoe() (hs vortices.Horseshoe, err error) {
	_, hs, err = vortices.PositionInPanel(p.p1, p.p2, p.p3, p.p4)
	return
}

// InducedVelocity evaluates the velocity the panel's horseshoe vortex with
// circulation gamma (1 when omitted) induces at fp.
func (p Panel) InducedVelocity(fp geometry2D.Point, gammaO ...float64) (vel vortices.Velocity, err error) {
	var hs vortices.Horseshoe
	if _, hs, err = vortices.PositionInPanel(p.p1, p.p2, p.p3, p.p4); err != nil {
		return
	}
	vel, err = hs.InducedVelocity(fp, gammaO...)
	return
}
