package vortices

import (
	"math"
	"testing"

	"github.com/notargets/govlm/geometry2D"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unit square panel in convention order: chord 1 along x, span 1 along y.
var (
	sqP1 = geometry2D.Point{X: 1, Y: 0}
	sqP2 = geometry2D.Point{X: 0, Y: 0}
	sqP3 = geometry2D.Point{X: 0, Y: 1}
	sqP4 = geometry2D.Point{X: 1, Y: 1}
)

func TestPositionInPanel(t *testing.T) {
	{ // Unit square: quarter chord bound vortex, 3/4 chord control point
		pc, hs, err := PositionInPanel(sqP1, sqP2, sqP3, sqP4)
		require.NoError(t, err)
		assert.Equal(t, geometry2D.Point{X: 0.25, Y: 0}, hs.A)
		assert.Equal(t, geometry2D.Point{X: 0.25, Y: 1}, hs.D)
		assert.Equal(t, geometry2D.Point{X: 1.25, Y: 0}, hs.B)
		assert.Equal(t, geometry2D.Point{X: 1.25, Y: 1}, hs.C)
		assert.Equal(t, geometry2D.Point{X: 0.75, Y: 0.5}, pc)
		// Control point strictly between the bound vortex line and the
		// trailing edge, never on A or D
		assert.Greater(t, pc.X, hs.A.X)
		assert.Less(t, pc.X, sqP1.X)
	}
	{ // Tapered panel: placement follows each chordwise edge separately
		pc, hs, err := PositionInPanel(
			geometry2D.Point{X: 2, Y: 0},
			geometry2D.Point{X: 0, Y: 0},
			geometry2D.Point{X: 0.5, Y: 1},
			geometry2D.Point{X: 1.5, Y: 1},
		)
		require.NoError(t, err)
		assert.Equal(t, geometry2D.Point{X: 0.5, Y: 0}, hs.A)
		assert.Equal(t, geometry2D.Point{X: 0.75, Y: 1}, hs.D)
		assert.Equal(t, geometry2D.Point{X: 2.5, Y: 0}, hs.B)
		assert.Equal(t, geometry2D.Point{X: 1.75, Y: 1}, hs.C)
		assert.Equal(t, geometry2D.Point{X: 1.375, Y: 0.5}, pc)
	}
	{ // Zero-length chordwise edge is degenerate geometry
		_, _, err := PositionInPanel(sqP2, sqP2, sqP3, sqP4)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateGeometry)
	}
	{ // Zero span collapses the bound segment
		_, _, err := PositionInPanel(
			geometry2D.Point{X: 1, Y: 0}, geometry2D.Point{X: 0, Y: 0},
			geometry2D.Point{X: 0, Y: 0}, geometry2D.Point{X: 1, Y: 0},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateGeometry)
	}
}

func TestFilamentInduction(t *testing.T) {
	var (
		oo2pi = 0.5 * (1. / math.Pi)
		a     = geometry2D.Point{X: 0.25, Y: 0}
		d     = geometry2D.Point{X: 0.25, Y: 1}
		pc    = geometry2D.Point{X: 0.75, Y: 0.5}
	)
	{ // Bound segment at the control point: w = -sqrt(2)*Gamma/(2 pi)
		vel, err := InducedByFiniteSegment(pc, a, d, 1)
		require.NoError(t, err)
		assert.InDelta(t, -math.Sqrt2*oo2pi, vel.W, 1.e-14)
		assert.Zero(t, vel.U)
		assert.Zero(t, vel.V)
	}
	{ // Inbound trailing leg (circulation toward the anchor):
		// w = -(1+1/sqrt(2))*Gamma/(2 pi)
		vel, err := InducedBySemiInfinite(pc, a, geometry2D.Vector{X: 1, Y: 0}, -1)
		require.NoError(t, err)
		assert.InDelta(t, -(1.+1./math.Sqrt2)*oo2pi, vel.W, 1.e-14)
	}
	{ // Long finite segment approaches the infinite line value Gamma/(2 pi h)
		vel, err := InducedByFiniteSegment(
			geometry2D.Point{X: 1, Y: 0},
			geometry2D.Point{X: 0, Y: -1.e6},
			geometry2D.Point{X: 0, Y: 1.e6}, 1)
		require.NoError(t, err)
		assert.InDelta(t, -oo2pi, vel.W, 1.e-9)
	}
	{ // Reversing the segment direction flips the sign
		v1, err := InducedByFiniteSegment(pc, a, d, 1)
		require.NoError(t, err)
		v2, err := InducedByFiniteSegment(pc, d, a, 1)
		require.NoError(t, err)
		assert.Equal(t, v1.W, -v2.W)
	}
}

func TestHorseshoeInduction(t *testing.T) {
	_, hs, err := PositionInPanel(sqP1, sqP2, sqP3, sqP4)
	require.NoError(t, err)
	pc := geometry2D.Point{X: 0.75, Y: 0.5}

	{ // Self-induction at the control point of the unit square:
		// bound -sqrt(2)/(2 pi) plus two legs -(1+1/sqrt(2))/(2 pi) each,
		// total w = -(1+sqrt(2))*Gamma/pi
		vel, err := hs.InducedVelocity(pc)
		require.NoError(t, err)
		assert.InDelta(t, -(1.+math.Sqrt2)/math.Pi, vel.W, 1.e-14)
		assert.Zero(t, vel.U)
		assert.Zero(t, vel.V)
	}
	{ // Gamma scales linearly and antisymmetrically, exact to the bit
		velPos, err := hs.InducedVelocity(pc, 3.7)
		require.NoError(t, err)
		velNeg, err := hs.InducedVelocity(pc, -3.7)
		require.NoError(t, err)
		assert.Equal(t, velPos.W, -velNeg.W)
		velUnit, err := hs.InducedVelocity(pc)
		require.NoError(t, err)
		assert.InDelta(t, velUnit.Scale(3.7).W, velPos.W, 1.e-14)
		assert.Zero(t, velPos.Add(velNeg).Norm())
	}
	{ // Downwash behind the panel, upwash ahead of it
		behind, err := hs.InducedVelocity(geometry2D.Point{X: 2, Y: 0.5})
		require.NoError(t, err)
		assert.Less(t, behind.W, 0.)
		ahead, err := hs.InducedVelocity(geometry2D.Point{X: -1, Y: 0.5})
		require.NoError(t, err)
		assert.Greater(t, ahead.W, 0.)
	}
	{ // Far downstream between the legs the downwash doubles to
		// -2 Gamma/(pi b), the Trefftz plane value of the vortex pair
		vel, err := hs.InducedVelocity(geometry2D.Point{X: 1.e6, Y: 0.5})
		require.NoError(t, err)
		assert.InDelta(t, -2./math.Pi, vel.W, 1.e-6)
	}
}

func TestTwoDimensionalLimit(t *testing.T) {
	// For span >> chord the legs vanish from the control point's view and
	// the bound vortex acts as a 2D point vortex at quarter chord seen from
	// 3/4 chord: w -> -Gamma/(pi c). This is the anchor that makes a
	// one-panel lattice reproduce dCl/dalpha = 2 pi.
	var (
		b = 1.e6
	)
	pc, hs, err := PositionInPanel(
		geometry2D.Point{X: 1, Y: 0},
		geometry2D.Point{X: 0, Y: 0},
		geometry2D.Point{X: 0, Y: b},
		geometry2D.Point{X: 1, Y: b},
	)
	require.NoError(t, err)
	vel, err := hs.InducedVelocity(pc)
	require.NoError(t, err)
	assert.InDelta(t, -1./math.Pi, vel.W, 1.e-6)
}

func TestSingularityPolicy(t *testing.T) {
	_, hs, err := PositionInPanel(sqP1, sqP2, sqP3, sqP4)
	require.NoError(t, err)

	{ // Field point on the bound segment
		_, err := hs.InducedVelocity(geometry2D.Point{X: 0.25, Y: 0.5})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateEvaluation)
	}
	{ // Field point on a trailing leg, well downstream of the panel
		_, err := hs.InducedVelocity(geometry2D.Point{X: 5, Y: 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateEvaluation)
	}
	{ // Field point on a vortex endpoint
		_, err := hs.InducedVelocity(hs.A)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDegenerateEvaluation)
	}
	{ // Just outside the core radius: large but finite
		vel, err := hs.InducedVelocity(geometry2D.Point{X: 0.25 + 1.e-6, Y: 0.5})
		require.NoError(t, err)
		assert.True(t, math.Abs(vel.W) > 1.e4)
		assert.False(t, math.IsInf(vel.W, 0))
		assert.False(t, math.IsNaN(vel.W))
	}
	{ // On the bound vortex carrier line but beyond the endpoints: the bound
		// filament contributes exactly zero, the legs still act. At
		// (0.25,-3) only the legs remain: w = (1/(4 pi))*(1/3 - 1/4)
		vel, err := hs.InducedVelocity(geometry2D.Point{X: 0.25, Y: -3})
		require.NoError(t, err)
		assert.InDelta(t, 1./(48.*math.Pi), vel.W, 1.e-14)
		// Outboard of the span: upwash
		assert.Greater(t, vel.W, 0.)
	}
	{ // On a leg's carrier line upstream of the anchor: leg contributes zero
		vel, err := hs.InducedVelocity(geometry2D.Point{X: -1, Y: 0})
		require.NoError(t, err)
		assert.False(t, math.IsNaN(vel.W))
	}
}

func TestFarFieldDecay(t *testing.T) {
	_, hs, err := PositionInPanel(sqP1, sqP2, sqP3, sqP4)
	require.NoError(t, err)
	decayAlong := func(dir geometry2D.Vector) {
		var (
			origin = geometry2D.Point{X: 0.5, Y: 0.5}
			prev   = math.Inf(1)
		)
		for _, r := range []float64{10, 100, 1000} {
			vel, err := hs.InducedVelocity(origin.Translate(dir.Scale(r)))
			require.NoError(t, err)
			assert.Less(t, vel.Norm(), prev)
			prev = vel.Norm()
		}
		assert.Less(t, prev, 1.e-5)
	}
	// Distance from all three filaments has to grow: upstream, spanwise and
	// diagonal rays qualify (straight downstream stays within b/2 of the
	// legs and keeps the Trefftz downwash forever).
	decayAlong(geometry2D.Vector{X: -1, Y: 0})
	decayAlong(geometry2D.Vector{X: 0, Y: 1})
	decayAlong(geometry2D.Vector{X: -1. / math.Sqrt2, Y: 1. / math.Sqrt2})
}
