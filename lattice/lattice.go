package lattice

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/govlm/geometry2D"
	"github.com/notargets/govlm/panel"
	"github.com/notargets/govlm/utils"
	"github.com/notargets/govlm/vortices"
)

// Lattice is an ordered collection of validated panels. Panel order fixes
// the row/column order of the influence matrix.
type Lattice struct {
	Panels         []panel.Panel
	ParallelDegree int
	Partitions     *utils.PartitionMap // row partition of the influence matrix
}

// New builds a lattice over the given panels. procLimitO caps the parallel
// degree; by default all CPUs are used, never more than one per panel.
func New(panels []panel.Panel, procLimitO ...int) (lt *Lattice) {
	lt = &Lattice{
		Panels: panels,
	}
	lt.setParallelDegree(procLimitO...)
	lt.Partitions = utils.NewPartitionMap(lt.ParallelDegree, len(panels))
	return
}

func (lt *Lattice) setParallelDegree(procLimitO ...int) {
	if len(procLimitO) != 0 && procLimitO[0] > 0 {
		lt.ParallelDegree = procLimitO[0]
	} else {
		lt.ParallelDegree = runtime.NumCPU()
	}
	if lt.ParallelDegree > len(lt.Panels) {
		lt.ParallelDegree = len(lt.Panels)
	}
	if lt.ParallelDegree < 1 {
		lt.ParallelDegree = 1
	}
}

// ControlPoints returns every panel's control point in panel order.
func (lt *Lattice) ControlPoints() (pts []geometry2D.Point, err error) {
	pts = make([]geometry2D.Point, len(lt.Panels))
	for i, p := range lt.Panels {
		if pts[i], err = p.ControlPoint(); err != nil {
			err = fmt.Errorf("panel %d: %w", i, err)
			return
		}
	}
	return
}

// InfluenceMatrix assembles the downwash influence coefficients: entry (i,j)
// is the W component induced at panel i's control point by panel j's
// horseshoe vortex at unit circulation. Every entry is independent, so rows
// are filled concurrently across the partition map with no synchronization
// beyond the final join. The first evaluation error wins and carries the
// offending (i,j) pair.
func (lt *Lattice) InfluenceMatrix() (AIC utils.Matrix, err error) {
	var (
		N  = len(lt.Panels)
		wg = sync.WaitGroup{}
	)
	if N == 0 {
		err = fmt.Errorf("empty lattice")
		return
	}
	pts, err := lt.ControlPoints()
	if err != nil {
		return
	}
	horseshoes := make([]vortices.Horseshoe, N)
	for j, p := range lt.Panels {
		if horseshoes[j], err = p.Horseshoe(); err != nil {
			err = fmt.Errorf("panel %d: %w", j, err)
			return
		}
	}
	AIC = utils.NewMatrix(N, N)
	errs := make([]error, lt.ParallelDegree)
	for np := 0; np < lt.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := lt.Partitions.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				for j := 0; j < N; j++ {
					vel, eerr := horseshoes[j].InducedVelocity(pts[i])
					if eerr != nil {
						errs[np] = fmt.Errorf("influence of panel %d at control point of panel %d: %w",
							j, i, eerr)
						return
					}
					AIC.DataP[j+i*N] = vel.W
				}
			}
		}(np)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return utils.Matrix{}, e
		}
	}
	utils.IsNanPanic(AIC)
	return
}

// InducedVelocityAt superposes every panel's contribution at fp, one
// circulation per panel. This is the post-solve query: the solver hands back
// its circulation vector and surveys the velocity field with it.
func (lt *Lattice) InducedVelocityAt(fp geometry2D.Point, gammas utils.Vector) (vel vortices.Velocity, err error) {
	if gammas.Len() != len(lt.Panels) {
		err = fmt.Errorf("circulation vector length %d does not match panel count %d",
			gammas.Len(), len(lt.Panels))
		return
	}
	var contrib vortices.Velocity
	for j, p := range lt.Panels {
		if contrib, err = p.InducedVelocity(fp, gammas.AtVec(j)); err != nil {
			err = fmt.Errorf("panel %d: %w", j, err)
			return
		}
		vel = vel.Add(contrib)
	}
	return
}

// Areas returns every panel's planform area in panel order.
func (lt *Lattice) Areas() (areas utils.Vector) {
	if len(lt.Panels) == 0 {
		return
	}
	areas = utils.NewVector(len(lt.Panels))
	for i, p := range lt.Panels {
		areas.DataP[i] = p.Area()
	}
	return
}

// Spans returns every panel's spanwise extent in panel order.
func (lt *Lattice) Spans() (spans utils.Vector, err error) {
	if len(lt.Panels) == 0 {
		return
	}
	spans = utils.NewVector(len(lt.Panels))
	for i, p := range lt.Panels {
		if spans.DataP[i], err = p.Span(); err != nil {
			err = fmt.Errorf("panel %d: %w", i, err)
			return
		}
	}
	return
}

// PlanformBounds is the bounding box of all panel corners, nil for an empty
// lattice.
func (lt *Lattice) PlanformBounds() (bb *geometry2D.BoundingBox) {
	pts := make([]geometry2D.Point, 0, 4*len(lt.Panels))
	for _, p := range lt.Panels {
		P1, P2, P3, P4 := p.Corners()
		pts = append(pts, P1, P2, P3, P4)
	}
	bb = geometry2D.NewBoundingBox(pts)
	return
}
