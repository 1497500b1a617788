// Package solver implements the scalar root finders that drive the Mach
// number and wave angle inversions: Newton-Raphson with a finite-difference
// or analytic slope, and a bracketed bisection with a fixed iteration
// budget. Solvers report failure through ErrNonConvergence rather than
// panicking, so callers decide how fatal a failed solve is.
package solver

import (
	"errors"
	"fmt"

	"github.com/notargets/compflow/utils"
)

const (
	// tolerance is the convergence criterion applied to the Newton step.
	tolerance = 1.e-6
	// maxIterations caps both Newton variants.
	maxIterations = 100
)

// ErrNonConvergence reports that an iterative solve failed to locate a root.
var ErrNonConvergence = errors.New("root finder did not converge")

// Objective is a scalar residual whose root is sought.
type Objective[F utils.Float] func(F) F

// FDNewton runs Newton-Raphson iteration from x0 with a central
// finite-difference slope, for objectives without a cheap analytic
// derivative.
func FDNewton[F utils.Float](f Objective[F], x0 F) (F, error) {
	var (
		sqrtEps = utils.Sqrt(utils.Eps[F]())
		x       = x0
	)
	for i := 0; i < maxIterations; i++ {
		h := sqrtEps * (1 + utils.Abs(x))
		df := (f(x+h) - f(x-h)) / (2 * h)
		if df == 0 || utils.IsNaN(df) {
			return x, fmt.Errorf("%w: vanishing slope at x = %v", ErrNonConvergence, x)
		}
		dx := f(x) / df
		x -= dx
		if utils.IsNaN(x) {
			return x, fmt.Errorf("%w: iterate is not a number", ErrNonConvergence)
		}
		if utils.Abs(dx) < tolerance {
			return x, nil
		}
	}
	return x, fmt.Errorf("%w within %d iterations", ErrNonConvergence, maxIterations)
}

// Newton runs Newton-Raphson iteration from x0 with the analytic derivative
// df.
func Newton[F utils.Float](f, df Objective[F], x0 F) (F, error) {
	x := x0
	for i := 0; i < maxIterations; i++ {
		d := df(x)
		if d == 0 || utils.IsNaN(d) {
			return x, fmt.Errorf("%w: vanishing derivative at x = %v", ErrNonConvergence, x)
		}
		dx := f(x) / d
		x -= dx
		if utils.IsNaN(x) {
			return x, fmt.Errorf("%w: iterate is not a number", ErrNonConvergence)
		}
		if utils.Abs(dx) < tolerance {
			return x, nil
		}
	}
	return x, fmt.Errorf("%w within %d iterations", ErrNonConvergence, maxIterations)
}

// Bisect halves the bracket [lo, hi] up to maxIter times and returns the
// midpoint when the budget runs out or the bracket collapses to adjacent
// floats. f must change sign across the bracket; with the fixed budget this
// is an approximation scheme, not a tolerance-based one, and it cannot fail.
func Bisect[F utils.Float](f Objective[F], lo, hi F, maxIter int) F {
	fLo := f(lo)
	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		fMid := f(mid)
		if fMid == 0 {
			return mid
		}
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}
