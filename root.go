package catenary

import (
	"fmt"
	"math"
)

// Options controls the root finder used by [SolveOpt] and [FindRoot].
type Options struct {
	// MaxEvals bounds the number of function evaluations spent on a single
	// root. Bracketing and refinement share the budget.
	MaxEvals int
	// Tolerance is the width of the final bracket, relative to the magnitude
	// of the initial bracket's endpoints. Values below one ulp are raised to
	// one ulp, at which point the bracket is refined until it can't shrink
	// any further.
	Tolerance float64
}

// DefaultOptions are the options used by [Solve].
var DefaultOptions = Options{
	MaxEvals:  2000,
	Tolerance: minTolerance,
}

// minTolerance is the spacing of float64 values in [1, 2).
//
// The solved parameters are amplified by up to cosh(d/a) when evaluating the
// curve at its endpoints, so anything looser than full precision shows up in
// y(d) for deep chains.
const minTolerance = 0x1p-52

func (opts Options) normalize() Options {
	if opts.MaxEvals <= 0 {
		opts.MaxEvals = DefaultOptions.MaxEvals
	}
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		opts.Tolerance = DefaultOptions.Tolerance
	}
	opts.Tolerance = max(opts.Tolerance, minTolerance)
	return opts
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// evaluator wraps a function with an evaluation budget.
type evaluator struct {
	f     func(float64) float64
	n     int
	limit int
}

func (e *evaluator) eval(x float64) (float64, error) {
	if e.n >= e.limit {
		return 0, fmt.Errorf("%w after %d evaluations", ErrNoConvergence, e.n)
	}
	e.n++
	return e.f(x), nil
}

// FindRoot finds a zero crossing of f, starting the search at x0.
//
// The function is treated as a black box; no derivative is needed. A bracket
// containing a sign change is located by stepping outward from x0 in both
// directions, starting with the given step and doubling it after every round.
// Once f is not finite at a trial point (for example because an intermediate
// cosh overflowed), the search in that direction contracts by bisecting
// between that point and the last finite one. The bracket is then refined
// with the [ITP method].
//
// The step should be of the order of the natural scale of f near x0. An error
// wrapping [ErrNoConvergence] is returned if no root is found within
// opts.MaxEvals evaluations, and one wrapping [ErrNonFinite] if x0 isn't
// finite or f is not finite anywhere that was probed.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func FindRoot(f func(float64) float64, x0, step float64, opts Options) (float64, error) {
	opts = opts.normalize()
	if !isFinite(x0) {
		return 0, fmt.Errorf("%w: initial guess %g", ErrNonFinite, x0)
	}
	if !isFinite(step) || step == 0 {
		step = max(math.Abs(x0), 1)
	}
	step = math.Abs(step)

	ev := &evaluator{f: f, limit: opts.MaxEvals}
	lo, hi, flo, fhi, err := bracket(ev, x0, step)
	if err != nil {
		return 0, err
	}
	if lo == hi {
		return lo, nil
	}

	// solveITP expects f(lo) < 0 < f(hi).
	g := ev.eval
	if flo > 0 {
		g = func(x float64) (float64, error) {
			y, err := ev.eval(x)
			return -y, err
		}
		flo, fhi = -flo, -fhi
	}
	epsilon := opts.Tolerance * max(math.Abs(lo), math.Abs(hi))
	root, err := solveITP(g, lo, hi, epsilon, 1, 0.2/(hi-lo), flo, fhi)
	if err != nil {
		return 0, err
	}
	if !isFinite(root) {
		return 0, fmt.Errorf("%w: root %g", ErrNonFinite, root)
	}
	return root, nil
}

// side is one direction of the outward bracket search. Once a trial point
// produced a non-finite value, that point becomes the side's wall and further
// trial points bisect the gap between the last finite point and the wall.
type side struct {
	dir    float64
	x, fx  float64
	wall   float64
	walled bool
	done   bool
}

// maxProbes bounds the number of doublings in [probeFinite].
const maxProbes = 64

// bracket returns lo < hi with f(lo) and f(hi) of opposite signs, or lo == hi
// if an exact zero was hit.
func bracket(ev *evaluator, x0, step float64) (lo, hi, flo, fhi float64, err error) {
	fx, err := ev.eval(x0)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if !isFinite(fx) {
		x0, fx, err = probeFinite(ev, x0, step)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	if fx == 0 {
		return x0, x0, 0, 0, nil
	}

	sides := [2]side{
		{dir: 1, x: x0, fx: fx},
		{dir: -1, x: x0, fx: fx},
	}
	for {
		if sides[0].done && sides[1].done {
			return 0, 0, 0, 0, fmt.Errorf("%w: no sign change found around %g", ErrNoConvergence, x0)
		}
		for i := range sides {
			s := &sides[i]
			if s.done {
				continue
			}
			var x float64
			if s.walled {
				x = 0.5 * (s.x + s.wall)
				if x == s.x || x == s.wall {
					s.done = true
					continue
				}
			} else {
				x = s.x + s.dir*step
				if !isFinite(x) {
					s.done = true
					continue
				}
			}
			y, err := ev.eval(x)
			if err != nil {
				return 0, 0, 0, 0, err
			}
			if !isFinite(y) {
				s.wall = x
				s.walled = true
				continue
			}
			if y == 0 {
				return x, x, 0, 0, nil
			}
			if math.Signbit(y) != math.Signbit(s.fx) {
				if s.dir > 0 {
					return s.x, x, s.fx, y, nil
				}
				return x, s.x, y, s.fx, nil
			}
			s.x, s.fx = x, y
		}
		step *= 2
	}
}

// probeFinite looks for a point near x0 at which f is finite, alternating
// between both sides of x0 with growing distance.
func probeFinite(ev *evaluator, x0, step float64) (float64, float64, error) {
	d := step
	for range maxProbes {
		for _, x := range [2]float64{x0 + d, x0 - d} {
			if !isFinite(x) {
				continue
			}
			y, err := ev.eval(x)
			if err != nil {
				return 0, 0, err
			}
			if isFinite(y) {
				return x, y, nil
			}
		}
		d *= 2
	}
	return 0, 0, fmt.Errorf("%w: function not finite near %g", ErrNonFinite, x0)
}

// solveITP solves f for a zero crossing in [a, b] using the ITP method, as
// described in the paper [An Enhancement of the Bisection Method Average
// Performance Preserving Minmax Optimality].
//
// It is assumed that ya < 0.0 and yb > 0.0. The value of epsilon must be
// larger than 2**-63 * (b - a).
//
// This hardwires k2 to 2, which avoids an expensive floating point
// exponentiation. n0 = 0 guarantees no more iterations than bisection; n0 = 1
// gives the secant step more of a chance on smooth functions. To match the
// paper, k1 should be 0.2 / (b - a).
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func solveITP(
	f func(float64) (float64, error),
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) (float64, error) {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := min(n0+n1_2, 62)
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		if x1_2 <= a || x1_2 >= b {
			// a and b are adjacent floats.
			break
		}
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp, err := f(xitp)
		if err != nil {
			return 0, err
		}
		if !isFinite(yitp) {
			return 0, fmt.Errorf("%w: f(%g) = %g", ErrNonFinite, xitp, yitp)
		}
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp, nil
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b), nil
}
