package catenary

import (
	"fmt"
	"math"
)

// Request describes a chain of length L hanging between (0, YL) and (D, YR).
type Request struct {
	L  float64
	D  float64
	YL float64
	YR float64
}

func (req Request) String() string {
	return fmt.Sprintf("{L=%g d=%g yL=%g yR=%g}", req.L, req.D, req.YL, req.YR)
}

// Chord returns the straight-line distance between the two endpoints.
func (req Request) Chord() float64 {
	return Pt(0, req.YL).Distance(Pt(req.D, req.YR))
}

// Validate reports whether the request describes a chain that can hang
// between its endpoints. It returns nil or a [*FeasibilityError].
//
// A chain is feasible if its length strictly exceeds the straight-line
// distance between the endpoints, that is, if L² − (yL − yR)² > d². The
// length and the horizontal span must also be positive.
func (req Request) Validate() error {
	if !isFinite(req.L) || !isFinite(req.D) || !isFinite(req.YL) || !isFinite(req.YR) {
		return &FeasibilityError{Request: req, Reason: "all inputs must be finite"}
	}
	if req.L <= 0 {
		return &FeasibilityError{Request: req, Reason: "length L must be positive"}
	}
	ydiff := req.YL - req.YR
	k := req.L*req.L - ydiff*ydiff
	if k <= req.D*req.D {
		return &FeasibilityError{
			Request: req,
			Reason: fmt.Sprintf("length L must be greater than the straight-line distance between endpoints (%g)",
				req.Chord()),
		}
	}
	if req.D <= 0 {
		return &FeasibilityError{Request: req, Reason: "horizontal distance d must be positive"}
	}
	return nil
}

// Solve computes the catenary described by req, using [DefaultOptions].
//
// The returned error is either a [*FeasibilityError] or a [*NumericalError].
func Solve(req Request) (Catenary, error) {
	return SolveOpt(req, DefaultOptions)
}

// SolveOpt is like [Solve] but allows configuring the root finder.
//
// The scale parameter a is found first, from the chain length and the
// endpoints' relative position alone. Given a, the position of the vertex xp
// is found, and y0 follows in closed form so that the curve passes through
// (0, yL).
func SolveOpt(req Request, opts Options) (c Catenary, err error) {
	if err := req.Validate(); err != nil {
		return Catenary{}, err
	}
	defer func() {
		if r := recover(); r != nil {
			c = Catenary{}
			err = &NumericalError{Err: fmt.Errorf("unexpected failure: %v", r)}
		}
	}()

	ydiff := req.YL - req.YR
	k := req.L*req.L - ydiff*ydiff

	a, err := SolveScale(req.D, k, opts)
	if err != nil {
		return Catenary{}, err
	}
	xp, err := SolveOffset(a, req.D, ydiff, opts)
	if err != nil {
		return Catenary{}, err
	}
	y0 := req.YL - a*math.Cosh(xp/a)
	if !isFinite(y0) {
		return Catenary{}, &NumericalError{Param: "y0", Err: fmt.Errorf("%w: %g", ErrNonFinite, y0)}
	}
	return Catenary{Xp: xp, A: a, Y0: y0}, nil
}

// ScaleGuess returns the initial guess for the scale parameter.
//
// For d ≪ a, expanding cosh to the fourth order in the scale equation gives
// a ≈ √(d⁴ / (12·(K − d²))). Where that estimate is undefined, not finite or
// not positive, max(1, d/2) is used instead.
func ScaleGuess(d, k float64) float64 {
	if den := 12 * (k - d*d); den > 0 {
		g := math.Sqrt(d * d * d * d / den)
		if isFinite(g) && g > 0 {
			return g
		}
	}
	return max(1, d/2)
}

// SolveScale solves 2·a²·(cosh(d/a) − 1) = k for a > 0.
//
// The equation is solved in the equivalent form 2·a·sinh(d/(2a)) = √k, which
// doesn't suffer from cancellation in cosh(d/a) − 1 when a ≫ d. The search
// runs over ln(a), which keeps every trial value of a positive and makes the
// bracket expansion scale-free. Errors are of type [*NumericalError].
func SolveScale(d, k float64, opts Options) (float64, error) {
	target := math.Sqrt(k)
	f := func(u float64) float64 {
		a := math.Exp(u)
		return 2*a*math.Sinh(d/(2*a)) - target
	}
	u, err := FindRoot(f, math.Log(ScaleGuess(d, k)), 1, opts)
	if err != nil {
		return 0, &NumericalError{Param: "a", Err: err}
	}
	a := math.Exp(u)
	switch {
	case !isFinite(a):
		return 0, &NumericalError{Param: "a", Err: fmt.Errorf("%w: %g", ErrNonFinite, a)}
	case a <= 0:
		return 0, &NumericalError{Param: "a", Err: fmt.Errorf("%w: %g", ErrNonPositive, a)}
	}
	return a, nil
}

// SolveOffset solves a·cosh(xp/a) − a·cosh((d−xp)/a) = ydiff for xp, starting
// at the midpoint d/2.
//
// The left-hand side is evaluated as 2a·sinh(d/(2a))·sinh((2xp−d)/(2a)),
// which is strictly increasing in xp and cannot produce ∞ − ∞. The result may
// lie outside [0, d]. Errors are of type [*NumericalError].
func SolveOffset(a, d, ydiff float64, opts Options) (float64, error) {
	s := 2 * a * math.Sinh(d/(2*a))
	f := func(xp float64) float64 {
		return s*math.Sinh((2*xp-d)/(2*a)) - ydiff
	}
	xp, err := FindRoot(f, d/2, a, opts)
	if err != nil {
		return 0, &NumericalError{Param: "xp", Err: err}
	}
	return xp, nil
}
