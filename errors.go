package catenary

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is matched by every [*FeasibilityError].
	ErrInfeasible = errors.New("catenary: infeasible request")
	// ErrNumerical is matched by every [*NumericalError].
	ErrNumerical = errors.New("catenary: numerical failure")

	// ErrNoConvergence is reported when a root finder exhausts its evaluation
	// budget.
	ErrNoConvergence = errors.New("no convergence")
	// ErrNonFinite is reported when a computation produces NaN or ±Inf where
	// a finite value is required.
	ErrNonFinite = errors.New("non-finite value")
	// ErrNonPositive is reported when the scale parameter comes out as zero
	// or negative.
	ErrNonPositive = errors.New("non-positive value")
)

// FeasibilityError reports a request that no hanging chain can satisfy. No
// root finding is attempted for such requests.
type FeasibilityError struct {
	Request Request
	Reason  string
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("catenary: infeasible request %v: %s", e.Request, e.Reason)
}

func (e *FeasibilityError) Is(target error) bool {
	return target == ErrInfeasible
}

// NumericalError reports a failure while solving for one of the shape
// parameters. Err carries the underlying diagnostic, such as
// [ErrNoConvergence].
type NumericalError struct {
	// Param names the quantity being computed: "a", "xp" or "y0".
	Param string
	Err   error
}

func (e *NumericalError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("catenary: %v", e.Err)
	}
	return fmt.Sprintf("catenary: computing %s: %v", e.Param, e.Err)
}

func (e *NumericalError) Unwrap() error {
	return e.Err
}

func (e *NumericalError) Is(target error) bool {
	return target == ErrNumerical
}
