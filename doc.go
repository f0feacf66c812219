// Package catenary computes the shape of a flexible, inextensible chain
// hanging under its own weight between two points of possibly unequal height.
//
// # The problem
//
// A chain of length L is suspended from (0, yL) and (d, yR). Its shape is the
// catenary
//
//	y(x) = y0 + a·cosh((x − xp) / a)
//
// where a is the scale parameter, xp the horizontal position of the vertex
// and y0 a vertical offset. [Solve] determines the three parameters from the
// four inputs, returning a [Catenary].
//
// # Feasibility
//
// A chain can only hang between two points if it is strictly longer than the
// straight line connecting them. With ydiff = yL − yR and K = L² − ydiff², this
// is the condition K > d², which is the same as L² > d² + ydiff². Requests that
// violate it are rejected with a [*FeasibilityError] before any root finding
// takes place.
//
// # Solving
//
// Solving happens in two stages, each a scalar root find:
//
//   - The scale parameter a is the positive root of 2·a²·(cosh(d/a) − 1) = K.
//     The initial guess comes from expanding cosh to the fourth order, which
//     yields a ≈ √(d⁴ / (12·(K − d²))). See [ScaleGuess] and [SolveScale].
//   - Given a, xp is the root of a·cosh(xp/a) − a·cosh((d − xp)/a) = ydiff,
//     searched for starting at d/2, which is the exact answer for level
//     endpoints. See [SolveOffset].
//
// Finally, y0 = yL − a·cosh(xp/a), which makes the curve pass through (0, yL)
// by construction.
//
// Both equations are evaluated in forms that use sinh of half arguments. These
// are algebraically identical to the forms above, but avoid the cancellation
// in cosh(x) − 1 for small x as well as ∞ − ∞ when cosh overflows.
//
// Roots are found with [FindRoot], which brackets a sign change outward from
// the initial guess and then refines the bracket with the [ITP method]. Each
// root is limited to a fixed number of function evaluations (see [Options]),
// and failures are reported as [*NumericalError].
//
// # Curves
//
// [Catenary.Span] restricts a catenary to a horizontal range, yielding a
// [Shape], parametrized linearly in x. Shapes can be evaluated, split and
// measured; arc lengths, and the parameter at a given arc length, are computed
// in closed form. [Shape.Points] samples the curve
// for plotting, [Shape.Markers] returns the endpoints and the vertex, and
// [SVG] turns sampled points into SVG path data.
//
// # Concurrency
//
// All functions are pure and may be called concurrently.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
package catenary
