// Package regression provides the ordinary-least-squares fitter used by stepwise selection.
//
// The selector treats fitting as a capability behind the Fitter interface:
// it hands over a target vector and a list of named predictor columns and
// receives a Model exposing per-coefficient p-values and R². OLS is the
// built-in implementation; CachedFitter wraps any Fitter and memoizes results
// by the ordered list of predictor names.
//
// # Model
//
// Every fit includes an intercept column of ones named InterceptName ("const"),
// always placed first. Coefficients, standard errors, t statistics and
// two-sided p-values are aligned with Model.Names.
//
//	ols := regression.NewOLS()
//	model, err := ols.Fit(y, []regression.Column{
//	    {Name: "x1", Values: x1},
//	    {Name: "x2", Values: x2},
//	})
//	if err != nil {
//	    return err
//	}
//	p, _ := model.PValue("x1")
//	fmt.Printf("p(x1)=%.4g R²=%.3f\n", p, model.RSquared)
//
// # Numerical Method
//
// OLS solves the least-squares problem on X directly with a QR factorization
// (gonum/mat), so columns with a large offset such as timestamps or IDs stay
// solvable. Rank-deficient designs, or designs whose condition number exceeds
// the configured limit, are rejected with errs.ErrSingularMatrix instead of
// being solved with a pseudo-inverse. Standard errors use the diagonal of
// (XᵀX)⁻¹ = R⁻¹R⁻ᵀ. P-values come from Student's t
// distribution with n − p residual degrees of freedom (gonum/stat/distuv).
package regression
