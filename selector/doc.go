// Package selector implements adaptive bidirectional stepwise variable
// selection for linear regression.
//
// Each pass of the selection loop runs a forward step, which adds the
// excluded feature with the smallest p-value when it is below the inclusion
// threshold, and a backward step, which removes the included feature with the
// largest p-value when it exceeds the exclusion threshold. Between passes the
// inclusion threshold is relaxed or tightened in steps of 0.01 within
// [0.01, 0.10] so that the selected set ends up with between MinVars and
// MaxVars features:
//
//   - too few features and nothing changed: the threshold is raised and the
//     search restarts from an empty set
//   - too many features after a removal: the threshold is lowered and the
//     search restarts
//   - too many features without a removal: the threshold is tightened until
//     the earliest-included features form a prefix of acceptable size, and the
//     set is truncated to it
//
// The search starts at a threshold of 0.10. The configured inclusion
// threshold only takes effect through a one-time reset after the first
// removal. A fitted model whose multiple correlation exceeds 0.9 ends the
// search early once the threshold has been raised.
//
// # Basic Usage
//
//	frame, y, err := dataset.LoadFile("table.csv.zst", "y")
//	if err != nil {
//		return err
//	}
//
//	res, err := selector.Select(frame, y,
//		selector.WithMinVars(2),
//		selector.WithMaxVars(8),
//	)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Features, res.ThresholdIn, res.Model.RSquared)
//
// # Fitting
//
// The selector only depends on regression.Fitter. The default is the OLS
// fitter from the regression package; every call wraps it in a
// regression.CachedFitter because restarts refit identical subsets.
// WithConcurrency fits forward-step candidates in parallel; the chosen
// candidate is the same as with sequential fitting.
package selector
