package selector

import (
	"fmt"

	"github.com/arloliu/stepreg/errs"
)

// FitError reports a fitter failure for a specific predictor subset.
//
// It matches errs.ErrFitFailed with errors.Is and unwraps to the fitter's error.
type FitError struct {
	// Columns are the predictors of the failed fit, without the intercept.
	Columns []string
	// Err is the error returned by the fitter.
	Err error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s: %v: %v", errs.ErrFitFailed, e.Columns, e.Err)
}

func (e *FitError) Unwrap() error {
	return e.Err
}

// Is reports whether target is errs.ErrFitFailed.
func (e *FitError) Is(target error) bool {
	return target == errs.ErrFitFailed
}
