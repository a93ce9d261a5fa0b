package regression

import (
	"fmt"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/options"
)

// DefaultMaxCondition is the default upper bound on the condition number of
// the design matrix X, intercept column included.
const DefaultMaxCondition = 1e14

// OLSConfig holds the numerical settings of the OLS fitter.
type OLSConfig struct {
	// MaxCondition rejects designs whose condition number exceeds it.
	// Zero disables the check; only rank-deficient designs are rejected then.
	MaxCondition float64
}

// defaultOLSConfig returns the configuration used by NewOLS without options.
func defaultOLSConfig() OLSConfig {
	return OLSConfig{
		MaxCondition: DefaultMaxCondition,
	}
}

// OLSOption is a functional option for OLSConfig.
type OLSOption = options.Option[*OLSConfig]

// WithMaxCondition sets the condition-number limit for the design matrix.
func WithMaxCondition(limit float64) OLSOption {
	return options.New(func(cfg *OLSConfig) error {
		if limit < 0 {
			return fmt.Errorf("%w: max condition must be non-negative, got %g", errs.ErrInvalidOption, limit)
		}
		cfg.MaxCondition = limit

		return nil
	})
}
