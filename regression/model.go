package regression

import (
	"fmt"
	"math"
	"strings"
)

// Model is the result of one linear fit.
//
// All per-coefficient slices are aligned with Names, whose first entry is
// always InterceptName. A Model is immutable once returned by a Fitter and may
// be shared between goroutines.
type Model struct {
	// Names lists the coefficient names, intercept first.
	Names []string
	// Coefficients contains the fitted parameters.
	Coefficients []float64
	// StdErrors contains the coefficient standard errors.
	StdErrors []float64
	// TValues contains the t statistics (coefficient / standard error).
	TValues []float64
	// PValues contains the two-sided p-values of the t statistics.
	PValues []float64
	// RSquared is the coefficient of determination (0-1).
	RSquared float64
	// AdjRSquared is R² adjusted for the number of predictors.
	AdjRSquared float64
	// RMSE is the root mean square error of the residuals.
	RMSE float64
	// NObs is the number of observations.
	NObs int
	// DFResid is the residual degrees of freedom (NObs - len(Names)).
	DFResid int
}

// index returns the position of name in m.Names, or -1.
func (m *Model) index(name string) int {
	for i, n := range m.Names {
		if n == name {
			return i
		}
	}

	return -1
}

// PValue returns the p-value of the named coefficient.
func (m *Model) PValue(name string) (float64, bool) {
	i := m.index(name)
	if i < 0 {
		return math.NaN(), false
	}

	return m.PValues[i], true
}

// Coefficient returns the fitted value of the named coefficient.
func (m *Model) Coefficient(name string) (float64, bool) {
	i := m.index(name)
	if i < 0 {
		return math.NaN(), false
	}

	return m.Coefficients[i], true
}

// Predictors returns the coefficient names without the intercept.
func (m *Model) Predictors() []string {
	if len(m.Names) == 0 {
		return nil
	}

	return m.Names[1:]
}

// WorstPredictor returns the non-intercept coefficient with the largest p-value.
//
// NaN p-values are skipped. Ties resolve to the earliest coefficient. ok is
// false when the model has no predictor with a finite p-value.
func (m *Model) WorstPredictor() (name string, pValue float64, ok bool) {
	best := -1
	for i := 1; i < len(m.PValues); i++ {
		p := m.PValues[i]
		if math.IsNaN(p) {
			continue
		}
		if best < 0 || p > m.PValues[best] {
			best = i
		}
	}
	if best < 0 {
		return "", math.NaN(), false
	}

	return m.Names[best], m.PValues[best], true
}

// MultipleR returns the multiple correlation coefficient √R².
func (m *Model) MultipleR() float64 {
	return math.Sqrt(math.Max(m.RSquared, 0))
}

// RValue returns √R² with R² first rounded to three decimals.
//
// This is the fit-quality figure recorded for each included feature and
// compared against the 0.9 quality bound during selection.
func (m *Model) RValue() float64 {
	r2 := math.Round(m.RSquared*1000) / 1000

	return math.Sqrt(math.Max(r2, 0))
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("Model{")
	for i, name := range m.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %.4g (p=%.3g)", name, m.Coefficients[i], m.PValues[i])
	}
	fmt.Fprintf(&sb, "; R²: %.4f, AdjR²: %.4f, RMSE: %.4g, N: %d}", m.RSquared, m.AdjRSquared, m.RMSE, m.NObs)

	return sb.String()
}
