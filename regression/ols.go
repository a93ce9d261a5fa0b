package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/options"
	"github.com/arloliu/stepreg/internal/pool"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// OLS is an ordinary-least-squares Fitter with an intercept.
//
// OLS holds no per-fit state and is safe for concurrent use.
type OLS struct {
	cfg OLSConfig
}

var _ Fitter = (*OLS)(nil)

// NewOLS creates an OLS fitter with default settings.
func NewOLS() *OLS {
	return &OLS{cfg: defaultOLSConfig()}
}

// NewOLSWithOptions creates an OLS fitter with custom settings.
//
// Parameters:
//   - opts: Optional configuration functions (see WithMaxCondition)
//
// Returns:
//   - *OLS: The configured fitter
//   - error: An invalid option value
func NewOLSWithOptions(opts ...OLSOption) (*OLS, error) {
	cfg := defaultOLSConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &OLS{cfg: cfg}, nil
}

// Fit regresses target on columns plus an intercept.
//
// Parameters:
//   - target: Observed response, one value per observation
//   - columns: Predictor columns, each the same length as target (may be empty)
//
// Returns:
//   - *Model: Coefficients, standard errors, p-values and goodness-of-fit
//   - error: errs.ErrLengthMismatch, errs.ErrNonFinite, errs.ErrInsufficientData
//     or errs.ErrSingularMatrix
func (o *OLS) Fit(target []float64, columns []Column) (*Model, error) {
	n := len(target)
	p := len(columns) + 1

	if err := validateInput(target, columns); err != nil {
		return nil, err
	}
	if n <= p {
		return nil, fmt.Errorf("%w: %d observations for %d coefficients", errs.ErrInsufficientData, n, p)
	}

	data, release := pool.GetFloat64Slice(n * p)
	defer release()
	for i := range n {
		row := data[i*p : (i+1)*p]
		row[0] = 1
		for j, c := range columns {
			row[j+1] = c.Values[i]
		}
	}
	x := mat.NewDense(n, p, data)
	y := mat.NewVecDense(n, target)

	var qr mat.QR
	qr.Factorize(x)
	cond := qr.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		return nil, fmt.Errorf("%w: design matrix is rank deficient (condition number %.3g)", errs.ErrSingularMatrix, cond)
	}
	if o.cfg.MaxCondition > 0 && cond > o.cfg.MaxCondition {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g", errs.ErrSingularMatrix, cond, o.cfg.MaxCondition)
	}

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		var c mat.Condition
		if errors.As(err, &c) {
			return nil, fmt.Errorf("%w: %v", errs.ErrSingularMatrix, err)
		}

		return nil, err
	}

	// (XᵀX)⁻¹ = R⁻¹R⁻ᵀ; only its diagonal is needed.
	unscaled, err := inverseGramDiag(&qr, p)
	if err != nil {
		return nil, err
	}

	predicted, releasePred := pool.GetFloat64Slice(n)
	defer releasePred()
	var ssr float64
	for i := range n {
		row := data[i*p : (i+1)*p]
		var yhat float64
		for j := range p {
			yhat += row[j] * beta.AtVec(j)
		}
		predicted[i] = yhat
		resid := target[i] - yhat
		ssr += resid * resid
	}

	dfResid := n - p
	sigma2 := ssr / float64(dfResid)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dfResid)}

	model := &Model{
		Names:        make([]string, p),
		Coefficients: make([]float64, p),
		StdErrors:    make([]float64, p),
		TValues:      make([]float64, p),
		PValues:      make([]float64, p),
		NObs:         n,
		DFResid:      dfResid,
	}
	model.Names[0] = InterceptName
	for j, c := range columns {
		model.Names[j+1] = c.Name
	}

	for j := range p {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * unscaled[j])
		model.Coefficients[j] = b
		model.StdErrors[j] = se
		model.TValues[j], model.PValues[j] = tTest(b, se, tdist)
	}

	model.RSquared = calculateRSquared(target, predicted)
	model.AdjRSquared = adjustRSquared(model.RSquared, n, dfResid)
	model.RMSE = calculateRMSE(target, predicted)

	return model, nil
}

// inverseGramDiag returns the diagonal of (XᵀX)⁻¹ from the R factor of X.
func inverseGramDiag(qr *mat.QR, p int) ([]float64, error) {
	var full mat.Dense
	qr.RTo(&full)

	r := mat.NewTriDense(p, mat.Upper, nil)
	for i := range p {
		for j := i; j < p; j++ {
			r.SetTri(i, j, full.At(i, j))
		}
	}

	var rinv mat.TriDense
	if err := rinv.InverseTri(r); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSingularMatrix, err)
	}

	diag := make([]float64, p)
	for j := range p {
		var sum float64
		for k := j; k < p; k++ {
			v := rinv.At(j, k)
			sum += v * v
		}
		diag[j] = sum
	}

	return diag, nil
}

// tTest returns the t statistic of coefficient b and its two-sided p-value.
// A zero standard error yields an infinite t and p = 0, or NaN for b = 0.
func tTest(b, se float64, dist distuv.StudentsT) (tValue, pValue float64) {
	if se == 0 {
		if b == 0 {
			return math.NaN(), math.NaN()
		}

		return math.Copysign(math.Inf(1), b), 0
	}

	tValue = b / se

	return tValue, 2 * dist.Survival(math.Abs(tValue))
}

// validateInput checks column lengths and rejects NaN or Inf values.
func validateInput(target []float64, columns []Column) error {
	n := len(target)
	if n == 0 {
		return fmt.Errorf("%w: empty target", errs.ErrInsufficientData)
	}
	for i, v := range target {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: target[%d]=%v", errs.ErrNonFinite, i, v)
		}
	}
	for _, c := range columns {
		if len(c.Values) != n {
			return fmt.Errorf("%w: column %q has %d values, target has %d", errs.ErrLengthMismatch, c.Name, len(c.Values), n)
		}
		for i, v := range c.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d]=%v", errs.ErrNonFinite, c.Name, i, v)
			}
		}
	}

	return nil
}
