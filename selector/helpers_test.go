package selector

import (
	"math"
	"slices"
	"testing"

	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/regression"
	"github.com/stretchr/testify/require"
)

// script describes a fake fitter: the p-value of each predictor and the R²
// are pure functions of the fitted subset.
type script struct {
	pValue   func(subset []string, name string) float64
	rSquared func(subset []string) float64
}

func (s script) fitter() regression.Fitter {
	return regression.FitterFunc(func(target []float64, columns []regression.Column) (*regression.Model, error) {
		names := regression.ColumnNames(columns)
		p := len(names) + 1
		m := &regression.Model{
			Names:        append([]string{regression.InterceptName}, names...),
			Coefficients: make([]float64, p),
			StdErrors:    make([]float64, p),
			TValues:      make([]float64, p),
			PValues:      make([]float64, p),
			NObs:         len(target),
			DFResid:      len(target) - p,
		}
		for i, name := range names {
			m.PValues[i+1] = s.pValue(names, name)
		}
		if s.rSquared != nil {
			m.RSquared = s.rSquared(names)
		}

		return m, nil
	})
}

// fixedP returns a script where every feature has a constant p-value.
func fixedP(values map[string]float64) script {
	return script{pValue: func(_ []string, name string) float64 { return values[name] }}
}

// sizeR2 returns an R² function that depends on subset size only.
func sizeR2(base, step float64) func([]string) float64 {
	return func(subset []string) float64 { return base + step*float64(len(subset)) }
}

// zeroFrame builds a frame of constant columns; scripted fitters ignore the values.
func zeroFrame(t *testing.T, names ...string) (*dataset.Frame, []float64) {
	t.Helper()
	const rows = 8
	columns := make([][]float64, len(names))
	for i := range columns {
		columns[i] = make([]float64, rows)
	}
	frame, err := dataset.NewFrame(names, columns)
	require.NoError(t, err)

	return frame, make([]float64, rows)
}

// recorder collects observer events.
type recorder struct {
	events []Event
}

func (r *recorder) observe(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofKind(kind EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

// requireInvariants checks the threshold range and record alignment of every event.
func requireInvariants(t *testing.T, events []Event) {
	t.Helper()
	for _, e := range events {
		require.GreaterOrEqual(t, e.ThresholdIn, thresholdFloor, "pass %d", e.Pass)
		require.LessOrEqual(t, e.ThresholdIn, thresholdCeiling, "pass %d", e.Pass)
		require.InDelta(t, math.Round(e.ThresholdIn*100), e.ThresholdIn*100, 1e-9, "pass %d", e.Pass)

		names := e.Included.Names()
		require.Len(t, e.Included.PValues(), len(names))
		require.Len(t, e.Included.RValues(), len(names))
		require.Equal(t, len(names), len(slices.Compact(slices.Sorted(slices.Values(names)))), "duplicate in %v", names)
	}
}

// scenarioData returns n observations of y = 5 + 3x + e with e alternating
// ±0.5, plus two noise columns orthogonal to the intercept, x and e.
func scenarioData(n int) (y, x, z, w []float64) {
	y = make([]float64, n)
	x = make([]float64, n)
	e := make([]float64, n)
	ones := make([]float64, n)
	rawZ := make([]float64, n)
	rawW := make([]float64, n)
	for i := range n {
		x[i] = float64(i)
		e[i] = 0.5
		if i%2 == 1 {
			e[i] = -0.5
		}
		y[i] = 5 + 3*x[i] + e[i]
		ones[i] = 1
		rawZ[i] = float64((i*3)%7) - 3
		rawW[i] = float64((i*5)%11) - 5
	}
	z = gramSchmidt(rawZ, ones, x, e)
	w = gramSchmidt(rawW, ones, x, e, z)

	return y, x, z, w
}

// gramSchmidt removes from v its projection onto the span of basis.
func gramSchmidt(v []float64, basis ...[]float64) []float64 {
	var ortho [][]float64
	for _, b := range basis {
		u := slices.Clone(b)
		for _, q := range ortho {
			removeProjection(u, q)
		}
		ortho = append(ortho, u)
	}
	out := slices.Clone(v)
	for _, q := range ortho {
		removeProjection(out, q)
	}

	return out
}

func removeProjection(v, q []float64) {
	var dot, norm float64
	for i := range v {
		dot += v[i] * q[i]
		norm += q[i] * q[i]
	}
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] -= dot / norm * q[i]
	}
}
