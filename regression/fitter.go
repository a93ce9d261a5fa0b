package regression

// InterceptName is the coefficient name of the intercept term added to every fit.
const InterceptName = "const"

// Column is a named predictor column. Values must have one entry per observation.
type Column struct {
	Name   string
	Values []float64
}

// Fitter fits a linear model of target on the given predictor columns plus an intercept.
//
// Implementations must not retain or modify target or column values.
type Fitter interface {
	Fit(target []float64, columns []Column) (*Model, error)
}

// FitterFunc adapts an ordinary function to the Fitter interface.
type FitterFunc func(target []float64, columns []Column) (*Model, error)

// Fit calls f(target, columns).
func (f FitterFunc) Fit(target []float64, columns []Column) (*Model, error) {
	return f(target, columns)
}

// ColumnNames returns the names of columns in order.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}

	return names
}
