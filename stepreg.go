// Package stepreg selects a subset of predictors for a linear regression by
// adaptive bidirectional stepwise search.
//
// A selection repeatedly fits ordinary-least-squares models, adds the most
// significant excluded feature and removes the least significant included
// feature, relaxing or tightening the inclusion p-value threshold until the
// selected set holds between a minimum and a maximum number of features.
//
// # Core Features
//
//   - Forward and backward steps driven by coefficient p-values
//   - Adaptive inclusion threshold in [0.01, 0.10], always a multiple of 0.01
//   - Prefix truncation when too many features pass the threshold
//   - Early stop on fit quality (multiple correlation above 0.9)
//   - Pluggable fitter (gonum-based OLS by default) with a subset cache
//   - Optional parallel forward step with deterministic results
//   - CSV input with transparent Zstd, S2 and LZ4 decompression
//
// # Basic Usage
//
// Selecting from in-memory columns:
//
//	import "github.com/arloliu/stepreg"
//
//	res, err := stepreg.Select(
//	    []string{"price", "season", "promo"},
//	    [][]float64{price, season, promo},
//	    sales,
//	    selector.WithMinVars(1),
//	    selector.WithMaxVars(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Features, res.Model.RSquared)
//
// Selecting from a compressed CSV file:
//
//	res, err := stepreg.SelectFile("sales.csv.zst", "sales", selector.WithMinVars(2))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the selector and
// dataset packages. For fine-grained control, such as reusing a Selector or
// observing every pass, use the selector package directly.
package stepreg

import (
	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/selector"
)

// Select runs a stepwise selection over named in-memory columns.
//
// Candidates are scanned in the order of names, which decides ties between
// equally significant features.
//
// Parameters:
//   - names: Candidate feature names, unique and non-empty
//   - columns: Candidate values, one slice per name, all of len(target)
//   - target: Response values
//   - opts: Selector options (see selector.With* functions)
//
// Returns:
//   - *selector.Result: Selected features, final model and threshold
//   - error: Frame construction, option, fit or convergence errors
//
// Example:
//
//	res, err := stepreg.Select(names, columns, y, selector.WithMaxVars(5))
func Select(names []string, columns [][]float64, target []float64, opts ...selector.Option) (*selector.Result, error) {
	frame, err := dataset.NewFrame(names, columns)
	if err != nil {
		return nil, err
	}

	return selector.Select(frame, target, opts...)
}

// SelectFrame runs a stepwise selection over every column of frame.
func SelectFrame(frame *dataset.Frame, target []float64, opts ...selector.Option) (*selector.Result, error) {
	return selector.Select(frame, target, opts...)
}

// SelectFile loads a CSV table (optionally .zst, .s2 or .lz4 compressed),
// splits out the target column and selects among the remaining columns.
//
// Parameters:
//   - path: Table file; the compression is inferred from the extension
//   - target: Name of the response column
//   - opts: Selector options
//
// Returns:
//   - *selector.Result: Selected features, final model and threshold
//   - error: Load, parse, option, fit or convergence errors
func SelectFile(path string, target string, opts ...selector.Option) (*selector.Result, error) {
	frame, y, err := dataset.LoadFile(path, target)
	if err != nil {
		return nil, err
	}

	return selector.Select(frame, y, opts...)
}
