package selector

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/options"
	"github.com/arloliu/stepreg/regression"
)

// Result is the outcome of one selection.
type Result struct {
	// Features are the selected feature names in insertion order.
	Features []string
	// Included holds the selected features with their inclusion statistics.
	Included Included
	// Model is the last fit produced by the loop. It is nil for a target
	// containing NaN.
	Model *regression.Model
	// ThresholdIn is the inclusion threshold active at termination, or NaN
	// for a target containing NaN.
	ThresholdIn float64
	// Iterations is the number of passes run.
	Iterations int
	// Truncated reports that the over-capacity path cut the included set.
	Truncated bool
	// Fits is the number of fits delegated to the fitter.
	Fits uint64
	// CacheHits is the number of fits answered from the subset cache.
	CacheHits uint64
}

// Selector runs stepwise selections with a fixed configuration.
//
// A Selector is safe for concurrent use; every Select call has its own state.
type Selector struct {
	cfg Config
}

// New creates a Selector.
//
// Parameters:
//   - opts: Optional configuration functions (see With* options)
//
// Returns:
//   - *Selector: The configured selector
//   - error: errs.ErrInvalidOption for an invalid option value or min vars above max vars
func New(opts ...Option) (*Selector, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Selector{cfg: cfg}, nil
}

// Config returns a copy of the selector settings.
func (s *Selector) Config() Config {
	return s.cfg
}

// Select runs a selection with a Selector built from opts.
func Select(frame *dataset.Frame, target []float64, opts ...Option) (*Result, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return s.Select(frame, target)
}

// Select chooses a subset of the frame's columns for predicting target.
//
// Parameters:
//   - frame: Candidate features; candidates are scanned in frame column order
//   - target: Response values, one per frame row
//
// Returns:
//   - *Result: The selected features, the final model and threshold
//   - error: *FitError for a fitter failure, errs.ErrNotConverged when the pass
//     cap is reached, errs.ErrUnknownColumn or errs.ErrLengthMismatch for bad input
func (s *Selector) Select(frame *dataset.Frame, target []float64) (*Result, error) {
	return s.SelectContext(context.Background(), frame, target)
}

// SelectContext is Select with cancellation, checked between passes and
// between parallel forward-step fits.
func (s *Selector) SelectContext(ctx context.Context, frame *dataset.Frame, target []float64) (*Result, error) {
	for _, v := range target {
		if math.IsNaN(v) {
			s.cfg.Logger.Info("target contains NaN, skipping selection")
			return &Result{Features: []string{}, ThresholdIn: math.NaN()}, nil
		}
	}
	if frame.Len() > 0 && len(target) != frame.Rows() {
		return nil, fmt.Errorf("%w: target has %d values, frame has %d rows", errs.ErrLengthMismatch, len(target), frame.Rows())
	}
	for _, name := range s.cfg.Initial {
		if !frame.Has(name) {
			return nil, fmt.Errorf("%w: initial feature %q", errs.ErrUnknownColumn, name)
		}
	}

	r := newRun(&s.cfg, frame, target)
	if err := r.seed(); err != nil {
		return nil, err
	}
	if err := r.loop(ctx); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// newRun creates the per-call loop state.
func newRun(cfg *Config, frame *dataset.Frame, target []float64) *run {
	r := &run{
		cfg:          cfg,
		frame:        frame,
		target:       target,
		fitter:       regression.NewCachedFitter(cfg.Fitter),
		log:          cfg.Logger,
		thresholdIn:  cfg.ThresholdIn,
		thresholdOut: cfg.ThresholdOut,
		originalIn:   cfg.ThresholdIn,
		onetime:      true,
	}
	if !cfg.Legacy {
		r.thresholdIn = thresholdCeiling
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}

	return r
}

func (r *run) result() *Result {
	return &Result{
		Features:    r.included.Names(),
		Included:    r.included.Clone(),
		Model:       r.model,
		ThresholdIn: r.thresholdIn,
		Iterations:  r.pass,
		Truncated:   r.truncated,
		Fits:        r.fitter.Misses(),
		CacheHits:   r.fitter.Hits(),
	}
}
