package selector

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/regression"
	"golang.org/x/sync/errgroup"
)

// run is the state of one selection call.
type run struct {
	cfg    *Config
	frame  *dataset.Frame
	target []float64
	fitter *regression.CachedFitter
	log    *slog.Logger

	included     Included
	model        *regression.Model
	thresholdIn  float64
	thresholdOut float64
	originalIn   float64

	// lower: the threshold was raised because the set stayed under MinVars.
	lower bool
	// dropped: a backward removal happened at some point in this call.
	dropped bool
	// onetime: the reset to the configured threshold is still available.
	onetime bool
	// rcond: the over-capacity path truncated on fit quality.
	rcond     bool
	truncated bool
	pass      int
}

// candidate is the forward-step fit for one excluded feature.
type candidate struct {
	pValue float64
	rValue float64
}

// fit fits target on the named columns plus an intercept.
func (r *run) fit(names []string) (*regression.Model, error) {
	columns, err := r.frame.Columns(names)
	if err != nil {
		return nil, err
	}
	model, err := r.fitter.Fit(r.target, columns)
	if err != nil {
		return nil, &FitError{Columns: slices.Clone(names), Err: err}
	}

	return model, nil
}

// seed builds the records of the initial features from one joint fit.
func (r *run) seed() error {
	if len(r.cfg.Initial) == 0 {
		return nil
	}

	model, err := r.fit(r.cfg.Initial)
	if err != nil {
		return err
	}
	for _, name := range r.cfg.Initial {
		p, _ := model.PValue(name)
		r.included.add(Record{Name: name, PValue: p, RValue: model.RValue()})
	}
	r.model = model

	return nil
}

// loop runs passes until the set is stable or the pass cap is reached.
func (r *run) loop(ctx context.Context) error {
	r.log.Info("selection started",
		"threshold_in", r.thresholdIn,
		"threshold_out", r.thresholdOut,
		"min_vars", r.cfg.MinVars,
		"max_vars", r.cfg.MaxVars,
		"legacy", r.cfg.Legacy,
	)

	for {
		if r.pass >= r.cfg.MaxIterations {
			return fmt.Errorf("%w: %d passes, threshold_in %.2f, %d included",
				errs.ErrNotConverged, r.pass, r.thresholdIn, r.included.Len())
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		r.pass++

		changed, err := r.forward(ctx)
		if err != nil {
			return err
		}
		removed, err := r.backward()
		if err != nil {
			return err
		}
		changed = changed || removed

		var done bool
		if r.cfg.Legacy {
			done = r.decideLegacy(changed)
		} else {
			done, err = r.decide(changed)
			if err != nil {
				return err
			}
		}
		r.emit(EventPass, done, 0)

		if done {
			r.log.Info("selection finished",
				"features", r.included.Names(),
				"threshold_in", r.thresholdIn,
				"passes", r.pass,
			)

			return nil
		}
	}
}

// forward adds the excluded feature with the smallest p-value if it is below thresholdIn.
func (r *run) forward(ctx context.Context) (bool, error) {
	names := r.excluded()
	if len(names) == 0 {
		return false, nil
	}

	results, err := r.fitCandidates(ctx, names)
	if err != nil {
		return false, err
	}

	// Strict comparison: the first candidate in column order wins ties.
	best := -1
	for i, c := range results {
		if math.IsNaN(c.pValue) {
			continue
		}
		if best < 0 || c.pValue < results[best].pValue {
			best = i
		}
	}
	if best < 0 || !(results[best].pValue < r.thresholdIn) {
		return false, nil
	}

	rec := Record{Name: names[best], PValue: results[best].pValue, RValue: results[best].rValue}
	r.included.add(rec)
	r.log.Info("add feature", "feature", rec.Name, "p_value", rec.PValue, "r_value", rec.RValue)

	return true, nil
}

// excluded returns the frame columns not yet included, in frame order.
func (r *run) excluded() []string {
	all := r.frame.Names()
	out := all[:0]
	for _, name := range all {
		if !r.included.Contains(name) {
			out = append(out, name)
		}
	}

	return out
}

// fitCandidates fits Included ∪ {name} for every name, in parallel when configured.
// results[i] belongs to names[i].
func (r *run) fitCandidates(ctx context.Context, names []string) ([]candidate, error) {
	base := r.included.Names()
	results := make([]candidate, len(names))

	fitOne := func(i int) error {
		subset := make([]string, len(base)+1)
		copy(subset, base)
		subset[len(base)] = names[i]

		model, err := r.fit(subset)
		if err != nil {
			return err
		}
		p, _ := model.PValue(names[i])
		results[i] = candidate{pValue: p, rValue: model.RValue()}

		return nil
	}

	if r.cfg.Concurrency <= 1 || len(names) < 2 {
		for i := range names {
			if err := fitOne(i); err != nil {
				return nil, err
			}
		}

		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i := range names {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			return fitOne(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// backward fits the included set and removes its worst feature if its p-value exceeds thresholdOut.
// The fit becomes the current model.
func (r *run) backward() (bool, error) {
	model, err := r.fit(r.included.Names())
	if err != nil {
		return false, err
	}
	r.model = model

	name, p, ok := model.WorstPredictor()
	if !ok || !(p > r.thresholdOut) {
		return false, nil
	}

	idx := r.included.Index(name)
	if idx < 0 {
		return false, fmt.Errorf("%w: fitted predictor %q is not included", errs.ErrUnknownColumn, name)
	}
	r.included.removeAt(idx)
	r.dropped = true
	r.log.Info("drop feature", "feature", name, "p_value", p)

	return true, nil
}

// decide applies the size and threshold rules after a pass and reports whether the loop is done.
func (r *run) decide(changed bool) (bool, error) {
	n := r.included.Len()
	switch {
	case n >= r.cfg.MinVars && n <= r.cfg.MaxVars && !changed:
		return true, nil
	case n > r.cfg.MaxVars && !r.dropped:
		return true, r.tighten()
	case r.dropped:
		changed = r.afterDrop(changed)
	}

	if !changed {
		return r.stall(), nil
	}

	return false, nil
}

// afterDrop handles a pass that ended out of bounds or changed once a removal has happened.
// It returns the updated changed flag.
func (r *run) afterDrop(changed bool) bool {
	n := r.included.Len()
	switch {
	case r.thresholdIn == thresholdCeiling && r.onetime:
		r.onetime = false
		r.setThreshold(r.originalIn, "reset to configured threshold")
		r.restart()

		return true
	case n > r.cfg.MaxVars && r.thresholdIn != thresholdFloor && !r.lower:
		r.setThreshold(lowerThreshold(r.thresholdIn), "too many features after drop")
		r.restart()

		return true
	case n >= r.cfg.MinVars && r.lower:
		if rv := r.model.RValue(); rv > qualityBound {
			r.log.Info("fit quality reached", "r_value", rv)
			return false
		}
	}

	return changed
}

// stall handles a pass without changes. It raises the threshold and restarts
// while the set is under MinVars, and reports true when the loop is done.
func (r *run) stall() bool {
	if r.included.Len() < r.cfg.MinVars && r.thresholdIn != thresholdCeiling {
		r.setThreshold(raiseThreshold(r.thresholdIn), "too few features")
		r.restart()
		r.lower = true

		return false
	}

	return true
}

// tighten lowers thresholdIn until the prefix of included features whose
// inclusion p-values pass it has an acceptable size, then truncates the set
// to that prefix and refits.
func (r *run) tighten() error {
	pValues := r.included.PValues()
	psize := math.MaxInt
	stable := false

	var mask []bool
	for psize > r.cfg.MaxVars || stable {
		r.thresholdIn = lowerThreshold(r.thresholdIn)
		next := lowerThreshold(r.thresholdIn)

		mask = belowMask(pValues, r.thresholdIn)
		psize = prefixCount(mask)
		psizeNext := prefixCount(belowMask(pValues, next))
		r.emit(EventTighten, false, psize)
		r.log.Debug("tighten threshold", "threshold_in", r.thresholdIn, "prefix", psize, "prefix_next", psizeNext)

		if psize == psizeNext && r.thresholdIn != thresholdFloor && psize != 0 && psize >= r.cfg.MinVars {
			stable = true
			continue
		}
		stable = false

		if psize >= r.cfg.MinVars && psize <= r.cfg.MaxVars {
			break
		}
		if psize < r.cfg.MinVars || r.thresholdIn == thresholdCeiling || r.thresholdIn == thresholdFloor {
			mask = belowMask(r.included.RValues(), qualityBound)
			if psize != noRelaxPrefix {
				r.thresholdIn = raiseThreshold(r.thresholdIn)
			}
			r.rcond = true
			r.log.Info("truncating on fit quality", "threshold_in", r.thresholdIn, "prefix", psize)

			break
		}
	}

	from := 0
	if r.rcond {
		from = truncationFloor
	}
	cut := firstFalse(mask, from)
	if cut < 0 {
		return nil
	}

	r.log.Info("truncate features", "dropped", r.included[cut:].Names(), "threshold_in", r.thresholdIn)
	r.included.truncate(cut)
	r.truncated = true

	model, err := r.fit(r.included.Names())
	if err != nil {
		return err
	}
	r.model = model

	return nil
}

// decideLegacy applies the earlier loop's rules after a pass.
func (r *run) decideLegacy(changed bool) bool {
	if r.included.Len() > r.cfg.MaxVars && r.thresholdIn != thresholdFloor && !r.lower {
		r.setThreshold(lowerThreshold(r.thresholdIn), "too many features")
		r.restart()
		changed = true
	}
	if r.included.Len() >= r.cfg.MinVars && r.lower {
		if rv := r.model.MultipleR(); rv > qualityBound {
			r.log.Info("fit quality reached", "r_value", rv)
			changed = false
		}
	}
	if !changed {
		return r.stall()
	}

	return false
}

func (r *run) setThreshold(t float64, reason string) {
	t = clampThreshold(t)
	r.log.Info("threshold changed", "from", r.thresholdIn, "to", t, "reason", reason)
	r.thresholdIn = t
}

// restart clears the included set so the next pass searches from scratch.
func (r *run) restart() {
	r.included.reset()
}

func (r *run) emit(kind EventKind, done bool, prefix int) {
	if r.cfg.Observer == nil {
		return
	}
	r.cfg.Observer(Event{
		Kind:        kind,
		Pass:        r.pass,
		ThresholdIn: r.thresholdIn,
		Included:    r.included.Clone(),
		Done:        done,
		Dropped:     r.dropped,
		Prefix:      prefix,
	})
}
