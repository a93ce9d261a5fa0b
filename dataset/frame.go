package dataset

import (
	"fmt"
	"slices"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/collision"
	"github.com/arloliu/stepreg/internal/hash"
	"github.com/arloliu/stepreg/regression"
)

// Frame is an immutable table of named float64 columns sharing one row count.
type Frame struct {
	names   []string
	columns [][]float64
	index   map[uint64]int // column id → position
	rows    int
}

// NewFrame builds a frame from parallel name and column slices.
//
// The column slices are referenced, not copied; callers must not modify them
// afterwards.
//
// Parameters:
//   - names: Column names, non-empty and unique
//   - columns: Column values, all of the same length
//
// Returns:
//   - *Frame: The frame
//   - error: errs.ErrInvalidColumnName, errs.ErrDuplicateColumn,
//     errs.ErrHashCollision, errs.ErrColumnLength or errs.ErrLengthMismatch
func NewFrame(names []string, columns [][]float64) (*Frame, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", errs.ErrLengthMismatch, len(names), len(columns))
	}

	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}

	tracker := collision.NewTracker(len(names))
	index := make(map[uint64]int, len(names))
	for i, name := range names {
		id, err := tracker.Track(name)
		if err != nil {
			return nil, err
		}
		if len(columns[i]) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", errs.ErrColumnLength, name, len(columns[i]), rows)
		}
		index[id] = i
	}

	return &Frame{
		names:   slices.Clone(names),
		columns: slices.Clone(columns),
		index:   index,
		rows:    rows,
	}, nil
}

// Names returns a copy of the column names in frame order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// Rows returns the number of observations.
func (f *Frame) Rows() int {
	return f.rows
}

// Len returns the number of columns.
func (f *Frame) Len() int {
	return len(f.names)
}

func (f *Frame) position(name string) (int, bool) {
	pos, ok := f.index[hash.ID(name)]
	if !ok || f.names[pos] != name {
		return 0, false
	}

	return pos, true
}

// Has reports whether the frame contains a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.position(name)
	return ok
}

// Column returns the values of the named column. The slice must not be modified.
func (f *Frame) Column(name string) ([]float64, bool) {
	pos, ok := f.position(name)
	if !ok {
		return nil, false
	}

	return f.columns[pos], true
}

// Columns returns the named columns, in the requested order, as fitter input.
func (f *Frame) Columns(names []string) ([]regression.Column, error) {
	out := make([]regression.Column, len(names))
	for i, name := range names {
		pos, ok := f.position(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
		}
		out[i] = regression.Column{Name: name, Values: f.columns[pos]}
	}

	return out, nil
}

// Drop returns a new frame without the named columns.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	skip := make(map[int]struct{}, len(names))
	for _, name := range names {
		pos, ok := f.position(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
		}
		skip[pos] = struct{}{}
	}

	keptNames := make([]string, 0, len(f.names)-len(skip))
	keptCols := make([][]float64, 0, len(f.names)-len(skip))
	for i, name := range f.names {
		if _, ok := skip[i]; ok {
			continue
		}
		keptNames = append(keptNames, name)
		keptCols = append(keptCols, f.columns[i])
	}

	return NewFrame(keptNames, keptCols)
}
