package dataset

import (
	"testing"

	"github.com/arloliu/stepreg/errs"
	"github.com/stretchr/testify/require"
)

func newTestFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := NewFrame(
		[]string{"x1", "x2", "x3"},
		[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	)
	require.NoError(t, err)

	return f
}

func TestNewFrame(t *testing.T) {
	f := newTestFrame(t)

	require.Equal(t, 3, f.Rows())
	require.Equal(t, 3, f.Len())
	require.Equal(t, []string{"x1", "x2", "x3"}, f.Names())
	require.True(t, f.Has("x2"))
	require.False(t, f.Has("x4"))

	col, ok := f.Column("x3")
	require.True(t, ok)
	require.Equal(t, []float64{7, 8, 9}, col)

	_, ok = f.Column("nope")
	require.False(t, ok)
}

func TestNewFrame_NamesAreCopied(t *testing.T) {
	f := newTestFrame(t)
	names := f.Names()
	names[0] = "mutated"
	require.Equal(t, "x1", f.Names()[0])
}

func TestNewFrame_Errors(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		columns [][]float64
		err     error
	}{
		{"duplicate name", []string{"a", "a"}, [][]float64{{1}, {2}}, errs.ErrDuplicateColumn},
		{"empty name", []string{"a", ""}, [][]float64{{1}, {2}}, errs.ErrInvalidColumnName},
		{"ragged columns", []string{"a", "b"}, [][]float64{{1, 2}, {3}}, errs.ErrColumnLength},
		{"name count mismatch", []string{"a"}, [][]float64{{1}, {2}}, errs.ErrLengthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrame(tt.names, tt.columns)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewFrame_Empty(t *testing.T) {
	f, err := NewFrame(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, f.Len())
	require.Equal(t, 0, f.Rows())
	require.Empty(t, f.Names())
}

func TestFrame_Columns(t *testing.T) {
	f := newTestFrame(t)

	cols, err := f.Columns([]string{"x3", "x1"})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "x3", cols[0].Name)
	require.Equal(t, []float64{7, 8, 9}, cols[0].Values)
	require.Equal(t, "x1", cols[1].Name)

	_, err = f.Columns([]string{"x1", "missing"})
	require.ErrorIs(t, err, errs.ErrUnknownColumn)

	empty, err := f.Columns(nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestFrame_Drop(t *testing.T) {
	f := newTestFrame(t)

	dropped, err := f.Drop("x2")
	require.NoError(t, err)
	require.Equal(t, []string{"x1", "x3"}, dropped.Names())
	require.Equal(t, 3, f.Len(), "original frame is unchanged")

	_, err = f.Drop("missing")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}
