package stepreg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/stepreg/compress"
	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/format"
	"github.com/arloliu/stepreg/selector"
	"github.com/stretchr/testify/require"
)

// linearData returns y = 2 + 4x plus a small wobble, and a column b
// orthogonal to the intercept, x and the wobble.
func linearData() (x, b, y []float64) {
	x = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	b = []float64{1, -1, -1, 1, 1, -1, -1, 1, 1, -1, -1, 1}
	wobble := []float64{0.2, 0.2, -0.2, -0.2, 0.2, 0.2, -0.2, -0.2, 0.2, 0.2, -0.2, -0.2}
	y = make([]float64, len(x))
	for i := range y {
		y[i] = 2 + 4*x[i] + wobble[i]
	}

	return x, b, y
}

func TestSelect(t *testing.T) {
	x, b, y := linearData()

	res, err := Select([]string{"b", "x"}, [][]float64{b, x}, y,
		selector.WithMinVars(1),
		selector.WithMaxVars(2),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Features)
	require.InDelta(t, 4, res.Model.Coefficients[1], 0.05)
}

func TestSelect_Errors(t *testing.T) {
	x, b, y := linearData()

	_, err := Select([]string{"x", "x"}, [][]float64{x, b}, y)
	require.ErrorIs(t, err, errs.ErrDuplicateColumn)

	_, err = Select([]string{"x"}, [][]float64{x}, y, selector.WithMaxIterations(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestSelectFrame(t *testing.T) {
	x, b, y := linearData()
	frame, err := dataset.NewFrame([]string{"x", "b"}, [][]float64{x, b})
	require.NoError(t, err)

	res, err := SelectFrame(frame, y, selector.WithMinVars(1), selector.WithMaxVars(2))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Features)
}

func TestSelectFile(t *testing.T) {
	x, b, y := linearData()
	frame, err := dataset.NewFrame([]string{"x", "b"}, [][]float64{x, b})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, frame, "y", y))

	codec, err := compress.GetCodec(format.CompressionS2)
	require.NoError(t, err)
	payload, err := codec.Compress(buf.Bytes())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.csv.s2")
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	res, err := SelectFile(path, "y", selector.WithMinVars(1), selector.WithMaxVars(2))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Features)

	_, err = SelectFile(path, "missing")
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
}
