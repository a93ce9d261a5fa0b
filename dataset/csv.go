package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/stepreg/compress"
	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/format"
	"github.com/arloliu/stepreg/internal/pool"
)

// ReadCSV parses a CSV table with a header row and splits out the target column.
//
// Parameters:
//   - r: CSV source; the first record is the header
//   - target: Name of the response column
//
// Returns:
//   - *Frame: All non-target columns, in file order
//   - []float64: The target column
//   - error: Parse errors, errs.ErrUnknownColumn if target is missing,
//     errs.ErrEmptyFrame if there are no data rows
func ReadCSV(r io.Reader, target string) (*Frame, []float64, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: missing header", errs.ErrEmptyFrame)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	header = cloneHeader(header)

	targetIdx := -1
	for i, name := range header {
		if name == target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, nil, fmt.Errorf("%w: target %q not in header", errs.ErrUnknownColumn, target)
	}

	columns := make([][]float64, len(header))
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		for i, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d column %q: %q", errs.ErrInvalidValue, line, header[i], cell)
			}
			columns[i] = append(columns[i], v)
		}
	}
	if line == 1 {
		return nil, nil, fmt.Errorf("%w: no data rows", errs.ErrEmptyFrame)
	}

	names := make([]string, 0, len(header)-1)
	features := make([][]float64, 0, len(header)-1)
	for i, name := range header {
		if i == targetIdx {
			continue
		}
		names = append(names, name)
		features = append(features, columns[i])
	}

	frame, err := NewFrame(names, features)
	if err != nil {
		return nil, nil, err
	}

	return frame, columns[targetIdx], nil
}

// DecodeCSV decompresses data with the codec for ct and parses the result with ReadCSV.
func DecodeCSV(data []byte, ct format.CompressionType, target string) (*Frame, []float64, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decompress %s table: %w", ct, err)
	}

	return ReadCSV(bytes.NewReader(raw), target)
}

// LoadFile reads a CSV table from path, decompressing it according to the file extension.
func LoadFile(path string, target string) (*Frame, []float64, error) {
	return LoadFileAs(path, format.CompressionFromPath(path), target)
}

// LoadFileAs reads a CSV table from path compressed with ct, whatever its extension.
func LoadFileAs(path string, ct format.CompressionType, target string) (*Frame, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	frame, y, err := DecodeCSV(buf.Bytes(), ct, target)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}

	return frame, y, nil
}

// WriteCSV writes the target column followed by every frame column, with a header row.
func WriteCSV(w io.Writer, f *Frame, targetName string, target []float64) error {
	if len(target) != f.Rows() && f.Len() > 0 {
		return fmt.Errorf("%w: target has %d rows, frame has %d", errs.ErrLengthMismatch, len(target), f.Rows())
	}

	cw := csv.NewWriter(w)
	record := make([]string, 0, f.Len()+1)
	record = append(record, targetName)
	record = append(record, f.names...)
	if err := cw.Write(record); err != nil {
		return err
	}

	for i := range target {
		record = record[:0]
		record = append(record, formatCell(target[i]))
		for _, col := range f.columns {
			record = append(record, formatCell(col[i]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func cloneHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}

	return out
}

// parseCell parses one numeric cell. Empty, NA and NaN cells are missing values.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(cell, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
