package selector

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/stepreg/dataset"
)

func benchFrame(b *testing.B, rows, cols int) (*dataset.Frame, []float64) {
	b.Helper()
	names := make([]string, cols)
	columns := make([][]float64, cols)
	y := make([]float64, rows)
	rng := rand.New(rand.NewPCG(7, 11))
	for j := range cols {
		names[j] = fmt.Sprintf("f%02d", j)
		columns[j] = make([]float64, rows)
		for i := range rows {
			columns[j][i] = rng.NormFloat64()
		}
	}
	for i := range rows {
		y[i] = 1 + 2*columns[0][i] - 1.5*columns[1][i] + 0.5*columns[2][i] + 0.3*rng.NormFloat64()
	}

	frame, err := dataset.NewFrame(names, columns)
	if err != nil {
		b.Fatal(err)
	}

	return frame, y
}

func BenchmarkSelect(b *testing.B) {
	frame, y := benchFrame(b, 200, 20)

	for _, concurrency := range []int{1, 4} {
		b.Run(fmt.Sprintf("concurrency=%d", concurrency), func(b *testing.B) {
			s, err := New(WithMinVars(1), WithMaxVars(6), WithConcurrency(concurrency))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := s.Select(frame, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
