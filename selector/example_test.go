package selector_test

import (
	"fmt"

	"github.com/arloliu/stepreg/dataset"
	"github.com/arloliu/stepreg/selector"
)

func ExampleSelect() {
	// y = 2 + 4·price, with a seasonal column that carries no signal.
	price := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	season := []float64{1, -1, -1, 1, 1, -1, -1, 1, 1, -1, -1, 1}
	noise := []float64{0.3, -0.2, 0.1, -0.3, 0.2, 0.1, -0.1, 0.2, -0.2, 0.3, -0.3, -0.1}
	y := make([]float64, len(price))
	for i := range y {
		y[i] = 2 + 4*price[i] + noise[i]
	}

	frame, err := dataset.NewFrame([]string{"season", "price"}, [][]float64{season, price})
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := selector.Select(frame, y,
		selector.WithMinVars(1),
		selector.WithMaxVars(2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("features:", res.Features)
	fmt.Printf("threshold: %.2f\n", res.ThresholdIn)
	// Output:
	// features: [price]
	// threshold: 0.10
}

func ExampleWithObserver() {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{1, -1, -1, 1, 1, -1, -1, 1}
	wobble := []float64{0.1, 0.1, -0.1, -0.1, 0.1, 0.1, -0.1, -0.1}
	y := make([]float64, len(a))
	for i := range y {
		y[i] = 1 + 2*a[i] + wobble[i]
	}
	frame, _ := dataset.NewFrame([]string{"a", "b"}, [][]float64{a, b})

	_, err := selector.Select(frame, y,
		selector.WithMinVars(1),
		selector.WithMaxVars(2),
		selector.WithObserver(func(e selector.Event) {
			if e.Kind == selector.EventPass {
				fmt.Printf("pass %d: %v done=%v\n", e.Pass, e.Included.Names(), e.Done)
			}
		}),
	)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// pass 1: [a] done=false
	// pass 2: [a] done=true
}
