package selector

import "slices"

// Record is one selected feature with the statistics observed when it was added.
type Record struct {
	// Name is the feature (column) name.
	Name string
	// PValue is the feature's p-value in the forward-step fit that added it.
	PValue float64
	// RValue is √R² (R² rounded to three decimals) of that fit.
	RValue float64
}

// Included is the ordered set of selected features, in insertion order.
//
// Records are added, removed and truncated as a whole, so the name, p-value
// and r-value of a feature always stay at the same index.
type Included []Record

// Len returns the number of included features.
func (in Included) Len() int {
	return len(in)
}

// Names returns the feature names in insertion order.
func (in Included) Names() []string {
	names := make([]string, len(in))
	for i, r := range in {
		names[i] = r.Name
	}

	return names
}

// PValues returns the inclusion p-values aligned with Names.
func (in Included) PValues() []float64 {
	out := make([]float64, len(in))
	for i, r := range in {
		out[i] = r.PValue
	}

	return out
}

// RValues returns the inclusion r-values aligned with Names.
func (in Included) RValues() []float64 {
	out := make([]float64, len(in))
	for i, r := range in {
		out[i] = r.RValue
	}

	return out
}

// Index returns the position of name, or -1.
func (in Included) Index(name string) int {
	return slices.IndexFunc(in, func(r Record) bool { return r.Name == name })
}

// Contains reports whether name is included.
func (in Included) Contains(name string) bool {
	return in.Index(name) >= 0
}

// Clone returns an independent copy.
func (in Included) Clone() Included {
	return slices.Clone(in)
}

func (in *Included) add(r Record) {
	*in = append(*in, r)
}

func (in *Included) removeAt(i int) Record {
	r := (*in)[i]
	*in = slices.Delete(*in, i, i+1)

	return r
}

func (in *Included) truncate(n int) {
	*in = (*in)[:n]
}

func (in *Included) reset() {
	*in = (*in)[:0]
}
