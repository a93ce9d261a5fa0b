package regression

// signalData returns n observations of y = 5 + 3x + e where e alternates ±0.5,
// together with two noise columns that are exactly orthogonal to the
// intercept, x, e (and therefore y).
func signalData(n int) (y, x, z, w []float64) {
	y = make([]float64, n)
	x = make([]float64, n)
	e := make([]float64, n)
	z = make([]float64, n)
	zPattern := [4]float64{1, -1, -1, 1}
	for i := range n {
		x[i] = float64(i)
		e[i] = 0.5
		if i%2 == 1 {
			e[i] = -0.5
		}
		y[i] = 5 + 3*x[i] + e[i]
		z[i] = zPattern[i%4]
	}

	raw := make([]float64, n)
	for i := range n {
		raw[i] = float64((i*7)%5) - 2
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	w = orthogonalize(raw, ones, x, e, z)

	return y, x, z, w
}

// orthogonalize removes from v its projection onto the span of basis (Gram-Schmidt).
func orthogonalize(v []float64, basis ...[]float64) []float64 {
	out := append([]float64(nil), v...)
	var ortho [][]float64
	for _, b := range basis {
		u := append([]float64(nil), b...)
		for _, q := range ortho {
			project(u, q)
		}
		ortho = append(ortho, u)
	}
	for _, q := range ortho {
		project(out, q)
	}

	return out
}

func project(v, q []float64) {
	var num, den float64
	for i := range v {
		num += v[i] * q[i]
		den += q[i] * q[i]
	}
	if den == 0 {
		return
	}
	for i := range v {
		v[i] -= num / den * q[i]
	}
}
