package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolynomialFeatures maps each input column to its powers 1..Degree,
// optionally prefixed by a constant bias column. Interaction terms
// between columns are not generated. Stateless: Fit only validates.
type PolynomialFeatures struct {
	Degree      int
	IncludeBias bool
}

var _ Transformer = PolynomialFeatures{}

// Fit validates the configuration. PolynomialFeatures learns nothing
// from the data.
func (p PolynomialFeatures) Fit(X mat.Matrix) error {
	if p.Degree < 1 {
		return fmt.Errorf("polynomial degree must be at least 1, got %d", p.Degree)
	}
	return nil
}

// Transform expands an n x d matrix into n x (d*Degree [+1]) powers.
func (p PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if p.Degree < 1 {
		return nil, fmt.Errorf("polynomial degree must be at least 1, got %d", p.Degree)
	}
	n, d := X.Dims()

	cols := d * p.Degree
	offset := 0
	if p.IncludeBias {
		cols++
		offset = 1
	}
	out := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		if p.IncludeBias {
			out.Set(i, 0, 1)
		}
		for j := 0; j < d; j++ {
			v := X.At(i, j)
			pw := 1.0
			for k := 1; k <= p.Degree; k++ {
				pw *= v
				out.Set(i, offset+j*p.Degree+k-1, pw)
			}
		}
	}
	return out, nil
}
