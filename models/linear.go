package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits ordinary least squares via QR decomposition.
// Deterministic: identical inputs produce identical coefficients.
type LinearRegression struct {
	// FitIntercept adds a learned constant term. Leave false when the
	// design matrix already carries a bias column.
	FitIntercept bool

	coef      []float64
	intercept float64
	fitted    bool
}

var (
	_ Model  = (*LinearRegression)(nil)
	_ Cloner = (*LinearRegression)(nil)
)

// Clone returns a fresh, unfitted copy with the same hyperparameters.
func (m *LinearRegression) Clone() Model {
	return &LinearRegression{FitIntercept: m.FitIntercept}
}

// Fit solves min ||Xw - y||^2 for w. Returns ErrShapeMismatch when the
// number of rows of X differs from len(y), and an error when X is rank
// deficient.
func (m *LinearRegression) Fit(X mat.Matrix, y []float64) error {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return fmt.Errorf("%w: empty design matrix (%d x %d)", ErrShapeMismatch, n, d)
	}
	if n != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d entries", ErrShapeMismatch, n, len(y))
	}

	cols := d
	if m.FitIntercept {
		cols++
	}
	a := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			a.Set(i, j, X.At(i, j))
		}
		if m.FitIntercept {
			a.Set(i, d, 1)
		}
	}

	b := mat.NewDense(n, 1, nil)
	for i, v := range y {
		b.Set(i, 0, v)
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		return fmt.Errorf("least squares solve: %w", err)
	}

	m.coef = make([]float64, d)
	for j := 0; j < d; j++ {
		m.coef[j] = beta.At(j, 0)
	}
	if m.FitIntercept {
		m.intercept = beta.At(d, 0)
	} else {
		m.intercept = 0
	}
	m.fitted = true
	return nil
}

// Predict returns Xw (+ intercept) for each row of X.
func (m *LinearRegression) Predict(X mat.Matrix) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	n, d := X.Dims()
	if d != len(m.coef) {
		return nil, fmt.Errorf("%w: fitted on %d features, got %d", ErrShapeMismatch, len(m.coef), d)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := m.intercept
		for j := 0; j < d; j++ {
			sum += m.coef[j] * X.At(i, j)
		}
		out[i] = sum
	}
	return out, nil
}

// Coef returns a copy of the learned coefficients.
func (m *LinearRegression) Coef() []float64 {
	out := make([]float64, len(m.coef))
	copy(out, m.coef)
	return out
}

// Intercept returns the learned intercept (zero unless FitIntercept).
func (m *LinearRegression) Intercept() float64 {
	return m.intercept
}
