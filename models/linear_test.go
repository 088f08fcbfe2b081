package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLinearRegressionRecoversLine(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := []float64{3, 5, 7, 9, 11} // y = 2x + 1

	m := &LinearRegression{FitIntercept: true}
	require.NoError(t, m.Fit(X, y))

	assert.InDelta(t, 2.0, m.Coef()[0], 1e-9)
	assert.InDelta(t, 1.0, m.Intercept(), 1e-9)

	preds, err := m.Predict(mat.NewDense(2, 1, []float64{0, 10}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, preds[0], 1e-9)
	assert.InDelta(t, 21.0, preds[1], 1e-9)
}

func TestLinearRegressionNoIntercept(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := []float64{2, 4, 6}

	m := &LinearRegression{}
	require.NoError(t, m.Fit(X, y))
	assert.InDelta(t, 2.0, m.Coef()[0], 1e-9)
	assert.Zero(t, m.Intercept())
}

func TestLinearRegressionErrors(t *testing.T) {
	m := &LinearRegression{}

	_, err := m.Predict(mat.NewDense(1, 1, []float64{1}))
	assert.True(t, errors.Is(err, ErrNotFitted))

	err = m.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 2})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	require.NoError(t, m.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 2, 3}))
	_, err = m.Predict(mat.NewDense(1, 2, []float64{1, 2}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestLinearRegressionClone(t *testing.T) {
	m := &LinearRegression{FitIntercept: true}
	require.NoError(t, m.Fit(mat.NewDense(2, 1, []float64{1, 2}), []float64{1, 2}))

	clone, ok := m.Clone().(*LinearRegression)
	require.True(t, ok)
	assert.True(t, clone.FitIntercept)

	// Clones start unfitted and share no state with the receiver.
	_, err := clone.Predict(mat.NewDense(1, 1, []float64{1}))
	assert.True(t, errors.Is(err, ErrNotFitted))
}
