package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPolynomialFeaturesTransform(t *testing.T) {
	p := PolynomialFeatures{Degree: 3, IncludeBias: true}
	out, err := p.Transform(mat.NewDense(3, 1, []float64{2, 3, -2}))
	require.NoError(t, err)

	n, d := out.Dims()
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, d) // bias, x, x^2, x^3

	assert.InDelta(t, 1.0, out.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, out.At(0, 1), 1e-12)
	assert.InDelta(t, 4.0, out.At(0, 2), 1e-12)
	assert.InDelta(t, 8.0, out.At(0, 3), 1e-12)
	assert.InDelta(t, 27.0, out.At(1, 3), 1e-12)

	// Odd powers keep the sign.
	assert.InDelta(t, -2.0, out.At(2, 1), 1e-12)
	assert.InDelta(t, 4.0, out.At(2, 2), 1e-12)
	assert.InDelta(t, -8.0, out.At(2, 3), 1e-12)
}

func TestPolynomialFeaturesInvalidDegree(t *testing.T) {
	p := PolynomialFeatures{Degree: 0}
	assert.Error(t, p.Fit(mat.NewDense(1, 1, []float64{1})))
	_, err := p.Transform(mat.NewDense(1, 1, []float64{1}))
	assert.Error(t, err)
}

func TestPipelineRecoversPolynomial(t *testing.T) {
	// y = x^2 - 2x + 3
	xs := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(xs))
	for i, x := range xs {
		y[i] = x*x - 2*x + 3
	}
	X := mat.NewDense(len(xs), 1, xs)

	p := NewPipeline(
		&LinearRegression{},
		PolynomialFeatures{Degree: 2, IncludeBias: true},
	)
	require.NoError(t, p.Fit(X, y))

	preds, err := p.Predict(mat.NewDense(1, 1, []float64{5}))
	require.NoError(t, err)
	assert.InDelta(t, 18.0, preds[0], 1e-9)
}

// meanCenter subtracts the per-column training mean. Stateful, so it
// implements TransformerCloner.
type meanCenter struct {
	means []float64
}

func (m *meanCenter) Fit(X mat.Matrix) error {
	n, d := X.Dims()
	m.means = make([]float64, d)
	for j := 0; j < d; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += X.At(i, j)
		}
		m.means[j] = sum / float64(n)
	}
	return nil
}

func (m *meanCenter) Transform(X mat.Matrix) (mat.Matrix, error) {
	if m.means == nil {
		return nil, ErrNotFitted
	}
	n, d := X.Dims()
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, X.At(i, j)-m.means[j])
		}
	}
	return out, nil
}

func (m *meanCenter) CloneTransformer() Transformer {
	return &meanCenter{}
}

func TestPipelineCloneStatefulTransformer(t *testing.T) {
	center := &meanCenter{}
	p := NewPipeline(&LinearRegression{FitIntercept: true}, center)

	clone, ok := p.Clone().(*Pipeline)
	require.True(t, ok)

	// The stateful step is cloned, not shared: fitting the clone must
	// leave the original transformer untouched.
	require.NoError(t, clone.Fit(mat.NewDense(3, 1, []float64{10, 20, 30}), []float64{1, 2, 3}))
	assert.Nil(t, center.means)

	// A stateless step without CloneTransformer is reused as-is.
	p2 := NewPipeline(&LinearRegression{}, PolynomialFeatures{Degree: 2})
	clone2, ok := p2.Clone().(*Pipeline)
	require.True(t, ok)
	assert.Equal(t, p2.steps, clone2.steps)
}

func TestPipelineClone(t *testing.T) {
	p := NewPipeline(
		&LinearRegression{FitIntercept: true},
		PolynomialFeatures{Degree: 2},
	)
	require.NoError(t, p.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 4, 9}))

	clone, ok := p.Clone().(*Pipeline)
	require.True(t, ok)

	// Cloned pipeline is independent and usable on its own data.
	require.NoError(t, clone.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{2, 8, 18}))
	orig, err := p.Predict(mat.NewDense(1, 1, []float64{2}))
	require.NoError(t, err)
	cloned, err := clone.Predict(mat.NewDense(1, 1, []float64{2}))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, orig[0], 1e-9)
	assert.InDelta(t, 8.0, cloned[0], 1e-9)
}
