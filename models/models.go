// Package models defines the base-model contract consumed by the
// conformal regressor, plus small reference implementations used in
// tests and examples.
package models

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotFitted is returned by Predict/Transform before Fit.
	ErrNotFitted = errors.New("model is not fitted")

	// ErrShapeMismatch is returned when X and y dimensions disagree.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Model is the capability contract for a point-prediction regressor:
// anything exposing Fit(X, y) and Predict(X) with these signatures can
// be wrapped by a conformal regressor. X is an n x d matrix, y a
// length-n target vector. Refitting replaces all prior state.
type Model interface {
	Fit(X mat.Matrix, y []float64) error
	Predict(X mat.Matrix) ([]float64, error)
}

// Cloner is implemented by models that can produce a fresh, unfitted
// copy of themselves with the same hyperparameters. Clones must share
// no mutable state with the receiver; each resampling fold fits its
// own clone, possibly concurrently.
type Cloner interface {
	Clone() Model
}

// Transformer is a feature-mapping step applied before a final model,
// fit on training data and applied to both training and test data.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
}

// TransformerCloner is implemented by stateful transformers that can
// produce fresh, unfitted copies of themselves. Transformers without
// it are shared across pipeline clones, so they must be stateless.
type TransformerCloner interface {
	CloneTransformer() Transformer
}
