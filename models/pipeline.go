package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pipeline chains feature transformers with a final model. Fit runs
// each transformer's Fit/Transform in order and fits the model on the
// result; Predict applies the same transformations.
type Pipeline struct {
	steps []Transformer
	model Model
}

var (
	_ Model  = (*Pipeline)(nil)
	_ Cloner = (*Pipeline)(nil)
)

// NewPipeline builds a pipeline ending in model. Steps are applied in
// the given order.
func NewPipeline(model Model, steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps, model: model}
}

// Clone returns a fresh pipeline. The final model is cloned when it
// implements Cloner; transformers are cloned when they implement
// TransformerCloner and reused otherwise, so stateful transformers
// that cannot clone must not be shared across concurrent fits.
func (p *Pipeline) Clone() Model {
	model := p.model
	if c, ok := model.(Cloner); ok {
		model = c.Clone()
	}
	steps := make([]Transformer, len(p.steps))
	for i, s := range p.steps {
		if c, ok := s.(TransformerCloner); ok {
			steps[i] = c.CloneTransformer()
			continue
		}
		steps[i] = s
	}
	return &Pipeline{steps: steps, model: model}
}

func (p *Pipeline) transform(X mat.Matrix, fit bool) (mat.Matrix, error) {
	cur := X
	for i, s := range p.steps {
		if fit {
			if err := s.Fit(cur); err != nil {
				return nil, fmt.Errorf("pipeline step %d fit: %w", i, err)
			}
		}
		next, err := s.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d transform: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// Fit fits each transformer and the final model on the transformed
// training data.
func (p *Pipeline) Fit(X mat.Matrix, y []float64) error {
	t, err := p.transform(X, true)
	if err != nil {
		return err
	}
	return p.model.Fit(t, y)
}

// Predict transforms X and delegates to the final model.
func (p *Pipeline) Predict(X mat.Matrix) ([]float64, error) {
	t, err := p.transform(X, false)
	if err != nil {
		return nil, err
	}
	return p.model.Predict(t)
}
