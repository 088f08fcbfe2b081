// Package resample fits one copy of the base model per resampling fold
// and extracts out-of-fold nonconformity scores.
package resample

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/conformal/models"
	"github.com/hupe1980/conformal/split"
)

// FoldError reports a base-model failure on a specific fold. A single
// failing fold aborts the whole run: partial residual sets would bias
// every interval downstream.
type FoldError struct {
	Fold int
	Err  error
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("fold %d: %v", e.Fold, e.Err)
}

func (e *FoldError) Unwrap() error { return e.Err }

// Config controls a resampling run.
type Config struct {
	// Folds is the resampling plan; test sets must partition the sample.
	Folds []split.Fold
	// KeepModels retains the fitted sub-model of every fold for use at
	// predict time. Requires the base model to implement models.Cloner.
	KeepModels bool
	// MaxParallel bounds concurrent fold fits; 0 means GOMAXPROCS.
	// Only applies to cloneable models.
	MaxParallel int
}

// Result holds the outputs of a resampling run.
type Result struct {
	// Residuals holds one absolute out-of-fold residual per training
	// point, in training order.
	Residuals []float64
	// FoldOf maps each training point to the fold that held it out.
	FoldOf []int
	// Models holds the fitted sub-model of each fold; nil unless
	// Config.KeepModels was set.
	Models []models.Model
}

// Run fits one sub-model per fold and collects nonconformity scores.
// Cloneable base models are fit in parallel, one independent clone per
// fold; other models are refit sequentially on the single instance,
// which leaves the instance holding the last fold's state.
func Run(ctx context.Context, base models.Model, X mat.Matrix, y []float64, cfg Config) (*Result, error) {
	n := len(y)
	res := &Result{
		Residuals: make([]float64, n),
		FoldOf:    make([]int, n),
	}
	for _, fold := range cfg.Folds {
		for _, t := range fold.Test {
			res.FoldOf[t] = -1
		}
	}

	cloner, cloneable := base.(models.Cloner)
	if cfg.KeepModels && !cloneable {
		return nil, fmt.Errorf("retaining fold models requires the base model to implement models.Cloner")
	}
	if cfg.KeepModels {
		res.Models = make([]models.Model, len(cfg.Folds))
	}

	fitFold := func(k int, m models.Model) error {
		fold := cfg.Folds[k]
		if err := m.Fit(rows(X, fold.Train), subset(y, fold.Train)); err != nil {
			return &FoldError{Fold: k, Err: err}
		}
		preds, err := m.Predict(rows(X, fold.Test))
		if err != nil {
			return &FoldError{Fold: k, Err: err}
		}
		// Test sets are disjoint, so concurrent writes land on
		// distinct indices.
		for i, t := range fold.Test {
			res.Residuals[t] = math.Abs(y[t] - preds[i])
			res.FoldOf[t] = k
		}
		if cfg.KeepModels {
			res.Models[k] = m
		}
		return nil
	}

	if !cloneable {
		for k := range cfg.Folds {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := fitFold(k, base); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := cfg.MaxParallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)
	for k := range cfg.Folds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fitFold(k, cloner.Clone())
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// rows gathers the given rows of X into a dense matrix.
func rows(X mat.Matrix, idx []int) *mat.Dense {
	_, d := X.Dims()
	out := mat.NewDense(len(idx), d, nil)
	for i, r := range idx {
		for j := 0; j < d; j++ {
			out.Set(i, j, X.At(r, j))
		}
	}
	return out
}

func subset(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}
	return out
}
