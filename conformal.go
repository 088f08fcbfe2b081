package conformal

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/conformal/internal/resample"
	"github.com/hupe1980/conformal/models"
	"github.com/hupe1980/conformal/split"
)

// Regressor wraps a base point-prediction model and produces
// prediction intervals calibrated from out-of-sample residuals.
//
// Not safe for concurrent use.
type Regressor struct {
	model models.Model
	opts  options

	fitted     bool
	nFeatures  int
	residuals  []float64 // training order
	sortedRes  []float64 // ascending copy for quantile lookups
	foldOf     []int
	foldModels []models.Model
}

// New creates a Regressor around model. Configuration is validated
// eagerly; sample-dependent constraints (n_splits <= n_samples) are
// checked at Fit time.
func New(model models.Model, optFns ...Option) (*Regressor, error) {
	if model == nil {
		return nil, &ErrInvalidConfig{Reason: "base model must not be nil"}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Regressor{model: model, opts: opts}, nil
}

// Fit trains the full model and one sub-model per resampling fold,
// collecting one absolute out-of-fold residual per training point.
// Refitting replaces all prior state; a failed fit leaves the
// regressor unfitted.
func (r *Regressor) Fit(ctx context.Context, X mat.Matrix, y []float64) error {
	r.fitted = false

	nFolds, n, err := r.fit(ctx, X, y)
	r.opts.logger.WithMethod(r.opts.method).WithSamples(n).LogFit(ctx, nFolds, err)
	return err
}

func (r *Regressor) fit(ctx context.Context, X mat.Matrix, y []float64) (int, int, error) {
	if X == nil {
		return 0, 0, &ErrInvalidInput{Reason: "X must not be nil"}
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return 0, n, &ErrInvalidInput{Reason: fmt.Sprintf("empty design matrix (%d x %d)", n, d)}
	}
	if n != len(y) {
		return 0, n, &ErrInvalidInput{Reason: fmt.Sprintf("X has %d rows, y has %d entries", n, len(y))}
	}

	var splitter split.Splitter
	if r.opts.method.isCV() {
		splitter = split.KFold{
			NSplits: r.opts.nSplits,
			Shuffle: r.opts.shuffle,
			Seed:    r.opts.seed,
		}
	} else {
		splitter = split.LeaveOneOut{}
	}
	folds, err := splitter.Split(n)
	if err != nil {
		return 0, n, translateError(err)
	}

	keep := r.opts.method.needsFoldModels() || r.opts.prediction == PredictionEnsemble
	if keep {
		if _, ok := r.model.(models.Cloner); !ok {
			return len(folds), n, &ErrInvalidConfig{Reason: fmt.Sprintf(
				"method %s with %s predictions requires a base model implementing models.Cloner",
				r.opts.method, r.opts.prediction,
			)}
		}
	}

	res, err := resample.Run(ctx, r.model, X, y, resample.Config{
		Folds:       folds,
		KeepModels:  keep,
		MaxParallel: r.opts.maxParallel,
	})
	if err != nil {
		return len(folds), n, translateError(err)
	}

	// The full fit runs last: non-cloneable models reuse the single
	// instance across folds, so it must end up holding full-data state.
	if err := r.model.Fit(X, y); err != nil {
		return len(folds), n, &ErrModelFit{Fold: -1, cause: err}
	}

	r.residuals = res.Residuals
	r.sortedRes = append([]float64(nil), res.Residuals...)
	sort.Float64s(r.sortedRes)
	r.foldOf = res.FoldOf
	r.foldModels = res.Models
	r.nFeatures = d
	r.fitted = true
	return len(folds), n, nil
}

// Predict returns one [point, lower, upper] triple per row of X. The
// reported interval always contains the point prediction. Fails with
// ErrNotFitted before a successful Fit.
func (r *Regressor) Predict(ctx context.Context, X mat.Matrix) ([][3]float64, error) {
	out, err := r.predict(ctx, X)
	r.opts.logger.WithMethod(r.opts.method).LogPredict(ctx, len(out), err)
	return out, err
}

func (r *Regressor) predict(ctx context.Context, X mat.Matrix) ([][3]float64, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}
	if X == nil {
		return nil, &ErrInvalidInput{Reason: "X must not be nil"}
	}
	n, d := X.Dims()
	if d != r.nFeatures {
		return nil, &ErrInvalidInput{Reason: fmt.Sprintf("fitted on %d features, got %d", r.nFeatures, d)}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := r.model.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("base model predict: %w", err)
	}

	var foldPreds [][]float64
	if len(r.foldModels) > 0 {
		foldPreds = make([][]float64, len(r.foldModels))
		for k, m := range r.foldModels {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			preds, err := m.Predict(X)
			if err != nil {
				return nil, fmt.Errorf("fold %d predict: %w", k, err)
			}
			foldPreds[k] = preds
		}
	}

	point := full
	if r.opts.prediction == PredictionEnsemble {
		point = make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for _, fp := range foldPreds {
				sum += fp[j]
			}
			point[j] = sum / float64(len(foldPreds))
		}
	}

	return r.aggregate(point, foldPreds), nil
}

// Residuals returns a copy of the nonconformity scores in training
// order, or nil before Fit.
func (r *Regressor) Residuals() []float64 {
	if !r.fitted {
		return nil
	}
	out := make([]float64, len(r.residuals))
	copy(out, r.residuals)
	return out
}

// Method returns the configured method.
func (r *Regressor) Method() Method { return r.opts.method }

// Alpha returns the configured miscoverage target.
func (r *Regressor) Alpha() float64 { return r.opts.alpha }
