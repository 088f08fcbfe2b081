package conformal

import "fmt"

// Prediction selects where point predictions come from.
type Prediction int

const (
	// PredictionSingle uses the model fitted on the full training set.
	PredictionSingle Prediction = iota
	// PredictionEnsemble uses the mean of the per-fold predictions.
	// Requires a base model implementing models.Cloner.
	PredictionEnsemble
)

func (p Prediction) String() string {
	switch p {
	case PredictionSingle:
		return "single"
	case PredictionEnsemble:
		return "ensemble"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParsePrediction converts a prediction-source name ("single" or
// "ensemble") to its Prediction value.
func ParsePrediction(s string) (Prediction, error) {
	switch s {
	case "single":
		return PredictionSingle, nil
	case "ensemble":
		return PredictionEnsemble, nil
	default:
		return 0, &ErrInvalidConfig{Reason: fmt.Sprintf("unknown prediction source %q", s)}
	}
}

type options struct {
	method      Method
	alpha       float64
	nSplits     int
	prediction  Prediction
	shuffle     bool
	seed        int64
	maxParallel int
	logger      *Logger
}

func defaultOptions() options {
	return options{
		method:     MethodJackknifePlus,
		alpha:      0.1,
		nSplits:    5,
		prediction: PredictionSingle,
		logger:     NoopLogger(),
	}
}

// Option configures a Regressor at construction time.
type Option func(*options)

// WithMethod selects the resampling/aggregation method.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithAlpha sets the miscoverage target. The resulting intervals aim
// for 1-alpha coverage; alpha must lie in (0,1).
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithNSplits sets the number of cross-validation folds. Only used by
// the cv family; jackknife methods always use one fold per training
// point. Must satisfy 2 <= n_splits <= n_samples at fit time.
func WithNSplits(n int) Option {
	return func(o *options) {
		o.nSplits = n
	}
}

// WithPrediction selects the point-prediction source.
func WithPrediction(p Prediction) Option {
	return func(o *options) {
		o.prediction = p
	}
}

// WithSeed enables shuffled fold assignment with a reproducible seed.
// Without it, cv folds are contiguous index ranges in training order.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.shuffle = true
		o.seed = seed
	}
}

// WithMaxParallel bounds the number of concurrent fold refits.
//
// Fold fits are independent, so the default (0) uses one worker per
// available CPU. Parallel refitting only applies to base models
// implementing models.Cloner; other models are refit sequentially
// regardless of this setting.
func WithMaxParallel(n int) Option {
	return func(o *options) {
		o.maxParallel = n
	}
}

// WithLogger configures structured logging. Pass nil to disable
// logging (the default).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func (o options) validate() error {
	if !o.method.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, int(o.method))
	}
	if o.alpha <= 0 || o.alpha >= 1 {
		return &ErrInvalidConfig{Reason: fmt.Sprintf("alpha must be in (0,1), got %g", o.alpha)}
	}
	if o.method.isCV() && o.nSplits < 2 {
		return &ErrInvalidConfig{Reason: fmt.Sprintf("n_splits must be at least 2, got %d", o.nSplits)}
	}
	if o.maxParallel < 0 {
		return &ErrInvalidConfig{Reason: fmt.Sprintf("max parallel must be non-negative, got %d", o.maxParallel)}
	}
	switch o.prediction {
	case PredictionSingle, PredictionEnsemble:
	default:
		return &ErrInvalidConfig{Reason: fmt.Sprintf("unknown prediction source %d", int(o.prediction))}
	}
	return nil
}
