package conformal

import (
	"errors"
	"fmt"

	"github.com/hupe1980/conformal/internal/resample"
	"github.com/hupe1980/conformal/split"
)

var (
	// ErrNotFitted is returned when Predict is called before a
	// successful Fit.
	ErrNotFitted = errors.New("regressor is not fitted")

	// ErrInvalidMethod is returned for an unrecognized method name.
	ErrInvalidMethod = errors.New("invalid method")
)

// ErrInvalidInput indicates malformed training or test data
// (mismatched shapes, empty matrices).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidInput struct {
	Reason string
	cause  error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *ErrInvalidInput) Unwrap() error { return e.cause }

// ErrInvalidConfig indicates an illegal configuration value
// (alpha outside (0,1), n_splits out of range, incompatible base model).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Reason string
	cause  error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Reason)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

// ErrModelFit indicates the base model failed while fitting. Fold holds
// the index of the resampling fold that failed, or -1 when the
// full-data fit failed.
//
// The base model's error can be accessed via errors.Unwrap.
type ErrModelFit struct {
	Fold  int
	cause error
}

func (e *ErrModelFit) Error() string {
	if e.Fold < 0 {
		return fmt.Sprintf("base model failed on full training set: %v", e.cause)
	}
	return fmt.Sprintf("base model failed on fold %d: %v", e.Fold, e.cause)
}

func (e *ErrModelFit) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, split.ErrNSplits) {
		return &ErrInvalidConfig{Reason: err.Error(), cause: err}
	}

	var fe *resample.FoldError
	if errors.As(err, &fe) {
		return &ErrModelFit{Fold: fe.Fold, cause: fe.Err}
	}

	return err
}
