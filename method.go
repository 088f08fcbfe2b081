package conformal

import "fmt"

// Method selects the resampling scheme and the interval aggregation
// rule. The zero value is MethodJackknife.
type Method int

const (
	// MethodJackknife refits once per training point and adds a single
	// symmetric residual quantile to the full-model prediction.
	MethodJackknife Method = iota
	// MethodJackknifePlus builds test-point-specific bounds from the
	// leave-one-out predictions (Barber et al., "jackknife+").
	MethodJackknifePlus
	// MethodJackknifeMinmax uses the extreme leave-one-out predictions
	// shifted by the largest residual. Widest variant.
	MethodJackknifeMinmax
	// MethodCV is the k-fold analogue of MethodJackknife.
	MethodCV
	// MethodCVPlus is the k-fold analogue of MethodJackknifePlus.
	MethodCVPlus
	// MethodCVMinmax is the k-fold analogue of MethodJackknifeMinmax.
	MethodCVMinmax
)

func (m Method) String() string {
	switch m {
	case MethodJackknife:
		return "jackknife"
	case MethodJackknifePlus:
		return "jackknife_plus"
	case MethodJackknifeMinmax:
		return "jackknife_minmax"
	case MethodCV:
		return "cv"
	case MethodCVPlus:
		return "cv_plus"
	case MethodCVMinmax:
		return "cv_minmax"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMethod converts a method name to its Method value. Recognized
// names are "jackknife", "jackknife_plus", "jackknife_minmax", "cv",
// "cv_plus" and "cv_minmax".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "jackknife":
		return MethodJackknife, nil
	case "jackknife_plus":
		return MethodJackknifePlus, nil
	case "jackknife_minmax":
		return MethodJackknifeMinmax, nil
	case "cv":
		return MethodCV, nil
	case "cv_plus":
		return MethodCVPlus, nil
	case "cv_minmax":
		return MethodCVMinmax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Methods returns all supported methods in declaration order.
func Methods() []Method {
	return []Method{
		MethodJackknife,
		MethodJackknifePlus,
		MethodJackknifeMinmax,
		MethodCV,
		MethodCVPlus,
		MethodCVMinmax,
	}
}

func (m Method) valid() bool {
	return m >= MethodJackknife && m <= MethodCVMinmax
}

// isCV reports whether the method partitions the training set into
// n_splits folds instead of leave-one-out groups.
func (m Method) isCV() bool {
	switch m {
	case MethodCV, MethodCVPlus, MethodCVMinmax:
		return true
	default:
		return false
	}
}

// needsFoldModels reports whether Predict needs the fitted per-fold
// sub-models in addition to the pooled residuals.
func (m Method) needsFoldModels() bool {
	switch m {
	case MethodJackknifePlus, MethodJackknifeMinmax, MethodCVPlus, MethodCVMinmax:
		return true
	default:
		return false
	}
}
