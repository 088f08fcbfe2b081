package conformal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// aggregate turns point predictions (and per-fold predictions, for the
// methods that need them) into [point, lower, upper] triples.
func (r *Regressor) aggregate(point []float64, foldPreds [][]float64) [][3]float64 {
	out := make([][3]float64, len(point))

	switch r.opts.method {
	case MethodJackknife, MethodCV:
		// One symmetric quantile shared by every test point.
		q := quantile(1-r.opts.alpha, r.sortedRes)
		for j, p := range point {
			out[j] = interval(p, p-q, p+q)
		}

	case MethodJackknifePlus, MethodCVPlus:
		// Test-point-specific bounds over {fold prediction +/- residual},
		// pairing each training point's residual with the prediction of
		// the fold that excluded it.
		lo := make([]float64, len(r.residuals))
		hi := make([]float64, len(r.residuals))
		for j, p := range point {
			for i, ri := range r.residuals {
				fp := foldPreds[r.foldOf[i]][j]
				lo[i] = fp - ri
				hi[i] = fp + ri
			}
			sort.Float64s(lo)
			sort.Float64s(hi)
			out[j] = interval(p,
				quantile(r.opts.alpha, lo),
				quantile(1-r.opts.alpha, hi),
			)
		}

	case MethodJackknifeMinmax, MethodCVMinmax:
		// Extreme fold predictions shifted by the largest residual.
		maxR := floats.Max(r.sortedRes)
		for j, p := range point {
			lo, hi := foldPreds[0][j], foldPreds[0][j]
			for _, fp := range foldPreds[1:] {
				lo = math.Min(lo, fp[j])
				hi = math.Max(hi, fp[j])
			}
			out[j] = interval(p, lo-maxR, hi+maxR)
		}
	}

	return out
}

// interval builds a triple whose bounds are expanded, when necessary,
// to contain the point prediction.
func interval(point, lower, upper float64) [3]float64 {
	return [3]float64{point, math.Min(lower, point), math.Max(upper, point)}
}

// quantile evaluates the empirical p-quantile of an ascending sample
// with linear interpolation. This convention is fixed so that results
// are reproducible given a fixed fold assignment.
func quantile(p float64, sorted []float64) float64 {
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}
