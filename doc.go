// Package conformal provides distribution-free prediction intervals for
// regression via conformal prediction.
//
// Conformal wraps any point-prediction model and augments its forecasts
// with lower/upper bounds calibrated from out-of-sample residuals. Six
// resampling variants are supported: jackknife, jackknife+,
// jackknife-minmax, cv, cv+ and cv-minmax.
//
// # Quick Start
//
//	base := models.NewPipeline(
//	    &models.LinearRegression{},
//	    models.PolynomialFeatures{Degree: 4, IncludeBias: true},
//	)
//
//	cp, _ := conformal.New(base,
//	    conformal.WithMethod(conformal.MethodCVPlus),
//	    conformal.WithAlpha(0.05),
//	    conformal.WithNSplits(10),
//	)
//
//	ctx := context.Background()
//	if err := cp.Fit(ctx, X, y); err != nil {
//	    log.Fatal(err)
//	}
//	preds, _ := cp.Predict(ctx, XTest)
//	for _, p := range preds {
//	    fmt.Println(p[0], p[1], p[2]) // point, lower, upper
//	}
//
// # Methods
//
// The jackknife family refits the base model once per training point
// (leave-one-out); the cv family refits once per fold. The plain
// variants add a single symmetric residual quantile to the point
// prediction, the "+" variants build test-point-specific bounds from
// per-fold predictions, and the minmax variants are the most
// conservative (widest).
//
// # Base Models
//
// Any type implementing models.Model can be wrapped. Models that also
// implement models.Cloner get one independent copy per fold, which
// enables parallel refitting and is required by the "+", minmax and
// ensemble modes.
//
// Fit and Predict are synchronous and not safe for concurrent use on
// the same Regressor.
package conformal
