// Package split provides deterministic resampling plans over training
// indices: k-fold cross-validation and leave-one-out.
package split

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrNSplits is returned when the requested number of splits cannot
// partition the sample.
var ErrNSplits = errors.New("n_splits out of range")

// Fold holds the index split for one resampling round. Test indices
// are disjoint across folds and collectively cover the whole sample;
// Train is the complement of Test.
type Fold struct {
	Train []int
	Test  []int
}

// Splitter produces a resampling plan for n samples.
type Splitter interface {
	Split(n int) ([]Fold, error)
}

// KFold partitions indices into NSplits folds. Without Shuffle, folds
// are contiguous ranges in sample order; the first n mod NSplits folds
// receive one extra sample. With Shuffle, indices are permuted by a
// PCG seeded from Seed before assignment, so plans are reproducible.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    int64
}

var _ Splitter = KFold{}

// Split returns the fold plan for n samples. Fails with ErrNSplits
// unless 2 <= NSplits <= n.
func (k KFold) Split(n int) ([]Fold, error) {
	if k.NSplits < 2 || k.NSplits > n {
		return nil, fmt.Errorf("%w: n_splits=%d with %d samples (want 2 <= n_splits <= n_samples)", ErrNSplits, k.NSplits, n)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if k.Shuffle {
		rng := rand.New(rand.NewPCG(uint64(k.Seed), uint64(k.Seed)))
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	folds := make([]Fold, k.NSplits)
	size := n / k.NSplits
	extra := n % k.NSplits
	start := 0
	for f := 0; f < k.NSplits; f++ {
		stop := start + size
		if f < extra {
			stop++
		}
		test := make([]int, stop-start)
		copy(test, order[start:stop])
		train := make([]int, 0, n-len(test))
		train = append(train, order[:start]...)
		train = append(train, order[stop:]...)
		folds[f] = Fold{Train: train, Test: test}
		start = stop
	}
	return folds, nil
}

// LeaveOneOut produces one singleton test fold per sample, in sample
// order.
type LeaveOneOut struct{}

var _ Splitter = LeaveOneOut{}

// Split returns n folds where fold i holds out exactly sample i. Fails
// with ErrNSplits when n < 2.
func (LeaveOneOut) Split(n int) ([]Fold, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: leave-one-out needs at least 2 samples, got %d", ErrNSplits, n)
	}
	folds := make([]Fold, n)
	for i := 0; i < n; i++ {
		train := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				train = append(train, j)
			}
		}
		folds[i] = Fold{Train: train, Test: []int{i}}
	}
	return folds, nil
}
