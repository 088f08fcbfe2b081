package conformal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethodRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMethodBogus(t *testing.T) {
	for _, s := range []string{"bogus", "", "Jackknife", "cv+"} {
		_, err := ParseMethod(s)
		require.Error(t, err, "input %q", s)
		assert.True(t, errors.Is(err, ErrInvalidMethod))
	}
}

func TestMethodCapabilities(t *testing.T) {
	tests := []struct {
		method     Method
		isCV       bool
		needsFolds bool
	}{
		{MethodJackknife, false, false},
		{MethodJackknifePlus, false, true},
		{MethodJackknifeMinmax, false, true},
		{MethodCV, true, false},
		{MethodCVPlus, true, true},
		{MethodCVMinmax, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			assert.Equal(t, tt.isCV, tt.method.isCV())
			assert.Equal(t, tt.needsFolds, tt.method.needsFoldModels())
		})
	}
}

func TestParsePrediction(t *testing.T) {
	p, err := ParsePrediction("single")
	require.NoError(t, err)
	assert.Equal(t, PredictionSingle, p)

	p, err = ParsePrediction("ensemble")
	require.NoError(t, err)
	assert.Equal(t, PredictionEnsemble, p)

	_, err = ParsePrediction("both")
	require.Error(t, err)
	var ce *ErrInvalidConfig
	assert.True(t, errors.As(err, &ce))
}
