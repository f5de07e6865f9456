package epochlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {
	t.Log("Give an empty series")
	{
		var s series
		assert.Nil(t, s.Mean())
		assert.Nil(t, s.Median())
	}

	t.Log("Give cpu readings 10, 20, 30")
	{
		s := series{30, 10, 20}
		require.NotNil(t, s.Mean())
		assert.Equal(t, 20.0, *s.Mean())
		assert.Equal(t, 20.0, *s.Median())
		assert.Equal(t, series{30, 10, 20}, s, "median should not reorder the series")
	}

	t.Log("Give an even count")
	{
		s := series{4, 1, 3, 2}
		assert.Equal(t, 2.5, *s.Median())
	}
}

func TestStepAccuracy(t *testing.T) {
	r := StepRecord{
		PredictedScores: [][]float64{{0.9, 0.05, 0.05}, {0.1, 0.1, 0.8}},
		Actions:         []float64{0.2, 1.8},
	}
	acc, ok, err := r.Accuracy()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1.0, acc)

	_, ok, err = StepRecord{}.Accuracy()
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = StepRecord{PredictedScores: [][]float64{{}}, Actions: []float64{1}}.Accuracy()
	assert.ErrorIs(t, err, ErrParse)
}
