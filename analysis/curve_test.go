package analysis

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testing/core"
)

func matrix(rows ...[]float64) *core.RewardMatrix {
	m := core.NewRewardMatrix(len(rows), len(rows[0]))
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}

func trace(rewards []float64, optimal []bool) *core.Trace {
	t := core.NewTrace(len(rewards))
	for i, r := range rewards {
		t.AddStep(core.Step{Reward: r, Optimal: optimal[i]})
	}
	return t
}

func TestMeanCurve(t *testing.T) {
	m := matrix(
		[]float64{0, 1, 2},
		[]float64{1, 1, 4},
		[]float64{2, 1, 0},
	)
	assert.Equal(t, []float64{1, 1, 2}, MeanCurve(m))
}

func TestMeanCurveSingleRepetition(t *testing.T) {
	m := matrix([]float64{0.5, 0.25})
	assert.Equal(t, []float64{0.5, 0.25}, MeanCurve(m))
	assert.Equal(t, []float64{0, 0}, DispersionBand(m))
}

func TestDispersionBandIsPopulationStd(t *testing.T) {
	m := matrix(
		[]float64{0, 5},
		[]float64{2, 5},
	)
	assert.InDeltaSlice(t, []float64{1, 0}, DispersionBand(m), 1e-12)

	lower, upper := Band(m)
	assert.InDeltaSlice(t, []float64{0, 5}, lower, 1e-12)
	assert.InDeltaSlice(t, []float64{2, 5}, upper, 1e-12)
}

func TestRewardCurveAnalyzerMatchesAggregator(t *testing.T) {
	rows := [][]float64{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0.5, 0, 1, 3},
	}
	optimal := [][]bool{
		{false, true, true, true},
		{true, true, false, true},
		{false, false, true, true},
	}
	a := NewRewardCurveAnalyzer(4)
	for i, r := range rows {
		a.Analyze(core.NewRepetitionContext(context.Background(), "test", i, 4), trace(r, optimal[i]))
	}
	curve := a.DataSet().(*Curve)
	m := matrix(rows...)
	assert.InDeltaSlice(t, MeanCurve(m), curve.Mean, 1e-12)
	assert.InDeltaSlice(t, DispersionBand(m), curve.Std, 1e-12)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3, 2.0 / 3, 1}, curve.Optimal, 1e-12)

	a.Reset()
	curve = a.DataSet().(*Curve)
	assert.Equal(t, []float64{0, 0, 0, 0}, curve.Mean)
	assert.Equal(t, []float64{0, 0, 0, 0}, curve.Optimal)
}

func TestOptimalActionAnalyzerBounds(t *testing.T) {
	a := NewOptimalActionAnalyzer(3)
	assert.Equal(t, []float64{0, 0, 0}, a.DataSet().(*OptimalActions).Fraction)

	a.Analyze(nil, trace([]float64{0, 0, 0}, []bool{true, false, true}))
	a.Analyze(nil, trace([]float64{0, 0, 0}, []bool{true, false, false}))
	fraction := a.DataSet().(*OptimalActions).Fraction
	assert.Equal(t, []float64{1, 0, 0.5}, fraction)
	for _, f := range fraction {
		assert.False(t, math.IsNaN(f))
		assert.True(t, f >= 0 && f <= 1)
	}
}

func TestCurveComparatorSavesJSON(t *testing.T) {
	dir := t.TempDir()
	cmp := NewCurveComparator(filepath.Join(dir, "out"), "curves.json")
	err := cmp.Compare(
		[]string{"a", "b"},
		[]core.DataSet{
			&Curve{Mean: []float64{1, 2}, Std: []float64{0, 0.5}, Optimal: []float64{0, 1}},
			&Curve{Mean: []float64{3}, Std: []float64{0}},
		},
	)
	require.NoError(t, err)

	bs, err := os.ReadFile(filepath.Join(dir, "out", "curves.json"))
	require.NoError(t, err)
	saved := make(map[string]Curve)
	require.NoError(t, json.Unmarshal(bs, &saved))
	assert.Equal(t, []float64{1, 2}, saved["a"].Mean)
	assert.Equal(t, []float64{0, 1}, saved["a"].Optimal)
	assert.Equal(t, []float64{3}, saved["b"].Mean)
	assert.Nil(t, saved["b"].Optimal)
}

func TestNoOpComparator(t *testing.T) {
	assert.NoError(t, NewNoOpComparator().Compare([]string{"a"}, []core.DataSet{nil}))
}
