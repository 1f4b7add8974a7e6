// Package analysis reduces the rewards of an experiment to learning
// curves and compares them across experiments
package analysis

import (
	"math"

	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MeanCurve returns, for every timestep, the mean reward across all
// repetitions
func MeanCurve(m *core.RewardMatrix) []float64 {
	_, steps := m.Dims()
	curve := make([]float64, steps)
	for t := range curve {
		curve[t] = stat.Mean(m.Column(t), nil)
	}
	return curve
}

// DispersionBand returns, for every timestep, the population standard
// deviation of the reward across all repetitions
func DispersionBand(m *core.RewardMatrix) []float64 {
	repetitions, steps := m.Dims()
	band := make([]float64, steps)
	if repetitions < 2 {
		return band
	}
	for t := range band {
		_, band[t] = stat.PopMeanStdDev(m.Column(t), nil)
	}
	return band
}

// Band returns the mean curve shifted down and up by one standard
// deviation
func Band(m *core.RewardMatrix) (lower, upper []float64) {
	mean := MeanCurve(m)
	std := DispersionBand(m)
	lower = make([]float64, len(mean))
	upper = make([]float64, len(mean))
	floats.SubTo(lower, mean, std)
	floats.AddTo(upper, mean, std)
	return lower, upper
}

// Curve is a mean learning curve with its dispersion
type Curve struct {
	Mean    []float64 `json:"mean"`
	Std     []float64 `json:"std"`
	Optimal []float64 `json:"optimal,omitempty"`
}

// RewardCurveAnalyzer builds the mean and population standard deviation
// of the reward at every timestep, one repetition at a time, along with
// the share of repetitions that picked the optimal action
type RewardCurveAnalyzer struct {
	count   int
	mean    []float64
	m2      []float64
	optimal *OptimalActionAnalyzer
}

var _ core.Analyzer = &RewardCurveAnalyzer{}

func NewRewardCurveAnalyzer(horizon int) *RewardCurveAnalyzer {
	return &RewardCurveAnalyzer{
		mean:    make([]float64, horizon),
		m2:      make([]float64, horizon),
		optimal: NewOptimalActionAnalyzer(horizon),
	}
}

func (r *RewardCurveAnalyzer) Analyze(ctx *core.RepetitionContext, trace *core.Trace) {
	r.optimal.Analyze(ctx, trace)
	r.count++
	n := float64(r.count)
	for t := 0; t < trace.Len() && t < len(r.mean); t++ {
		x := trace.Step(t).Reward
		delta := x - r.mean[t]
		r.mean[t] += delta / n
		r.m2[t] += delta * (x - r.mean[t])
	}
}

func (r *RewardCurveAnalyzer) DataSet() core.DataSet {
	std := make([]float64, len(r.m2))
	if r.count > 0 {
		for t, m2 := range r.m2 {
			std[t] = math.Sqrt(m2 / float64(r.count))
		}
	}
	return &Curve{
		Mean:    util.CopyFloatSlice(r.mean),
		Std:     std,
		Optimal: r.optimal.DataSet().(*OptimalActions).Fraction,
	}
}

func (r *RewardCurveAnalyzer) Reset() {
	r.optimal.Reset()
	r.count = 0
	for t := range r.mean {
		r.mean[t] = 0
		r.m2[t] = 0
	}
}

type RewardCurveAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &RewardCurveAnalyzerConstructor{}

func NewRewardCurveAnalyzerConstructor() *RewardCurveAnalyzerConstructor {
	return &RewardCurveAnalyzerConstructor{}
}

func (r *RewardCurveAnalyzerConstructor) NewAnalyzer(_ string, horizon int) core.Analyzer {
	return NewRewardCurveAnalyzer(horizon)
}
