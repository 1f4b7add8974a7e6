package analysis

import (
	"github.com/zeu5/bandit-testing/core"
)

// OptimalActions holds, for every timestep, the fraction of repetitions
// in which the optimal action was chosen
type OptimalActions struct {
	Fraction []float64 `json:"fraction"`
}

type OptimalActionAnalyzer struct {
	repetitions int
	hits        []int
}

var _ core.Analyzer = &OptimalActionAnalyzer{}

func NewOptimalActionAnalyzer(horizon int) *OptimalActionAnalyzer {
	return &OptimalActionAnalyzer{
		hits: make([]int, horizon),
	}
}

func (o *OptimalActionAnalyzer) Analyze(_ *core.RepetitionContext, trace *core.Trace) {
	o.repetitions++
	for t := 0; t < trace.Len() && t < len(o.hits); t++ {
		if trace.Step(t).Optimal {
			o.hits[t]++
		}
	}
}

func (o *OptimalActionAnalyzer) DataSet() core.DataSet {
	fraction := make([]float64, len(o.hits))
	if o.repetitions > 0 {
		for t, h := range o.hits {
			fraction[t] = float64(h) / float64(o.repetitions)
		}
	}
	return &OptimalActions{Fraction: fraction}
}

func (o *OptimalActionAnalyzer) Reset() {
	o.repetitions = 0
	for t := range o.hits {
		o.hits[t] = 0
	}
}

type OptimalActionAnalyzerConstructor struct{}

var _ core.AnalyzerConstructor = &OptimalActionAnalyzerConstructor{}

func NewOptimalActionAnalyzerConstructor() *OptimalActionAnalyzerConstructor {
	return &OptimalActionAnalyzerConstructor{}
}

func (o *OptimalActionAnalyzerConstructor) NewAnalyzer(_ string, horizon int) core.Analyzer {
	return NewOptimalActionAnalyzer(horizon)
}
