package policies

import (
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"gonum.org/v1/gonum/floats"
)

// greedy returns the index of the largest value, the lowest index on
// ties
func greedy(values []float64) int {
	return floats.MaxIdx(values)
}

// sampleAverage keeps incremental sample means of the rewards seen for
// every action
type sampleAverage struct {
	q []float64
	n []int
}

func newSampleAverage(numActions int) sampleAverage {
	return sampleAverage{
		q: make([]float64, numActions),
		n: make([]int, numActions),
	}
}

func (s *sampleAverage) update(action int, reward float64) {
	s.n[action]++
	s.q[action] += (reward - s.q[action]) / float64(s.n[action])
}

// Values returns a copy of the current estimates
func (s *sampleAverage) Values() []float64 {
	return util.CopyFloatSlice(s.q)
}

// Counts returns a copy of the number of updates of every action
func (s *sampleAverage) Counts() []int {
	return util.CopyIntSlice(s.n)
}

func checkActions(numActions int) error {
	if numActions < 2 {
		return core.ConfigurationError("policy needs at least 2 actions, got %d", numActions)
	}
	return nil
}
