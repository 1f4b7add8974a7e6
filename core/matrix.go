package core

import "gonum.org/v1/gonum/mat"

// RewardMatrix holds the reward sampled at every timestep of every
// repetition of an experiment. Row i belongs to repetition i.
type RewardMatrix struct {
	data *mat.Dense
}

// NewRewardMatrix returns a zeroed matrix of shape (repetitions, horizon).
// Both dimensions must be positive.
func NewRewardMatrix(repetitions, horizon int) *RewardMatrix {
	return &RewardMatrix{
		data: mat.NewDense(repetitions, horizon, nil),
	}
}

// Dims returns the number of repetitions and timesteps
func (m *RewardMatrix) Dims() (int, int) {
	return m.data.Dims()
}

func (m *RewardMatrix) At(repetition, step int) float64 {
	return m.data.At(repetition, step)
}

// SetRow stores the rewards of a completed repetition
func (m *RewardMatrix) SetRow(repetition int, rewards []float64) {
	m.data.SetRow(repetition, rewards)
}

// Row returns a copy of the rewards of one repetition
func (m *RewardMatrix) Row(repetition int) []float64 {
	return mat.Row(nil, repetition, m.data)
}

// Column returns a copy of the rewards observed at one timestep across
// all repetitions
func (m *RewardMatrix) Column(step int) []float64 {
	return mat.Col(nil, step, m.data)
}

// Matrix returns a read-only view of the underlying data
func (m *RewardMatrix) Matrix() mat.Matrix {
	return m.data
}
