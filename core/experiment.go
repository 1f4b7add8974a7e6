package core

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/zeu5/bandit-testing/util"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Experiment pairs an environment with a policy. Every repetition gets a
// fresh instance of both.
type Experiment struct {
	Name        string
	Environment EnvironmentConstructor
	Policy      PolicyConstructor
}

type DataSet interface{}

type Analyzer interface {
	// Analyze is called once for every completed repetition
	Analyze(*RepetitionContext, *Trace)
	DataSet() DataSet
	Reset()
}

type AnalyzerConstructor interface {
	// new analyzer based on experiment name and horizon
	NewAnalyzer(string, int) Analyzer
}

type Comparator interface {
	Compare([]string, []DataSet) error
}

type RunConfig struct {
	Repetitions int
	Horizon     int
	// Parallelism is the number of workers running repetitions. Values
	// below one run repetitions sequentially.
	Parallelism int
	Seed        uint64

	Logger log.Logger
	// Progress prints live per-worker status lines to the terminal
	Progress        bool
	ProgressRefresh time.Duration
}

func (r *RunConfig) Validate() error {
	if r.Repetitions < 1 {
		return ConfigurationError("repetitions must be at least 1, got %d", r.Repetitions)
	}
	if r.Horizon < 1 {
		return ConfigurationError("horizon must be at least 1, got %d", r.Horizon)
	}
	return nil
}

func (r *RunConfig) logger() log.Logger {
	if r.Logger == nil {
		return log.NewNopLogger()
	}
	return r.Logger
}

func (r *RunConfig) workers() int {
	if r.Parallelism < 1 {
		return 1
	}
	return util.MinInt(r.Parallelism, r.Repetitions)
}

func (r *RunConfig) refresh() time.Duration {
	if r.ProgressRefresh <= 0 {
		return 500 * time.Millisecond
	}
	return r.ProgressRefresh
}

type ExperimentResult struct {
	Name                 string
	CompletedRepetitions int
	TotalTimeSteps       int

	Rewards  *RewardMatrix
	Datasets map[string]DataSet
}

// Comparison runs a set of experiments under the same RunConfig and
// compares the datasets produced by each named analysis
type Comparison struct {
	Experiments []*Experiment
	Analyzers   map[string]AnalyzerConstructor
	Comparators map[string]Comparator
}

func NewComparison() *Comparison {
	return &Comparison{
		Analyzers:   make(map[string]AnalyzerConstructor),
		Comparators: make(map[string]Comparator),
		Experiments: make([]*Experiment, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a AnalyzerConstructor, cmp Comparator) {
	c.Analyzers[name] = a
	c.Comparators[name] = cmp
}

// Run runs every experiment in order and hands the datasets of each
// analysis to its comparator. Results are returned in experiment order.
func (c *Comparison) Run(ctx context.Context, rConfig *RunConfig) ([]*ExperimentResult, error) {
	if err := rConfig.Validate(); err != nil {
		return nil, err
	}
	logger := rConfig.logger()
	analysisNames := maps.Keys(c.Analyzers)
	slices.Sort(analysisNames)

	results := make([]*ExperimentResult, 0, len(c.Experiments))
	for _, e := range c.Experiments {
		select {
		case <-ctx.Done():
			return results, ErrContextCancelled
		default:
		}

		analyzers := make(map[string]Analyzer)
		for _, name := range analysisNames {
			analyzers[name] = c.Analyzers[name].NewAnalyzer(e.Name, rConfig.Horizon)
		}
		result, err := e.run(ctx, rConfig, analyzers)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	experimentNames := make([]string, len(results))
	for i, r := range results {
		experimentNames[i] = r.Name
	}
	for _, name := range analysisNames {
		cmp, ok := c.Comparators[name]
		if !ok || cmp == nil {
			continue
		}
		datasets := make([]DataSet, len(results))
		for i, r := range results {
			datasets[i] = r.Datasets[name]
		}
		if err := cmp.Compare(experimentNames, datasets); err != nil {
			level.Error(logger).Log("msg", "comparison failed", "analysis", name, "err", err)
			return results, fmt.Errorf("analysis %s: %w", name, err)
		}
	}
	return results, nil
}
