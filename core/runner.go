package core

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/go-kit/log/level"
	"github.com/zeu5/bandit-testing/util"
	"golang.org/x/exp/rand"
)

// progressEvery is the number of timesteps between two status updates
const progressEvery = 100

// Run runs all repetitions of the experiment without analyzers and
// returns the filled reward matrix
func (e *Experiment) Run(ctx context.Context, rConfig *RunConfig) (*ExperimentResult, error) {
	if err := rConfig.Validate(); err != nil {
		return nil, err
	}
	return e.run(ctx, rConfig, map[string]Analyzer{})
}

// repetitionSeed derives the seed of one stream of one repetition. The
// result depends only on the base seed, so repetitions can run in any
// order or in parallel.
func repetitionSeed(seed uint64, repetition int, stream uint64) uint64 {
	return seed + 2*uint64(repetition) + stream
}

// repetitionResult is the outcome of one repetition sent back by a worker
type repetitionResult struct {
	rCtx  *RepetitionContext
	trace *Trace
	err   error
}

// parallelWorker is a worker that runs repetitions
type parallelWorker struct {
	id         int
	experiment *Experiment
	rConfig    *RunConfig
	output     *util.ParallelOutput
}

// Worker main loop that consumes repetition numbers from a channel
func (w *parallelWorker) run(ctx context.Context, workCh <-chan int, resultsCh chan<- *repetitionResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case repetition, more := <-workCh:
			if !more {
				return
			}
			resultsCh <- w.runRepetition(ctx, repetition)
		}
	}
}

func (w *parallelWorker) status(repetition, step int) {
	if w.output == nil {
		return
	}
	w.output.TrySet(fmt.Sprintf(
		"Experiment: %s, Worker %d, Repetition %d/%d, Timesteps: %d/%d",
		w.experiment.Name, w.id, repetition+1, w.rConfig.Repetitions, step, w.rConfig.Horizon,
	))
}

func (w *parallelWorker) runRepetition(ctx context.Context, repetition int) *repetitionResult {
	e := w.experiment
	horizon := w.rConfig.Horizon
	rCtx := NewRepetitionContext(ctx, e.Name, repetition, horizon)
	result := &repetitionResult{rCtx: rCtx}

	env, err := e.Environment.NewEnvironment(repetition, rand.NewSource(repetitionSeed(w.rConfig.Seed, repetition, 0)))
	if err != nil {
		result.err = fmt.Errorf("experiment %s, repetition %d: creating environment: %w", e.Name, repetition, err)
		return result
	}
	policy, err := e.Policy.NewPolicy(env.NumActions(), rand.NewSource(repetitionSeed(w.rConfig.Seed, repetition, 1)))
	if err != nil {
		result.err = fmt.Errorf("experiment %s, repetition %d: creating policy: %w", e.Name, repetition, err)
		return result
	}

	optimal := env.OptimalAction()
	trace := NewTrace(horizon)
	for step := 0; step < horizon; step++ {
		select {
		case <-ctx.Done():
			result.err = ErrContextCancelled
			return result
		default:
		}
		if step%progressEvery == 0 {
			w.status(repetition, step)
		}

		sCtx := &StepContext{Step: step, RepetitionContext: rCtx}
		action := policy.PickAction(sCtx)
		reward, err := env.Act(action)
		if err != nil {
			result.err = fmt.Errorf("experiment %s, repetition %d, step %d: %w", e.Name, repetition, step, err)
			return result
		}
		policy.Update(action, reward)
		trace.AddStep(Step{
			Action:  action,
			Reward:  reward,
			Optimal: action == optimal,
		})
	}
	w.status(repetition, horizon)
	result.trace = trace
	return result
}

func (e *Experiment) run(ctx context.Context, rConfig *RunConfig, analyzers map[string]Analyzer) (*ExperimentResult, error) {
	logger := rConfig.logger()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numWorkers := rConfig.workers()
	level.Info(logger).Log(
		"msg", "starting experiment",
		"experiment", e.Name,
		"repetitions", rConfig.Repetitions,
		"horizon", rConfig.Horizon,
		"workers", numWorkers,
	)

	var printer *util.TerminalPrinter
	if rConfig.Progress {
		printer = util.NewTerminalPrinter(os.Stdout, rConfig.refresh())
	}

	workCh := make(chan int, numWorkers)
	resultsCh := make(chan *repetitionResult, numWorkers)
	wg := new(sync.WaitGroup)

	// Start workers
	workers := make([]*parallelWorker, numWorkers)
	for i := 0; i < numWorkers; i++ {
		workers[i] = &parallelWorker{id: i, experiment: e, rConfig: rConfig}
		if printer != nil {
			workers[i].output = printer.NewOutput()
		}
	}
	if printer != nil {
		printer.Start(ctx)
	}
	for _, w := range workers {
		wg.Add(1)
		go func(w *parallelWorker) {
			defer wg.Done()
			w.run(ctx, workCh, resultsCh)
		}(w)
	}

	// Send repetitions to the workers
	go func() {
		defer close(workCh)
		for repetition := 0; repetition < rConfig.Repetitions; repetition++ {
			select {
			case <-ctx.Done():
				return
			case workCh <- repetition:
			}
		}
	}()

	// Wait for all work to finish
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	result := &ExperimentResult{
		Name:     e.Name,
		Rewards:  NewRewardMatrix(rConfig.Repetitions, rConfig.Horizon),
		Datasets: make(map[string]DataSet),
	}
	var runErr error
	for r := range resultsCh {
		if r.err != nil {
			if runErr == nil {
				runErr = r.err
				cancel()
			}
			continue
		}
		result.Rewards.SetRow(r.rCtx.Repetition, r.trace.Rewards())
		result.CompletedRepetitions++
		result.TotalTimeSteps += r.trace.Len()
		for _, a := range analyzers {
			a.Analyze(r.rCtx, r.trace)
		}
	}
	if printer != nil {
		printer.Stop()
	}
	if runErr == nil && result.CompletedRepetitions < rConfig.Repetitions {
		runErr = ErrContextCancelled
	}
	if runErr != nil {
		level.Error(logger).Log("msg", "experiment failed", "experiment", e.Name, "err", runErr)
		return nil, runErr
	}

	for name, a := range analyzers {
		result.Datasets[name] = a.DataSet()
	}
	level.Info(logger).Log(
		"msg", "finished experiment",
		"experiment", e.Name,
		"timesteps", result.TotalTimeSteps,
	)
	return result, nil
}
