package scenarios

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gosuri/uilive"

	"github.com/zeu5/rl-plot/common"
)

// renderWork is a single scenario render handed to a worker.
type renderWork struct {
	scenario *Scenario
	flags    *common.Flags
	writer   io.Writer
}

// renderResult is the outcome of one scenario render.
type renderResult struct {
	scenarioName string
	err          error
}

// renderWorker consumes render work from a channel.
type renderWorker struct {
	id int
}

func (w *renderWorker) run(ctx context.Context, workCh <-chan *renderWork, resultsCh chan<- *renderResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case work, more := <-workCh:
			if !more {
				return
			}
			resultsCh <- w.runWork(ctx, work)
		}
	}
}

func (w *renderWorker) runWork(ctx context.Context, work *renderWork) *renderResult {
	fmt.Fprintf(work.writer, "Scenario: %s, rendering...\n", work.scenario.Name)
	result := &renderResult{scenarioName: work.scenario.Name}

	select {
	case <-ctx.Done():
		result.err = ctx.Err()
	default:
		result.err = work.scenario.Render(work.flags)
	}

	if result.err != nil {
		fmt.Fprintf(work.writer, "Scenario: %s, error: %v\n", work.scenario.Name, result.err)
	} else {
		fmt.Fprintf(work.writer, "Scenario: %s, wrote %s\n", work.scenario.Name, work.scenario.OutPath(work.flags))
	}
	return result
}

// Runner renders a set of scenarios on a bounded worker pool, one status
// line per scenario. Each render is independent, a failing scenario does not
// stop the others.
type Runner struct {
	scenarios   []*Scenario
	parallelism int
}

func NewRunner(scenarios []*Scenario, parallelism int) *Runner {
	if parallelism <= 0 {
		parallelism = 1
	}
	return &Runner{
		scenarios:   scenarios,
		parallelism: parallelism,
	}
}

func (r *Runner) Run(ctx context.Context, flags *common.Flags) error {
	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	// both channels hold every job so neither senders nor workers block
	workCh := make(chan *renderWork, len(r.scenarios))
	resultsCh := make(chan *renderResult, len(r.scenarios))

	for i := 0; i < r.parallelism; i++ {
		w := &renderWorker{id: i}
		go w.run(ctx, workCh, resultsCh)
	}

	for _, s := range r.scenarios {
		workCh <- &renderWork{
			scenario: s,
			flags:    flags,
			writer:   writer.Newline(),
		}
	}
	close(workCh)

	errs := make([]error, 0)
	for range r.scenarios {
		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return errors.Join(errs...)
		case result := <-resultsCh:
			if result.err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", result.scenarioName, result.err))
			}
		}
	}
	return errors.Join(errs...)
}
