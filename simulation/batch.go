package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/locomotion/worker"
)

// Job is a simulation to run as part of a batch.
type Job struct {
	Name string
	// Build creates the runner for the job. It is called on the worker goroutine.
	Build func() (*Runner, error)
	// Duration is the simulated time to run for, in increments of FrameTime.
	Duration  time.Duration
	FrameTime time.Duration
}

// BatchResult is the outcome of a single job.
type BatchResult struct {
	Name      string
	Summaries []Summary
	Err       error
}

// RunBatch runs every job on the pool and waits for all of them. Results are in the order of jobs. A job
// that panics is reported to sentry and returns an error instead of taking the batch down.
func RunBatch(ctx context.Context, pool *worker.Pool, jobs []Job) []BatchResult {
	results := make([]BatchResult, len(jobs))
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		pool.Submit(func() {
			defer wg.Done()
			results[i] = runJob(ctx, job)
		})
	}
	wg.Wait()
	return results
}

func runJob(ctx context.Context, job Job) (res BatchResult) {
	res.Name = job.Name
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("job", job.Name)
	defer func() {
		if r := recover(); r != nil {
			hub.Recover(r)
			res.Err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()

	r, err := job.Build()
	if err != nil {
		res.Err = fmt.Errorf("build job %s: %w", job.Name, err)
		return res
	}
	if err := r.Run(ctx, job.Duration, job.FrameTime); err != nil {
		res.Err = fmt.Errorf("run job %s: %w", job.Name, err)
	}
	res.Summaries = r.Summaries()
	return res
}
