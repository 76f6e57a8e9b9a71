package sweep

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sweepcut/csr"
)

const methodBatch = "Batch"

// Job is one candidate set for Batch. When Scores is non-nil the job runs
// SweepSorted, otherwise Sweep on IDs as given.
type Job[V csr.Integer] struct {
	IDs    []V
	Scores []float64
}

// Batch sweeps every job against the shared graph g, running at most
// Options.Workers sweeps at a time (WithWorkers; GOMAXPROCS by default).
// results[i] belongs to jobs[i].
//
// The graph and any WithDegrees vector are only read, so they are shared by
// all workers; each sweep allocates its own rank map and output. The first
// failing job cancels the rest and its error is returned, tagged with the
// job index. Cancelling ctx stops jobs that have not started yet.
func Batch[V, I csr.Integer](ctx context.Context, g *csr.Graph[V, I], jobs []Job[V], opts ...Option) ([]Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}

	results := make([]Result[V], len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)

	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				res Result[V]
				err error
			)
			if job.Scores != nil {
				res, err = SweepSorted(g, job.Scores, job.IDs, opts...)
			} else {
				res, err = Sweep(g, job.IDs, opts...)
			}
			if err != nil {
				return fmt.Errorf("%s: job %d: %w", methodBatch, i, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
