package scheduler

// Plan describes how a source list is split across compile workers.
// The first Workers*Size items form the parallel batches, the final Tail
// items form the sequential tail batch. Together the batches partition the
// list with no gaps or overlaps.
type Plan struct {
	// Workers is the number of parallel batches, each run by one goroutine.
	Workers int

	// Size is the number of items in every parallel batch.
	Size int

	// Tail is the number of trailing items run on the calling goroutine
	// after all parallel batches have completed.
	Tail int
}

// PlanFor splits n items over at most jobs workers. Jobs below one count as
// one and the worker count never exceeds n, so a single-file project builds
// sequentially no matter how many jobs were requested.
func PlanFor(n, jobs int) Plan {
	if n <= 0 {
		return Plan{}
	}

	if jobs < 1 {
		jobs = 1
	}

	workers := min(jobs, n)

	return Plan{
		Workers: workers,
		Size:    n / workers,
		Tail:    n % workers,
	}
}
