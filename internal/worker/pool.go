// worker/pool.go
package worker

type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	for job := range p.jobs {
		output := job.fn()
		p.results <- Result[T]{
			JobID:  job.id,
			Output: output,
		}
	}
}

func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs. Workers exit once the queue drains.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

// Collect runs every job on a fresh pool and returns outputs in job order.
func Collect[T any](workerCount int, jobs []Job[T]) []T {
	out := make([]T, len(jobs))
	if len(jobs) == 0 {
		return out
	}
	p := NewPool[indexed[T]](min(workerCount, len(jobs)), len(jobs))
	for i, job := range jobs {
		p.Submit("", func() indexed[T] { return indexed[T]{i: i, v: job()} })
	}
	p.Close()
	for range jobs {
		r := <-p.Results()
		out[r.Output.i] = r.Output.v
	}
	return out
}

type indexed[T any] struct {
	i int
	v T
}
