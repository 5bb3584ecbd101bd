package worker_test

import (
	"sort"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qbank-local/backend/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	p := worker.NewPool[int](3, 10)
	for i := 0; i < 10; i++ {
		p.Submit(strconv.Itoa(i), func() int { return i * i })
	}
	p.Close()

	var ids []string
	sum := 0
	for i := 0; i < 10; i++ {
		r := <-p.Results()
		ids = append(ids, r.JobID)
		sum += r.Output
	}

	sort.Strings(ids)
	assert.Len(t, ids, 10)
	assert.Equal(t, 285, sum)
}

func TestCollect_PreservesJobOrder(t *testing.T) {
	var calls atomic.Int32
	jobs := make([]worker.Job[string], 20)
	for i := range jobs {
		jobs[i] = func() string {
			calls.Add(1)
			return "job-" + strconv.Itoa(i)
		}
	}

	out := worker.Collect(4, jobs)

	assert.Equal(t, int32(20), calls.Load())
	for i, v := range out {
		assert.Equal(t, "job-"+strconv.Itoa(i), v)
	}
}

func TestCollect_NoJobs(t *testing.T) {
	assert.Empty(t, worker.Collect[int](4, nil))
}

func TestNewPool_ClampsWorkerCount(t *testing.T) {
	p := worker.NewPool[int](0, 1)
	p.Submit("only", func() int { return 7 })
	p.Close()

	assert.Equal(t, 7, (<-p.Results()).Output)
}
