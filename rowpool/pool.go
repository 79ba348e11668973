package rowpool

import (
	"runtime"
	"sync"
)

// Workspace is the thread-private scratch a worker uses while accumulating
// a sparse row product: flag marks which columns have been touched during
// the current row (stamped with i+1, never cleared between rows so the
// same worker can reuse it row after row), and accum holds the
// corresponding partial sums.
type Workspace struct {
	flag    []int
	accum   []float64
	touched []int
}

// Reset grows the workspace to length n if needed. It does not clear
// existing contents: callers rely on the row-stamp discipline instead.
func (w *Workspace) Reset(n int) {
	if len(w.flag) < n {
		w.flag = make([]int, n)
		w.accum = make([]float64, n)
	}
}

// Flag returns the flag scratch vector, grown to at least length n.
func (w *Workspace) Flag(n int) []int {
	w.Reset(n)
	return w.flag
}

// Accum returns the dense accumulator scratch vector, grown to at least
// length n.
func (w *Workspace) Accum(n int) []float64 {
	w.Reset(n)
	return w.accum
}

// TouchedReset returns the touched-column scratch list truncated to
// length 0, retaining its backing array across calls. Callers append to
// the returned slice and must pass the result to SaveTouched afterward so
// growth is retained for future reuse.
func (w *Workspace) TouchedReset() []int {
	return w.touched[:0]
}

// SaveTouched stores the (possibly grown) touched-column slice back into
// the workspace for reuse on the next call.
func (w *Workspace) SaveTouched(touched []int) {
	w.touched = touched
}

// Pool is a persistent worker pool sized at construction and reused across
// many ParallelRows calls. Workers are spawned once and persist until
// Close.
type Pool struct {
	n          int
	workC      chan rowJob
	closeOnce  sync.Once
	done       chan struct{}
	workspaces []Workspace
}

type rowJob struct {
	lo, hi, idx int
	ws          *Workspace
	fn          func(lo, hi, idx int, ws *Workspace)
	wg          *sync.WaitGroup
}

// New creates a Pool with workers workers. If workers <= 0, GOMAXPROCS is
// used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		n:          workers,
		workC:      make(chan rowJob, workers*2),
		done:       make(chan struct{}),
		workspaces: make([]Workspace, workers),
	}
	for i := 0; i < workers; i++ {
		go p.worker(&p.workspaces[i])
	}
	return p
}

// Workers reports the number of workers in the pool. Reductions that want
// a fixed, deterministic combine order iterate partials indexed
// [0, Workers()).
func (p *Pool) Workers() int { return p.n }

func (p *Pool) worker(ws *Workspace) {
	for {
		select {
		case job, ok := <-p.workC:
			if !ok {
				return
			}
			// Stamps left by an earlier call would collide with this call's
			// i+1 stamps, so the flag vector starts clean for every job.
			for k := range ws.flag {
				ws.flag[k] = 0
			}
			job.fn(job.lo, job.hi, job.idx, ws)
			job.wg.Done()
		case <-p.done:
			return
		}
	}
}

// ParallelRows partitions [0, n) into contiguous row ranges, one per
// worker, and calls fn(lo, hi, idx, ws) for each range, blocking until
// every range has completed. fn must only write to output rows in
// [lo, hi) so that no two workers ever write the same row. idx is a
// stable chunk index in [0, NumChunks(n)) regardless of which goroutine
// executes the chunk; callers that accumulate a per-chunk partial
// reduction (trace, Frobenius norm, Gershgorin bounds) should index a
// partials slice by idx and combine it in idx order afterward, which
// keeps the reduction deterministic for a fixed worker count.
func (p *Pool) ParallelRows(n int, fn func(lo, hi, idx int, ws *Workspace)) {
	if n <= 0 {
		return
	}
	workers := p.NumChunks(n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			wg.Done()
			continue
		}
		p.workC <- rowJob{lo: lo, hi: hi, idx: w, fn: fn, wg: &wg}
	}
	wg.Wait()
}

// NumChunks returns the number of row-range chunks ParallelRows will use
// for a matrix of order n: min(Workers(), n).
func (p *Pool) NumChunks(n int) int {
	if n <= 0 {
		return 0
	}
	if p.n > n {
		return n
	}
	return p.n
}

// Close shuts down the pool's workers. Safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}
