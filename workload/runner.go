package workload

import (
	"math/bits"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/contribsys/binheap"
	"github.com/contribsys/binheap/util"
)

// Runner drives a randomized operation mix against a single heap. The heap
// is an exclusive-owner structure, so all operations execute on the calling
// goroutine; only Stop may be called from elsewhere.
type Runner struct {
	ID   string
	cfg  *Config
	heap *binheap.Heap

	// live handles for decrease-key and delete targets; dead handles are
	// compacted out lazily as they are drawn
	items []*binheap.Item

	rng     *rand.Rand
	stopped atomic.Bool

	inserts      int64
	deleteMins   int64
	decreaseKeys int64
	deletes      int64
	melds        int64
	cycles       int64

	// element count the heap should report, maintained alongside every
	// mutation; inserts minus removals
	expected int
}

// Report summarizes a finished run.
type Report struct {
	RunID     string
	Ops       int64
	Duration  time.Duration
	Rate      float64
	FinalSize int
	Trees     int
	Memory    string
	Finished  string
}

func NewRunner(cfg *Config) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		ID:   uuid.NewString(),
		cfg:  cfg,
		heap: binheap.New(),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Stop makes Run return after the operation in flight. Safe to call from
// another goroutine.
func (r *Runner) Stop() {
	r.stopped.Store(true)
}

func (r *Runner) Run() (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	util.With("run", r.ID).Infof("starting workload, %d ops", r.cfg.Ops)
	start := time.Now()

	for r.cycles < r.cfg.Ops && !r.stopped.Load() {
		if err := r.step(); err != nil {
			return nil, err
		}
		r.cycles++
		if r.cfg.Verify {
			if err := r.verify(); err != nil {
				return nil, err
			}
		}
	}

	elapsed := time.Since(start)
	return &Report{
		RunID:     r.ID,
		Ops:       r.cycles,
		Duration:  elapsed,
		Rate:      float64(r.cycles) / elapsed.Seconds(),
		FinalSize: r.heap.Size(),
		Trees:     r.heap.NumTrees(),
		Memory:    util.MemoryUsage(),
		Finished:  util.Nows(),
	}, nil
}

// Stats returns the per-operation counters.
func (r *Runner) Stats() map[string]int64 {
	return map[string]int64{
		"inserts":       r.inserts,
		"delete_mins":   r.deleteMins,
		"decrease_keys": r.decreaseKeys,
		"deletes":       r.deletes,
		"melds":         r.melds,
		"cycles":        r.cycles,
	}
}

func (r *Runner) step() error {
	switch r.pickOp() {
	case opInsert:
		r.insert()
	case opDeleteMin:
		if _, err := r.heap.DeleteMin(); err != nil {
			return errors.Wrap(err, "delete-min")
		}
		r.expected--
		r.deleteMins++
	case opDecreaseKey:
		it := r.pickLive()
		by := r.rng.Intn(r.cfg.KeyMax - r.cfg.KeyMin + 1)
		if err := r.heap.DecreaseKey(it, by); err != nil {
			return errors.Wrap(err, "decrease-key")
		}
		r.decreaseKeys++
	case opDelete:
		it := r.pickLive()
		if err := r.heap.Delete(it); err != nil {
			return errors.Wrap(err, "delete")
		}
		r.expected--
		r.deletes++
	case opMeld:
		return r.meld()
	}
	return nil
}

type op int

const (
	opInsert op = iota
	opDeleteMin
	opDecreaseKey
	opDelete
	opMeld
)

// pickOp draws the next operation per the mix weights, falling back to
// insert when the heap has nothing to remove or adjust.
func (r *Runner) pickOp() op {
	if r.heap.Empty() {
		return opInsert
	}
	m := r.cfg.Mix
	roll := r.rng.Intn(m.total())
	switch {
	case roll < m.Insert:
		return opInsert
	case roll < m.Insert+m.DeleteMin:
		return opDeleteMin
	case roll < m.Insert+m.DeleteMin+m.DecreaseKey:
		return opDecreaseKey
	case roll < m.Insert+m.DeleteMin+m.DecreaseKey+m.Delete:
		return opDelete
	default:
		return opMeld
	}
}

func (r *Runner) insert() {
	key := r.cfg.KeyMin + r.rng.Intn(r.cfg.KeyMax-r.cfg.KeyMin+1)
	it := r.heap.Insert(key, nil)
	r.items = append(r.items, it)
	r.expected++
	r.inserts++
}

// meld builds a small side heap and folds it into the main one, exercising
// the splice-and-consolidate path with multi-tree operands.
func (r *Runner) meld() error {
	side := binheap.New()
	n := 1 + r.rng.Intn(8)
	for i := 0; i < n; i++ {
		key := r.cfg.KeyMin + r.rng.Intn(r.cfg.KeyMax-r.cfg.KeyMin+1)
		r.items = append(r.items, side.Insert(key, nil))
		r.expected++
	}
	if err := r.heap.Meld(side); err != nil {
		return errors.Wrap(err, "meld")
	}
	r.melds++
	return nil
}

// pickLive draws a random live handle, compacting dead ones out of the pool
// as it encounters them. Callers guarantee the heap is non-empty, so at
// least one live handle exists.
func (r *Runner) pickLive() *binheap.Item {
	for {
		idx := r.rng.Intn(len(r.items))
		it := r.items[idx]
		if it.Live() {
			return it
		}
		last := len(r.items) - 1
		r.items[idx] = r.items[last]
		r.items = r.items[:last]
	}
}

// verify audits the cheap structural invariants after an operation: the
// element count matches the runner's own bookkeeping, the root count equals
// the popcount of the size, and the minimum cache is coherent with emptiness.
func (r *Runner) verify() error {
	size := r.heap.Size()
	if size != r.expected {
		return errors.Errorf("run %s: size %d, want %d", r.ID, size, r.expected)
	}
	if got, want := r.heap.NumTrees(), bits.OnesCount(uint(size)); got != want {
		return errors.Errorf("run %s: %d trees for %d elements, want %d", r.ID, got, size, want)
	}
	min := r.heap.FindMin()
	if r.heap.Empty() != (min == nil) {
		return errors.Errorf("run %s: empty=%v but min=%v", r.ID, r.heap.Empty(), min)
	}
	if min != nil && !min.Live() {
		return errors.Errorf("run %s: minimum handle is dead", r.ID)
	}
	return nil
}
