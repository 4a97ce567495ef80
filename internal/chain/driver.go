package chain

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"undeath/internal/format"
	"undeath/internal/grid"
	"undeath/internal/search"
	"undeath/pkg/core"
)

// Config controls one Driver's scheduling behaviour.
type Config struct {
	// Workers bounds how many Sequences are advanced concurrently per
	// macro-step.
	Workers int
	// MicroStepSize is the budget passed to every Searcher.Search call.
	MicroStepSize int
	// MaxAttempts caps how many Sequences are advanced per macro-step; the
	// rest sit out that round. 0 means unbounded.
	MaxAttempts int
	// Shuffle randomizes scheduling order before the fitness sort, to avoid
	// always favouring the same Sequences on ties.
	Shuffle bool
}

// Driver owns a population of Sequences and advances them one macro-step
// at a time.
type Driver struct {
	cfg        Config
	log        zerolog.Logger
	rng        *core.RNG
	attempts   []*Sequence
	terminated []*Sequence
	termMu     sync.Mutex

	totalIterations atomic.Int64
	macroStep       int
}

// NewDriver constructs a Driver with a single Sequence seeded from start.
func NewDriver(cfg Config, start grid.Grid, log zerolog.Logger, seed int64) *Driver {
	return &Driver{
		cfg:      cfg,
		log:      log,
		rng:      core.NewRNG(seed),
		attempts: []*Sequence{NewSequence(start)},
	}
}

// Step runs one macro-step: shuffle, sort by fitness, dispatch up to
// MaxAttempts sequences to a bounded worker pool, and fold the results back
// into the population. It returns false once every sequence has terminated.
func (d *Driver) Step(ctx context.Context) (bool, error) {
	if d.cfg.Shuffle {
		d.rng.Shuffle(len(d.attempts), func(i, j int) {
			d.attempts[i], d.attempts[j] = d.attempts[j], d.attempts[i]
		})
	}
	sort.SliceStable(d.attempts, func(i, j int) bool {
		return d.attempts[i].fitnessKey() < d.attempts[j].fitnessKey()
	})

	dispatched := d.attempts
	rest := []*Sequence(nil)
	if d.cfg.MaxAttempts > 0 && len(dispatched) > d.cfg.MaxAttempts {
		rest = append(rest, dispatched[d.cfg.MaxAttempts:]...)
		dispatched = dispatched[:d.cfg.MaxAttempts]
	}

	results := make([][]*Sequence, len(dispatched))
	group, gctx := errgroup.WithContext(ctx)
	if d.cfg.Workers > 0 {
		group.SetLimit(d.cfg.Workers)
	}

	for i, seq := range dispatched {
		i, seq := i, seq
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.advance(seq)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return false, err
	}

	next := rest
	for _, r := range results {
		next = append(next, r...)
	}
	d.attempts = next
	d.macroStep++

	d.log.Info().
		Int("macro_step", d.macroStep).
		Str("iterations", format.IterationCount(int(d.totalIterations.Load()))).
		Str("running", format.Attempts(len(d.attempts))).
		Int("terminated", d.terminatedCount()).
		Int("longest_chain", d.longestChainLen()).
		Msg("macro-step complete")

	return len(d.attempts) > 0, nil
}

// advance runs one Sequence's Searcher for one micro-step budget, folding
// the outcome: Found keeps the original Sequence and adds a forked one
// extending the chain, Working keeps it unchanged, Unsatisfiable retires it
// into the terminated pool and drops it from the running population.
func (d *Driver) advance(seq *Sequence) []*Sequence {
	result := seq.searcher.Search(d.cfg.MicroStepSize)
	d.totalIterations.Add(int64(result.Iterations))

	switch result.Status {
	case search.Found:
		return []*Sequence{seq, seq.fork(result.Grid)}
	case search.Working:
		return []*Sequence{seq}
	default: // search.Unsatisfiable
		d.termMu.Lock()
		d.terminated = append(d.terminated, seq)
		d.termMu.Unlock()
		return nil
	}
}

func (d *Driver) terminatedCount() int {
	d.termMu.Lock()
	defer d.termMu.Unlock()
	return len(d.terminated)
}

// BestSequence returns the longest chain among running and terminated
// sequences, for reporting and snapshotting.
func (d *Driver) BestSequence() *Sequence {
	d.termMu.Lock()
	defer d.termMu.Unlock()

	var best *Sequence
	for _, seq := range d.attempts {
		if best == nil || seq.Len() > best.Len() {
			best = seq
		}
	}
	for _, seq := range d.terminated {
		if best == nil || seq.Len() > best.Len() {
			best = seq
		}
	}
	return best
}

func (d *Driver) longestChainLen() int {
	if best := d.BestSequence(); best != nil {
		return best.Len()
	}
	return 0
}

// MacroStep returns the number of completed macro-steps.
func (d *Driver) MacroStep() int { return d.macroStep }

// RunningCount returns the number of Sequences still being searched.
func (d *Driver) RunningCount() int { return len(d.attempts) }
