package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/pqueue"
)

// Engine runs one search incrementally. It owns its search state
// (frontier, cost-so-far, predecessors, explored set) and mutates it only
// inside Step, one expansion per call. The grid is read, never written; the
// caller must not edit walls while a search is in flight, and instead Reset
// or Initialize again after an edit.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	grid     *hexgrid.Grid
	strategy Strategy
	opts     Options

	state          State
	source, target hexgrid.Hex

	frontier   *pqueue.Queue[hexgrid.Hex]
	inFrontier map[hexgrid.Hex]int // live entry count per cell
	cost       map[hexgrid.Hex]int
	prev       map[hexgrid.Hex]hexgrid.Hex // source has no entry
	explored   hexgrid.Set
	pushes     int

	current    hexgrid.Hex
	hasCurrent bool
	path       []hexgrid.Hex

	steps   int
	started time.Time
	elapsed time.Duration
}

// NewEngine builds an idle engine over grid using strategy.
// Returns ErrNilGrid, ErrUnknownStrategy or ErrOptionViolation.
func NewEngine(grid *hexgrid.Grid, strategy Strategy, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	e := &Engine{grid: grid, strategy: strategy, opts: o}
	e.Reset()

	return e, nil
}

// Reset discards all search state and returns the engine to Idle.
func (e *Engine) Reset() {
	e.state = Idle
	e.source, e.target = hexgrid.Hex{}, hexgrid.Hex{}
	e.frontier = pqueue.New[hexgrid.Hex]()
	e.inFrontier = make(map[hexgrid.Hex]int)
	e.cost = make(map[hexgrid.Hex]int)
	e.prev = make(map[hexgrid.Hex]hexgrid.Hex)
	e.explored = hexgrid.NewSet()
	e.pushes = 0
	e.current, e.hasCurrent = hexgrid.Hex{}, false
	e.path = nil
	e.steps = 0
	e.started = time.Time{}
	e.elapsed = 0
}

// Initialize resets the engine and seeds the frontier with source at
// priority 0 and cost 0. Both endpoints must be walkable; callers normalise
// them first.
func (e *Engine) Initialize(source, target hexgrid.Hex) error {
	for _, h := range [2]hexgrid.Hex{source, target} {
		if !e.grid.Contains(h) {
			return fmt.Errorf("%w: %v (radius %d)", ErrOutsideRegion, h, e.grid.Radius)
		}
		if e.grid.IsWall(h) {
			return fmt.Errorf("%w: %v", ErrBlockedEndpoint, h)
		}
	}
	e.Reset()
	e.source, e.target = source, target
	e.cost[source] = 0
	e.push(source, 0)
	e.started = e.opts.Clock()
	e.state = Initialized

	return nil
}

// Step expands exactly one cell. Stale frontier entries (cells already
// explored) are discarded inside the same call. Calling Step on an idle or
// terminated engine is a no-op that reports the current status.
func (e *Engine) Step() Status {
	switch e.state {
	case Idle:
		return StatusIdle
	case Found:
		return StatusFound
	case Exhausted:
		return StatusExhausted
	}
	e.state = Stepping

	for {
		cur, _, ok := e.frontier.ExtractMin()
		if !ok {
			e.finish(false)
			return StatusExhausted
		}
		e.dropFrontier(cur)
		if e.explored.Has(cur) {
			continue
		}

		e.current, e.hasCurrent = cur, true
		e.explored.Put(cur)
		e.steps++
		e.opts.OnExpand(cur, e.steps)

		if cur == e.target {
			e.finish(true)
			return StatusFound
		}
		e.relax(cur)
		e.elapsed = e.opts.Clock().Sub(e.started)

		return StatusContinuing
	}
}

// Run steps until the search terminates or ctx is done.
func (e *Engine) Run(ctx context.Context) (Status, error) {
	for {
		if err := ctx.Err(); err != nil {
			return StatusContinuing, err
		}
		st := e.Step()
		if st != StatusContinuing {
			return st, nil
		}
	}
}

// relax pushes every walkable neighbour of cur that the strategy admits.
func (e *Engine) relax(cur hexgrid.Hex) {
	g := e.cost[cur] + 1
	for _, n := range e.grid.WalkableNeighbors(cur) {
		old, reached := e.cost[n]
		if reached && (!e.strategy.usesCost() || g >= old) {
			continue
		}
		e.cost[n] = g
		e.prev[n] = cur
		e.push(n, e.priority(n, g))
	}
}

func (e *Engine) priority(h hexgrid.Hex, g int) int {
	switch e.strategy {
	case Dijkstra:
		return g
	case Greedy:
		return e.opts.Heuristic(h, e.target)
	case BFS:
		return 0
	case DFS:
		return -e.pushes
	default:
		return g + e.opts.Heuristic(h, e.target)
	}
}

func (e *Engine) push(h hexgrid.Hex, priority int) {
	e.pushes++
	e.frontier.Insert(h, priority)
	e.inFrontier[h]++
	e.opts.OnEnqueue(h, priority)
}

func (e *Engine) dropFrontier(h hexgrid.Hex) {
	if e.inFrontier[h] <= 1 {
		delete(e.inFrontier, h)
		return
	}
	e.inFrontier[h]--
}

func (e *Engine) finish(found bool) {
	e.elapsed = e.opts.Clock().Sub(e.started)
	e.current, e.hasCurrent = hexgrid.Hex{}, false
	if found {
		e.state = Found
		e.path = e.ReconstructPath(e.target)
	} else {
		e.state = Exhausted
	}
	e.opts.OnFinish(found, e.explored.Size())
}

// ReconstructPath walks predecessors from target back to the source and
// returns the cells source → target. It returns nil if target was never reached.
func (e *Engine) ReconstructPath(target hexgrid.Hex) []hexgrid.Hex {
	if _, ok := e.cost[target]; !ok {
		return nil
	}
	var path []hexgrid.Hex
	for cur := target; ; {
		path = append(path, cur)
		p, ok := e.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Strategy returns the engine's frontier discipline.
func (e *Engine) Strategy() Strategy { return e.strategy }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Source returns the source of the current search.
func (e *Engine) Source() hexgrid.Hex { return e.source }

// Target returns the target of the current search.
func (e *Engine) Target() hexgrid.Hex { return e.target }

// Current returns the most recently expanded cell while the search is live.
func (e *Engine) Current() (hexgrid.Hex, bool) { return e.current, e.hasCurrent }

// Steps returns the number of expansions so far.
func (e *Engine) Steps() int { return e.steps }

// Elapsed returns the time from Initialize to the latest Step.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Cost returns the cost-so-far of h and whether h has been reached.
func (e *Engine) Cost(h hexgrid.Hex) (int, bool) {
	c, ok := e.cost[h]
	return c, ok
}

// Predecessor returns the cell h was reached from. ok is false for the
// source and for unreached cells.
func (e *Engine) Predecessor(h hexgrid.Hex) (hexgrid.Hex, bool) {
	p, ok := e.prev[h]
	return p, ok
}

// InFrontier reports whether h has a live frontier entry.
func (e *Engine) InFrontier(h hexgrid.Hex) bool {
	return e.inFrontier[h] > 0 && !e.explored.Has(h)
}

// IsExplored reports whether h has been expanded.
func (e *Engine) IsExplored(h hexgrid.Hex) bool { return e.explored.Has(h) }

// Frontier returns the cells awaiting expansion in canonical order.
func (e *Engine) Frontier() []hexgrid.Hex {
	out := make([]hexgrid.Hex, 0, len(e.inFrontier))
	for h := range e.inFrontier {
		if !e.explored.Has(h) {
			out = append(out, h)
		}
	}
	hexgrid.SortHexes(out)

	return out
}

// Explored returns the expanded cells in canonical order.
func (e *Engine) Explored() []hexgrid.Hex { return hexgrid.Sorted(e.explored) }

// ExploredCount returns the number of expanded cells.
func (e *Engine) ExploredCount() int { return e.explored.Size() }

// Path returns a copy of the found path, or nil.
func (e *Engine) Path() []hexgrid.Hex {
	if e.path == nil {
		return nil
	}
	return append([]hexgrid.Hex(nil), e.path...)
}

// Snapshot copies the observable state. It does not mutate the engine, so
// consecutive calls without an intervening Step are equal.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Strategy:   e.strategy,
		State:      e.state,
		Source:     e.source,
		Target:     e.target,
		Frontier:   e.Frontier(),
		Explored:   e.Explored(),
		Path:       e.Path(),
		Current:    e.current,
		HasCurrent: e.hasCurrent,
		Steps:      e.steps,
		Elapsed:    e.elapsed,
	}
}
