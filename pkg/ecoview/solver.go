package ecoview

import (
	"container/heap"
	"context"
	"fmt"
	"math"
)

const defaultCancelCheckInterval = 1024

// neighborOffsets lists the 8-connected moves as (dRow, dCol).
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// SolveOptions configures the grid search.
type SolveOptions struct {
	// CancelCheckInterval is the number of heap pops between ctx checks.
	CancelCheckInterval int
}

// SolveOption is a functional option for Solve.
type SolveOption func(*SolveOptions)

// WithCancelCheckInterval sets how many pops run between cancellation checks.
// Values below 1 are treated as 1.
func WithCancelCheckInterval(n int) SolveOption {
	return func(o *SolveOptions) {
		if n < 1 {
			n = 1
		}
		o.CancelCheckInterval = n
	}
}

// DefaultSolveOptions returns the options used when none are given.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{CancelCheckInterval: defaultCancelCheckInterval}
}

// Solution is the outcome of a grid search.
type Solution struct {
	Path PathResult
	// Cost is the accumulated cost at the target, +Inf when unreachable.
	Cost    float64
	Pops    int
	Pushes  int
	Settled int
}

// Solve runs Dijkstra from start to target over the 8-connected grid where
// stepping onto a cell costs costs.At(cell), irrespective of direction.
//
// Heap entries are ordered by (cost, row, col). The heap uses lazy deletion:
// stale duplicates are discarded on pop via the visited flag. The search
// stops as soon as the target is popped. ctx is checked every
// CancelCheckInterval pops.
func Solve(ctx context.Context, costs *CostGrid, start, target Coordinate, opts ...SolveOption) (*Solution, error) {
	cfg := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, cols := costs.Rows(), costs.Cols()
	if err := validateCoordinate("start", start, rows, cols); err != nil {
		return nil, err
	}
	if err := validateCoordinate("target", target, rows, cols); err != nil {
		return nil, err
	}

	r := newRunner(costs, cfg)
	if err := r.process(ctx, start, target); err != nil {
		return nil, err
	}

	targetIdx := target.Row*cols + target.Col
	return &Solution{
		Path:    reconstructPath(r.parent, cols, start, target),
		Cost:    r.dist[targetIdx],
		Pops:    r.pops,
		Pushes:  r.pushes,
		Settled: r.settled,
	}, nil
}

// runner holds the search state for one Solve call.
type runner struct {
	weights []float64
	rows    int
	cols    int
	options SolveOptions

	dist    []float64
	visited []bool
	parent  []int // flat index of the predecessor, -1 if none
	pq      cellPQ

	pops    int
	pushes  int
	settled int
}

func newRunner(costs *CostGrid, cfg SolveOptions) *runner {
	rows, cols := costs.Rows(), costs.Cols()
	n := rows * cols
	r := &runner{
		weights: costs.Values(),
		rows:    rows,
		cols:    cols,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
		pq:      make(cellPQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.parent[i] = -1
	}
	return r
}

func (r *runner) push(idx int, cost float64) {
	heap.Push(&r.pq, cellItem{idx: idx, cost: cost})
	r.pushes++
}

func (r *runner) process(ctx context.Context, start, target Coordinate) error {
	startIdx := start.Row*r.cols + start.Col
	targetIdx := target.Row*r.cols + target.Col

	r.dist[startIdx] = 0
	heap.Init(&r.pq)
	r.push(startIdx, 0)

	for r.pq.Len() > 0 {
		if r.pops%r.options.CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("solve interrupted after %d pops: %w", r.pops, err)
			}
		}

		item := heap.Pop(&r.pq).(cellItem)
		r.pops++
		if r.visited[item.idx] {
			continue
		}
		r.visited[item.idx] = true
		r.settled++
		if item.idx == targetIdx {
			break
		}
		r.relax(item.idx, item.cost)
	}
	return nil
}

// relax pushes every in-bounds, unvisited neighbour of idx whose tentative
// distance strictly improves.
func (r *runner) relax(idx int, current float64) {
	row, col := idx/r.cols, idx%r.cols
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if nr < 0 || nr >= r.rows || nc < 0 || nc >= r.cols {
			continue
		}
		n := nr*r.cols + nc
		if r.visited[n] {
			continue
		}
		newCost := current + r.weights[n]
		if newCost >= r.dist[n] {
			continue
		}
		r.dist[n] = newCost
		r.parent[n] = idx
		r.push(n, newCost)
	}
}

// cellItem is a heap entry. idx is row*cols+col, so ordering by idx is the
// lexicographic (row, col) tie-break.
type cellItem struct {
	idx  int
	cost float64
}

type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].idx < pq[j].idx
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
