/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy

import (
	"container/heap"
	"math"

	"dirpx.dev/cvx/apis"
)

// NewDijkstra creates an apis.Solver that runs one single-source Dijkstra
// pass per node. All weights are positive by registry contract, so the
// algorithm's precondition holds.
func NewDijkstra() apis.Solver {
	return dijkstra{}
}

// dijkstra is a stateless per-source solver.
type dijkstra struct{}

// Ensure dijkstra implements apis.Solver.
var _ apis.Solver = dijkstra{}

// Solve runs Dijkstra from every source over the dense weight matrix w.
// Equal-cost ties resolve deterministically: the queue breaks equal keys by
// lower node index, and relaxations use strict improvement only.
func (dijkstra) Solve(w [][]float64) ([][]float64, [][]int) {
	n := len(w)
	dist := make([][]float64, n)
	pred := make([][]int, n)
	for src := 0; src < n; src++ {
		dist[src], pred[src] = solveFrom(w, src)
	}
	return dist, pred
}

// solveFrom computes single-source distances and predecessors from src.
func solveFrom(w [][]float64, src int) ([]float64, []int) {
	n := len(w)
	dist := make([]float64, n)
	pred := make([]int, n)
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[src] = 0

	pq := &nodeQueue{{idx: src, cost: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		if done[cur.idx] {
			continue
		}
		done[cur.idx] = true
		for j := 0; j < n; j++ {
			if done[j] || math.IsInf(w[cur.idx][j], 1) {
				continue
			}
			if through := dist[cur.idx] + w[cur.idx][j]; through < dist[j] {
				dist[j] = through
				pred[j] = cur.idx
				heap.Push(pq, node{idx: j, cost: through})
			}
		}
	}

	return dist, pred
}

// node is one priority-queue entry. Stale entries are skipped on pop via the
// done set rather than updated in place.
type node struct {
	idx  int
	cost float64
}

// nodeQueue is a min-heap over (cost, idx).
type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].idx < q[j].idx
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
