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
	"math"

	"dirpx.dev/cvx/apis"
)

// NewFloydWarshall creates an apis.Solver running the classic dense
// all-pairs algorithm. O(n^3) time, which is fine for the small type sets a
// conversion registry holds.
func NewFloydWarshall() apis.Solver {
	return floydWarshall{}
}

// For returns the solver selected by a, defaulting to Floyd-Warshall for
// unknown values.
func For(a apis.Algorithm) apis.Solver {
	switch a {
	case apis.Dijkstra:
		return NewDijkstra()
	default:
		return NewFloydWarshall()
	}
}

// floydWarshall is a stateless dense all-pairs solver.
type floydWarshall struct{}

// Ensure floydWarshall implements apis.Solver.
var _ apis.Solver = floydWarshall{}

// Solve runs Floyd-Warshall over w. Iteration order is plain ascending
// (k, i, j) with strict-improvement updates, so equal-cost ties resolve
// deterministically toward lower intermediate node indices.
func (floydWarshall) Solve(w [][]float64) ([][]float64, [][]int) {
	n := len(w)
	dist := make([][]float64, n)
	pred := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		pred[i] = make([]int, n)
		copy(dist[i], w[i])
		for j := 0; j < n; j++ {
			if i != j && !math.IsInf(w[i][j], 1) {
				pred[i][j] = i
			} else {
				pred[i][j] = -1
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if through := dist[i][k] + dist[k][j]; through < dist[i][j] {
					dist[i][j] = through
					pred[i][j] = pred[k][j]
				}
			}
		}
	}

	return dist, pred
}
