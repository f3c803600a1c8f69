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

package apis

// Solver is an all-pairs shortest-path algorithm over a dense weight matrix.
// Different solvers are interchangeable; all must be deterministic given the
// same input, though they need not agree on which equal-cost path they pick.
type Solver interface {
	// Solve computes cheapest paths over w, where w[i][j] is the direct cost
	// from node i to node j, +Inf marks a missing edge, and the diagonal is
	// zero. All finite weights are positive.
	//
	// It returns the cost matrix dist and a predecessor matrix pred, where
	// pred[i][j] is the node preceding j on the cheapest i->j path, or -1
	// when j is unreachable from i or i == j.
	Solve(w [][]float64) (dist [][]float64, pred [][]int)
}
