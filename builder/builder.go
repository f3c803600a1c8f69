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

package builder

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"dirpx.dev/cvx/apis"
	"dirpx.dev/cvx/dispatch"
	"dirpx.dev/cvx/strategy"
	uref "dirpx.dev/cvx/utils/reflect"
)

var (
	// ErrUnknownEdgeType is returned when an edge references a type missing
	// from the known-type set. The registry extends the set before building,
	// so this indicates a caller bug.
	ErrUnknownEdgeType = errors.New("cvx(builder): edge references type outside the known set")
	// ErrBrokenPredecessor indicates an inconsistent predecessor chain from
	// the solver. It should never surface with a correct solver.
	ErrBrokenPredecessor = errors.New("cvx(builder): broken predecessor chain")
)

// New creates an apis.Builder that synthesizes dispatch tables with the
// shortest-path algorithm selected by the per-build config.
func New() apis.Builder {
	return &builder{}
}

// builder is a stateless table synthesizer.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildTable computes cheapest composed conversion paths between every
// ordered pair of types and materializes them as a dispatch table.
//
// It builds the dense weight matrix (missing edges +Inf, diagonal zero),
// runs the configured solver, fails with an UnreachableError if any ordered
// pair has no finite path, and otherwise reconstructs each pair's pipeline
// from the predecessor matrix. The published per-pair weight is the step
// count of the pipeline, independent of the real-valued edge weights used
// for path selection.
func (b *builder) BuildTable(cfg apis.Config, types []reflect.Type, edges []apis.Edge) (apis.Table, error) {
	n := len(types)
	if n == 0 {
		return dispatch.NewTable(nil), nil
	}

	index := make(map[reflect.Type]int, n)
	for i, t := range types {
		index[t] = i
	}

	w := make([][]float64, n)
	fns := make([][]apis.ConvertFunc, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		fns[i] = make([]apis.ConvertFunc, n)
		for j := 0; j < n; j++ {
			if i != j {
				w[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range edges {
		from, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeType, uref.Name(e.From))
		}
		to, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeType, uref.Name(e.To))
		}
		if from == to {
			// Identity is handled outside the table; the diagonal stays zero.
			continue
		}
		w[from][to] = e.Weight
		fns[from][to] = e.Fn
	}

	dist, pred := strategy.For(cfg.Algorithm).Solve(w)

	if err := checkReachability(types, dist); err != nil {
		return nil, err
	}

	convs := make([]apis.Converter, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			steps, err := reconstruct(pred, fns, i, j)
			if err != nil {
				return nil, err
			}
			convs = append(convs, dispatch.NewComposed(types[j], types[i], steps))
		}
	}
	return dispatch.NewTable(convs), nil
}

// checkReachability scans the cost matrix for infinite entries and
// aggregates them into a single UnreachableError, per target.
func checkReachability(types []reflect.Type, dist [][]float64) error {
	n := len(types)
	var missing map[reflect.Type][]reflect.Type
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j || !math.IsInf(dist[i][j], 1) {
				continue
			}
			if missing == nil {
				missing = make(map[reflect.Type][]reflect.Type)
			}
			missing[types[j]] = append(missing[types[j]], types[i])
		}
	}
	if missing != nil {
		return &UnreachableError{Missing: missing}
	}
	return nil
}

// reconstruct walks the predecessor chain backward from target j to source i
// and returns the direct conversion steps in forward application order.
func reconstruct(pred [][]int, fns [][]apis.ConvertFunc, i, j int) ([]apis.ConvertFunc, error) {
	var rev []apis.ConvertFunc
	for cur := j; cur != i; {
		p := pred[i][cur]
		if p < 0 || fns[p][cur] == nil {
			return nil, fmt.Errorf("%w: %d -> %d at %d", ErrBrokenPredecessor, i, j, cur)
		}
		rev = append(rev, fns[p][cur])
		cur = p
	}
	steps := make([]apis.ConvertFunc, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		steps = append(steps, rev[k])
	}
	return steps, nil
}
