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
	"reflect"
	"sort"
	"strings"

	uref "dirpx.dev/cvx/utils/reflect"
)

// UnreachableError reports every ordered pair of known types that has no
// finite-cost conversion path. It aborts table synthesis: the registry
// publishes fully connected tables or none at all.
type UnreachableError struct {
	// Missing maps each unreachable target type to the source types that
	// cannot reach it.
	Missing map[reflect.Type][]reflect.Type
}

// Error formats the complete target <- sources enumeration, sorted by
// derived type name for deterministic output.
func (e *UnreachableError) Error() string {
	targets := make([]reflect.Type, 0, len(e.Missing))
	for t := range e.Missing {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool {
		return uref.Name(targets[i]) < uref.Name(targets[j])
	})

	var b strings.Builder
	b.WriteString("cvx(builder): conversion graph is not fully connected:")
	for i, t := range targets {
		sources := make([]string, 0, len(e.Missing[t]))
		for _, s := range e.Missing[t] {
			sources = append(sources, uref.Name(s))
		}
		sort.Strings(sources)
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(" ")
		b.WriteString(uref.Name(t))
		b.WriteString(" unreachable from [")
		b.WriteString(strings.Join(sources, ", "))
		b.WriteString("]")
	}
	return b.String()
}
