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

import (
	"fmt"
	"strings"
)

// Algorithm selects the all-pairs shortest-path algorithm used to synthesize
// composed conversion paths. It picks a class of behavior only; all
// algorithms produce tables with identical costs, differing at most in which
// equal-cost path they select.
type Algorithm int

const (
	// FloydWarshall selects the dense all-pairs algorithm. It is the default
	// and the natural choice for the small type sets this registry holds.
	FloydWarshall Algorithm = iota

	// Dijkstra selects one single-source run per known type. It does less
	// work than FloydWarshall on sparse edge sets.
	Dijkstra
)

// String returns the canonical token for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case FloydWarshall:
		return "FloydWarshall"
	case Dijkstra:
		return "Dijkstra"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Known reports whether a is a defined Algorithm value.
func (a Algorithm) Known() bool {
	switch a {
	case FloydWarshall, Dijkstra:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts a string token into an Algorithm. Matching is
// case-insensitive and surrounding whitespace is trimmed. On failure it
// returns FloydWarshall and a non-nil error; callers must not rely on the
// returned value in the error case.
func ParseAlgorithm(s string) (Algorithm, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FloydWarshall, fmt.Errorf("cvx: empty algorithm")
	}

	switch strings.ToLower(trimmed) {
	case "floydwarshall", "floyd-warshall":
		return FloydWarshall, nil
	case "dijkstra":
		return Dijkstra, nil
	default:
		return FloydWarshall, fmt.Errorf("cvx: unknown algorithm %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Known() {
		return nil, fmt.Errorf("cvx: cannot marshal unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
