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

import "reflect"

// DefaultWeight is the cost assigned to an edge registered without an
// explicit weight.
const DefaultWeight = 1.0

// Edge is one directed, weighted conversion between two representation
// types. At most one edge exists per ordered (To, From) pair; registering
// the same pair again overwrites the previous edge.
//
// Weight must be a positive, finite number. Registration rejects anything
// else, including the zero value, so construct edges through NewEdge or
// WeightedEdge rather than struct literals.
type Edge struct {
	// To is the target representation type.
	To reflect.Type
	// From is the source representation type.
	From reflect.Type
	// Fn performs the direct conversion from From to To.
	Fn ConvertFunc
	// Weight is the positive cost used to select cheapest composed paths.
	Weight float64
}

// NewEdge returns an Edge with the default weight.
func NewEdge(to, from reflect.Type, fn ConvertFunc) Edge {
	return Edge{To: to, From: from, Fn: fn, Weight: DefaultWeight}
}

// WeightedEdge returns an Edge with an explicit weight. The weight is
// recorded as given; validation happens at registration.
func WeightedEdge(to, from reflect.Type, fn ConvertFunc, weight float64) Edge {
	return Edge{To: to, From: from, Fn: fn, Weight: weight}
}
