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

// Table maps every ordered pair of distinct known representation types to
// its cheapest composed converter. Identity pairs are never stored; the
// dispatch layer handles them without a table lookup.
//
// A Table is immutable once built and safe for concurrent use. Completeness
// is guaranteed by construction: a Builder either returns a table covering
// every ordered pair of the types it was given, or an error and no table.
type Table interface {
	// Converter returns the composed converter for the ordered pair.
	Converter(to, from reflect.Type) (Converter, bool)
	// Weight returns the published step count for the ordered pair.
	Weight(to, from reflect.Type) (int, bool)
	// Size returns the number of stored pairs.
	Size() int
}
