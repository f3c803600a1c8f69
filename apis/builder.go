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

// Builder synthesizes a complete dispatch Table from the known-type set and
// the direct edge set. Implementations must be stateless or internally
// synchronized: the registry calls BuildTable while holding its build lock,
// but multiple registries may share one Builder.
type Builder interface {
	// BuildTable returns a table with a composed converter for every ordered
	// pair of distinct types, or an error when at least one pair has no
	// finite-cost path. No partial table is ever returned.
	BuildTable(cfg Config, types []reflect.Type, edges []Edge) (Table, error)
}
