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

package reflect

import (
	"path"
	"reflect"
	"strings"
	"sync"
)

// typeNameCache caches derived names by reflect.Type. Representation type
// sets are small and grow monotonically, so the cache is never evicted.
var typeNameCache sync.Map // key: reflect.Type, val: string

// Name derives a stable, human-readable "pkg.Type" identifier for t, used in
// error messages, logs, and alias fallbacks. Generic instantiation
// parameters are stripped ("T[int]" -> "T"). Unnamed types (e.g. "[]float64",
// "*pkg.T") fall back to their Go syntax. A nil type yields "<nil>".
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := stripTypeParams(t.Name())
	if name == "" {
		// Unnamed type: the Go syntax is the best stable identifier.
		name = t.String()
	} else if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}

	typeNameCache.Store(t, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
