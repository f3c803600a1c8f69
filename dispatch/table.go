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

package dispatch

import (
	"reflect"

	"dirpx.dev/cvx/apis"
)

// pairKey is an ordered (target, source) pair of representation types.
type pairKey struct {
	to   reflect.Type
	from reflect.Type
}

// NewTable constructs an immutable dispatch table from the given converters,
// keyed by their (To, From) pairs. Identity converters are skipped: the
// dispatch layer short-circuits identity without a table lookup.
func NewTable(convs []apis.Converter) apis.Table {
	entries := make(map[pairKey]apis.Converter, len(convs))
	for _, c := range convs {
		if c == nil || c.To() == c.From() {
			continue
		}
		entries[pairKey{to: c.To(), from: c.From()}] = c
	}
	return &table{entries: entries}
}

// table is an immutable map from ordered type pairs to composed converters.
type table struct {
	entries map[pairKey]apis.Converter
}

// Ensure table implements apis.Table.
var _ apis.Table = (*table)(nil)

// Converter returns the composed converter for the ordered pair.
func (t *table) Converter(to, from reflect.Type) (apis.Converter, bool) {
	c, ok := t.entries[pairKey{to: to, from: from}]
	return c, ok
}

// Weight returns the published step count for the ordered pair.
func (t *table) Weight(to, from reflect.Type) (int, bool) {
	c, ok := t.entries[pairKey{to: to, from: from}]
	if !ok {
		return 0, false
	}
	return c.Steps(), true
}

// Size returns the number of stored pairs.
func (t *table) Size() int { return len(t.entries) }
