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

package registry

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/cvx/apis"
	uref "dirpx.dev/cvx/utils/reflect"
)

var (
	// ErrEmptyAlias is returned when an empty alias is provided.
	ErrEmptyAlias = errors.New("cvx(registry): empty alias")
	// ErrAliasConflict indicates an attempt to re-bind an alias to a
	// different representation type.
	ErrAliasConflict = errors.New("cvx(registry): conflicting alias registration")
)

// namedType is the reflect view of apis.Named, used to probe registered
// types without instantiating them speculatively.
var namedType = reflect.TypeOf((*apis.Named)(nil)).Elem()

// RegisterAliases binds names to a known representation type. The whole call
// is validated before any binding happens; it is idempotent for already
// bound (name, type) pairs. Aliases do not trigger a rebuild: the dispatch
// table is unaffected, so the current dispatcher carries over.
func (r *registry) RegisterAliases(t reflect.Type, names ...string) error {
	if t == nil {
		return ErrNilType
	}

	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	cur := r.st.Load()
	if _, ok := cur.known[t]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, uref.Name(t))
	}
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: alias %d", ErrEmptyAlias, i)
		}
		if bound, ok := cur.aliases[name]; ok && bound != t {
			return fmt.Errorf("%w: %q already bound to %s",
				ErrAliasConflict, name, uref.Name(bound))
		}
	}

	next := cur.clone()
	for _, name := range names {
		bind(next, name, t)
	}
	r.st.Store(next)
	return nil
}

// Parse resolves a representation type from a type spec: a reflect.Type, a
// string (bound alias, derived name, or Go syntax), or any value whose
// runtime type is known.
func (r *registry) Parse(spec any) (reflect.Type, error) {
	cur := r.st.Load()
	switch v := spec.(type) {
	case nil:
		return nil, fmt.Errorf("%w: untyped nil spec", ErrUnknownType)
	case reflect.Type:
		if v == nil {
			return nil, fmt.Errorf("%w: untyped nil spec", ErrUnknownType)
		}
		if _, ok := cur.known[v]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, uref.Name(v))
	case string:
		if t, ok := cur.aliases[v]; ok {
			return t, nil
		}
		for _, t := range cur.types {
			if uref.Name(t) == v || t.String() == v {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, v)
	default:
		t := reflect.TypeOf(spec)
		if _, ok := cur.known[t]; ok {
			return t, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, uref.Name(t))
	}
}

// NameOf returns the display name for t: its first bound alias when one
// exists, otherwise the derived type name.
func (r *registry) NameOf(t reflect.Type) string {
	if t == nil {
		return uref.Name(nil)
	}
	if name, ok := r.st.Load().names[t]; ok {
		return name
	}
	return uref.Name(t)
}

// bindNamed auto-binds aliases for newly registered types whose zero value
// implements apis.Named. Conflicts are logged and skipped: the convenience
// path never fails a registration. Caller holds buildMu and owns next.
func (r *registry) bindNamed(next *state, added []reflect.Type) {
	for _, t := range added {
		if !t.Implements(namedType) {
			continue
		}
		n, ok := reflect.Zero(t).Interface().(apis.Named)
		if !ok {
			continue
		}
		name := n.ConversionName()
		if name == "" {
			continue
		}
		if bound, ok := next.aliases[name]; ok && bound != t {
			r.log.Warn("skipping self-declared alias, name already bound",
				"alias", name, "type", uref.Name(t), "bound", uref.Name(bound))
			continue
		}
		bind(next, name, t)
	}
}

// bind records an alias in both directions; the first alias per type wins
// for display purposes.
func bind(s *state, name string, t reflect.Type) {
	s.aliases[name] = t
	if _, ok := s.names[t]; !ok {
		s.names[t] = name
	}
}
