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

// Observer is invoked synchronously, in registration order, after every
// successful rebuild of the dispatch table. Its contract is to refresh
// derived state from the registry; it receives no arguments.
//
// A returned error never unpublishes the table. Whether it aborts the
// remaining notifications is controlled by Config.StopOnObserverError.
type Observer func() error

// Registry owns the set of known representation types, the directly
// registered conversion edges, and the currently published dispatch state.
//
// Mutations (Register, RegisterAliases, Observe) are serialized internally
// and publish a whole new snapshot atomically; they either fully succeed or
// leave the prior state untouched. Reads never block.
type Registry interface {
	// Register validates and stores the given edges, extends the known-type
	// set, rebuilds the full dispatch table over the entire edge set, and on
	// success publishes it and notifies observers in order.
	//
	// Any validation failure or unreachable ordered pair aborts the whole
	// call with no observable mutation.
	Register(edges ...Edge) error

	// RegisterAliases binds names to a known representation type.
	// Binding an already-bound name to a different type is an error;
	// re-binding the same pair is a no-op.
	RegisterAliases(t reflect.Type, names ...string) error

	// Parse resolves a representation type from a type spec: a known
	// reflect.Type, a bound alias or derived type name (string), or a value
	// whose runtime type is known.
	Parse(spec any) (reflect.Type, error)

	// NameOf returns the display name for t: its first bound alias if any,
	// otherwise a name derived from the type itself.
	NameOf(t reflect.Type) string

	// Observe appends an observer to the notification list.
	Observe(obs Observer)

	// Dispatcher returns the currently published read-side dispatcher.
	// The returned value is an immutable snapshot.
	Dispatcher() Dispatcher

	// Types returns the known representation types in registration order.
	Types() []reflect.Type

	// Edges returns a snapshot of the directly registered edges in first
	// registration order of their (To, From) pairs.
	Edges() []Edge
}
