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
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/cvx/apis"
	uref "dirpx.dev/cvx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is used as a lookup key.
	ErrNilType = errors.New("cvx(dispatch): nil representation type")
	// ErrUnknownTarget is returned when the requested target type is not in
	// the known-type set.
	ErrUnknownTarget = errors.New("cvx(dispatch): unknown target type")
	// ErrUnknownSource is returned when the source type is not in the
	// known-type set.
	ErrUnknownSource = errors.New("cvx(dispatch): unknown source type")
	// ErrMissingEntry indicates a hole in the dispatch table. The registry
	// only publishes complete tables, so this is an invariant violation.
	ErrMissingEntry = errors.New("cvx(dispatch): dispatch table missing entry")
)

// NewDispatcher constructs an immutable read-side dispatcher over a
// known-type set (in registration order) and a complete dispatch table.
func NewDispatcher(types []reflect.Type, table apis.Table) apis.Dispatcher {
	known := make(map[reflect.Type]struct{}, len(types))
	order := make([]reflect.Type, len(types))
	copy(order, types)
	for _, t := range order {
		known[t] = struct{}{}
	}
	return &dispatcher{types: order, known: known, table: table}
}

// dispatcher serves lookups and full calls against one published snapshot.
// It holds no locks; all fields are immutable after construction.
type dispatcher struct {
	types []reflect.Type
	known map[reflect.Type]struct{}
	table apis.Table
}

// Ensure dispatcher implements apis.Dispatcher.
var _ apis.Dispatcher = (*dispatcher)(nil)

// Convert converts v into the target representation type. When v already has
// the target type it is returned unchanged with no table lookup.
func (d *dispatcher) Convert(target reflect.Type, v any) (any, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target", ErrNilType)
	}
	if _, ok := d.known[target]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, uref.Name(target))
	}
	src := reflect.TypeOf(v)
	if src == nil {
		return nil, fmt.Errorf("%w: untyped nil value", ErrUnknownSource)
	}
	if _, ok := d.known[src]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, uref.Name(src))
	}
	if src == target {
		return v, nil
	}
	conv, ok := d.table.Converter(target, src)
	if !ok {
		return nil, fmt.Errorf("%w: %s <- %s",
			ErrMissingEntry, uref.Name(target), uref.Name(src))
	}
	return conv.Call(v)
}

// To returns a Partial converting any currently known type into target.
// The snapshot is taken eagerly; later registrations are invisible to it.
func (d *dispatcher) To(target reflect.Type) (apis.Partial, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target", ErrNilType)
	}
	if _, ok := d.known[target]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, uref.Name(target))
	}
	converters := make(map[reflect.Type]apis.Converter, len(d.types))
	for _, src := range d.types {
		if src == target {
			converters[src] = Identity(target)
			continue
		}
		if c, ok := d.table.Converter(target, src); ok {
			converters[src] = c
		}
	}
	return NewPartial(target, converters), nil
}

// ConverterFor returns the composed converter for the ordered pair.
func (d *dispatcher) ConverterFor(target, source reflect.Type) (apis.Converter, error) {
	if err := d.checkPair(target, source); err != nil {
		return nil, err
	}
	if target == source {
		return Identity(target), nil
	}
	conv, ok := d.table.Converter(target, source)
	if !ok {
		return nil, fmt.Errorf("%w: %s <- %s",
			ErrMissingEntry, uref.Name(target), uref.Name(source))
	}
	return conv, nil
}

// Weight returns the published step count for the ordered pair.
func (d *dispatcher) Weight(target, source reflect.Type) (int, error) {
	if err := d.checkPair(target, source); err != nil {
		return 0, err
	}
	if target == source {
		return 0, nil
	}
	w, ok := d.table.Weight(target, source)
	if !ok {
		return 0, fmt.Errorf("%w: %s <- %s",
			ErrMissingEntry, uref.Name(target), uref.Name(source))
	}
	return w, nil
}

// Types returns the known representation types in registration order.
func (d *dispatcher) Types() []reflect.Type {
	out := make([]reflect.Type, len(d.types))
	copy(out, d.types)
	return out
}

// checkPair validates both sides of an ordered pair lookup, distinguishing
// which side is unknown.
func (d *dispatcher) checkPair(target, source reflect.Type) error {
	if target == nil {
		return fmt.Errorf("%w: target", ErrNilType)
	}
	if source == nil {
		return fmt.Errorf("%w: source", ErrNilType)
	}
	if _, ok := d.known[target]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, uref.Name(target))
	}
	if _, ok := d.known[source]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSource, uref.Name(source))
	}
	return nil
}
