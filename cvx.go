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

package cvx

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"dirpx.dev/cvx/apis"
	"dirpx.dev/cvx/config"
	"dirpx.dev/cvx/registry"
)

// init initializes the process-wide default registry.
func init() {
	def.Store(&holder{reg: newDefault()})
}

// swapMu serializes default-registry replacement so SetDefault/Reset never
// race each other; readers load the pointer atomically and never block.
var swapMu sync.Mutex

// def holds the process-wide default registry.
var def atomic.Pointer[holder]

// holder wraps the default registry so the atomic pointer has a concrete
// target type.
type holder struct {
	reg apis.Registry
}

// newDefault constructs the stock default registry.
func newDefault() apis.Registry {
	return registry.New(hclog.Default().Named("cvx"), config.DefaultConfig())
}

// Default returns the process-wide default registry.
func Default() apis.Registry {
	return def.Load().reg
}

// SetDefault replaces the process-wide default registry. A nil registry is
// ignored.
func SetDefault(reg apis.Registry) {
	if reg == nil {
		return
	}
	swapMu.Lock()
	defer swapMu.Unlock()
	def.Store(&holder{reg: reg})
}

// Reset replaces the default registry with a fresh, empty one. This is
// mainly used by tests to get a clean deterministic state between cases.
func Reset() {
	swapMu.Lock()
	defer swapMu.Unlock()
	def.Store(&holder{reg: newDefault()})
}

// TypeOf returns the reflect.Type of T without constructing a value.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register registers conversion edges on the default registry and rebuilds
// its dispatch table.
// This is a convenience wrapper around the default registry.
func Register(edges ...apis.Edge) error {
	return Default().Register(edges...)
}

// RegisterAliases binds names to a known representation type on the default
// registry.
// This is a convenience wrapper around the default registry.
func RegisterAliases(t reflect.Type, names ...string) error {
	return Default().RegisterAliases(t, names...)
}

// Parse resolves a representation type from a type spec on the default
// registry.
// This is a convenience wrapper around the default registry.
func Parse(spec any) (reflect.Type, error) {
	return Default().Parse(spec)
}

// NameOf returns the display name for t on the default registry.
// This is a convenience wrapper around the default registry.
func NameOf(t reflect.Type) string {
	return Default().NameOf(t)
}

// Observe appends an observer to the default registry's notification list.
// This is a convenience wrapper around the default registry.
func Observe(obs apis.Observer) {
	Default().Observe(obs)
}

// Convert converts v into the target representation type using the default
// registry's current dispatch table.
// This is a convenience wrapper around the default registry.
func Convert(target reflect.Type, v any) (any, error) {
	return Default().Dispatcher().Convert(target, v)
}

// To returns a Partial converting any currently known type into target,
// snapshotted from the default registry.
// This is a convenience wrapper around the default registry.
func To(target reflect.Type) (apis.Partial, error) {
	return Default().Dispatcher().To(target)
}

// ConverterFor returns the composed converter for the ordered pair from the
// default registry's current dispatch table.
// This is a convenience wrapper around the default registry.
func ConverterFor(target, source reflect.Type) (apis.Converter, error) {
	return Default().Dispatcher().ConverterFor(target, source)
}

// Weight returns the published step count for the ordered pair on the
// default registry.
// This is a convenience wrapper around the default registry.
func Weight(target, source reflect.Type) (int, error) {
	return Default().Dispatcher().Weight(target, source)
}

// Types returns the default registry's known representation types in
// registration order.
// This is a convenience wrapper around the default registry.
func Types() []reflect.Type {
	return Default().Types()
}

// Edges returns a snapshot of the default registry's directly registered
// edges.
// This is a convenience wrapper around the default registry.
func Edges() []apis.Edge {
	return Default().Edges()
}
