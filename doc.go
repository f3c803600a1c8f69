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

// Package cvx provides a type-conversion registry: given a dynamically
// extensible set of in-memory data representations (e.g. dense arrays vs.
// compressed sparse encodings) and a partial set of direct, weighted
// conversion functions between pairs of them, cvx computes and caches the
// cheapest composed conversion between every ordered pair and exposes fast
// runtime dispatch over the result.
//
// # Design
//
// The core of cvx is a constructible registry object (registry.New) holding
// an immutable published snapshot. The snapshot carries four things:
//
//   - The known-type set: reflect.Types in registration order. It grows
//     monotonically and never shrinks.
//
//   - The direct edge set: at most one weighted converter function per
//     ordered (target, source) pair; re-registration overwrites.
//
//   - The dispatch table: for every ordered pair of distinct known types,
//     the cheapest composed pipeline of direct converters, synthesized by
//     an all-pairs shortest-path pass (builder + strategy packages). The
//     table is complete by construction: a registration that would leave
//     any pair unreachable fails whole, enumerating every missing
//     target <- source relationship, and publishes nothing.
//
//   - The alias map: optional human-readable names for representation
//     types, resolvable through Parse.
//
// Registration is the only mutation path. It validates every edge first
// (all-or-nothing), rebuilds the entire table over the now-current edge set,
// publishes the new snapshot through an atomic pointer swap, and then
// notifies registered observers synchronously and in order. Old snapshots
// stay valid for readers that already hold them.
//
// # Call surface
//
// Three read-side access patterns are served against the current snapshot:
//
//	out, err := reg.Dispatcher().Convert(target, v)     // full call
//	p, err := reg.Dispatcher().To(target)               // convert-from-anything
//	c, err := reg.Dispatcher().ConverterFor(target, src) // one specific pair
//
// Convert short-circuits identity: when v already has the target type it is
// returned unchanged, with no table lookup and no copy. A Partial obtained
// from To is an eager snapshot; types registered afterwards stay unknown to
// it.
//
// # Concurrency model
//
// Reads (Convert, To, ConverterFor, Weight, Types, Parse, NameOf) are
// wait-free: they load the current snapshot atomically and never take locks.
// Composed converters and Partials are immutable and may be called from any
// number of goroutines. Writes (Register, RegisterAliases, Observe) take a
// short build mutex, assemble a brand-new snapshot, and publish it
// atomically, so concurrent readers always see either the entirely-old or
// the entirely-new state.
//
// # Global API
//
// For binaries that want one process-wide registry, the package keeps a
// default instance behind the same snapshot discipline and mirrors the
// registry surface as package functions:
//
//	cvx.Register(apis.NewEdge(cvx.TypeOf[Dense](), cvx.TypeOf[CSR](), csrToDense))
//	v, err := cvx.Convert(cvx.TypeOf[Dense](), value)
//
// Tests that need isolation should construct their own registries with
// registry.New, or call cvx.Reset to get a clean default instance.
//
// # Scope
//
// cvx tags and routes conversions; it does not perform their numerical work,
// does not verify converter correctness beyond type identity, and does not
// rebuild tables incrementally. The representations themselves and any
// downstream dispatchers consuming rebuild notifications live in higher
// layers.
package cvx
