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
	"maps"
	"math"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"

	"dirpx.dev/cvx/apis"
	"dirpx.dev/cvx/builder"
	"dirpx.dev/cvx/dispatch"
	uref "dirpx.dev/cvx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("cvx(registry): nil representation type")
	// ErrNilFunc is returned when an edge carries a nil converter function.
	ErrNilFunc = errors.New("cvx(registry): nil converter function")
	// ErrInvalidWeight is returned when an edge weight is not a positive
	// finite number.
	ErrInvalidWeight = errors.New("cvx(registry): weight must be a positive finite number")
	// ErrUnknownType is returned when a type spec does not resolve to a
	// known representation type.
	ErrUnknownType = errors.New("cvx(registry): unknown representation type")
	// ErrObserver wraps an observer failure when the stop-on-error policy
	// is active. The rebuilt table stays published regardless.
	ErrObserver = errors.New("cvx(registry): observer notification failed")
)

// New constructs a Registry with the default table builder. A nil logger is
// replaced with a no-op logger.
func New(logger hclog.Logger, cfg apis.Config) apis.Registry {
	return NewWithBuilder(logger, cfg, builder.New())
}

// NewWithBuilder constructs a Registry around an explicit table builder.
// This is mainly useful for tests that want to observe or fail rebuilds.
func NewWithBuilder(logger hclog.Logger, cfg apis.Config, bld apis.Builder) apis.Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if bld == nil {
		bld = builder.New()
	}
	r := &registry{
		log: logger.Named("cvx.registry"),
		cfg: cfg,
		bld: bld,
	}
	r.st.Store(emptyState())
	return r
}

// pairKey is an ordered (target, source) pair of representation types.
type pairKey struct {
	to   reflect.Type
	from reflect.Type
}

// state is one immutable registry snapshot. Published states are never
// mutated; writers clone, modify the clone, and swap it in atomically.
type state struct {
	// types holds the known representation types in registration order.
	types []reflect.Type
	// known maps each known type to its index in types.
	known map[reflect.Type]int
	// edges holds the directly registered edges keyed by ordered pair.
	edges map[pairKey]apis.Edge
	// order holds the pair keys in first-registration order.
	order []pairKey
	// aliases maps bound names to representation types.
	aliases map[string]reflect.Type
	// names maps each type to its first bound alias.
	names map[reflect.Type]string
	// disp is the read-side dispatcher over this snapshot's table.
	disp apis.Dispatcher
}

// emptyState is the snapshot of a registry with no registrations.
func emptyState() *state {
	return &state{
		known:   make(map[reflect.Type]int),
		edges:   make(map[pairKey]apis.Edge),
		aliases: make(map[string]reflect.Type),
		names:   make(map[reflect.Type]string),
		disp:    dispatch.NewDispatcher(nil, dispatch.NewTable(nil)),
	}
}

// clone returns a deep copy of s sharing only the immutable dispatcher.
func (s *state) clone() *state {
	return &state{
		types:   slices.Clone(s.types),
		known:   maps.Clone(s.known),
		edges:   maps.Clone(s.edges),
		order:   slices.Clone(s.order),
		aliases: maps.Clone(s.aliases),
		names:   maps.Clone(s.names),
		disp:    s.disp,
	}
}

// addType appends t to the known-type set if not already present.
func (s *state) addType(t reflect.Type) {
	if _, ok := s.known[t]; ok {
		return
	}
	s.known[t] = len(s.types)
	s.types = append(s.types, t)
}

// edgeList returns the edges in first-registration order of their pairs.
func (s *state) edgeList() []apis.Edge {
	out := make([]apis.Edge, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.edges[key])
	}
	return out
}

// registry owns the known-type set, the direct edge set, and the published
// dispatch state. Mutations are serialized by buildMu and publish whole new
// snapshots through an atomic pointer swap, so readers always see either the
// entirely-old or entirely-new state.
type registry struct {
	log hclog.Logger
	cfg apis.Config
	bld apis.Builder

	// buildMu serializes mutations so partially-built snapshots are never
	// observable.
	buildMu sync.Mutex
	st      atomic.Pointer[state]
	// obs holds observers in registration order; guarded by buildMu.
	obs []apis.Observer
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Register validates the given edges, extends the known-type set, rebuilds
// the dispatch table over the entire edge set, publishes the new snapshot,
// and notifies observers in order. Any failure before publication leaves the
// prior state untouched.
func (r *registry) Register(edges ...apis.Edge) error {
	if err := validateEdges(edges); err != nil {
		return err
	}
	if len(edges) == 0 {
		return nil
	}

	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	next := r.st.Load().clone()
	added := len(next.types)
	for _, e := range edges {
		next.addType(e.To)
		next.addType(e.From)
		key := pairKey{to: e.To, from: e.From}
		if _, seen := next.edges[key]; !seen {
			next.order = append(next.order, key)
		}
		next.edges[key] = e
	}

	start := time.Now()
	table, err := r.bld.BuildTable(r.cfg, next.types, next.edgeList())
	if err != nil {
		r.log.Debug("rebuild aborted, prior state kept", "error", err)
		return err
	}

	if r.cfg.AutoAlias {
		r.bindNamed(next, next.types[added:])
	}
	next.disp = dispatch.NewDispatcher(next.types, table)
	r.st.Store(next)

	r.log.Debug("dispatch table rebuilt",
		"types", len(next.types),
		"edges", len(next.edges),
		"pairs", table.Size(),
		"elapsed", time.Since(start))

	return r.notify()
}

// Observe appends an observer to the notification list. Observers are
// invoked synchronously, in registration order, after every successful
// rebuild.
func (r *registry) Observe(obs apis.Observer) {
	if obs == nil {
		return
	}
	r.buildMu.Lock()
	defer r.buildMu.Unlock()
	r.obs = append(r.obs, obs)
}

// Dispatcher returns the currently published read-side dispatcher.
func (r *registry) Dispatcher() apis.Dispatcher {
	return r.st.Load().disp
}

// Types returns the known representation types in registration order.
func (r *registry) Types() []reflect.Type {
	return slices.Clone(r.st.Load().types)
}

// Edges returns a snapshot of the directly registered edges.
func (r *registry) Edges() []apis.Edge {
	return r.st.Load().edgeList()
}

// notify invokes observers in registration order. Failure policy is
// configured: log-and-continue by default, stop-and-propagate when
// StopOnObserverError is set. Either way the published table is unaffected.
func (r *registry) notify() error {
	for i, obs := range r.obs {
		if err := obs(); err != nil {
			if r.cfg.StopOnObserverError {
				return fmt.Errorf("%w: observer %d: %v", ErrObserver, i, err)
			}
			r.log.Warn("observer failed after rebuild", "observer", i, "error", err)
		}
	}
	return nil
}

// validateEdges checks every edge before any mutation happens, so a bad
// argument anywhere in the collection rejects the whole registration.
func validateEdges(edges []apis.Edge) error {
	for i, e := range edges {
		if e.To == nil {
			return fmt.Errorf("%w: edge %d target", ErrNilType, i)
		}
		if e.From == nil {
			return fmt.Errorf("%w: edge %d source", ErrNilType, i)
		}
		if e.Fn == nil {
			return fmt.Errorf("%w: edge %d (%s <- %s)",
				ErrNilFunc, i, uref.Name(e.To), uref.Name(e.From))
		}
		// Rejects zero, negatives, NaN, and infinities in one comparison.
		if !(e.Weight > 0) || math.IsInf(e.Weight, 1) {
			return fmt.Errorf("%w: edge %d has weight %v", ErrInvalidWeight, i, e.Weight)
		}
	}
	return nil
}
