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

package config

import (
	"dirpx.dev/cvx/apis"
)

const (
	// DefaultAlgorithm represents the default shortest-path algorithm.
	// Floyd-Warshall is the natural choice for small type sets.
	DefaultAlgorithm = apis.FloydWarshall
	// DefaultStopOnObserverError represents the default observer failure
	// policy. When false, observer errors are logged and notification
	// continues.
	DefaultStopOnObserverError = false
	// DefaultAutoAlias represents the default for AutoAlias.
	// When true, types implementing apis.Named are aliased automatically.
	DefaultAutoAlias = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the algorithm is valid.
	if !cfg.Algorithm.Known() {
		cfg.Algorithm = DefaultAlgorithm
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Algorithm:           DefaultAlgorithm,
		StopOnObserverError: DefaultStopOnObserverError,
		AutoAlias:           DefaultAutoAlias,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAlgorithm sets the shortest-path algorithm.
// An unknown value resets to the default.
func WithAlgorithm(a apis.Algorithm) Option {
	return func(c *apis.Config) {
		if !a.Known() {
			c.Algorithm = DefaultAlgorithm
			return
		}
		c.Algorithm = a
	}
}

// WithStopOnObserverError sets the observer failure policy.
func WithStopOnObserverError(stop bool) Option {
	return func(c *apis.Config) {
		c.StopOnObserverError = stop
	}
}

// WithAutoAlias sets the AutoAlias option.
func WithAutoAlias(auto bool) Option {
	return func(c *apis.Config) {
		c.AutoAlias = auto
	}
}
