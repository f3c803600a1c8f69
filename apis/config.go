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

// Config carries read-only knobs that influence table synthesis and
// notification behavior. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// Algorithm selects the shortest-path algorithm used on rebuild.
	Algorithm Algorithm

	// StopOnObserverError controls the failure policy during post-rebuild
	// notification. If true, the first observer error aborts the remaining
	// notifications and is returned from Register; if false, errors are
	// logged and notification continues. The published table is unaffected
	// either way.
	StopOnObserverError bool

	// AutoAlias controls whether types whose zero value implements Named
	// have their ConversionName bound as an alias on first registration.
	AutoAlias bool
}
