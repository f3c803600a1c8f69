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

// Dispatcher is the read-only call surface over one published snapshot of
// the registry (known-type set plus dispatch table). Dispatchers are
// immutable and safe for unrestricted concurrent use; none of their methods
// block or suspend.
type Dispatcher interface {
	// Convert converts v into the target representation type. When v already
	// has the target type it is returned unchanged, bypassing the table.
	// Unknown target and unknown source types fail with distinct errors.
	Convert(target reflect.Type, v any) (any, error)

	// To returns a Partial converting values of any currently known type
	// into target. The Partial is an eager snapshot taken now.
	To(target reflect.Type) (Partial, error)

	// ConverterFor returns the composed converter for the ordered pair.
	// Equal target and source yield an identity converter.
	ConverterFor(target, source reflect.Type) (Converter, error)

	// Weight returns the published step count for the ordered pair.
	// Identity pairs report zero.
	Weight(target, source reflect.Type) (int, error)

	// Types returns the known representation types in registration order.
	Types() []reflect.Type
}
