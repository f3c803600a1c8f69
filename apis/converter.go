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

// ConvertFunc is a single direct conversion step between two representation
// types. It may assume its input has exactly the source type it was
// registered for; the registry never composes mismatched steps, so the
// function itself performs no type checking.
type ConvertFunc func(v any) any

// Converter is a composed conversion pipeline between one ordered pair of
// representation types. Implementations apply their internal steps
// left-to-right; only the first input is validated against From().
//
// Converters are immutable and safe for concurrent use.
type Converter interface {
	// To returns the target representation type of the pipeline.
	To() reflect.Type
	// From returns the source representation type of the pipeline.
	From() reflect.Type
	// Steps returns the number of direct conversions in the pipeline.
	// Zero denotes identity.
	Steps() int
	// Call converts v, which must have exactly the From() runtime type.
	Call(v any) (any, error)
}

// Partial converts values of any representation type known at the time the
// Partial was obtained into one fixed target type. It is an eager snapshot:
// types registered after construction are not reachable through it.
type Partial interface {
	// To returns the target representation type.
	To() reflect.Type
	// Call dispatches on v's exact runtime type and converts it to To().
	Call(v any) (any, error)
}

// Named is an optional interface a representation type may implement to
// name itself. When a type whose zero value implements Named is first
// registered, the returned name is bound as an alias automatically.
//
// ConversionName must be callable on the zero value of the type.
type Named interface {
	// ConversionName returns the canonical alias for the representation.
	ConversionName() string
}
