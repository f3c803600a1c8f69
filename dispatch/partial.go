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

// ErrUnknownInput is returned when a Partial is invoked with a value whose
// runtime type was not known when the Partial was constructed.
var ErrUnknownInput = errors.New("cvx(dispatch): unknown type of input")

// NewPartial constructs a Partial over an eager snapshot of converters into
// the target type, keyed by source type. The map is owned by the Partial
// after the call; it must not be mutated.
func NewPartial(to reflect.Type, converters map[reflect.Type]apis.Converter) apis.Partial {
	return &partial{to: to, converters: converters}
}

// partial dispatches on the input's exact runtime type against a fixed
// snapshot of converters. Types registered after construction are invisible.
type partial struct {
	to         reflect.Type
	converters map[reflect.Type]apis.Converter
}

// Ensure partial implements apis.Partial.
var _ apis.Partial = (*partial)(nil)

// To returns the target representation type.
func (p *partial) To() reflect.Type { return p.to }

// Call converts v into the target type via the converter snapshotted for
// v's runtime type.
func (p *partial) Call(v any) (any, error) {
	got := reflect.TypeOf(v)
	c, ok := p.converters[got]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInput, uref.Name(got))
	}
	return c.Call(v)
}
