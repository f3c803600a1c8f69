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

// ErrTypeMismatch is returned when a converter is invoked with a value whose
// runtime type differs from the converter's declared source type.
var ErrTypeMismatch = errors.New("cvx(dispatch): value type does not match converter source type")

// NewComposed constructs a composed converter from to/from and an ordered
// pipeline of direct conversion steps, applied left-to-right. An empty
// pipeline denotes identity.
//
// The caller is responsible for composing only matching steps: every step's
// output type must equal the next step's input type, the first step accepts
// from, and the last step yields to. Only the first input is validated.
func NewComposed(to, from reflect.Type, steps []apis.ConvertFunc) apis.Converter {
	return &composed{to: to, from: from, steps: steps}
}

// Identity returns the identity converter for t: an empty pipeline that
// validates the input type and returns the value unchanged.
func Identity(t reflect.Type) apis.Converter {
	return &composed{to: t, from: t}
}

// composed is an immutable, order-preserving conversion pipeline.
type composed struct {
	to    reflect.Type
	from  reflect.Type
	steps []apis.ConvertFunc
}

// Ensure composed implements apis.Converter.
var _ apis.Converter = (*composed)(nil)

// To returns the target representation type.
func (c *composed) To() reflect.Type { return c.to }

// From returns the source representation type.
func (c *composed) From() reflect.Type { return c.from }

// Steps returns the pipeline length. Zero denotes identity.
func (c *composed) Steps() int { return len(c.steps) }

// Call validates v's exact runtime type against the declared source type and
// then applies each step in sequence, feeding each output into the next step.
func (c *composed) Call(v any) (any, error) {
	got := reflect.TypeOf(v)
	if got != c.from {
		return nil, fmt.Errorf("%w: have %s, want %s",
			ErrTypeMismatch, uref.Name(got), uref.Name(c.from))
	}
	out := v
	for _, fn := range c.steps {
		out = fn(out)
	}
	return out, nil
}
