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

package dispatch_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/cvx/apis"
	"dirpx.dev/cvx/dispatch"
)

func diaToDense(v any) any { return &dense{trace: append(v.(*dia).trace, "dia->dense")} }
func csrToDense(v any) any { return &dense{trace: append(v.(*csr).trace, "csr->dense")} }
func denseToDia(v any) any { return &dia{trace: append(v.(*dense).trace, "dense->dia")} }

// testDispatcher wires a complete dispatcher over dense, csr, and dia by
// hand; the builder package covers synthesized tables.
func testDispatcher() apis.Dispatcher {
	table := dispatch.NewTable([]apis.Converter{
		dispatch.NewComposed(csrT, denseT, []apis.ConvertFunc{denseToCSR}),
		dispatch.NewComposed(denseT, csrT, []apis.ConvertFunc{csrToDense}),
		dispatch.NewComposed(diaT, denseT, []apis.ConvertFunc{denseToDia}),
		dispatch.NewComposed(denseT, diaT, []apis.ConvertFunc{diaToDense}),
		dispatch.NewComposed(diaT, csrT, []apis.ConvertFunc{csrToDense, denseToDia}),
		dispatch.NewComposed(csrT, diaT, []apis.ConvertFunc{diaToDense, denseToCSR}),
	})
	return dispatch.NewDispatcher([]reflect.Type{denseT, csrT, diaT}, table)
}

func TestConvert_IdentityShortCircuit(t *testing.T) {
	d := testDispatcher()
	in := &dense{trace: []string{"original"}}

	out, err := d.Convert(denseT, in)
	require.NoError(t, err)
	// The exact input value comes back: no copy, no pipeline.
	assert.Same(t, in, out)
}

func TestConvert_ComposedPath(t *testing.T) {
	d := testDispatcher()

	out, err := d.Convert(diaT, &csr{})
	require.NoError(t, err)
	got := out.(*dia)
	assert.Equal(t, []string{"csr->dense", "dense->dia"}, got.trace)
}

func TestConvert_UnknownTypes(t *testing.T) {
	d := testDispatcher()
	type stranger struct{}

	_, err := d.Convert(reflect.TypeOf(&stranger{}), &dense{})
	assert.ErrorIs(t, err, dispatch.ErrUnknownTarget)

	_, err = d.Convert(denseT, &stranger{})
	assert.ErrorIs(t, err, dispatch.ErrUnknownSource)

	_, err = d.Convert(denseT, nil)
	assert.ErrorIs(t, err, dispatch.ErrUnknownSource)

	_, err = d.Convert(nil, &dense{})
	assert.ErrorIs(t, err, dispatch.ErrNilType)
}

func TestTo_PartialDispatchesByRuntimeType(t *testing.T) {
	d := testDispatcher()

	p, err := d.To(denseT)
	require.NoError(t, err)
	assert.Equal(t, denseT, p.To())

	out, err := p.Call(&dia{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dia->dense"}, out.(*dense).trace)

	// Target type values pass through the identity pipeline.
	in := &dense{}
	out, err = p.Call(in)
	require.NoError(t, err)
	assert.Same(t, in, out)

	type stranger struct{}
	_, err = p.Call(&stranger{})
	assert.ErrorIs(t, err, dispatch.ErrUnknownInput)
}

func TestConverterFor_PairLookup(t *testing.T) {
	d := testDispatcher()

	c, err := d.ConverterFor(diaT, csrT)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Steps())
	assert.Equal(t, diaT, c.To())
	assert.Equal(t, csrT, c.From())

	// Equal pair yields identity without a table entry.
	id, err := d.ConverterFor(csrT, csrT)
	require.NoError(t, err)
	assert.Zero(t, id.Steps())

	type stranger struct{}
	_, err = d.ConverterFor(reflect.TypeOf(&stranger{}), csrT)
	assert.ErrorIs(t, err, dispatch.ErrUnknownTarget)
	_, err = d.ConverterFor(csrT, reflect.TypeOf(&stranger{}))
	assert.ErrorIs(t, err, dispatch.ErrUnknownSource)
	_, err = d.ConverterFor(nil, csrT)
	assert.ErrorIs(t, err, dispatch.ErrNilType)
	_, err = d.ConverterFor(csrT, nil)
	assert.ErrorIs(t, err, dispatch.ErrNilType)
}

func TestWeight_PublishedStepCounts(t *testing.T) {
	d := testDispatcher()

	w, err := d.Weight(diaT, csrT)
	require.NoError(t, err)
	assert.Equal(t, 2, w)

	w, err = d.Weight(csrT, denseT)
	require.NoError(t, err)
	assert.Equal(t, 1, w)

	w, err = d.Weight(denseT, denseT)
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestTypes_RegistrationOrder(t *testing.T) {
	d := testDispatcher()
	assert.Equal(t, []reflect.Type{denseT, csrT, diaT}, d.Types())
}

func TestNewTable_SkipsIdentityEntries(t *testing.T) {
	table := dispatch.NewTable([]apis.Converter{
		dispatch.Identity(denseT),
		dispatch.NewComposed(csrT, denseT, []apis.ConvertFunc{denseToCSR}),
	})
	assert.Equal(t, 1, table.Size())
	_, ok := table.Converter(denseT, denseT)
	assert.False(t, ok)
}
