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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/cvx/apis"
	"dirpx.dev/cvx/builder"
	"dirpx.dev/cvx/config"
)

// Representation types for tests.
type dense struct{ trace []string }
type csr struct{ trace []string }
type dia struct{ trace []string }

var (
	denseT = reflect.TypeOf(&dense{})
	csrT   = reflect.TypeOf(&csr{})
	diaT   = reflect.TypeOf(&dia{})
)

func denseToCSR(v any) any { return &csr{trace: append(v.(*dense).trace, "dense->csr")} }
func csrToDense(v any) any { return &dense{trace: append(v.(*csr).trace, "csr->dense")} }
func csrToDia(v any) any   { return &dia{trace: append(v.(*csr).trace, "csr->dia")} }
func diaToCSR(v any) any   { return &csr{trace: append(v.(*dia).trace, "dia->csr")} }
func denseToDia(v any) any { return &dia{trace: append(v.(*dense).trace, "dense->dia(direct)")} }

func TestBuildTable_CheapestPathWins(t *testing.T) {
	// dense->csr (2), csr->dia (1), dense->dia (5): the synthesized
	// (dia <- dense) pipeline must be the two-step composition, cost 3.
	edges := []apis.Edge{
		apis.WeightedEdge(csrT, denseT, denseToCSR, 2),
		apis.WeightedEdge(diaT, csrT, csrToDia, 1),
		apis.WeightedEdge(denseT, csrT, csrToDense, 1),
		apis.WeightedEdge(csrT, diaT, diaToCSR, 1),
		apis.WeightedEdge(diaT, denseT, denseToDia, 5),
	}
	types := []reflect.Type{denseT, csrT, diaT}

	for _, algo := range []apis.Algorithm{apis.FloydWarshall, apis.Dijkstra} {
		t.Run(algo.String(), func(t *testing.T) {
			cfg := config.NewConfig(config.WithAlgorithm(algo))
			table, err := builder.New().BuildTable(cfg, types, edges)
			require.NoError(t, err)

			c, ok := table.Converter(diaT, denseT)
			require.True(t, ok)
			assert.Equal(t, 2, c.Steps())

			out, err := c.Call(&dense{})
			require.NoError(t, err)
			assert.Equal(t, []string{"dense->csr", "csr->dia"}, out.(*dia).trace)
		})
	}
}

func TestBuildTable_Complete(t *testing.T) {
	edges := []apis.Edge{
		apis.NewEdge(csrT, denseT, denseToCSR),
		apis.NewEdge(denseT, csrT, csrToDense),
		apis.NewEdge(diaT, csrT, csrToDia),
		apis.NewEdge(csrT, diaT, diaToCSR),
	}
	types := []reflect.Type{denseT, csrT, diaT}

	table, err := builder.New().BuildTable(config.DefaultConfig(), types, edges)
	require.NoError(t, err)

	// Every ordered pair of distinct types is present: n*(n-1) entries.
	assert.Equal(t, 6, table.Size())
	for _, to := range types {
		for _, from := range types {
			if to == from {
				continue
			}
			_, ok := table.Converter(to, from)
			assert.True(t, ok, "missing %v <- %v", to, from)
		}
	}
}

func TestBuildTable_UnreachableEnumeration(t *testing.T) {
	// Only dense->csr exists: dense is unreachable from both others, csr
	// from dia, dia from everything.
	edges := []apis.Edge{apis.NewEdge(csrT, denseT, denseToCSR)}
	types := []reflect.Type{denseT, csrT, diaT}

	_, err := builder.New().BuildTable(config.DefaultConfig(), types, edges)
	require.Error(t, err)

	var unreachable *builder.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.ElementsMatch(t, []reflect.Type{csrT, diaT}, unreachable.Missing[denseT])
	assert.ElementsMatch(t, []reflect.Type{diaT}, unreachable.Missing[csrT])
	assert.ElementsMatch(t, []reflect.Type{denseT, csrT}, unreachable.Missing[diaT])

	// The message names every relationship.
	assert.Contains(t, err.Error(), "unreachable from")
	assert.Contains(t, err.Error(), "*builder_test.dia")
}

func TestBuildTable_Empty(t *testing.T) {
	table, err := builder.New().BuildTable(config.DefaultConfig(), nil, nil)
	require.NoError(t, err)
	assert.Zero(t, table.Size())
}

func TestBuildTable_EdgeOutsideKnownSet(t *testing.T) {
	edges := []apis.Edge{apis.NewEdge(csrT, denseT, denseToCSR)}
	_, err := builder.New().BuildTable(config.DefaultConfig(), []reflect.Type{denseT}, edges)
	assert.ErrorIs(t, err, builder.ErrUnknownEdgeType)
}

func TestBuildTable_PublishedWeightIsStepCount(t *testing.T) {
	// Heavy weights on a two-step route and a light direct edge: the direct
	// edge wins selection, and the published weight is its step count (1),
	// not its real-valued cost.
	edges := []apis.Edge{
		apis.WeightedEdge(csrT, denseT, denseToCSR, 10),
		apis.WeightedEdge(diaT, csrT, csrToDia, 10),
		apis.WeightedEdge(diaT, denseT, denseToDia, 0.5),
		apis.WeightedEdge(denseT, csrT, csrToDense, 1),
		apis.WeightedEdge(csrT, diaT, diaToCSR, 1),
	}
	types := []reflect.Type{denseT, csrT, diaT}

	table, err := builder.New().BuildTable(config.DefaultConfig(), types, edges)
	require.NoError(t, err)

	w, ok := table.Weight(diaT, denseT)
	require.True(t, ok)
	assert.Equal(t, 1, w)
}
