//go:build unit
// +build unit

package devices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge-labs/qhardware/core"
)

func newTestLattice(t *testing.T, rows, columns int) *SquareLatticeDevice {
	t.Helper()
	d, err := NewSquareLatticeDevice(rows, columns, []string{"RotateX"}, []string{"CNOT"}, 1e-7)
	require.NoError(t, err)
	return d
}

func TestLatticeShape(t *testing.T) {
	d := newTestLattice(t, 2, 3)
	assert.Equal(t, 6, d.NumberQubits())
	assert.Equal(t, 2, d.NumberRows())
	assert.Equal(t, 3, d.NumberColumns())
}

func TestLatticeEdgeCount(t *testing.T) {
	tests := []struct {
		rows    int
		columns int
	}{
		{rows: 1, columns: 4},
		{rows: 2, columns: 2},
		{rows: 2, columns: 3},
		{rows: 3, columns: 3},
	}
	for _, tt := range tests {
		d := newTestLattice(t, tt.rows, tt.columns)
		want := tt.rows*(tt.columns-1) + tt.columns*(tt.rows-1)
		assert.Len(t, d.TwoQubitEdges(), want, "rows=%d columns=%d", tt.rows, tt.columns)
	}
}

func TestLatticeRowMajorNeighbors(t *testing.T) {
	// 2x3 grid:
	//   0 1 2
	//   3 4 5
	d := newTestLattice(t, 2, 3)

	_, ok := d.GateTime("CNOT", 1, 4)
	assert.True(t, ok, "vertical neighbors")
	_, ok = d.GateTime("CNOT", 4, 5)
	assert.True(t, ok, "horizontal neighbors")
	_, ok = d.GateTime("CNOT", 0, 4)
	assert.False(t, ok, "diagonal pair has no entry")
	_, ok = d.GateTime("CNOT", 2, 3)
	assert.False(t, ok, "row wrap is not a neighbor")
}

func TestLatticeRejectsNonNeighborPairs(t *testing.T) {
	d := newTestLattice(t, 2, 3)
	err := d.SetGateTime("CNOT", []int{0, 4}, 1e-7)
	var oor *core.OutOfRangeError
	assert.True(t, errors.As(err, &oor))

	// single-qubit gates are unrestricted
	assert.NoError(t, d.SetGateTime("Hadamard", []int{4}, 1e-7))
}

func TestLatticeInvalidShape(t *testing.T) {
	for _, tt := range []struct{ rows, columns int }{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := NewSquareLatticeDevice(tt.rows, tt.columns, nil, nil, 1e-7)
		var ic *core.InvalidConfigError
		assert.True(t, errors.As(err, &ic), "rows=%d columns=%d", tt.rows, tt.columns)
	}
}

func TestLatticeToGenericDropsTopologyRule(t *testing.T) {
	d := newTestLattice(t, 2, 2)
	g := d.ToGeneric()

	// the generic snapshot accepts pairs the lattice would reject
	require.NoError(t, g.SetGateTime("CNOT", []int{0, 3}, 1e-7))
	_, ok := g.GateTime("CNOT", 0, 3)
	assert.True(t, ok)

	err := d.SetGateTime("CNOT", []int{0, 3}, 1e-7)
	assert.Error(t, err)
}

func TestLatticeSerializationRoundTrip(t *testing.T) {
	d := newTestLattice(t, 2, 3)
	require.NoError(t, d.AddDephasing(5, 0.01))
	require.NoError(t, d.SetGateTime("CNOT", []int{3, 4}, 2e-7))

	jsonBlob, err := d.ToJSON()
	require.NoError(t, err)
	fromJSON, err := SquareLatticeDeviceFromJSON(jsonBlob)
	require.NoError(t, err)
	again, err := fromJSON.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, jsonBlob, again)

	binBlob, err := d.ToBincode()
	require.NoError(t, err)
	fromBin, err := SquareLatticeDeviceFromBincode(binBlob)
	require.NoError(t, err)
	assert.Equal(t, 2, fromBin.NumberRows())
	assert.Equal(t, 3, fromBin.NumberColumns())
	gt, ok := fromBin.GateTime("CNOT", 3, 4)
	assert.True(t, ok)
	assert.Equal(t, 2e-7, gt)
}

func TestLatticeRejectsInconsistentPayload(t *testing.T) {
	_, err := squareLatticeDeviceFromState(squareLatticeDeviceState{
		NumberRows:    2,
		NumberColumns: 3,
		NumberQubits:  5, // should be 6
	})
	var de *core.DeserializationError
	assert.True(t, errors.As(err, &de))
}
