//go:build unit
// +build unit

package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericDeviceStartsEmpty(t *testing.T) {
	d, err := NewGenericDevice(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d.NumberQubits())
	assert.Empty(t, d.TwoQubitEdges())
	assert.Empty(t, d.SingleQubitGateNames())

	_, ok := d.GateTime("CNOT", 0, 1)
	assert.False(t, ok)
}

func TestGenericGateNamesAreDerived(t *testing.T) {
	d, err := NewGenericDevice(3)
	require.NoError(t, err)
	require.NoError(t, d.SetGateTime("RotateZ", []int{0}, 1e-8))
	require.NoError(t, d.SetGateTime("Hadamard", []int{1}, 1e-8))
	require.NoError(t, d.SetGateTime("CNOT", []int{0, 1}, 1e-7))

	assert.Equal(t, []string{"Hadamard", "RotateZ"}, d.SingleQubitGateNames())
	assert.Equal(t, []string{"CNOT"}, d.TwoQubitGateNames())
}

func TestGenericSetAllDoesNotInventConnectivity(t *testing.T) {
	d, err := NewGenericDevice(4)
	require.NoError(t, err)
	require.NoError(t, d.SetGateTime("CNOT", []int{0, 1}, 1e-7))

	require.NoError(t, d.SetAllTwoQubitGateTimes("ControlledPauliZ", 2e-7))

	_, ok := d.GateTime("ControlledPauliZ", 0, 1)
	assert.True(t, ok, "existing pair gets the new gate")
	_, ok = d.GateTime("ControlledPauliZ", 1, 0)
	assert.False(t, ok, "reverse direction was never declared")
	_, ok = d.GateTime("ControlledPauliZ", 2, 3)
	assert.False(t, ok, "unconnected pair stays unconnected")
	assert.Len(t, d.TwoQubitEdges(), 1)
}

func TestGenericSetAllSingleCoversAllQubits(t *testing.T) {
	d, err := NewGenericDevice(3)
	require.NoError(t, err)
	require.NoError(t, d.SetAllSingleQubitGateTimes("PauliX", 5e-8))
	for q := 0; q < 3; q++ {
		gt, ok := d.GateTime("PauliX", q)
		assert.True(t, ok)
		assert.Equal(t, 5e-8, gt)
	}
}

func TestGenericSerializationRoundTrip(t *testing.T) {
	d, err := NewGenericDevice(3)
	require.NoError(t, err)
	require.NoError(t, d.SetGateTime("CNOT", []int{2, 0}, 1e-7))
	require.NoError(t, d.SetGateTime("MultiQubitMS", []int{0, 1, 2}, 4e-7))
	require.NoError(t, d.AddDamping(0, 0.02))
	require.NoError(t, d.AddExcitation(0, 0.01))

	jsonBlob, err := d.ToJSON()
	require.NoError(t, err)
	fromJSON, err := GenericDeviceFromJSON(jsonBlob)
	require.NoError(t, err)
	again, err := fromJSON.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, jsonBlob, again)

	binBlob, err := d.ToBincode()
	require.NoError(t, err)
	fromBin, err := GenericDeviceFromBincode(binBlob)
	require.NoError(t, err)
	m, err := fromBin.QubitDecoherenceRates(0)
	require.NoError(t, err)
	assert.Equal(t, 0.02, m[RateIndexDamping][RateIndexDamping])
	assert.Equal(t, 0.01, m[RateIndexExcitation][RateIndexExcitation])
}
