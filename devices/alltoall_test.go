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

func newTestAllToAll(t *testing.T, n int) *AllToAllDevice {
	t.Helper()
	d, err := NewAllToAllDevice(n, []string{"RotateX", "RotateZ"}, []string{"CNOT"}, 1e-7)
	require.NoError(t, err)
	return d
}

func TestAllToAllDefaults(t *testing.T) {
	d := newTestAllToAll(t, 3)
	assert.Equal(t, 3, d.NumberQubits())
	assert.Equal(t, []string{"RotateX", "RotateZ"}, d.SingleQubitGateNames())

	gt, ok := d.GateTime("RotateX", 2)
	assert.True(t, ok)
	assert.Equal(t, 1e-7, gt)

	// both tuple orders are populated for complete connectivity
	_, ok = d.GateTime("CNOT", 0, 2)
	assert.True(t, ok)
	_, ok = d.GateTime("CNOT", 2, 0)
	assert.True(t, ok)

	// undeclared gates stay unavailable
	_, ok = d.GateTime("Hadamard", 0)
	assert.False(t, ok)
}

func TestAllToAllEdgeCount(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		d := newTestAllToAll(t, n)
		assert.Len(t, d.TwoQubitEdges(), n*(n-1)/2)
	}
}

func TestTwoQubitEdgesAreOrdered(t *testing.T) {
	d := newTestAllToAll(t, 3)
	for _, e := range d.TwoQubitEdges() {
		assert.Less(t, e[0], e[1])
		assert.GreaterOrEqual(t, e[0], 0)
		assert.Less(t, e[1], 3)
	}
}

func TestGateTimeUnavailableUntilSet(t *testing.T) {
	d := newTestAllToAll(t, 2)
	_, ok := d.GateTime("Hadamard", 1)
	assert.False(t, ok)

	require.NoError(t, d.SetGateTime("Hadamard", []int{1}, 2.5e-8))
	gt, ok := d.GateTime("Hadamard", 1)
	assert.True(t, ok)
	assert.Equal(t, 2.5e-8, gt)
}

func TestSetGateTimeValidation(t *testing.T) {
	d := newTestAllToAll(t, 2)
	tests := []struct {
		name     string
		qubits   []int
		gateTime float64
		wantKind interface{}
	}{
		{name: "qubit out of range", qubits: []int{2}, gateTime: 1, wantKind: &core.OutOfRangeError{}},
		{name: "negative qubit", qubits: []int{-1}, gateTime: 1, wantKind: &core.OutOfRangeError{}},
		{name: "empty tuple", qubits: []int{}, gateTime: 1, wantKind: &core.InvalidArityError{}},
		{name: "repeated qubit", qubits: []int{0, 0}, gateTime: 1, wantKind: &core.InvalidConfigError{}},
		{name: "negative gate time", qubits: []int{0}, gateTime: -1, wantKind: &core.InvalidConfigError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.SetGateTime("CNOT", tt.qubits, tt.gateTime)
			require.Error(t, err)
			switch tt.wantKind.(type) {
			case *core.OutOfRangeError:
				var e *core.OutOfRangeError
				assert.True(t, errors.As(err, &e))
			case *core.InvalidArityError:
				var e *core.InvalidArityError
				assert.True(t, errors.As(err, &e))
			case *core.InvalidConfigError:
				var e *core.InvalidConfigError
				assert.True(t, errors.As(err, &e))
			}
		})
	}
}

func TestNewAllToAllInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		single  []string
		two     []string
		gatTime float64
	}{
		{name: "duplicate single gate", n: 2, single: []string{"RotateX", "RotateX"}, two: []string{"CNOT"}, gatTime: 1},
		{name: "duplicate two gate", n: 2, single: []string{"RotateX"}, two: []string{"CNOT", "CNOT"}, gatTime: 1},
		{name: "empty gate name", n: 2, single: []string{""}, two: nil, gatTime: 1},
		{name: "negative qubit count", n: -1, single: nil, two: nil, gatTime: 1},
		{name: "negative default time", n: 2, single: []string{"RotateX"}, two: nil, gatTime: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewAllToAllDevice(tt.n, tt.single, tt.two, tt.gatTime)
			assert.Nil(t, d)
			var ic *core.InvalidConfigError
			assert.True(t, errors.As(err, &ic))
		})
	}
}

func TestAllToAllToGenericIdempotent(t *testing.T) {
	d := newTestAllToAll(t, 3)
	require.NoError(t, d.AddDamping(1, 0.05))
	require.NoError(t, d.SetGateTime("CNOT", []int{0, 1}, 3e-7))

	g1 := d.ToGeneric()
	g2 := g1.ToGeneric()

	b1, err := g1.ToJSON()
	require.NoError(t, err)
	b2, err := g2.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	// the snapshot is independent of its source
	require.NoError(t, g1.SetGateTime("CNOT", []int{0, 1}, 9e-7))
	gt, _ := d.GateTime("CNOT", 0, 1)
	assert.Equal(t, 3e-7, gt)
}

func TestAllToAllSerializationRoundTrip(t *testing.T) {
	d := newTestAllToAll(t, 3)
	require.NoError(t, d.SetGateTime("CNOT", []int{0, 1}, 3e-7))
	require.NoError(t, d.AddDepolarising(2, 0.4))
	require.NoError(t, d.SetGateTime("Toffoli", []int{0, 1, 2}, 8e-7))

	jsonBlob, err := d.ToJSON()
	require.NoError(t, err)
	fromJSON, err := AllToAllDeviceFromJSON(jsonBlob)
	require.NoError(t, err)
	again, err := fromJSON.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, jsonBlob, again)

	binBlob, err := d.ToBincode()
	require.NoError(t, err)
	fromBin, err := AllToAllDeviceFromBincode(binBlob)
	require.NoError(t, err)
	binJSON, err := fromBin.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, jsonBlob, binJSON)
}

func TestAllToAllSchemaAndVersions(t *testing.T) {
	d := newTestAllToAll(t, 2)
	schema, err := d.JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, schema, "number_qubits")
	assert.Contains(t, schema, "gate_times")

	assert.Equal(t, core.Version, d.CurrentVersion())
	assert.Equal(t, core.MinSupportedVersion, d.MinSupportedVersion())
}
