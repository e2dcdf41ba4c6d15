//go:build unit
// +build unit

package noisemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge-labs/qhardware/core"
)

func TestNewSingleQubitOverrotationDescription(t *testing.T) {
	desc, err := NewSingleQubitOverrotationDescription("RotateX", 0.01, 0.003)
	require.NoError(t, err)
	assert.Equal(t, "RotateX", desc.Gate)
	assert.Equal(t, 0.01, desc.ThetaMean)
	assert.Equal(t, 0.003, desc.ThetaStd)

	var ic *core.InvalidConfigError
	_, err = NewSingleQubitOverrotationDescription("", 0.01, 0.003)
	assert.ErrorAs(t, err, &ic)
	_, err = NewSingleQubitOverrotationDescription("RotateX", 0.01, -0.003)
	assert.ErrorAs(t, err, &ic)

	// A negative mean is a valid under-rotation.
	_, err = NewSingleQubitOverrotationDescription("RotateX", -0.01, 0.003)
	assert.NoError(t, err)
}

func TestOverrotationSingleQubitSetAndGet(t *testing.T) {
	m := NewSingleQubitOverrotationOnGate()
	desc, err := NewSingleQubitOverrotationDescription("RotateX", 0.01, 0.003)
	require.NoError(t, err)
	require.NoError(t, m.SetSingleQubitOverrotation("RotateX", 1, desc))

	got, ok := m.GetSingleQubitOverrotation("RotateX", 1)
	require.True(t, ok)
	assert.Equal(t, desc, got)

	_, ok = m.GetSingleQubitOverrotation("RotateX", 0)
	assert.False(t, ok)
	_, ok = m.GetSingleQubitOverrotation("RotateZ", 1)
	assert.False(t, ok)
}

func TestOverrotationTwoQubitSetAndGet(t *testing.T) {
	m := NewSingleQubitOverrotationOnGate()
	descControl, err := NewSingleQubitOverrotationDescription("RotateZ", 0.02, 0.001)
	require.NoError(t, err)
	descTarget, err := NewSingleQubitOverrotationDescription("RotateX", 0.03, 0.002)
	require.NoError(t, err)
	require.NoError(t, m.SetTwoQubitOverrotation("CNOT", 0, 1, descControl, descTarget))

	gotControl, gotTarget, ok := m.GetTwoQubitOverrotation("CNOT", 0, 1)
	require.True(t, ok)
	assert.Equal(t, descControl, gotControl)
	assert.Equal(t, descTarget, gotTarget)

	// Keys are order sensitive.
	_, _, ok = m.GetTwoQubitOverrotation("CNOT", 1, 0)
	assert.False(t, ok)
}

func TestOverrotationRejectsInvalidTuples(t *testing.T) {
	m := NewSingleQubitOverrotationOnGate()
	desc, err := NewSingleQubitOverrotationDescription("RotateX", 0.01, 0.003)
	require.NoError(t, err)

	var ic *core.InvalidConfigError
	assert.ErrorAs(t, m.SetSingleQubitOverrotation("", 0, desc), &ic)
	assert.ErrorAs(t, m.SetTwoQubitOverrotation("CNOT", 1, 1, desc, desc), &ic)

	var oor *core.OutOfRangeError
	assert.ErrorAs(t, m.SetSingleQubitOverrotation("RotateX", -1, desc), &oor)
}

func TestOverrotationSerializationRoundTrip(t *testing.T) {
	m := NewSingleQubitOverrotationOnGate()
	descX, err := NewSingleQubitOverrotationDescription("RotateX", 0.01, 0.003)
	require.NoError(t, err)
	descZ, err := NewSingleQubitOverrotationDescription("RotateZ", 0.02, 0.001)
	require.NoError(t, err)
	require.NoError(t, m.SetSingleQubitOverrotation("RotateX", 0, descX))
	require.NoError(t, m.SetSingleQubitOverrotation("RotateX", 2, descZ))
	require.NoError(t, m.SetTwoQubitOverrotation("CNOT", 0, 1, descZ, descX))

	blob, err := m.ToJSON()
	require.NoError(t, err)
	back, err := SingleQubitOverrotationOnGateFromJSON(blob)
	require.NoError(t, err)
	blobBack, err := back.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, blob, blobBack)

	bin, err := m.ToBincode()
	require.NoError(t, err)
	backBin, err := SingleQubitOverrotationOnGateFromBincode(bin)
	require.NoError(t, err)
	gotControl, gotTarget, ok := backBin.GetTwoQubitOverrotation("CNOT", 0, 1)
	require.True(t, ok)
	assert.Equal(t, descZ, gotControl)
	assert.Equal(t, descX, gotTarget)
}

func TestOverrotationSchemaAndVersions(t *testing.T) {
	m := NewSingleQubitOverrotationOnGate()
	schema, err := m.JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, schema, SingleQubitOverrotationOnGateTypeName)

	assert.Equal(t, core.Version, m.CurrentVersion())
	assert.Equal(t, core.MinSupportedVersion, m.MinSupportedVersion())
}
