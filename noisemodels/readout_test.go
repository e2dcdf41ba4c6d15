//go:build unit
// +build unit

package noisemodels

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge-labs/qhardware/core"
)

func TestUniformReadoutErrorCoversAllQubits(t *testing.T) {
	m, err := NewImperfectReadoutModelWithUniformError(3, 0.2, 0.4)
	require.NoError(t, err)
	for q := 0; q < 3; q++ {
		assert.Equal(t, 0.2, m.ProbDetect0As1(q))
		assert.Equal(t, 0.4, m.ProbDetect1As0(q))
	}
	// A qubit the model never saw reads as noiseless.
	assert.Equal(t, 0.0, m.ProbDetect0As1(3))
	assert.Equal(t, 0.0, m.ProbDetect1As0(3))
}

func TestSetErrorProbabilitesTargetsOneQubit(t *testing.T) {
	m, err := NewImperfectReadoutModelWithUniformError(3, 0.2, 0.4)
	require.NoError(t, err)
	require.NoError(t, m.SetErrorProbabilites(1, 0.01, 0.02))

	assert.Equal(t, 0.01, m.ProbDetect0As1(1))
	assert.Equal(t, 0.02, m.ProbDetect1As0(1))
	assert.Equal(t, 0.2, m.ProbDetect0As1(0))
	assert.Equal(t, 0.4, m.ProbDetect1As0(2))
}

func TestReadoutProbabilityValidation(t *testing.T) {
	tests := []struct {
		prob0As1 float64
		prob1As0 float64
		name     string
	}{
		{prob0As1: -0.1, prob1As0: 0.4, name: "prob_detect_0_as_1"},
		{prob0As1: 1.5, prob1As0: 0.4, name: "prob_detect_0_as_1"},
		{prob0As1: 0.2, prob1As0: -0.1, name: "prob_detect_1_as_0"},
		{prob0As1: 0.2, prob1As0: 1.01, name: "prob_detect_1_as_0"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%g_%g", tt.prob0As1, tt.prob1As0), func(t *testing.T) {
			_, err := NewImperfectReadoutModelWithUniformError(2, tt.prob0As1, tt.prob1As0)
			var ip *core.InvalidProbabilityError
			require.ErrorAs(t, err, &ip)
			assert.Equal(t, tt.name, ip.Name)

			m := NewImperfectReadoutModel()
			err = m.SetErrorProbabilites(0, tt.prob0As1, tt.prob1As0)
			require.ErrorAs(t, err, &ip)
			assert.Equal(t, 0.0, m.ProbDetect0As1(0))
		})
	}
}

func TestUniformReadoutErrorNegativeQubitCount(t *testing.T) {
	_, err := NewImperfectReadoutModelWithUniformError(-1, 0.2, 0.4)
	var ic *core.InvalidConfigError
	assert.ErrorAs(t, err, &ic)
}

func TestSetErrorProbabilitesNegativeQubit(t *testing.T) {
	m := NewImperfectReadoutModel()
	err := m.SetErrorProbabilites(-2, 0.1, 0.1)
	var oor *core.OutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestReadoutSerializationRoundTrip(t *testing.T) {
	m, err := NewImperfectReadoutModelWithUniformError(3, 0.2, 0.4)
	require.NoError(t, err)
	require.NoError(t, m.SetErrorProbabilites(1, 0.01, 0.02))

	blob, err := m.ToJSON()
	require.NoError(t, err)
	back, err := ImperfectReadoutModelFromJSON(blob)
	require.NoError(t, err)
	blobBack, err := back.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, blob, blobBack)

	bin, err := m.ToBincode()
	require.NoError(t, err)
	backBin, err := ImperfectReadoutModelFromBincode(bin)
	require.NoError(t, err)
	assert.Equal(t, 0.01, backBin.ProbDetect0As1(1))
	assert.Equal(t, 0.4, backBin.ProbDetect1As0(2))
}

func TestReadoutDeserializationRejectsBadProbability(t *testing.T) {
	m, err := NewImperfectReadoutModelWithUniformError(1, 0.2, 0.4)
	require.NoError(t, err)
	blob, err := m.ToJSON()
	require.NoError(t, err)

	tampered := []byte(strings.Replace(string(blob), "0.2", "2.5", 1))
	_, err = ImperfectReadoutModelFromJSON(tampered)
	var de *core.DeserializationError
	require.ErrorAs(t, err, &de)
	var ip *core.InvalidProbabilityError
	assert.ErrorAs(t, err, &ip)
}

func TestReadoutSchemaAndVersions(t *testing.T) {
	m := NewImperfectReadoutModel()
	schema, err := m.JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, schema, ImperfectReadoutModelTypeName)

	assert.Equal(t, core.Version, m.CurrentVersion())
	assert.Equal(t, core.MinSupportedVersion, m.MinSupportedVersion())
}
