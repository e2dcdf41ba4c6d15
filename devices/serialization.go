package devices

import (
	"github.com/qforge-labs/qhardware/core"
	"github.com/qforge-labs/qhardware/wire"
)

// Type discriminants written into every envelope.
const (
	AllToAllDeviceTypeName      = "AllToAllDevice"
	SquareLatticeDeviceTypeName = "SquareLatticeDevice"
	GenericDeviceTypeName       = "GenericDevice"
)

type allToAllDeviceState struct {
	NumberQubits     int                `json:"number_qubits" msgpack:"number_qubits"`
	SingleQubitGates []string           `json:"single_qubit_gates" msgpack:"single_qubit_gates"`
	TwoQubitGates    []string           `json:"two_qubit_gates" msgpack:"two_qubit_gates"`
	GateTimes        gateTimeTableState `json:"gate_times" msgpack:"gate_times"`
	DecoherenceRates []qubitRatesEntry  `json:"decoherence_rates" msgpack:"decoherence_rates"`
}

type squareLatticeDeviceState struct {
	NumberRows       int                `json:"number_rows" msgpack:"number_rows"`
	NumberColumns    int                `json:"number_columns" msgpack:"number_columns"`
	NumberQubits     int                `json:"number_qubits" msgpack:"number_qubits"`
	SingleQubitGates []string           `json:"single_qubit_gates" msgpack:"single_qubit_gates"`
	TwoQubitGates    []string           `json:"two_qubit_gates" msgpack:"two_qubit_gates"`
	GateTimes        gateTimeTableState `json:"gate_times" msgpack:"gate_times"`
	DecoherenceRates []qubitRatesEntry  `json:"decoherence_rates" msgpack:"decoherence_rates"`
}

type genericDeviceState struct {
	NumberQubits     int                `json:"number_qubits" msgpack:"number_qubits"`
	GateTimes        gateTimeTableState `json:"gate_times" msgpack:"gate_times"`
	DecoherenceRates []qubitRatesEntry  `json:"decoherence_rates" msgpack:"decoherence_rates"`
}

// applyTableState replays entries through the device's own SetGateTime so
// topology rules reject hand-crafted payloads that break them.
func applyTableState(d Device, s gateTimeTableState) error {
	for _, entries := range [][]gateTimeEntry{s.SingleQubit, s.TwoQubit, s.ThreeQubit, s.MultiQubit} {
		for _, e := range entries {
			if err := d.SetGateTime(e.Gate, e.Qubits, e.GateTime); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyRatesState(d Device, entries []qubitRatesEntry) error {
	for _, e := range entries {
		if err := d.SetQubitDecoherenceRates(e.Qubit, RateMatrix(e.Rates)); err != nil {
			return err
		}
	}
	return nil
}

func invalidPayload(typeName string, err error) error {
	return &core.DeserializationError{Msg: "invalid " + typeName + " payload", Cause: err}
}

// AllToAllDevice

func (d *AllToAllDevice) state() allToAllDeviceState {
	return allToAllDeviceState{
		NumberQubits:     d.numberQubits,
		SingleQubitGates: d.SingleQubitGateNames(),
		TwoQubitGates:    d.TwoQubitGateNames(),
		GateTimes:        d.times.state(),
		DecoherenceRates: d.rates.state(),
	}
}

func allToAllDeviceFromState(s allToAllDeviceState) (*AllToAllDevice, error) {
	if err := checkDeviceConfig(s.NumberQubits, s.SingleQubitGates, s.TwoQubitGates, 0); err != nil {
		return nil, invalidPayload(AllToAllDeviceTypeName, err)
	}
	d := &AllToAllDevice{
		baseDevice:       newBaseDevice(s.NumberQubits),
		singleQubitGates: append([]string{}, s.SingleQubitGates...),
		twoQubitGates:    append([]string{}, s.TwoQubitGates...),
	}
	if err := applyTableState(d, s.GateTimes); err != nil {
		return nil, invalidPayload(AllToAllDeviceTypeName, err)
	}
	if err := applyRatesState(d, s.DecoherenceRates); err != nil {
		return nil, invalidPayload(AllToAllDeviceTypeName, err)
	}
	return d, nil
}

func (d *AllToAllDevice) ToJSON() ([]byte, error) {
	return wire.ToJSON(AllToAllDeviceTypeName, d.state())
}

func AllToAllDeviceFromJSON(data []byte) (*AllToAllDevice, error) {
	var s allToAllDeviceState
	if err := wire.FromJSON(data, AllToAllDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return allToAllDeviceFromState(s)
}

func (d *AllToAllDevice) ToBincode() ([]byte, error) {
	return wire.ToBincode(AllToAllDeviceTypeName, d.state())
}

func AllToAllDeviceFromBincode(data []byte) (*AllToAllDevice, error) {
	var s allToAllDeviceState
	if err := wire.FromBincode(data, AllToAllDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return allToAllDeviceFromState(s)
}

func (d *AllToAllDevice) JSONSchema() (string, error) {
	return wire.SchemaFor(AllToAllDeviceTypeName, allToAllDeviceState{})
}

func (d *AllToAllDevice) CurrentVersion() string      { return core.Version }
func (d *AllToAllDevice) MinSupportedVersion() string { return core.MinSupportedVersion }

// SquareLatticeDevice

func (d *SquareLatticeDevice) state() squareLatticeDeviceState {
	return squareLatticeDeviceState{
		NumberRows:       d.numberRows,
		NumberColumns:    d.numberColumns,
		NumberQubits:     d.numberQubits,
		SingleQubitGates: d.SingleQubitGateNames(),
		TwoQubitGates:    d.TwoQubitGateNames(),
		GateTimes:        d.times.state(),
		DecoherenceRates: d.rates.state(),
	}
}

func squareLatticeDeviceFromState(s squareLatticeDeviceState) (*SquareLatticeDevice, error) {
	if s.NumberRows < 1 || s.NumberColumns < 1 || s.NumberRows*s.NumberColumns != s.NumberQubits {
		return nil, invalidPayload(SquareLatticeDeviceTypeName, &core.InvalidConfigError{
			Msg: "lattice shape does not match number_qubits",
		})
	}
	if err := checkDeviceConfig(s.NumberQubits, s.SingleQubitGates, s.TwoQubitGates, 0); err != nil {
		return nil, invalidPayload(SquareLatticeDeviceTypeName, err)
	}
	d := &SquareLatticeDevice{
		baseDevice:       newBaseDevice(s.NumberQubits),
		numberRows:       s.NumberRows,
		numberColumns:    s.NumberColumns,
		singleQubitGates: append([]string{}, s.SingleQubitGates...),
		twoQubitGates:    append([]string{}, s.TwoQubitGates...),
	}
	if err := applyTableState(d, s.GateTimes); err != nil {
		return nil, invalidPayload(SquareLatticeDeviceTypeName, err)
	}
	if err := applyRatesState(d, s.DecoherenceRates); err != nil {
		return nil, invalidPayload(SquareLatticeDeviceTypeName, err)
	}
	return d, nil
}

func (d *SquareLatticeDevice) ToJSON() ([]byte, error) {
	return wire.ToJSON(SquareLatticeDeviceTypeName, d.state())
}

func SquareLatticeDeviceFromJSON(data []byte) (*SquareLatticeDevice, error) {
	var s squareLatticeDeviceState
	if err := wire.FromJSON(data, SquareLatticeDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return squareLatticeDeviceFromState(s)
}

func (d *SquareLatticeDevice) ToBincode() ([]byte, error) {
	return wire.ToBincode(SquareLatticeDeviceTypeName, d.state())
}

func SquareLatticeDeviceFromBincode(data []byte) (*SquareLatticeDevice, error) {
	var s squareLatticeDeviceState
	if err := wire.FromBincode(data, SquareLatticeDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return squareLatticeDeviceFromState(s)
}

func (d *SquareLatticeDevice) JSONSchema() (string, error) {
	return wire.SchemaFor(SquareLatticeDeviceTypeName, squareLatticeDeviceState{})
}

func (d *SquareLatticeDevice) CurrentVersion() string      { return core.Version }
func (d *SquareLatticeDevice) MinSupportedVersion() string { return core.MinSupportedVersion }

// GenericDevice

func (d *GenericDevice) state() genericDeviceState {
	return genericDeviceState{
		NumberQubits:     d.numberQubits,
		GateTimes:        d.times.state(),
		DecoherenceRates: d.rates.state(),
	}
}

func genericDeviceFromState(s genericDeviceState) (*GenericDevice, error) {
	d, err := NewGenericDevice(s.NumberQubits)
	if err != nil {
		return nil, invalidPayload(GenericDeviceTypeName, err)
	}
	if err := applyTableState(d, s.GateTimes); err != nil {
		return nil, invalidPayload(GenericDeviceTypeName, err)
	}
	if err := applyRatesState(d, s.DecoherenceRates); err != nil {
		return nil, invalidPayload(GenericDeviceTypeName, err)
	}
	return d, nil
}

func (d *GenericDevice) ToJSON() ([]byte, error) {
	return wire.ToJSON(GenericDeviceTypeName, d.state())
}

func GenericDeviceFromJSON(data []byte) (*GenericDevice, error) {
	var s genericDeviceState
	if err := wire.FromJSON(data, GenericDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return genericDeviceFromState(s)
}

func (d *GenericDevice) ToBincode() ([]byte, error) {
	return wire.ToBincode(GenericDeviceTypeName, d.state())
}

func GenericDeviceFromBincode(data []byte) (*GenericDevice, error) {
	var s genericDeviceState
	if err := wire.FromBincode(data, GenericDeviceTypeName, &s); err != nil {
		return nil, err
	}
	return genericDeviceFromState(s)
}

func (d *GenericDevice) JSONSchema() (string, error) {
	return wire.SchemaFor(GenericDeviceTypeName, genericDeviceState{})
}

func (d *GenericDevice) CurrentVersion() string      { return core.Version }
func (d *GenericDevice) MinSupportedVersion() string { return core.MinSupportedVersion }
