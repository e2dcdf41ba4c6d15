package noisemodels

import (
	"sort"

	"github.com/qforge-labs/qhardware/core"
	"github.com/qforge-labs/qhardware/lindblad"
	"github.com/qforge-labs/qhardware/wire"
)

// Type discriminants written into every envelope.
const (
	ContinuousDecoherenceModelTypeName    = "ContinuousDecoherenceModel"
	DecoherenceOnIdleModelTypeName        = "DecoherenceOnIdleModel"
	ImperfectReadoutModelTypeName         = "ImperfectReadoutModel"
	DecoherenceOnGateModelTypeName        = "DecoherenceOnGateModel"
	SingleQubitOverrotationOnGateTypeName = "SingleQubitOverrotationOnGate"
)

func sortGateErrorEntries(entries []gateErrorEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Gate != entries[j].Gate {
			return entries[i].Gate < entries[j].Gate
		}
		a, b := entries[i].Qubits, entries[j].Qubits
		for k := range a {
			if k >= len(b) {
				return false
			}
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}

type decoherenceModelState struct {
	Terms []lindblad.Term `json:"noise_operator" msgpack:"noise_operator"`
}

func (m *decoherenceModel) state() decoherenceModelState {
	return decoherenceModelState{Terms: m.op.Terms()}
}

// ContinuousDecoherenceModel

func (m *ContinuousDecoherenceModel) ToJSON() ([]byte, error) {
	return wire.ToJSON(ContinuousDecoherenceModelTypeName, m.state())
}

func ContinuousDecoherenceModelFromJSON(data []byte) (*ContinuousDecoherenceModel, error) {
	var s decoherenceModelState
	if err := wire.FromJSON(data, ContinuousDecoherenceModelTypeName, &s); err != nil {
		return nil, err
	}
	return &ContinuousDecoherenceModel{decoherenceModel: decoherenceModel{op: lindblad.FromTerms(s.Terms)}}, nil
}

func (m *ContinuousDecoherenceModel) ToBincode() ([]byte, error) {
	return wire.ToBincode(ContinuousDecoherenceModelTypeName, m.state())
}

func ContinuousDecoherenceModelFromBincode(data []byte) (*ContinuousDecoherenceModel, error) {
	var s decoherenceModelState
	if err := wire.FromBincode(data, ContinuousDecoherenceModelTypeName, &s); err != nil {
		return nil, err
	}
	return &ContinuousDecoherenceModel{decoherenceModel: decoherenceModel{op: lindblad.FromTerms(s.Terms)}}, nil
}

func (m *ContinuousDecoherenceModel) JSONSchema() (string, error) {
	return wire.SchemaFor(ContinuousDecoherenceModelTypeName, decoherenceModelState{})
}

func (m *ContinuousDecoherenceModel) CurrentVersion() string      { return core.Version }
func (m *ContinuousDecoherenceModel) MinSupportedVersion() string { return core.MinSupportedVersion }

// DecoherenceOnIdleModel

func (m *DecoherenceOnIdleModel) ToJSON() ([]byte, error) {
	return wire.ToJSON(DecoherenceOnIdleModelTypeName, m.state())
}

func DecoherenceOnIdleModelFromJSON(data []byte) (*DecoherenceOnIdleModel, error) {
	var s decoherenceModelState
	if err := wire.FromJSON(data, DecoherenceOnIdleModelTypeName, &s); err != nil {
		return nil, err
	}
	return &DecoherenceOnIdleModel{decoherenceModel: decoherenceModel{op: lindblad.FromTerms(s.Terms)}}, nil
}

func (m *DecoherenceOnIdleModel) ToBincode() ([]byte, error) {
	return wire.ToBincode(DecoherenceOnIdleModelTypeName, m.state())
}

func DecoherenceOnIdleModelFromBincode(data []byte) (*DecoherenceOnIdleModel, error) {
	var s decoherenceModelState
	if err := wire.FromBincode(data, DecoherenceOnIdleModelTypeName, &s); err != nil {
		return nil, err
	}
	return &DecoherenceOnIdleModel{decoherenceModel: decoherenceModel{op: lindblad.FromTerms(s.Terms)}}, nil
}

func (m *DecoherenceOnIdleModel) JSONSchema() (string, error) {
	return wire.SchemaFor(DecoherenceOnIdleModelTypeName, decoherenceModelState{})
}

func (m *DecoherenceOnIdleModel) CurrentVersion() string      { return core.Version }
func (m *DecoherenceOnIdleModel) MinSupportedVersion() string { return core.MinSupportedVersion }

// ImperfectReadoutModel

type readoutModelState struct {
	Errors []readoutEntry `json:"readout_errors" msgpack:"readout_errors"`
}

func (m *ImperfectReadoutModel) ToJSON() ([]byte, error) {
	return wire.ToJSON(ImperfectReadoutModelTypeName, readoutModelState{Errors: m.state()})
}

func ImperfectReadoutModelFromJSON(data []byte) (*ImperfectReadoutModel, error) {
	var s readoutModelState
	if err := wire.FromJSON(data, ImperfectReadoutModelTypeName, &s); err != nil {
		return nil, err
	}
	m, err := readoutModelFromState(s.Errors)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + ImperfectReadoutModelTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *ImperfectReadoutModel) ToBincode() ([]byte, error) {
	return wire.ToBincode(ImperfectReadoutModelTypeName, readoutModelState{Errors: m.state()})
}

func ImperfectReadoutModelFromBincode(data []byte) (*ImperfectReadoutModel, error) {
	var s readoutModelState
	if err := wire.FromBincode(data, ImperfectReadoutModelTypeName, &s); err != nil {
		return nil, err
	}
	m, err := readoutModelFromState(s.Errors)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + ImperfectReadoutModelTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *ImperfectReadoutModel) JSONSchema() (string, error) {
	return wire.SchemaFor(ImperfectReadoutModelTypeName, readoutModelState{})
}

func (m *ImperfectReadoutModel) CurrentVersion() string      { return core.Version }
func (m *ImperfectReadoutModel) MinSupportedVersion() string { return core.MinSupportedVersion }

// DecoherenceOnGateModel

func (m *DecoherenceOnGateModel) ToJSON() ([]byte, error) {
	return wire.ToJSON(DecoherenceOnGateModelTypeName, m.state())
}

func DecoherenceOnGateModelFromJSON(data []byte) (*DecoherenceOnGateModel, error) {
	var s onGateModelState
	if err := wire.FromJSON(data, DecoherenceOnGateModelTypeName, &s); err != nil {
		return nil, err
	}
	m, err := onGateModelFromState(s)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + DecoherenceOnGateModelTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *DecoherenceOnGateModel) ToBincode() ([]byte, error) {
	return wire.ToBincode(DecoherenceOnGateModelTypeName, m.state())
}

func DecoherenceOnGateModelFromBincode(data []byte) (*DecoherenceOnGateModel, error) {
	var s onGateModelState
	if err := wire.FromBincode(data, DecoherenceOnGateModelTypeName, &s); err != nil {
		return nil, err
	}
	m, err := onGateModelFromState(s)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + DecoherenceOnGateModelTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *DecoherenceOnGateModel) JSONSchema() (string, error) {
	return wire.SchemaFor(DecoherenceOnGateModelTypeName, onGateModelState{})
}

func (m *DecoherenceOnGateModel) CurrentVersion() string      { return core.Version }
func (m *DecoherenceOnGateModel) MinSupportedVersion() string { return core.MinSupportedVersion }

// SingleQubitOverrotationOnGate

type overrotationSingleEntry struct {
	Gate        string                             `json:"gate" msgpack:"gate"`
	Qubit       int                                `json:"qubit" msgpack:"qubit"`
	Description SingleQubitOverrotationDescription `json:"description" msgpack:"description"`
}

type overrotationTwoEntry struct {
	Gate               string                             `json:"gate" msgpack:"gate"`
	Control            int                                `json:"control" msgpack:"control"`
	Target             int                                `json:"target" msgpack:"target"`
	DescriptionControl SingleQubitOverrotationDescription `json:"description_control" msgpack:"description_control"`
	DescriptionTarget  SingleQubitOverrotationDescription `json:"description_target" msgpack:"description_target"`
}

type overrotationState struct {
	SingleQubit []overrotationSingleEntry `json:"single_qubit" msgpack:"single_qubit"`
	TwoQubit    []overrotationTwoEntry    `json:"two_qubit" msgpack:"two_qubit"`
}

func (m *SingleQubitOverrotationOnGate) state() overrotationState {
	s := overrotationState{
		SingleQubit: []overrotationSingleEntry{},
		TwoQubit:    []overrotationTwoEntry{},
	}
	for k, desc := range m.single {
		s.SingleQubit = append(s.SingleQubit, overrotationSingleEntry{Gate: k.gate, Qubit: k.qubit, Description: desc})
	}
	for k, pair := range m.two {
		s.TwoQubit = append(s.TwoQubit, overrotationTwoEntry{
			Gate:               k.gate,
			Control:            k.control,
			Target:             k.target,
			DescriptionControl: pair[0],
			DescriptionTarget:  pair[1],
		})
	}
	sort.Slice(s.SingleQubit, func(i, j int) bool {
		if s.SingleQubit[i].Gate != s.SingleQubit[j].Gate {
			return s.SingleQubit[i].Gate < s.SingleQubit[j].Gate
		}
		return s.SingleQubit[i].Qubit < s.SingleQubit[j].Qubit
	})
	sort.Slice(s.TwoQubit, func(i, j int) bool {
		if s.TwoQubit[i].Gate != s.TwoQubit[j].Gate {
			return s.TwoQubit[i].Gate < s.TwoQubit[j].Gate
		}
		if s.TwoQubit[i].Control != s.TwoQubit[j].Control {
			return s.TwoQubit[i].Control < s.TwoQubit[j].Control
		}
		return s.TwoQubit[i].Target < s.TwoQubit[j].Target
	})
	return s
}

func overrotationFromState(s overrotationState) (*SingleQubitOverrotationOnGate, error) {
	m := NewSingleQubitOverrotationOnGate()
	for _, e := range s.SingleQubit {
		if err := m.SetSingleQubitOverrotation(e.Gate, e.Qubit, e.Description); err != nil {
			return nil, err
		}
	}
	for _, e := range s.TwoQubit {
		if err := m.SetTwoQubitOverrotation(e.Gate, e.Control, e.Target, e.DescriptionControl, e.DescriptionTarget); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *SingleQubitOverrotationOnGate) ToJSON() ([]byte, error) {
	return wire.ToJSON(SingleQubitOverrotationOnGateTypeName, m.state())
}

func SingleQubitOverrotationOnGateFromJSON(data []byte) (*SingleQubitOverrotationOnGate, error) {
	var s overrotationState
	if err := wire.FromJSON(data, SingleQubitOverrotationOnGateTypeName, &s); err != nil {
		return nil, err
	}
	m, err := overrotationFromState(s)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + SingleQubitOverrotationOnGateTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *SingleQubitOverrotationOnGate) ToBincode() ([]byte, error) {
	return wire.ToBincode(SingleQubitOverrotationOnGateTypeName, m.state())
}

func SingleQubitOverrotationOnGateFromBincode(data []byte) (*SingleQubitOverrotationOnGate, error) {
	var s overrotationState
	if err := wire.FromBincode(data, SingleQubitOverrotationOnGateTypeName, &s); err != nil {
		return nil, err
	}
	m, err := overrotationFromState(s)
	if err != nil {
		return nil, &core.DeserializationError{Msg: "invalid " + SingleQubitOverrotationOnGateTypeName + " payload", Cause: err}
	}
	return m, nil
}

func (m *SingleQubitOverrotationOnGate) JSONSchema() (string, error) {
	return wire.SchemaFor(SingleQubitOverrotationOnGateTypeName, overrotationState{})
}

func (m *SingleQubitOverrotationOnGate) CurrentVersion() string      { return core.Version }
func (m *SingleQubitOverrotationOnGate) MinSupportedVersion() string { return core.MinSupportedVersion }
