package noisemodels

import (
	"github.com/qforge-labs/qhardware/core"
)

// SingleQubitOverrotationDescription names the compensating rotation a
// caller inserts after a gate: the rotation angle is sampled from a normal
// distribution with mean ThetaMean and standard deviation ThetaStd. The
// model stores descriptions; sampling happens in the caller's gate-insertion
// logic.
type SingleQubitOverrotationDescription struct {
	Gate      string  `json:"gate" msgpack:"gate"`
	ThetaMean float64 `json:"theta_mean" msgpack:"theta_mean"`
	ThetaStd  float64 `json:"theta_std" msgpack:"theta_std"`
}

func NewSingleQubitOverrotationDescription(gate string, thetaMean, thetaStd float64) (SingleQubitOverrotationDescription, error) {
	if gate == "" {
		return SingleQubitOverrotationDescription{}, &core.InvalidConfigError{Msg: "overrotation gate name is empty"}
	}
	if thetaStd < 0 {
		return SingleQubitOverrotationDescription{}, &core.InvalidConfigError{Msg: "overrotation standard deviation is negative"}
	}
	return SingleQubitOverrotationDescription{Gate: gate, ThetaMean: thetaMean, ThetaStd: thetaStd}, nil
}

// SingleQubitOverrotationOnGate attaches overrotation descriptions to gate
// invocations: one description per (gate, qubit), a pair per
// (gate, control, target) with one description for each involved qubit.
type SingleQubitOverrotationOnGate struct {
	single map[gateSingleKey]SingleQubitOverrotationDescription
	two    map[gateTwoKey][2]SingleQubitOverrotationDescription
}

func NewSingleQubitOverrotationOnGate() *SingleQubitOverrotationOnGate {
	return &SingleQubitOverrotationOnGate{
		single: make(map[gateSingleKey]SingleQubitOverrotationDescription),
		two:    make(map[gateTwoKey][2]SingleQubitOverrotationDescription),
	}
}

func (m *SingleQubitOverrotationOnGate) SetSingleQubitOverrotation(gate string, qubit int, desc SingleQubitOverrotationDescription) error {
	if err := checkGateTuple(gate, qubit); err != nil {
		return err
	}
	m.single[gateSingleKey{gate: gate, qubit: qubit}] = desc
	return nil
}

func (m *SingleQubitOverrotationOnGate) GetSingleQubitOverrotation(gate string, qubit int) (SingleQubitOverrotationDescription, bool) {
	desc, ok := m.single[gateSingleKey{gate: gate, qubit: qubit}]
	return desc, ok
}

func (m *SingleQubitOverrotationOnGate) SetTwoQubitOverrotation(gate string, control, target int, descControl, descTarget SingleQubitOverrotationDescription) error {
	if err := checkGateTuple(gate, control, target); err != nil {
		return err
	}
	m.two[gateTwoKey{gate: gate, control: control, target: target}] = [2]SingleQubitOverrotationDescription{descControl, descTarget}
	return nil
}

func (m *SingleQubitOverrotationOnGate) GetTwoQubitOverrotation(gate string, control, target int) (descControl, descTarget SingleQubitOverrotationDescription, ok bool) {
	pair, ok := m.two[gateTwoKey{gate: gate, control: control, target: target}]
	if !ok {
		return SingleQubitOverrotationDescription{}, SingleQubitOverrotationDescription{}, false
	}
	return pair[0], pair[1], true
}
