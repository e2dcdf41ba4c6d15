package noisemodels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/qforge-labs/qhardware/core"
	"github.com/qforge-labs/qhardware/lindblad"
)

type gateSingleKey struct {
	gate  string
	qubit int
}

type gateTwoKey struct {
	gate    string
	control int
	target  int
}

type gateThreeKey struct {
	gate     string
	control0 int
	control1 int
	target   int
}

type gateMultiEntry struct {
	gate   string
	qubits []int
	op     lindblad.Operator
}

func gateMultiID(gate string, qubits []int) string {
	parts := make([]string, 0, len(qubits)+1)
	parts = append(parts, gate)
	for _, q := range qubits {
		parts = append(parts, strconv.Itoa(q))
	}
	return strings.Join(parts, ":")
}

// DecoherenceOnGateModel attaches a noise operator to specific gate
// invocations, keyed by the exact (gate, ordered qubit tuple). There is no
// permutation-invariant matching: (CNOT, 0, 1) and (CNOT, 1, 0) are
// different keys.
type DecoherenceOnGateModel struct {
	single map[gateSingleKey]lindblad.Operator
	two    map[gateTwoKey]lindblad.Operator
	three  map[gateThreeKey]lindblad.Operator
	multi  map[string]gateMultiEntry
}

func NewDecoherenceOnGateModel() *DecoherenceOnGateModel {
	return &DecoherenceOnGateModel{
		single: make(map[gateSingleKey]lindblad.Operator),
		two:    make(map[gateTwoKey]lindblad.Operator),
		three:  make(map[gateThreeKey]lindblad.Operator),
		multi:  make(map[string]gateMultiEntry),
	}
}

func checkGateKey(gate string, op lindblad.Operator, qubits ...int) error {
	if op == nil {
		return &core.TypeMismatchError{Want: "lindblad.Operator", Got: "nil"}
	}
	return checkGateTuple(gate, qubits...)
}

func checkGateTuple(gate string, qubits ...int) error {
	if gate == "" {
		return &core.InvalidConfigError{Msg: "gate name is empty"}
	}
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if q < 0 {
			return &core.OutOfRangeError{Msg: fmt.Sprintf("qubit index %d is negative", q)}
		}
		if _, dup := seen[q]; dup {
			return &core.InvalidConfigError{
				Msg: fmt.Sprintf("gate %s tuple repeats qubit %d", gate, q),
			}
		}
		seen[q] = struct{}{}
	}
	return nil
}

func (m *DecoherenceOnGateModel) SetSingleQubitGateError(gate string, qubit int, op lindblad.Operator) error {
	if err := checkGateKey(gate, op, qubit); err != nil {
		return err
	}
	m.single[gateSingleKey{gate: gate, qubit: qubit}] = op
	return nil
}

func (m *DecoherenceOnGateModel) GetSingleQubitGateError(gate string, qubit int) (lindblad.Operator, bool) {
	op, ok := m.single[gateSingleKey{gate: gate, qubit: qubit}]
	return op, ok
}

func (m *DecoherenceOnGateModel) SetTwoQubitGateError(gate string, control, target int, op lindblad.Operator) error {
	if err := checkGateKey(gate, op, control, target); err != nil {
		return err
	}
	m.two[gateTwoKey{gate: gate, control: control, target: target}] = op
	return nil
}

func (m *DecoherenceOnGateModel) GetTwoQubitGateError(gate string, control, target int) (lindblad.Operator, bool) {
	op, ok := m.two[gateTwoKey{gate: gate, control: control, target: target}]
	return op, ok
}

func (m *DecoherenceOnGateModel) SetThreeQubitGateError(gate string, control0, control1, target int, op lindblad.Operator) error {
	if err := checkGateKey(gate, op, control0, control1, target); err != nil {
		return err
	}
	m.three[gateThreeKey{gate: gate, control0: control0, control1: control1, target: target}] = op
	return nil
}

func (m *DecoherenceOnGateModel) GetThreeQubitGateError(gate string, control0, control1, target int) (lindblad.Operator, bool) {
	op, ok := m.three[gateThreeKey{gate: gate, control0: control0, control1: control1, target: target}]
	return op, ok
}

func (m *DecoherenceOnGateModel) SetMultiQubitGateError(gate string, qubits []int, op lindblad.Operator) error {
	if err := checkGateKey(gate, op, qubits...); err != nil {
		return err
	}
	if len(qubits) == 0 {
		return &core.InvalidArityError{Gate: gate, Want: 1, Got: 0}
	}
	m.multi[gateMultiID(gate, qubits)] = gateMultiEntry{
		gate:   gate,
		qubits: deepcopy.Copy(qubits).([]int),
		op:     op,
	}
	return nil
}

func (m *DecoherenceOnGateModel) GetMultiQubitGateError(gate string, qubits []int) (lindblad.Operator, bool) {
	e, ok := m.multi[gateMultiID(gate, qubits)]
	if !ok {
		return nil, false
	}
	return e.op, true
}

type gateErrorEntry struct {
	Gate   string          `json:"gate" msgpack:"gate"`
	Qubits []int           `json:"qubits" msgpack:"qubits"`
	Terms  []lindblad.Term `json:"noise_operator" msgpack:"noise_operator"`
}

type onGateModelState struct {
	SingleQubit []gateErrorEntry `json:"single_qubit" msgpack:"single_qubit"`
	TwoQubit    []gateErrorEntry `json:"two_qubit" msgpack:"two_qubit"`
	ThreeQubit  []gateErrorEntry `json:"three_qubit" msgpack:"three_qubit"`
	MultiQubit  []gateErrorEntry `json:"multi_qubit" msgpack:"multi_qubit"`
}

// state normalizes every stored operator to its term list, whatever Operator
// implementation it came from.
func (m *DecoherenceOnGateModel) state() onGateModelState {
	s := onGateModelState{
		SingleQubit: []gateErrorEntry{},
		TwoQubit:    []gateErrorEntry{},
		ThreeQubit:  []gateErrorEntry{},
		MultiQubit:  []gateErrorEntry{},
	}
	for k, op := range m.single {
		s.SingleQubit = append(s.SingleQubit, gateErrorEntry{Gate: k.gate, Qubits: []int{k.qubit}, Terms: op.Terms()})
	}
	for k, op := range m.two {
		s.TwoQubit = append(s.TwoQubit, gateErrorEntry{Gate: k.gate, Qubits: []int{k.control, k.target}, Terms: op.Terms()})
	}
	for k, op := range m.three {
		s.ThreeQubit = append(s.ThreeQubit, gateErrorEntry{Gate: k.gate, Qubits: []int{k.control0, k.control1, k.target}, Terms: op.Terms()})
	}
	for _, e := range m.multi {
		s.MultiQubit = append(s.MultiQubit, gateErrorEntry{Gate: e.gate, Qubits: deepcopy.Copy(e.qubits).([]int), Terms: e.op.Terms()})
	}
	sortGateErrorEntries(s.SingleQubit)
	sortGateErrorEntries(s.TwoQubit)
	sortGateErrorEntries(s.ThreeQubit)
	sortGateErrorEntries(s.MultiQubit)
	return s
}

func onGateModelFromState(s onGateModelState) (*DecoherenceOnGateModel, error) {
	m := NewDecoherenceOnGateModel()
	for _, e := range s.SingleQubit {
		if len(e.Qubits) != 1 {
			return nil, &core.InvalidArityError{Gate: e.Gate, Want: 1, Got: len(e.Qubits)}
		}
		if err := m.SetSingleQubitGateError(e.Gate, e.Qubits[0], lindblad.FromTerms(e.Terms)); err != nil {
			return nil, err
		}
	}
	for _, e := range s.TwoQubit {
		if len(e.Qubits) != 2 {
			return nil, &core.InvalidArityError{Gate: e.Gate, Want: 2, Got: len(e.Qubits)}
		}
		if err := m.SetTwoQubitGateError(e.Gate, e.Qubits[0], e.Qubits[1], lindblad.FromTerms(e.Terms)); err != nil {
			return nil, err
		}
	}
	for _, e := range s.ThreeQubit {
		if len(e.Qubits) != 3 {
			return nil, &core.InvalidArityError{Gate: e.Gate, Want: 3, Got: len(e.Qubits)}
		}
		if err := m.SetThreeQubitGateError(e.Gate, e.Qubits[0], e.Qubits[1], e.Qubits[2], lindblad.FromTerms(e.Terms)); err != nil {
			return nil, err
		}
	}
	for _, e := range s.MultiQubit {
		if err := m.SetMultiQubitGateError(e.Gate, e.Qubits, lindblad.FromTerms(e.Terms)); err != nil {
			return nil, err
		}
	}
	return m, nil
}
