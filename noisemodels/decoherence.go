// Package noisemodels implements the noise descriptions attached to qubits,
// idle periods, readout, and individual gate invocations. Models are plain
// value containers; they never sample or simulate anything themselves.
package noisemodels

import (
	"fmt"

	"github.com/qforge-labs/qhardware/core"
	"github.com/qforge-labs/qhardware/lindblad"
)

// decoherenceModel accumulates elementary Lindblad contributions into one
// owned noise operator.
type decoherenceModel struct {
	op lindblad.Operator
}

func newDecoherenceModel() decoherenceModel {
	return decoherenceModel{op: lindblad.NewSumOperator()}
}

// NoiseOperator returns the accumulated operator unchanged.
func (m *decoherenceModel) NoiseOperator() lindblad.Operator {
	return m.op
}

func checkQubits(qubits []int) error {
	for _, q := range qubits {
		if q < 0 {
			return &core.OutOfRangeError{
				Msg: fmt.Sprintf("qubit index %d is negative", q),
			}
		}
	}
	return nil
}

// addRate folds the elementary contribution of every listed qubit into the
// operator. Qubit validation runs first so a failure leaves the operator
// untouched.
func (m *decoherenceModel) addRate(qubits []int, rate float64, terms func(int, float64) []lindblad.Term) error {
	if err := checkQubits(qubits); err != nil {
		return err
	}
	for _, q := range qubits {
		for _, t := range terms(q, rate) {
			if err := m.op.AddTerm(t.Left, t.Right, t.Coefficient); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *decoherenceModel) AddDampingRate(qubits []int, rate float64) error {
	return m.addRate(qubits, rate, lindblad.DampingTerms)
}

func (m *decoherenceModel) AddDephasingRate(qubits []int, rate float64) error {
	return m.addRate(qubits, rate, lindblad.DephasingTerms)
}

func (m *decoherenceModel) AddDepolarisingRate(qubits []int, rate float64) error {
	return m.addRate(qubits, rate, lindblad.DepolarisingTerms)
}

func (m *decoherenceModel) AddExcitationRate(qubits []int, rate float64) error {
	return m.addRate(qubits, rate, lindblad.ExcitationTerms)
}

// ContinuousDecoherenceModel is background decoherence acting on its qubits
// for the whole circuit duration.
type ContinuousDecoherenceModel struct {
	decoherenceModel
}

func NewContinuousDecoherenceModel() *ContinuousDecoherenceModel {
	return &ContinuousDecoherenceModel{decoherenceModel: newDecoherenceModel()}
}

// NewContinuousDecoherenceModelWithOperator adopts an already accumulated
// operator, e.g. one built by an external algebra library.
func NewContinuousDecoherenceModelWithOperator(op lindblad.Operator) (*ContinuousDecoherenceModel, error) {
	if op == nil {
		return nil, &core.TypeMismatchError{Want: "lindblad.Operator", Got: "nil"}
	}
	return &ContinuousDecoherenceModel{decoherenceModel: decoherenceModel{op: op}}, nil
}

// DecoherenceOnIdleModel is decoherence scoped to idle periods: it applies
// to qubits not involved in a currently executing gate. The scoping is a
// convention consumed by the simulator; the model itself only stores the
// operator.
type DecoherenceOnIdleModel struct {
	decoherenceModel
}

func NewDecoherenceOnIdleModel() *DecoherenceOnIdleModel {
	return &DecoherenceOnIdleModel{decoherenceModel: newDecoherenceModel()}
}

func NewDecoherenceOnIdleModelWithOperator(op lindblad.Operator) (*DecoherenceOnIdleModel, error) {
	if op == nil {
		return nil, &core.TypeMismatchError{Want: "lindblad.Operator", Got: "nil"}
	}
	return &DecoherenceOnIdleModel{decoherenceModel: decoherenceModel{op: op}}, nil
}
