package noisemodels

import (
	"sort"

	"github.com/qforge-labs/qhardware/core"
)

// ReadoutErrorPair holds the two misreporting probabilities of one qubit:
// Prob0As1 is the probability of reading 1 when the true state is 0, and
// Prob1As0 the reverse.
type ReadoutErrorPair struct {
	Prob0As1 float64 `json:"prob_detect_0_as_1" msgpack:"prob_detect_0_as_1"`
	Prob1As0 float64 `json:"prob_detect_1_as_0" msgpack:"prob_detect_1_as_0"`
}

// ImperfectReadoutModel maps qubit indices to readout error pairs. Querying
// a qubit that was never populated is a caller error: the probabilities of
// such a qubit are reported as zero, not as a calibrated value.
type ImperfectReadoutModel struct {
	errors map[int]ReadoutErrorPair
}

func NewImperfectReadoutModel() *ImperfectReadoutModel {
	return &ImperfectReadoutModel{errors: make(map[int]ReadoutErrorPair)}
}

// NewImperfectReadoutModelWithUniformError gives all numberQubits qubits the
// same pair. Validation runs before any allocation, so a failure leaves no
// partially built model.
func NewImperfectReadoutModelWithUniformError(numberQubits int, prob0As1, prob1As0 float64) (*ImperfectReadoutModel, error) {
	if numberQubits < 0 {
		return nil, &core.InvalidConfigError{Msg: "number of qubits is negative"}
	}
	if err := checkProbabilities(prob0As1, prob1As0); err != nil {
		return nil, err
	}
	m := NewImperfectReadoutModel()
	for q := 0; q < numberQubits; q++ {
		m.errors[q] = ReadoutErrorPair{Prob0As1: prob0As1, Prob1As0: prob1As0}
	}
	return m, nil
}

// SetErrorProbabilites overwrites the pair for one qubit.
func (m *ImperfectReadoutModel) SetErrorProbabilites(qubit int, prob0As1, prob1As0 float64) error {
	if qubit < 0 {
		return &core.OutOfRangeError{Qubit: qubit, NumberQubits: len(m.errors)}
	}
	if err := checkProbabilities(prob0As1, prob1As0); err != nil {
		return err
	}
	m.errors[qubit] = ReadoutErrorPair{Prob0As1: prob0As1, Prob1As0: prob1As0}
	return nil
}

func (m *ImperfectReadoutModel) ProbDetect0As1(qubit int) float64 {
	return m.errors[qubit].Prob0As1
}

func (m *ImperfectReadoutModel) ProbDetect1As0(qubit int) float64 {
	return m.errors[qubit].Prob1As0
}

func checkProbabilities(prob0As1, prob1As0 float64) error {
	if prob0As1 < 0 || prob0As1 > 1 {
		return &core.InvalidProbabilityError{Name: "prob_detect_0_as_1", Value: prob0As1}
	}
	if prob1As0 < 0 || prob1As0 > 1 {
		return &core.InvalidProbabilityError{Name: "prob_detect_1_as_0", Value: prob1As0}
	}
	return nil
}

type readoutEntry struct {
	Qubit int              `json:"qubit" msgpack:"qubit"`
	Pair  ReadoutErrorPair `json:"errors" msgpack:"errors"`
}

func (m *ImperfectReadoutModel) state() []readoutEntry {
	entries := make([]readoutEntry, 0, len(m.errors))
	for q, pair := range m.errors {
		entries = append(entries, readoutEntry{Qubit: q, Pair: pair})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Qubit < entries[j].Qubit })
	return entries
}

func readoutModelFromState(entries []readoutEntry) (*ImperfectReadoutModel, error) {
	m := NewImperfectReadoutModel()
	for _, e := range entries {
		if err := m.SetErrorProbabilites(e.Qubit, e.Pair.Prob0As1, e.Pair.Prob1As0); err != nil {
			return nil, err
		}
	}
	return m, nil
}
