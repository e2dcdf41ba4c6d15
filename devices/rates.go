package devices

import (
	"sort"

	"github.com/qforge-labs/qhardware/core"
)

// Row/column indices of a decoherence rate matrix. The basis order is
// creation (sigma+), annihilation (sigma-), dephasing (sigmaz).
const (
	RateIndexExcitation = 0
	RateIndexDamping    = 1
	RateIndexDephasing  = 2
)

// Depolarizing channel split over the three diagonal cells. Pinned here so
// AddDepolarising and lindblad.DepolarisingTerms stay in agreement.
const (
	DepolarisingExcitationWeight = 0.5
	DepolarisingDampingWeight    = 0.5
	DepolarisingDephasingWeight  = 0.25
)

// RateMatrix is the 3x3 Lindblad rate matrix of one qubit.
type RateMatrix [3][3]float64

// NewRateMatrix validates an untyped matrix, e.g. one read from a settings
// file or a JSON payload.
func NewRateMatrix(rows [][]float64) (RateMatrix, error) {
	var m RateMatrix
	if len(rows) != 3 {
		return m, &core.InvalidShapeError{Rows: len(rows), Columns: rowWidth(rows)}
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, &core.InvalidShapeError{Rows: len(rows), Columns: len(row)}
		}
		copy(m[i][:], row)
	}
	return m, nil
}

func rowWidth(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

func (m RateMatrix) Add(other RateMatrix) RateMatrix {
	var sum RateMatrix
	for i := range m {
		for j := range m[i] {
			sum[i][j] = m[i][j] + other[i][j]
		}
	}
	return sum
}

func (m RateMatrix) IsZero() bool {
	return m == RateMatrix{}
}

// DecoherenceRateStore maps qubit indices to their rate matrices. A qubit
// without an entry has the zero matrix.
type DecoherenceRateStore struct {
	numberQubits int
	rates        map[int]RateMatrix
}

func NewDecoherenceRateStore(numberQubits int) *DecoherenceRateStore {
	return &DecoherenceRateStore{
		numberQubits: numberQubits,
		rates:        make(map[int]RateMatrix),
	}
}

func (s *DecoherenceRateStore) checkQubit(qubit int) error {
	if qubit < 0 || qubit >= s.numberQubits {
		return &core.OutOfRangeError{Qubit: qubit, NumberQubits: s.numberQubits}
	}
	return nil
}

func (s *DecoherenceRateStore) QubitDecoherenceRates(qubit int) (RateMatrix, error) {
	if err := s.checkQubit(qubit); err != nil {
		return RateMatrix{}, err
	}
	return s.rates[qubit], nil
}

func (s *DecoherenceRateStore) SetQubitDecoherenceRates(qubit int, rates RateMatrix) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	s.rates[qubit] = rates
	return nil
}

func (s *DecoherenceRateStore) addToCell(qubit, index int, rate float64) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	m := s.rates[qubit]
	m[index][index] += rate
	s.rates[qubit] = m
	return nil
}

// AddDamping adds a damping rate to the sigma- cell.
func (s *DecoherenceRateStore) AddDamping(qubit int, rate float64) error {
	return s.addToCell(qubit, RateIndexDamping, rate)
}

// AddDephasing adds a dephasing rate to the sigmaz cell.
func (s *DecoherenceRateStore) AddDephasing(qubit int, rate float64) error {
	return s.addToCell(qubit, RateIndexDephasing, rate)
}

// AddExcitation adds an excitation rate to the sigma+ cell.
func (s *DecoherenceRateStore) AddExcitation(qubit int, rate float64) error {
	return s.addToCell(qubit, RateIndexExcitation, rate)
}

// AddDepolarising distributes a depolarizing rate over the three channels
// with the Depolarising*Weight split.
func (s *DecoherenceRateStore) AddDepolarising(qubit int, rate float64) error {
	if err := s.checkQubit(qubit); err != nil {
		return err
	}
	m := s.rates[qubit]
	m[RateIndexExcitation][RateIndexExcitation] += rate * DepolarisingExcitationWeight
	m[RateIndexDamping][RateIndexDamping] += rate * DepolarisingDampingWeight
	m[RateIndexDephasing][RateIndexDephasing] += rate * DepolarisingDephasingWeight
	s.rates[qubit] = m
	return nil
}

func (s *DecoherenceRateStore) Clone() *DecoherenceRateStore {
	clone := NewDecoherenceRateStore(s.numberQubits)
	for q, m := range s.rates {
		clone.rates[q] = m
	}
	return clone
}

type qubitRatesEntry struct {
	Qubit int           `json:"qubit" msgpack:"qubit"`
	Rates [3][3]float64 `json:"rates" msgpack:"rates"`
}

func (s *DecoherenceRateStore) state() []qubitRatesEntry {
	entries := make([]qubitRatesEntry, 0, len(s.rates))
	for q, m := range s.rates {
		if m.IsZero() {
			continue
		}
		entries = append(entries, qubitRatesEntry{Qubit: q, Rates: m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Qubit < entries[j].Qubit })
	return entries
}

func rateStoreFromState(numberQubits int, entries []qubitRatesEntry) (*DecoherenceRateStore, error) {
	s := NewDecoherenceRateStore(numberQubits)
	for _, e := range entries {
		if err := s.SetQubitDecoherenceRates(e.Qubit, RateMatrix(e.Rates)); err != nil {
			return nil, err
		}
	}
	return s, nil
}
