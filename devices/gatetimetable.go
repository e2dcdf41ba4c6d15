package devices

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/qforge-labs/qhardware/core"
)

// Composite lookup keys, one variant per gate arity. Qubit tuples are
// ordered: (control, target) and (target, control) are distinct entries.
type singleGateKey struct {
	gate  string
	qubit int
}

type twoGateKey struct {
	gate    string
	control int
	target  int
}

type threeGateKey struct {
	gate     string
	control0 int
	control1 int
	target   int
}

type multiGateEntry struct {
	gate     string
	qubits   []int
	gateTime float64
}

func multiGateID(gate string, qubits []int) string {
	parts := make([]string, 0, len(qubits)+1)
	parts = append(parts, gate)
	for _, q := range qubits {
		parts = append(parts, strconv.Itoa(q))
	}
	return strings.Join(parts, ":")
}

// GateTimeTable maps (hqslang gate name, ordered qubit tuple) to the gate
// execution duration. A missing entry means the gate is not available on
// that exact tuple.
type GateTimeTable struct {
	numberQubits int
	single       map[singleGateKey]float64
	two          map[twoGateKey]float64
	three        map[threeGateKey]float64
	multi        map[string]multiGateEntry
}

func NewGateTimeTable(numberQubits int) *GateTimeTable {
	return &GateTimeTable{
		numberQubits: numberQubits,
		single:       make(map[singleGateKey]float64),
		two:          make(map[twoGateKey]float64),
		three:        make(map[threeGateKey]float64),
		multi:        make(map[string]multiGateEntry),
	}
}

// GateTime is a pure lookup: the second return is false when the gate is
// unavailable on this exact qubit tuple.
func (t *GateTimeTable) GateTime(gate string, qubits ...int) (float64, bool) {
	switch len(qubits) {
	case 0:
		return 0, false
	case 1:
		gt, ok := t.single[singleGateKey{gate: gate, qubit: qubits[0]}]
		return gt, ok
	case 2:
		gt, ok := t.two[twoGateKey{gate: gate, control: qubits[0], target: qubits[1]}]
		return gt, ok
	case 3:
		gt, ok := t.three[threeGateKey{gate: gate, control0: qubits[0], control1: qubits[1], target: qubits[2]}]
		return gt, ok
	default:
		e, ok := t.multi[multiGateID(gate, qubits)]
		if !ok {
			return 0, false
		}
		return e.gateTime, ok
	}
}

func (t *GateTimeTable) checkTuple(gate string, qubits []int, gateTime float64) error {
	if len(qubits) == 0 {
		return &core.InvalidArityError{Gate: gate, Want: 1, Got: 0}
	}
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= t.numberQubits {
			return &core.OutOfRangeError{Qubit: q, NumberQubits: t.numberQubits}
		}
		if _, dup := seen[q]; dup {
			return &core.InvalidConfigError{
				Msg: fmt.Sprintf("gate %s tuple repeats qubit %d", gate, q),
			}
		}
		seen[q] = struct{}{}
	}
	if gateTime < 0 {
		return &core.InvalidConfigError{
			Msg: fmt.Sprintf("gate time %v for gate %s is negative", gateTime, gate),
		}
	}
	return nil
}

// Set inserts or overwrites the entry for the exact (gate, tuple) key.
// The table is unchanged when validation fails.
func (t *GateTimeTable) Set(gate string, qubits []int, gateTime float64) error {
	if err := t.checkTuple(gate, qubits, gateTime); err != nil {
		return err
	}
	switch len(qubits) {
	case 1:
		t.single[singleGateKey{gate: gate, qubit: qubits[0]}] = gateTime
	case 2:
		t.two[twoGateKey{gate: gate, control: qubits[0], target: qubits[1]}] = gateTime
	case 3:
		t.three[threeGateKey{gate: gate, control0: qubits[0], control1: qubits[1], target: qubits[2]}] = gateTime
	default:
		t.multi[multiGateID(gate, qubits)] = multiGateEntry{
			gate:     gate,
			qubits:   deepcopy.Copy(qubits).([]int),
			gateTime: gateTime,
		}
	}
	return nil
}

// TwoQubitEdges recomputes the connectivity graph: the unordered qubit pairs
// carrying at least one two-qubit gate entry, ascending within each pair.
func (t *GateTimeTable) TwoQubitEdges() [][2]int {
	seen := make(map[[2]int]struct{})
	for k := range t.two {
		a, b := k.control, k.target
		if a > b {
			a, b = b, a
		}
		seen[[2]int{a, b}] = struct{}{}
	}
	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// twoQubitPairs returns every distinct ordered pair currently present in the
// two-qubit map, for bulk setters that must not invent connectivity.
func (t *GateTimeTable) twoQubitPairs() [][2]int {
	seen := make(map[[2]int]struct{})
	for k := range t.two {
		seen[[2]int{k.control, k.target}] = struct{}{}
	}
	pairs := make([][2]int, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// gateNames returns the distinct gate names of the given arity class, sorted.
func (t *GateTimeTable) singleGateNames() []string {
	seen := map[string]struct{}{}
	for k := range t.single {
		seen[k.gate] = struct{}{}
	}
	return sortedNames(seen)
}

func (t *GateTimeTable) twoGateNames() []string {
	seen := map[string]struct{}{}
	for k := range t.two {
		seen[k.gate] = struct{}{}
	}
	return sortedNames(seen)
}

func sortedNames(seen map[string]struct{}) []string {
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (t *GateTimeTable) Clone() *GateTimeTable {
	clone := NewGateTimeTable(t.numberQubits)
	for k, v := range t.single {
		clone.single[k] = v
	}
	for k, v := range t.two {
		clone.two[k] = v
	}
	for k, v := range t.three {
		clone.three[k] = v
	}
	for k, v := range t.multi {
		clone.multi[k] = multiGateEntry{
			gate:     v.gate,
			qubits:   deepcopy.Copy(v.qubits).([]int),
			gateTime: v.gateTime,
		}
	}
	return clone
}

type gateTimeEntry struct {
	Gate     string  `json:"gate" msgpack:"gate"`
	Qubits   []int   `json:"qubits" msgpack:"qubits"`
	GateTime float64 `json:"gate_time" msgpack:"gate_time"`
}

type gateTimeTableState struct {
	SingleQubit []gateTimeEntry `json:"single_qubit" msgpack:"single_qubit"`
	TwoQubit    []gateTimeEntry `json:"two_qubit" msgpack:"two_qubit"`
	ThreeQubit  []gateTimeEntry `json:"three_qubit" msgpack:"three_qubit"`
	MultiQubit  []gateTimeEntry `json:"multi_qubit" msgpack:"multi_qubit"`
}

func (t *GateTimeTable) state() gateTimeTableState {
	s := gateTimeTableState{
		SingleQubit: []gateTimeEntry{},
		TwoQubit:    []gateTimeEntry{},
		ThreeQubit:  []gateTimeEntry{},
		MultiQubit:  []gateTimeEntry{},
	}
	for k, v := range t.single {
		s.SingleQubit = append(s.SingleQubit, gateTimeEntry{Gate: k.gate, Qubits: []int{k.qubit}, GateTime: v})
	}
	for k, v := range t.two {
		s.TwoQubit = append(s.TwoQubit, gateTimeEntry{Gate: k.gate, Qubits: []int{k.control, k.target}, GateTime: v})
	}
	for k, v := range t.three {
		s.ThreeQubit = append(s.ThreeQubit, gateTimeEntry{Gate: k.gate, Qubits: []int{k.control0, k.control1, k.target}, GateTime: v})
	}
	for _, e := range t.multi {
		s.MultiQubit = append(s.MultiQubit, gateTimeEntry{Gate: e.gate, Qubits: deepcopy.Copy(e.qubits).([]int), GateTime: e.gateTime})
	}
	for _, entries := range [][]gateTimeEntry{s.SingleQubit, s.TwoQubit, s.ThreeQubit, s.MultiQubit} {
		sortGateTimeEntries(entries)
	}
	return s
}

func sortGateTimeEntries(entries []gateTimeEntry) {
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

// gateTimeTableFromState replays every entry through Set so range and tuple
// validation also applies to deserialized payloads.
func gateTimeTableFromState(numberQubits int, s gateTimeTableState) (*GateTimeTable, error) {
	t := NewGateTimeTable(numberQubits)
	for _, entries := range [][]gateTimeEntry{s.SingleQubit, s.TwoQubit, s.ThreeQubit, s.MultiQubit} {
		for _, e := range entries {
			if err := t.Set(e.Gate, e.Qubits, e.GateTime); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
