// Package devices models quantum hardware for a compilation and simulation
// toolchain: which qubits exist, which gates are available on which qubit
// tuples, how long each gate takes, the two-qubit connectivity graph, and
// the per-qubit Lindblad decoherence rates.
package devices

// Device is the capability contract shared by every topology. All mutation
// is in place; NumberQubits never changes after construction. Instances are
// plain values with no internal locking.
type Device interface {
	NumberQubits() int
	SingleQubitGateNames() []string
	TwoQubitGateNames() []string

	GateTime(gate string, qubits ...int) (float64, bool)
	SetGateTime(gate string, qubits []int, gateTime float64) error
	SetAllSingleQubitGateTimes(gate string, gateTime float64) error
	SetAllTwoQubitGateTimes(gate string, gateTime float64) error
	TwoQubitEdges() [][2]int

	QubitDecoherenceRates(qubit int) (RateMatrix, error)
	SetQubitDecoherenceRates(qubit int, rates RateMatrix) error
	AddDamping(qubit int, rate float64) error
	AddDephasing(qubit int, rate float64) error
	AddDepolarising(qubit int, rate float64) error
	AddExcitation(qubit int, rate float64) error
	AddDampingAll(rate float64) error
	AddDephasingAll(rate float64) error
	AddDepolarisingAll(rate float64) error
	AddExcitationAll(rate float64) error

	// ToGeneric snapshots the device into its fully explicit form. The
	// conversion keeps the stored tables and drops the topology invariant;
	// it is not reversible.
	ToGeneric() *GenericDevice
}

// baseDevice carries the state and behavior shared by all topologies.
type baseDevice struct {
	numberQubits int
	times        *GateTimeTable
	rates        *DecoherenceRateStore
}

func newBaseDevice(numberQubits int) baseDevice {
	return baseDevice{
		numberQubits: numberQubits,
		times:        NewGateTimeTable(numberQubits),
		rates:        NewDecoherenceRateStore(numberQubits),
	}
}

func (d *baseDevice) NumberQubits() int { return d.numberQubits }

func (d *baseDevice) GateTime(gate string, qubits ...int) (float64, bool) {
	return d.times.GateTime(gate, qubits...)
}

func (d *baseDevice) TwoQubitEdges() [][2]int {
	return d.times.TwoQubitEdges()
}

func (d *baseDevice) QubitDecoherenceRates(qubit int) (RateMatrix, error) {
	return d.rates.QubitDecoherenceRates(qubit)
}

func (d *baseDevice) SetQubitDecoherenceRates(qubit int, rates RateMatrix) error {
	return d.rates.SetQubitDecoherenceRates(qubit, rates)
}

func (d *baseDevice) AddDamping(qubit int, rate float64) error {
	return d.rates.AddDamping(qubit, rate)
}

func (d *baseDevice) AddDephasing(qubit int, rate float64) error {
	return d.rates.AddDephasing(qubit, rate)
}

func (d *baseDevice) AddDepolarising(qubit int, rate float64) error {
	return d.rates.AddDepolarising(qubit, rate)
}

func (d *baseDevice) AddExcitation(qubit int, rate float64) error {
	return d.rates.AddExcitation(qubit, rate)
}

func (d *baseDevice) addAll(add func(qubit int, rate float64) error, rate float64) error {
	for q := 0; q < d.numberQubits; q++ {
		if err := add(q, rate); err != nil {
			return err
		}
	}
	return nil
}

func (d *baseDevice) AddDampingAll(rate float64) error {
	return d.addAll(d.rates.AddDamping, rate)
}

func (d *baseDevice) AddDephasingAll(rate float64) error {
	return d.addAll(d.rates.AddDephasing, rate)
}

func (d *baseDevice) AddDepolarisingAll(rate float64) error {
	return d.addAll(d.rates.AddDepolarising, rate)
}

func (d *baseDevice) AddExcitationAll(rate float64) error {
	return d.addAll(d.rates.AddExcitation, rate)
}

// setAllSingleQubitGateTimes applies an entry for every qubit; valid for all
// topologies since single-qubit gates have no connectivity constraint.
func (d *baseDevice) setAllSingleQubitGateTimes(gate string, gateTime float64) error {
	for q := 0; q < d.numberQubits; q++ {
		if err := d.times.Set(gate, []int{q}, gateTime); err != nil {
			return err
		}
	}
	return nil
}
