package devices

// GenericDevice is the fully explicit, topology-agnostic representation:
// only the stored tables define what the device can do. Every other variant
// converts into it; there is no conversion back.
type GenericDevice struct {
	baseDevice
}

func NewGenericDevice(numberQubits int) (*GenericDevice, error) {
	if err := checkDeviceConfig(numberQubits, nil, nil, 0); err != nil {
		return nil, err
	}
	return &GenericDevice{baseDevice: newBaseDevice(numberQubits)}, nil
}

// Gate name lists are derived from the explicit entries; a GenericDevice
// declares no gate set of its own.
func (d *GenericDevice) SingleQubitGateNames() []string {
	return d.times.singleGateNames()
}

func (d *GenericDevice) TwoQubitGateNames() []string {
	return d.times.twoGateNames()
}

func (d *GenericDevice) SetGateTime(gate string, qubits []int, gateTime float64) error {
	return d.times.Set(gate, qubits, gateTime)
}

func (d *GenericDevice) SetAllSingleQubitGateTimes(gate string, gateTime float64) error {
	return d.setAllSingleQubitGateTimes(gate, gateTime)
}

// SetAllTwoQubitGateTimes applies the gate to the ordered pairs that already
// carry some two-qubit entry; it never invents connectivity.
func (d *GenericDevice) SetAllTwoQubitGateTimes(gate string, gateTime float64) error {
	for _, pair := range d.times.twoQubitPairs() {
		if err := d.times.Set(gate, []int{pair[0], pair[1]}, gateTime); err != nil {
			return err
		}
	}
	return nil
}

// ToGeneric on a GenericDevice returns an independent copy, so converting
// twice equals converting once.
func (d *GenericDevice) ToGeneric() *GenericDevice {
	return &GenericDevice{
		baseDevice: baseDevice{
			numberQubits: d.numberQubits,
			times:        d.times.Clone(),
			rates:        d.rates.Clone(),
		},
	}
}
