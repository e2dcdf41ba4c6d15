package devices

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/qforge-labs/qhardware/core"
)

// AllToAllDevice has complete two-qubit connectivity: any ordered pair of
// distinct qubits is a valid gate position.
type AllToAllDevice struct {
	baseDevice
	singleQubitGates []string
	twoQubitGates    []string
}

// NewAllToAllDevice pre-populates defaultGateTime for every declared gate on
// every valid position.
func NewAllToAllDevice(numberQubits int, singleQubitGates, twoQubitGates []string, defaultGateTime float64) (*AllToAllDevice, error) {
	if err := checkDeviceConfig(numberQubits, singleQubitGates, twoQubitGates, defaultGateTime); err != nil {
		return nil, err
	}
	d := &AllToAllDevice{
		baseDevice:       newBaseDevice(numberQubits),
		singleQubitGates: append([]string{}, singleQubitGates...),
		twoQubitGates:    append([]string{}, twoQubitGates...),
	}
	for _, gate := range d.singleQubitGates {
		if err := d.SetAllSingleQubitGateTimes(gate, defaultGateTime); err != nil {
			return nil, err
		}
	}
	for _, gate := range d.twoQubitGates {
		if err := d.SetAllTwoQubitGateTimes(gate, defaultGateTime); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *AllToAllDevice) SingleQubitGateNames() []string {
	return append([]string{}, d.singleQubitGates...)
}

func (d *AllToAllDevice) TwoQubitGateNames() []string {
	return append([]string{}, d.twoQubitGates...)
}

func (d *AllToAllDevice) SetGateTime(gate string, qubits []int, gateTime float64) error {
	return d.times.Set(gate, qubits, gateTime)
}

func (d *AllToAllDevice) SetAllSingleQubitGateTimes(gate string, gateTime float64) error {
	return d.setAllSingleQubitGateTimes(gate, gateTime)
}

// SetAllTwoQubitGateTimes covers every ordered pair of distinct qubits.
func (d *AllToAllDevice) SetAllTwoQubitGateTimes(gate string, gateTime float64) error {
	for c := 0; c < d.numberQubits; c++ {
		for t := 0; t < d.numberQubits; t++ {
			if c == t {
				continue
			}
			if err := d.times.Set(gate, []int{c, t}, gateTime); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *AllToAllDevice) ToGeneric() *GenericDevice {
	return &GenericDevice{
		baseDevice: baseDevice{
			numberQubits: d.numberQubits,
			times:        d.times.Clone(),
			rates:        d.rates.Clone(),
		},
	}
}

// checkDeviceConfig aggregates every constructor argument problem into a
// single InvalidConfig error.
func checkDeviceConfig(numberQubits int, singleQubitGates, twoQubitGates []string, defaultGateTime float64) error {
	var errs error
	if numberQubits < 0 {
		errs = multierr.Append(errs, fmt.Errorf("number_qubits %d is negative", numberQubits))
	}
	if defaultGateTime < 0 {
		errs = multierr.Append(errs, fmt.Errorf("default gate time %v is negative", defaultGateTime))
	}
	for _, listed := range []struct {
		class string
		names []string
	}{
		{class: "single-qubit", names: singleQubitGates},
		{class: "two-qubit", names: twoQubitGates},
	} {
		seen := make(map[string]struct{}, len(listed.names))
		for _, name := range listed.names {
			if name == "" {
				errs = multierr.Append(errs, fmt.Errorf("%s gate list contains an empty name", listed.class))
				continue
			}
			if _, dup := seen[name]; dup {
				errs = multierr.Append(errs, fmt.Errorf("%s gate list repeats %s", listed.class, name))
			}
			seen[name] = struct{}{}
		}
	}
	if errs != nil {
		return &core.InvalidConfigError{Msg: errs.Error()}
	}
	return nil
}
