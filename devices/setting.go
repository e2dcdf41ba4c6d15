package devices

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/qforge-labs/qhardware/common"
	"github.com/qforge-labs/qhardware/core"
)

// DeviceSetting is the TOML description of a device, used by qhwctl and by
// callers that build devices from configuration instead of code.
type DeviceSetting struct {
	DeviceName       string               `toml:"device_name"`
	DeviceType       string               `toml:"device_type"` // all_to_all | square_lattice | generic
	NumberQubits     int                  `toml:"number_qubits"`
	NumberRows       int                  `toml:"number_rows"`
	NumberColumns    int                  `toml:"number_columns"`
	SingleQubitGates []string             `toml:"single_qubit_gates"`
	TwoQubitGates    []string             `toml:"two_qubit_gates"`
	DefaultGateTime  float64              `toml:"default_gate_time"`
	Decoherence      []DecoherenceSetting `toml:"decoherence"`
}

// DecoherenceSetting adds background rates to one qubit, or to all qubits
// when Qubit is -1.
type DecoherenceSetting struct {
	Qubit        int     `toml:"qubit"`
	Damping      float64 `toml:"damping"`
	Dephasing    float64 `toml:"dephasing"`
	Depolarising float64 `toml:"depolarising"`
	Excitation   float64 `toml:"excitation"`
}

func NewDeviceSetting() *DeviceSetting {
	return &DeviceSetting{
		DeviceType:       "all_to_all",
		NumberQubits:     1,
		SingleQubitGates: []string{"RotateX", "RotateZ"},
		TwoQubitGates:    []string{"CNOT"},
		DefaultGateTime:  1e-7,
	}
}

func LoadDeviceSetting(path string) (*DeviceSetting, error) {
	blob, err := common.ReadSettingsFile(path)
	if err != nil {
		return nil, err
	}
	ds := NewDeviceSetting()
	if _, err := toml.Decode(blob, ds); err != nil {
		zap.L().Error(fmt.Sprintf("failed to decode device setting:%s/reason:%s", path, err))
		return nil, &core.InvalidConfigError{Msg: fmt.Sprintf("device setting %s: %s", path, err)}
	}
	return ds, nil
}

// BuildDevice constructs the device the setting describes and applies its
// decoherence blocks.
func (ds *DeviceSetting) BuildDevice() (Device, error) {
	var d Device
	var err error
	switch ds.DeviceType {
	case "all_to_all":
		d, err = NewAllToAllDevice(ds.NumberQubits, ds.SingleQubitGates, ds.TwoQubitGates, ds.DefaultGateTime)
	case "square_lattice":
		d, err = NewSquareLatticeDevice(ds.NumberRows, ds.NumberColumns, ds.SingleQubitGates, ds.TwoQubitGates, ds.DefaultGateTime)
	case "generic":
		d, err = NewGenericDevice(ds.NumberQubits)
	default:
		err = &core.InvalidConfigError{Msg: fmt.Sprintf("%s is an unknown device type", ds.DeviceType)}
	}
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to build device %s/reason:%s", ds.DeviceName, err))
		return nil, err
	}
	for _, dec := range ds.Decoherence {
		if err := applyDecoherenceSetting(d, dec); err != nil {
			return nil, err
		}
	}
	zap.L().Debug(fmt.Sprintf("built %s device %s with %d qubits", ds.DeviceType, ds.DeviceName, d.NumberQubits()))
	return d, nil
}

func applyDecoherenceSetting(d Device, dec DecoherenceSetting) error {
	type rateOp struct {
		rate float64
		one  func(int, float64) error
		all  func(float64) error
	}
	ops := []rateOp{
		{rate: dec.Damping, one: d.AddDamping, all: d.AddDampingAll},
		{rate: dec.Dephasing, one: d.AddDephasing, all: d.AddDephasingAll},
		{rate: dec.Depolarising, one: d.AddDepolarising, all: d.AddDepolarisingAll},
		{rate: dec.Excitation, one: d.AddExcitation, all: d.AddExcitationAll},
	}
	for _, op := range ops {
		if op.rate == 0 {
			continue
		}
		var err error
		if dec.Qubit == -1 {
			err = op.all(op.rate)
		} else {
			err = op.one(dec.Qubit, op.rate)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
