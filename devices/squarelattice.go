package devices

import (
	"fmt"

	"github.com/qforge-labs/qhardware/core"
)

// SquareLatticeDevice restricts two-qubit gates to orthogonal nearest
// neighbors in a rows x columns grid. Qubits are numbered row-major: the
// qubit at (row, column) has index row*columns + column.
type SquareLatticeDevice struct {
	baseDevice
	numberRows       int
	numberColumns    int
	singleQubitGates []string
	twoQubitGates    []string
}

func NewSquareLatticeDevice(numberRows, numberColumns int, singleQubitGates, twoQubitGates []string, defaultGateTime float64) (*SquareLatticeDevice, error) {
	if numberRows < 1 || numberColumns < 1 {
		return nil, &core.InvalidConfigError{
			Msg: fmt.Sprintf("lattice shape %dx%d needs at least one row and one column", numberRows, numberColumns),
		}
	}
	numberQubits := numberRows * numberColumns
	if err := checkDeviceConfig(numberQubits, singleQubitGates, twoQubitGates, defaultGateTime); err != nil {
		return nil, err
	}
	d := &SquareLatticeDevice{
		baseDevice:       newBaseDevice(numberQubits),
		numberRows:       numberRows,
		numberColumns:    numberColumns,
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

func (d *SquareLatticeDevice) NumberRows() int    { return d.numberRows }
func (d *SquareLatticeDevice) NumberColumns() int { return d.numberColumns }

func (d *SquareLatticeDevice) SingleQubitGateNames() []string {
	return append([]string{}, d.singleQubitGates...)
}

func (d *SquareLatticeDevice) TwoQubitGateNames() []string {
	return append([]string{}, d.twoQubitGates...)
}

func (d *SquareLatticeDevice) isNearestNeighbor(a, b int) bool {
	rowA, colA := a/d.numberColumns, a%d.numberColumns
	rowB, colB := b/d.numberColumns, b%d.numberColumns
	dr, dc := rowA-rowB, colA-colB
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (d *SquareLatticeDevice) SetGateTime(gate string, qubits []int, gateTime float64) error {
	if len(qubits) == 2 {
		for _, q := range qubits {
			if q < 0 || q >= d.numberQubits {
				return &core.OutOfRangeError{Qubit: q, NumberQubits: d.numberQubits}
			}
		}
		if !d.isNearestNeighbor(qubits[0], qubits[1]) {
			return &core.OutOfRangeError{
				Msg: fmt.Sprintf("qubits %d and %d are not nearest neighbors on a %dx%d lattice",
					qubits[0], qubits[1], d.numberRows, d.numberColumns),
			}
		}
	}
	return d.times.Set(gate, qubits, gateTime)
}

func (d *SquareLatticeDevice) SetAllSingleQubitGateTimes(gate string, gateTime float64) error {
	return d.setAllSingleQubitGateTimes(gate, gateTime)
}

// SetAllTwoQubitGateTimes covers both directions of every nearest-neighbor
// pair in the grid.
func (d *SquareLatticeDevice) SetAllTwoQubitGateTimes(gate string, gateTime float64) error {
	for row := 0; row < d.numberRows; row++ {
		for col := 0; col < d.numberColumns; col++ {
			q := row*d.numberColumns + col
			if col+1 < d.numberColumns {
				if err := d.setBothDirections(gate, q, q+1, gateTime); err != nil {
					return err
				}
			}
			if row+1 < d.numberRows {
				if err := d.setBothDirections(gate, q, q+d.numberColumns, gateTime); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *SquareLatticeDevice) setBothDirections(gate string, a, b int, gateTime float64) error {
	if err := d.times.Set(gate, []int{a, b}, gateTime); err != nil {
		return err
	}
	return d.times.Set(gate, []int{b, a}, gateTime)
}

func (d *SquareLatticeDevice) ToGeneric() *GenericDevice {
	return &GenericDevice{
		baseDevice: baseDevice{
			numberQubits: d.numberQubits,
			times:        d.times.Clone(),
			rates:        d.rates.Clone(),
		},
	}
}
