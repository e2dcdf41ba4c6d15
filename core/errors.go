package core

import (
	"fmt"
)

// OutOfRangeError is returned when a qubit index or qubit tuple does not fit
// the owning device, or when a tuple names a pair the topology does not allow.
type OutOfRangeError struct {
	Qubit        int
	NumberQubits int
	Msg          string
}

func (e *OutOfRangeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("qubit %d is out of range for a device with %d qubits", e.Qubit, e.NumberQubits)
}

// InvalidArityError is returned when a qubit tuple has the wrong length for
// the gate class it is used with.
type InvalidArityError struct {
	Gate string
	Want int
	Got  int
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("gate %s takes a %d-qubit tuple, got %d qubits", e.Gate, e.Want, e.Got)
}

// InvalidShapeError is returned when a decoherence rate matrix is not 3x3.
type InvalidShapeError struct {
	Rows    int
	Columns int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("decoherence rate matrix must be 3x3, got %dx%d", e.Rows, e.Columns)
}

// InvalidConfigError is returned by constructors given inconsistent arguments.
type InvalidConfigError struct {
	Msg string
}

func (e *InvalidConfigError) Error() string {
	return e.Msg
}

// InvalidProbabilityError is returned when a readout probability lies
// outside [0,1].
type InvalidProbabilityError struct {
	Name  string
	Value float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("%s=%v is not a probability in [0,1]", e.Name, e.Value)
}

// TypeMismatchError is returned when a value of the wrong type is passed
// where a noise operator or descriptor was required.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected a %s, got %s", e.Want, e.Got)
}

// SerializationError wraps an encode failure.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize: %s", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// DeserializationError wraps any failure to decode a payload: truncated or
// malformed input, a wrong payload type, or an unsupported version. It is
// always returned to the caller, never panicked.
type DeserializationError struct {
	Msg   string
	Cause error
}

func (e *DeserializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to deserialize: %s: %s", e.Msg, e.Cause)
	}
	return fmt.Sprintf("failed to deserialize: %s", e.Msg)
}

func (e *DeserializationError) Unwrap() error { return e.Cause }

// VersionMismatchError reports a payload that requires a newer library
// version than the one reading it.
type VersionMismatchError struct {
	PayloadMinVersion string
	LibraryVersion    string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("payload requires library version >= %s, this library is %s",
		e.PayloadMinVersion, e.LibraryVersion)
}
