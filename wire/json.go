// Package wire implements the versioned serialization envelope shared by
// every device and noise model: a JSON encoding, a length-prefixed binary
// encoding, and the version gate applied when reading either one.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/go-faster/jx"
	jsoniter "github.com/json-iterator/go"

	"github.com/qforge-labs/qhardware/core"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope wraps a payload with its type discriminant and the version
// metadata needed to decide whether a reader may decode it.
type envelope struct {
	Type                string          `json:"type"`
	CurrentVersion      string          `json:"current_version"`
	MinSupportedVersion string          `json:"min_supported_version"`
	Payload             json.RawMessage `json:"payload"`
}

// ToJSON encodes payload inside a versioned envelope.
func ToJSON(typeName string, payload interface{}) ([]byte, error) {
	raw, err := jsonIter.Marshal(payload)
	if err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	env := envelope{
		Type:                typeName,
		CurrentVersion:      core.Version,
		MinSupportedVersion: core.MinSupportedVersion,
		Payload:             raw,
	}
	blob, err := jsonIter.Marshal(env)
	if err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	return blob, nil
}

// FromJSON decodes a versioned envelope into payload, rejecting malformed
// input, a payload of a different type, and unsupported versions.
func FromJSON(data []byte, typeName string, payload interface{}) error {
	if !jx.Valid(data) {
		return &core.DeserializationError{Msg: "input is not valid JSON"}
	}
	var env envelope
	if err := jsonIter.Unmarshal(data, &env); err != nil {
		return &core.DeserializationError{Msg: "malformed envelope", Cause: err}
	}
	if env.Type != typeName {
		return &core.DeserializationError{
			Msg: fmt.Sprintf("payload type is %q, want %q", env.Type, typeName),
		}
	}
	if err := core.CheckVersionSupport(env.MinSupportedVersion); err != nil {
		return err
	}
	if err := jsonIter.Unmarshal(env.Payload, payload); err != nil {
		return &core.DeserializationError{
			Msg:   fmt.Sprintf("malformed %s payload", typeName),
			Cause: err,
		}
	}
	return nil
}
