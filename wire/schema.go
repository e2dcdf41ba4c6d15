package wire

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/qforge-labs/qhardware/core"
)

// SchemaFor returns the JSON Schema of the enveloped JSON encoding of
// payload, as a machine-readable string.
func SchemaFor(typeName string, payload interface{}) (string, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	payloadSchema := r.Reflect(payload)
	payloadSchema.Version = ""

	props := jsonschema.NewProperties()
	props.Set("type", &jsonschema.Schema{Type: "string", Const: typeName})
	props.Set("current_version", &jsonschema.Schema{Type: "string"})
	props.Set("min_supported_version", &jsonschema.Schema{Type: "string"})
	props.Set("payload", payloadSchema)

	s := &jsonschema.Schema{
		Version:    jsonschema.Version,
		Title:      typeName,
		Type:       "object",
		Properties: props,
		Required:   []string{"type", "current_version", "min_supported_version", "payload"},
	}
	blob, err := json.Marshal(s)
	if err != nil {
		return "", &core.SerializationError{Cause: err}
	}
	return string(blob), nil
}
