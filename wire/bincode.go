package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/qforge-labs/qhardware/core"
)

// Binary layout: magic, big-endian uint32 header length, msgpack header,
// big-endian uint32 body length, msgpack body.
var binMagic = [4]byte{'Q', 'H', 'W', '1'}

type binHeader struct {
	Type                string `msgpack:"type"`
	CurrentVersion      string `msgpack:"current_version"`
	MinSupportedVersion string `msgpack:"min_supported_version"`
}

// ToBincode encodes payload in the length-prefixed binary envelope.
func ToBincode(typeName string, payload interface{}) ([]byte, error) {
	header, err := msgpack.Marshal(binHeader{
		Type:                typeName,
		CurrentVersion:      core.Version,
		MinSupportedVersion: core.MinSupportedVersion,
	})
	if err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	body, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	buf := &bytes.Buffer{}
	buf.Write(binMagic[:])
	if err := binary.Write(buf, binary.BigEndian, uint32(len(header))); err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	buf.Write(header)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(body))); err != nil {
		return nil, &core.SerializationError{Cause: err}
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

// FromBincode decodes the binary envelope into payload. All failure modes
// return a DeserializationError; truncated input never panics.
func FromBincode(data []byte, typeName string, payload interface{}) error {
	header, body, err := splitBincode(data)
	if err != nil {
		return err
	}
	var h binHeader
	if err := msgpack.Unmarshal(header, &h); err != nil {
		return &core.DeserializationError{Msg: "malformed header", Cause: err}
	}
	if h.Type != typeName {
		return &core.DeserializationError{
			Msg: fmt.Sprintf("payload type is %q, want %q", h.Type, typeName),
		}
	}
	if err := core.CheckVersionSupport(h.MinSupportedVersion); err != nil {
		return err
	}
	if err := msgpack.Unmarshal(body, payload); err != nil {
		return &core.DeserializationError{
			Msg:   fmt.Sprintf("malformed %s payload", typeName),
			Cause: err,
		}
	}
	return nil
}

func splitBincode(data []byte) (header, body []byte, err error) {
	rest := data
	if len(rest) < len(binMagic) || !bytes.Equal(rest[:len(binMagic)], binMagic[:]) {
		return nil, nil, &core.DeserializationError{Msg: "missing magic bytes"}
	}
	rest = rest[len(binMagic):]

	header, rest, err = readChunk(rest, "header")
	if err != nil {
		return nil, nil, err
	}
	body, rest, err = readChunk(rest, "body")
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, &core.DeserializationError{
			Msg: fmt.Sprintf("%d trailing bytes after body", len(rest)),
		}
	}
	return header, body, nil
}

func readChunk(data []byte, name string) (chunk, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, &core.DeserializationError{
			Msg: fmt.Sprintf("truncated before %s length", name),
		}
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < n {
		return nil, nil, &core.DeserializationError{
			Msg: fmt.Sprintf("truncated %s: want %d bytes, have %d", name, n, len(data)),
		}
	}
	return data[:n], data[n:], nil
}
