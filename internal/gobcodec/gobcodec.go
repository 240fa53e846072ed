// Package gobcodec is the shared Encode/Decode pair the core's value
// types use to implement GobEncoder/GobDecoder by hand: every type
// that needs it (LogicalType, Value, Column, BinaryOperator,
// ScalarExpression) keeps its fields unexported, so gob's own
// reflection-based struct walk can't reach them directly and each type
// instead marshals a small exported mirror struct through here.
package gobcodec

import (
	"bytes"
	"encoding/gob"
)

func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
