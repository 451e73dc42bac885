// Package codec centralizes the JSON marshaling used for persisted state.
//
// Blob files are UTF-8 JSON text, one value per file, no trailing framing.
// Changing the codec is a compatibility boundary: bytes written by an older
// codec must still decode, which for the built-in codecs holds because both
// speak standard JSON.
package codec

import (
	"errors"
	"fmt"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// DecodeError indicates data that did not parse or did not match the
// requested shape. Callers treat it as "no prior state".
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode: %v", e.cause) }

func (e *DecodeError) Unwrap() error { return e.cause }

// IsDecodeError reports whether err is a shape or syntax failure from one of
// the Decode helpers.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// DecodeValue decodes a single flat record.
func DecodeValue[T any](c Codec, data []byte) (T, error) {
	var v T
	if err := c.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &DecodeError{cause: err}
	}
	return v, nil
}

// DecodeList decodes an ordered sequence. Element order is preserved.
func DecodeList[T any](c Codec, data []byte) ([]T, error) {
	var v []T
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, &DecodeError{cause: err}
	}
	return v, nil
}

// DecodeMap decodes a primitive-keyed mapping. Iteration order is not
// significant.
func DecodeMap[K comparable, V any](c Codec, data []byte) (map[K]V, error) {
	var v map[K]V
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, &DecodeError{cause: err}
	}
	return v, nil
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
