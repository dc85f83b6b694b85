package ordantic

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Encode serializes v as JSON text. Failures are reported as ErrSerialize.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", newError(MsgSerialize, err)
	}

	return string(b), nil
}

// Decode parses JSON text into v. Failures are reported as ErrDeserialize.
func Decode(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return newError(MsgDeserialize, err)
	}

	return nil
}

// MarshalTuple encodes positional field values as a JSON array.
func MarshalTuple(values ...any) ([]byte, error) {
	return json.Marshal(values)
}

// UnmarshalTuple decodes a JSON array into positional field pointers. The
// array must have exactly len(targets) elements.
func UnmarshalTuple(data []byte, targets ...any) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != len(targets) {
		return fmt.Errorf("expected array of %d elements, got %d", len(targets), len(raw))
	}

	for i, elem := range raw {
		if err := json.Unmarshal(elem, targets[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
