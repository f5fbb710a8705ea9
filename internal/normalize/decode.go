package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotCollection is returned when a body is neither an object, an array nor an envelope.
var ErrNotCollection = errors.New("normalize: body is not a JSON object or array")

// envelopePaths are where the Atoms API nests lists inside its {status, data} envelope.
var envelopePaths = []Path{
	ParsePath("data.logs"),
	ParsePath("data.items"),
	ParsePath("data.data"),
	ParsePath("data"),
}

// Decode reads one JSON document into the generic tree validators consume.
// Numbers stay json.Number so integers are not rounded through float64.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("normalize: decode json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("normalize: decode json: trailing data after document")
	}
	return v, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(b []byte) (any, error) { return Decode(bytes.NewReader(b)) }

// Items flattens a decoded body into the list of entity payloads it carries:
// an array is returned as is, an envelope is unwrapped, and a bare object is a
// list of one. Items are not validated here.
func Items(body any) ([]any, error) {
	switch v := body.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, path := range envelopePaths {
			inner, ok := Lookup(v, path)
			if !ok {
				continue
			}
			switch iv := inner.(type) {
			case []any:
				return iv, nil
			case map[string]any:
				if path.String() == "data" {
					return []any{iv}, nil
				}
			}
		}
		if _, hasData := v["data"]; hasData {
			return nil, fmt.Errorf("%w: unrecognized envelope", ErrNotCollection)
		}
		return []any{v}, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotCollection, jsonType(body))
	}
}
