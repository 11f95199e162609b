package services

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNoToken is returned when an auth endpoint answers 2xx without a token.
var ErrNoToken = errors.New("response carries no access token")

var jsonNull = []byte("null")

// envelope returns the value under key when raw is an object that has it,
// and raw itself otherwise.
func envelope(raw json.RawMessage, key string) (json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if key == "" || len(raw) == 0 || raw[0] != '{' {
		return raw, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw, false
	}
	if v, ok := fields[key]; ok {
		return bytes.TrimSpace(v), true
	}
	return raw, false
}

// decodeObject decodes {key: obj} or a bare obj into out.
func decodeObject(raw json.RawMessage, key string, out any) error {
	v, _ := envelope(raw, key)
	if len(v) == 0 || bytes.Equal(v, jsonNull) {
		return nil
	}
	return json.Unmarshal(v, out)
}

// decodeList decodes {key: [...]}, a bare array, or a single object into a
// slice. An object that lacks key, or null, yields an empty list.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	v, found := envelope(raw, key)
	if len(v) == 0 || bytes.Equal(v, jsonNull) {
		return nil, nil
	}

	switch v[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(v, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		if key != "" && !found {
			return nil, nil
		}
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return nil, err
		}
		return []T{item}, nil
	}
	return nil, errors.New("expected a JSON array or object")
}
