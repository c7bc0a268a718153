package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"paws-sync/internal/ports/remotestore"
)

func decodeFields(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("document must be a json object: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// normalize lleva un valor Go (int64, string, bool...) a su forma JSON genérica
// para compararlo con los campos decodificados.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func matches(fields map[string]any, filters []remotestore.Filter) (bool, error) {
	for _, f := range filters {
		if strings.TrimSpace(f.Field) == "" {
			return false, remotestore.ErrInvalidQuery
		}
		want, err := normalize(f.Value)
		if err != nil {
			return false, remotestore.ErrInvalidQuery
		}
		got, ok := fields[f.Field]
		if !ok {
			return false, nil
		}
		// Comparaciones solo entre el mismo tipo, como el backend.
		if rank(got) != rank(want) {
			return false, nil
		}

		c := compare(got, want)
		var pass bool
		switch f.Op {
		case remotestore.OpEqual:
			pass = c == 0
		case remotestore.OpLess:
			pass = c < 0
		case remotestore.OpLessOrEqual:
			pass = c <= 0
		case remotestore.OpGreater:
			pass = c > 0
		case remotestore.OpGreaterOrEqual:
			pass = c >= 0
		default:
			return false, remotestore.ErrInvalidQuery
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}

// compare ordena primero por tipo (null < bool < number < string < resto).
func compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch x := a.(type) {
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case float64:
		y := b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case string:
		return strings.Compare(x, b.(string))
	}
	return 0
}
