// Package payload normalizes wire payloads before they are written out.
package payload

import (
	"encoding/json"
	"fmt"
)

// Prune drops every key whose value is an empty string, nil, empty slice or
// empty map, recursing into nested objects and objects inside arrays. An
// object that loses all of its keys is dropped from its parent as well.
// Non-empty arrays are kept whole.
func Prune(m map[string]any) map[string]any {
	pruned := make(map[string]any, len(m))
	for k, v := range m {
		if v, ok := pruneValue(v); ok {
			pruned[k] = v
		}
	}
	return pruned
}

func pruneValue(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case map[string]any:
		p := Prune(v)
		return p, len(p) > 0
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		items := make([]any, 0, len(v))
		for _, item := range v {
			if item, ok := pruneValue(item); ok {
				items = append(items, item)
			}
		}
		return items, len(items) > 0
	default:
		return v, true
	}
}

// Marshal round-trips v through JSON so structs can be pruned with the field
// names their json tags declare.
func Marshal(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal payload: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("could not convert payload to map: %w", err)
	}

	return Prune(m), nil
}
