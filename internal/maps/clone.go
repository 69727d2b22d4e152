// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "fmt"

// Clone returns a deep copy of the value.
// Only map[string]any and []any are copied, other values are returned as is.
func Clone(value any) any {
	switch val := value.(type) {
	case map[string]any:
		if val == nil {
			return val
		}
		values := make(map[string]any, len(val))
		for k, v := range val {
			values[k] = Clone(v)
		}

		return values
	case []any:
		if val == nil {
			return val
		}
		values := make([]any, len(val))
		for i, v := range val {
			values[i] = Clone(v)
		}

		return values
	default:
		return value
	}
}

// Normalize returns a deep copy of the value with map[any]any, which some
// decoders (e.g. YAML) produce for mappings, converted into map[string]any,
// so they merge as mappings. Non-string keys are formatted with fmt.Sprint.
func Normalize(value any) any {
	switch val := value.(type) {
	case map[string]any:
		values := make(map[string]any, len(val))
		for k, v := range val {
			values[k] = Normalize(v)
		}

		return values
	case map[any]any:
		values := make(map[string]any, len(val))
		for k, v := range val {
			values[fmt.Sprint(k)] = Normalize(v)
		}

		return values
	case []any:
		values := make([]any, len(val))
		for i, v := range val {
			values[i] = Normalize(v)
		}

		return values
	default:
		return value
	}
}
