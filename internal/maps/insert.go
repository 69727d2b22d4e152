// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Insert recursively inserts the given value into the dst maps.
// Key conflicts are resolved by preferring the given value.
func Insert(dst map[string]any, keys []string, value any) {
	if len(keys) == 0 {
		return
	}

	next := dst
	for _, key := range keys[:len(keys)-1] {
		sub, ok := next[key].(map[string]any)
		if !ok {
			// Create or override if the value is not map[string]any.
			sub = make(map[string]any)
			next[key] = sub
		}
		next = sub
	}
	next[keys[len(keys)-1]] = value
}
