// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Sub returns the value under the given path, or nil if it does not exist.
// Blank keys in the path are ignored.
func Sub(values map[string]any, path []string) any {
	var value any = values
	for _, key := range path {
		if key == "" {
			continue
		}

		mp, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		if value, ok = mp[key]; !ok {
			return nil
		}
	}

	return value
}
