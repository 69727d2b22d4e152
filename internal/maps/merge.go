// Copyright (c) 2026 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Merge recursively merges the src map into the dst map.
// Key conflicts are resolved by preferring src,
// or recursively descending, if both values from src and dst are map.
//
// Values taken from src are deep copied so dst never shares state with src.
func Merge(dst, src map[string]any) {
	for key, srcVal := range src {
		// Direct override if the srcVal is not map[string]any.
		srcMap, srcOk := srcVal.(map[string]any)
		if !srcOk {
			dst[key] = Clone(srcVal)

			continue
		}

		// Direct override if the dstVal is not map[string]any.
		dstMap, dstOk := dst[key].(map[string]any)
		if !dstOk {
			values := make(map[string]any, len(srcMap))
			Merge(values, srcMap)
			dst[key] = values

			continue
		}

		// Merge if the srcVal and dstVal are both map[string]any.
		Merge(dstMap, srcMap)
	}
}
