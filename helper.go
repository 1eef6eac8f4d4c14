// File: clac/helper.go
package clac

import "strings"

// flattenMap converts a nested map[string]any to a flat map[string]any with
// dot-notation keys. Keys that already contain dots are joined as-is and
// stay opaque; only nested maps introduce new segments.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newKey := key
		if prefix != "" {
			newKey = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subKey, subValue := range flattenMap(nestedMap, newKey) {
				flat[subKey] = subValue
			}
		} else {
			flat[newKey] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation key,
// creating intermediate maps as needed. A non-map value sitting on an
// intermediate segment is overwritten by a new map.
func setNestedValue(nested map[string]any, key string, value any) {
	segments := strings.Split(key, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		next, exists := current[segment]
		nextMap, isMap := next.(map[string]any)
		if !exists || !isMap {
			nextMap = make(map[string]any)
			current[segment] = nextMap
		}
		current = nextMap
	}

	current[segments[len(segments)-1]] = value
}

// navigateValue descends a nested map one dot-segment at a time and reports
// whether the full key was reachable. An empty key returns the map itself.
func navigateValue(nested map[string]any, key string) (any, bool) {
	if key == "" {
		return nested, true
	}

	current := any(nested)
	for _, segment := range strings.Split(key, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		value, exists := currentMap[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// deepCopyValue recursively copies maps and slices so layers hold a private
// snapshot of their source. Scalar values are shared, which is safe since
// they cannot be mutated through the layer.
func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(v))
		for key, inner := range v {
			copied[key] = deepCopyValue(inner)
		}
		return copied
	case []any:
		copied := make([]any, len(v))
		for i, inner := range v {
			copied[i] = deepCopyValue(inner)
		}
		return copied
	default:
		return value
	}
}

// deepCopyMap is deepCopyValue specialized for the common source shape.
func deepCopyMap(source map[string]any) map[string]any {
	return deepCopyValue(source).(map[string]any)
}
