// File: clac/decode.go
package clac

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes configuration under a key into the target struct or map.
// It operates on the merged view of all layers, so the winning value per
// key is what gets decoded; an empty key decodes the whole configuration.
// The key must lead to a map-shaped section and the target must be a
// non-nil pointer. Struct fields are matched through the "toml" tag, with
// weak typing so string values convert to the target's types.
func (c *CLAC) Scan(key string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	// Decode from the merged view rather than a single layer's subtree so
	// dotted flat keys from higher-priority layers override nested values.
	section, found := navigateValue(c.Merged(), key)
	if !found {
		return fmt.Errorf("%w: %s", ErrNoConfigKey, key)
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("key %q does not refer to a scannable section (map), but to type %T", key, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", key, target, err)
	}

	return nil
}
