// File: clac/clac.go
package clac

import (
	"fmt"
	"sync"
)

// CLAC layerizes application configuration. Layers are scanned in the
// order they were added: the first layer holding a key wins.
type CLAC struct {
	layers []Layer      // Priority order, index 0 checked first
	mutex  sync.RWMutex // Protects concurrent access to the layer list
}

// New creates a container from zero or more layers in priority order,
// highest priority first. Nil layers are ignored.
func New(layers ...Layer) *CLAC {
	c := &CLAC{}
	c.AddLayers(layers...)
	return c
}

// AddLayers appends layers at the end of the current priority order, so
// they rank below everything already registered. The order of layers
// within one call is preserved. Existing layers are never reordered and
// names are not deduplicated.
func (c *CLAC) AddLayers(layers ...Layer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		c.layers = append(c.layers, layer)
	}
}

// RemoveLayer removes the highest-priority layer with the given name.
// It returns ErrMissingLayer if no layer carries that name.
func (c *CLAC) RemoveLayer(name string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, layer := range c.layers {
		if layer.Name() == name {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrMissingLayer, name)
}

// HasLayer reports whether a layer with the given name is registered.
func (c *CLAC) HasLayer(name string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.findLayer(name) != nil
}

// LayerNames returns the registered layer names in priority order.
// Duplicate names appear as often as they were added.
func (c *CLAC) LayerNames() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make([]string, len(c.layers))
	for i, layer := range c.layers {
		names[i] = layer.Name()
	}

	return names
}

// Lookup is the primary indexed lookup. It scans layers in priority order
// and returns the value from the first layer reporting a match, or
// ErrNoConfigKey if no layer holds the key. An empty container reports
// every key as not found.
func (c *CLAC) Lookup(key string) (any, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, layer := range c.layers {
		if value, found := layer.Get(key); found {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoConfigKey, key)
}

// Resolve returns the name of the layer that answered the lookup along
// with the value retrieved.
func (c *CLAC) Resolve(key string) (string, any, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, layer := range c.layers {
		if value, found := layer.Get(key); found {
			return layer.Name(), value, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s", ErrNoConfigKey, key)
}

// Callback post-processes a successfully retrieved value. It is never
// invoked on a default.
type Callback func(value any) (any, error)

// getOptions collects the optional behavior of Get.
type getOptions struct {
	defaultValue any
	hasDefault   bool
	layerName    string
	hasLayer     bool
	callback     Callback
}

// GetOption customizes a single Get call.
type GetOption func(*getOptions)

// WithDefault makes Get return the given value instead of failing when no
// layer matches. The default is returned unchanged, even when nil, and is
// never passed through a callback.
func WithDefault(value any) GetOption {
	return func(o *getOptions) {
		o.defaultValue = value
		o.hasDefault = true
	}
}

// FromLayer restricts the search to the highest-priority layer with the
// given name. Get fails with ErrMissingLayer if no such layer exists, even
// when a default was supplied.
func FromLayer(name string) GetOption {
	return func(o *getOptions) {
		o.layerName = name
		o.hasLayer = true
	}
}

// WithCallback post-processes a found value before Get returns it.
func WithCallback(fn Callback) GetOption {
	return func(o *getOptions) {
		o.callback = fn
	}
}

// Get retrieves a value with optional default, layer restriction, and
// callback behavior. Without options it is equivalent to Lookup.
func (c *CLAC) Get(key string, opts ...GetOption) (any, error) {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	layers := c.layers
	if o.hasLayer {
		layer := c.findLayer(o.layerName)
		if layer == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingLayer, o.layerName)
		}
		layers = []Layer{layer}
	}

	for _, layer := range layers {
		value, found := layer.Get(key)
		if !found {
			continue
		}

		if o.callback != nil {
			result, err := o.callback(value)
			if err != nil {
				return nil, fmt.Errorf("callback failed for key %q: %w", key, err)
			}
			return result, nil
		}

		return value, nil
	}

	if o.hasDefault {
		return o.defaultValue, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoConfigKey, key)
}

// Names returns the union of canonical keys across all layers.
func (c *CLAC) Names() map[string]bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make(map[string]bool)
	for _, layer := range c.layers {
		for key := range layer.Keys() {
			names[key] = true
		}
	}

	return names
}

// ResolutionIndex maps every known key to the name of the first layer that
// provides it, i.e. the layer a Lookup for that key would answer from.
func (c *CLAC) ResolutionIndex() map[string]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	index := make(map[string]string)
	for _, layer := range c.layers {
		name := layer.Name()
		for key := range layer.Keys() {
			if _, seen := index[key]; !seen {
				index[key] = name
			}
		}
	}

	return index
}

// Merged builds a nested view of the effective configuration: for every
// known key, the value from the highest-priority layer providing it,
// with dotted keys split into nested maps.
func (c *CLAC) Merged() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	merged := make(map[string]any)

	// Walk lowest priority first so higher layers overwrite.
	for i := len(c.layers) - 1; i >= 0; i-- {
		layer := c.layers[i]
		for key := range layer.Keys() {
			if value, found := layer.Get(key); found {
				setNestedValue(merged, key, value)
			}
		}
	}

	return merged
}

// findLayer returns the highest-priority layer with the given name, or nil.
// Callers must hold the mutex.
func (c *CLAC) findLayer(name string) Layer {
	for _, layer := range c.layers {
		if layer.Name() == name {
			return layer
		}
	}

	return nil
}
