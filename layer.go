// File: clac/layer.go
package clac

// Layer is a named, read-only view over a key space. A layer answers exact
// lookups and reports the canonical dotted form of every key it holds.
// Layers are immutable snapshots: the backing data is fixed at construction
// and later changes to the original source are never reflected.
type Layer interface {
	// Name identifies the layer for named lookups and error messages.
	Name() string

	// Get performs an exact match against the layer's backing data and
	// reports whether the key was found.
	Get(key string) (any, bool)

	// Keys returns the set of canonical dotted keys held by the layer.
	Keys() map[string]bool
}

// DictStructure selects how a DictLayer stores dotted keys.
type DictStructure int

const (
	// Flatten normalizes nested input into dotted flat keys. Lookups match
	// only by exact full-string equality; a prefix of a dotted key does not
	// partially match. Dotted keys already present in flat input are
	// treated as opaque literals and never re-split.
	Flatten DictStructure = iota

	// Split keeps nested input navigable, one map level per dot segment.
	// Dotted lookups descend the structure; a key matching an intermediate
	// node returns the entire subtree.
	Split
)

// DictLayer is a layer backed by a caller-supplied map, possibly nested.
// The map is deep-copied at construction.
type DictLayer struct {
	name     string
	strategy DictStructure
	flat     map[string]any // Flatten storage
	nested   map[string]any // Split storage
}

// NewDictLayer builds a layer from an already-parsed map. The strategy
// decides whether nested maps are flattened into dotted keys or kept as a
// navigable structure. A nil or empty source yields a layer where every
// lookup reports not-found.
func NewDictLayer(name string, source map[string]any, strategy DictStructure) *DictLayer {
	l := &DictLayer{
		name:     name,
		strategy: strategy,
	}

	if source == nil {
		source = map[string]any{}
	}

	switch strategy {
	case Split:
		l.nested = deepCopyMap(source)
	default:
		l.flat = flattenMap(deepCopyMap(source), "")
	}

	return l
}

// Name returns the layer's identity, set at construction.
func (l *DictLayer) Name() string {
	return l.name
}

// Get looks up a key per the layer's structure strategy. Split layers
// descend dotted keys arbitrarily deep and return subtrees for
// intermediate matches; Flatten layers only match literal key strings.
func (l *DictLayer) Get(key string) (any, bool) {
	if l.strategy == Split {
		return navigateValue(l.nested, key)
	}

	value, found := l.flat[key]
	return value, found
}

// Keys returns the canonical dotted leaf keys of the layer. For Split
// layers this is the flattened view of the nested structure, so both
// strategies report the same canonical form for equivalent data.
func (l *DictLayer) Keys() map[string]bool {
	flat := l.flat
	if l.strategy == Split {
		flat = flattenMap(l.nested, "")
	}

	keys := make(map[string]bool, len(flat))
	for key := range flat {
		keys[key] = true
	}

	return keys
}
