// File: clac/section.go
package clac

// SectionLayer is a flat layer over pre-parsed section/option data, the
// shape INI-style parsers produce. Keys are unified as "section.option".
// Parsing the file itself stays with the caller.
type SectionLayer struct {
	name string
	flat map[string]any
}

// NewSectionLayer builds a layer from section/option/value data. Section
// and option names are joined with a dot into literal flat keys, so an
// option containing dots stays opaque past the first segment.
func NewSectionLayer(name string, sections map[string]map[string]string) *SectionLayer {
	flat := make(map[string]any)
	for section, options := range sections {
		for option, value := range options {
			flat[section+"."+option] = value
		}
	}

	return &SectionLayer{
		name: name,
		flat: flat,
	}
}

// Name returns the layer's identity, set at construction.
func (l *SectionLayer) Name() string {
	return l.name
}

// Get matches the full "section.option" key by exact equality.
func (l *SectionLayer) Get(key string) (any, bool) {
	value, found := l.flat[key]
	return value, found
}

// Keys returns the unified "section.option" key set.
func (l *SectionLayer) Keys() map[string]bool {
	keys := make(map[string]bool, len(l.flat))
	for key := range l.flat {
		keys[key] = true
	}

	return keys
}
