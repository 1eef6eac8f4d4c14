// File: clac/builder.go
package clac

import "fmt"

// ValidatorFunc validates a fully assembled container. It receives the
// built *CLAC and should return an error if validation fails.
type ValidatorFunc func(c *CLAC) error

// Builder provides a fluent interface for assembling a container. Layers
// are added in priority order, highest first.
type Builder struct {
	layers     []Layer
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new container builder.
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithLayer appends a layer at the lowest priority so far.
func (b *Builder) WithLayer(layer Layer) *Builder {
	if layer == nil {
		if b.err == nil {
			b.err = fmt.Errorf("cannot add nil layer")
		}
		return b
	}
	b.layers = append(b.layers, layer)
	return b
}

// WithDict appends a DictLayer built from an already-parsed map.
func (b *Builder) WithDict(name string, source map[string]any, strategy DictStructure) *Builder {
	return b.WithLayer(NewDictLayer(name, source, strategy))
}

// WithSections appends a SectionLayer built from pre-parsed INI-style data.
func (b *Builder) WithSections(name string, sections map[string]map[string]string) *Builder {
	return b.WithLayer(NewSectionLayer(name, sections))
}

// WithEnv appends an EnvLayer snapshotting the current process environment.
func (b *Builder) WithEnv(name string) *Builder {
	return b.WithLayer(NewEnvLayer(name))
}

// WithEnvOptions appends an EnvLayer with custom snapshot options.
func (b *Builder) WithEnvOptions(name string, opts EnvOptions) *Builder {
	return b.WithLayer(NewEnvLayerWithOptions(name, opts))
}

// WithValidator adds a validation function that runs at the end of the
// build process. Multiple validators execute in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the container with all registered layers and runs the
// validators against it.
func (b *Builder) Build() (*CLAC, error) {
	if b.err != nil {
		return nil, b.err
	}

	c := New(b.layers...)

	for _, validator := range b.validators {
		if err := validator(c); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *CLAC {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("clac build failed: %v", err))
	}
	return c
}
