// File: clac/env.go
package clac

import (
	"os"
	"strings"
)

// EnvTransformFunc converts a dotted configuration key to an environment
// variable name.
type EnvTransformFunc func(key string) string

// EnvOptions configures how an EnvLayer snapshots and matches variables.
type EnvOptions struct {
	// Prefix is prepended by the default transform and restricts the
	// snapshot to variables carrying it.
	// Example: "MYAPP_" maps "server.port" to "MYAPP_SERVER_PORT".
	Prefix string

	// Transform customizes how dotted keys map to variable names.
	// If nil, the default transformation is used (dots to underscores,
	// uppercase, Prefix prepended).
	Transform EnvTransformFunc

	// Environ supplies the snapshot in "KEY=value" form. If nil, the
	// current process environment is captured at construction.
	Environ []string
}

// EnvLayer is a layer over a snapshot of environment variables taken at
// construction time. The representation is always flat: variable names are
// the canonical keys, and dots inside them are literal. Refreshing requires
// constructing a new instance.
type EnvLayer struct {
	name      string
	vars      map[string]string
	transform EnvTransformFunc
}

// NewEnvLayer snapshots the current process environment.
func NewEnvLayer(name string) *EnvLayer {
	return NewEnvLayerWithOptions(name, EnvOptions{})
}

// NewEnvLayerWithOptions snapshots an environment with custom options.
// Passing an explicit Environ keeps construction deterministic, which is
// the recommended form for tests.
func NewEnvLayerWithOptions(name string, opts EnvOptions) *EnvLayer {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	transform := opts.Transform
	if transform == nil {
		transform = defaultEnvTransform(opts.Prefix)
	}

	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if opts.Prefix != "" && !strings.HasPrefix(key, opts.Prefix) {
			continue
		}
		vars[key] = value
	}

	return &EnvLayer{
		name:      name,
		vars:      vars,
		transform: transform,
	}
}

// Name returns the layer's identity, set at construction.
func (l *EnvLayer) Name() string {
	return l.name
}

// Get matches the literal variable name first, then the transformed form
// of the key, so "some.secret.key" finds SOME_SECRET_KEY while an exact
// variable name keeps working untransformed.
func (l *EnvLayer) Get(key string) (any, bool) {
	if value, found := l.vars[key]; found {
		return value, true
	}

	if value, found := l.vars[l.transform(key)]; found {
		return value, true
	}

	return nil, false
}

// Keys returns the snapshotted variable names.
func (l *EnvLayer) Keys() map[string]bool {
	keys := make(map[string]bool, len(l.vars))
	for key := range l.vars {
		keys[key] = true
	}

	return keys
}

// defaultEnvTransform creates the default key-to-variable transformer.
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(key string) string {
		env := strings.ReplaceAll(key, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}
