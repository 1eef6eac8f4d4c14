// File: clac/doc.go

// Package clac provides layered configuration lookup for Go applications.
// Several configuration sources ("layers") are registered with a container
// in priority order, and a single lookup returns the value from the
// highest-priority layer holding a matching key.
//
// Features:
//   - Ordered layers: first layer added wins, later layers fill in the gaps
//   - Flat or split dotted-key handling per layer
//   - Environment snapshot layers with customizable name transforms
//   - Section layers for pre-parsed INI-style data
//   - Typed accessors with automatic conversions for common Go types
//   - Struct decoding of looked-up subtrees via mapstructure
//   - Builder pattern with validation hooks
//
// The core never parses file formats itself. Callers hand in
// already-parsed nested maps (TOML, JSON, YAML, whatever) and clac only
// answers lookups against them.
//
// Quick Start:
//
//	rc := clac.NewDictLayer("rc", map[string]any{
//	    "foo":         "bar",
//	    "salt.pepper": "oregano",
//	}, clac.Flatten)
//
//	var parsed map[string]any
//	toml.Unmarshal(data, &parsed) // caller parses
//	file := clac.NewDictLayer("toml", parsed, clac.Split)
//
//	cfg := clac.New(rc, file, clac.NewEnvLayer("env"))
//
//	value, err := cfg.Lookup("salt.pepper")
//	host, err := cfg.Get("server.host", clac.WithDefault("localhost"))
//
// Lookup Order:
// Layers are scanned in the order they were added. AddLayers appends at the
// lowest priority; nothing ever reorders existing layers.
//
// Thread Safety:
// The container uses a read-write mutex, so concurrent lookups are safe and
// layer registration is serialized. Layers themselves are immutable
// snapshots of their source data.
package clac
