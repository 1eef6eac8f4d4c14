// FILE: example/layered_lookup.go
package main

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/shall-framework/clac"
)

// ServerConfig is decoded from the merged configuration view.
type ServerConfig struct {
	Host    string        `toml:"host"`
	Port    int           `toml:"port"`
	Timeout time.Duration `toml:"timeout"`
}

const tomlSource = `
[server]
host = "localhost"
port = 8080
timeout = "30s"

[features]
caching = true
`

const yamlSource = `
server:
  host: fallback.example.com
  port: 7070
features:
  rate_limit: true
`

const jsonSource = `{"greeting": {"lang": "en", "text": "hello"}}`

func main() {
	// Parsing stays with the caller: clac only sees materialized maps.
	var fromTOML, fromYAML, fromJSON map[string]any
	if err := toml.Unmarshal([]byte(tomlSource), &fromTOML); err != nil {
		log.Fatal("parse toml:", err)
	}
	if err := yaml.Unmarshal([]byte(yamlSource), &fromYAML); err != nil {
		log.Fatal("parse yaml:", err)
	}
	if err := json.Unmarshal([]byte(jsonSource), &fromJSON); err != nil {
		log.Fatal("parse json:", err)
	}

	// rc-style flat overrides sit above the parsed file layers, the
	// environment snapshot above everything.
	cfg, err := clac.NewBuilder().
		WithEnvOptions("env", clac.EnvOptions{Prefix: "MYAPP_"}).
		WithDict("rc", map[string]any{"server.port": 9090}, clac.Flatten).
		WithDict("toml", fromTOML, clac.Split).
		WithDict("yaml", fromYAML, clac.Split).
		WithDict("json", fromJSON, clac.Split).
		WithValidator(func(c *clac.CLAC) error {
			_, err := c.Lookup("server.host")
			return err
		}).
		Build()
	if err != nil {
		log.Fatal("build config:", err)
	}

	// Priority lookup: rc beats the toml file, toml beats yaml.
	port, err := cfg.Int64("server.port")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("server.port = %d", port)

	// Named lookup reaches a specific layer regardless of priority.
	yamlPort, err := cfg.Get("server.port", clac.FromLayer("yaml"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("server.port (yaml layer) = %v", yamlPort)

	// Defaults are returned untouched, callbacks post-process found values.
	workers, err := cfg.Get("server.workers", clac.WithDefault(4))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("server.workers = %v (defaulted)", workers)

	// Which layer answered?
	layer, value, err := cfg.Resolve("features.caching")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("features.caching = %v (from layer %s)", value, layer)

	// Decode a section of the merged view into a struct.
	var server ServerConfig
	if err := cfg.Scan("server", &server); err != nil {
		log.Fatal(err)
	}
	log.Printf("server config: %+v", server)

	// Misses surface as typed errors.
	if _, err := cfg.Lookup("no.such.key"); errors.Is(err, clac.ErrNoConfigKey) {
		log.Printf("lookup miss reported as ErrNoConfigKey: %v", err)
	}
}
