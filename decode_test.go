// FILE: clac/decode_test.go
package clac

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverConfig struct {
	Host    string        `toml:"host"`
	Port    int           `toml:"port"`
	Timeout time.Duration `toml:"timeout"`
	Tags    []string      `toml:"tags"`
}

// TestScanSubtree tests decoding a looked-up subtree into a struct
func TestScanSubtree(t *testing.T) {
	raw := `
[server]
host = "localhost"
port = 8080
timeout = "30s"
`
	var parsed map[string]any
	require.NoError(t, toml.Unmarshal([]byte(raw), &parsed))

	rc := NewDictLayer("rc", map[string]any{
		"server.port": "9090",
		"server.tags": "prod,eu",
	}, Flatten)
	cfg := New(rc, NewDictLayer("toml", parsed, Split))

	var server serverConfig
	require.NoError(t, cfg.Scan("server", &server))

	assert.Equal(t, "localhost", server.Host)
	assert.Equal(t, 9090, server.Port) // rc layer wins over the file value
	assert.Equal(t, 30*time.Second, server.Timeout)
	assert.Equal(t, []string{"prod", "eu"}, server.Tags)
}

// TestScanMergedView tests decoding the whole effective configuration
func TestScanMergedView(t *testing.T) {
	cfg := New(
		NewDictLayer("rc", map[string]any{"server.host": "rc-host"}, Flatten),
		NewDictLayer("file", map[string]any{
			"server": map[string]any{"host": "file-host", "port": 8080},
			"debug":  true,
		}, Split),
	)

	var result struct {
		Server serverConfig `toml:"server"`
		Debug  bool         `toml:"debug"`
	}
	require.NoError(t, cfg.Scan("", &result))

	assert.Equal(t, "rc-host", result.Server.Host)
	assert.Equal(t, 8080, result.Server.Port)
	assert.True(t, result.Debug)
}

// TestScanErrors tests the failure modes of Scan
func TestScanErrors(t *testing.T) {
	cfg := New(NewDictLayer("values", map[string]any{
		"scalar": "just a string",
	}, Flatten))

	t.Run("NonPointerTarget", func(t *testing.T) {
		var target serverConfig
		err := cfg.Scan("server", target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-nil pointer")
	})

	t.Run("NilPointerTarget", func(t *testing.T) {
		err := cfg.Scan("server", (*serverConfig)(nil))
		assert.Error(t, err)
	})

	t.Run("MissingKey", func(t *testing.T) {
		var target serverConfig
		err := cfg.Scan("absent", &target)
		assert.ErrorIs(t, err, ErrNoConfigKey)
	})

	t.Run("ScalarSection", func(t *testing.T) {
		var target serverConfig
		err := cfg.Scan("scalar", &target)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "scannable")
	})
}
