package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig()
	assert.False(cfg.Output.Pretty)
	assert.True(cfg.Filter.Strict)
	assert.Equal("stderr", cfg.Logging.File)
}

func TestParseConfig(t *testing.T) {
	assert := assert.New(t)

	filename := filepath.Join(t.TempDir(), "searchparams.conf")
	body := `
[output]
pretty = true

[filter]
strict = false

[logging]
file = "/var/log/searchparams.log"
level = "warn"
`
	assert.NoError(os.WriteFile(filename, []byte(body), 0644))

	cfg := NewConfig()
	assert.NoError(ParseConfig(filename, cfg))

	assert.True(cfg.Output.Pretty)
	assert.False(cfg.Filter.Strict)
	assert.Equal("/var/log/searchparams.log", cfg.Logging.File)
	assert.Equal("warn", cfg.Logging.Level)
}

func TestParseConfigEmptyFilename(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig()
	assert.NoError(ParseConfig("", cfg))
	assert.Equal(NewConfig(), cfg)
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	assert := assert.New(t)

	buf := new(bytes.Buffer)
	encoder := toml.NewEncoder(buf)
	encoder.Indent = ""
	assert.NoError(encoder.Encode(NewConfig()))

	filename := filepath.Join(t.TempDir(), "default.conf")
	assert.NoError(os.WriteFile(filename, buf.Bytes(), 0644))

	cfg := NewConfig()
	assert.NoError(ParseConfig(filename, cfg))
	assert.Equal(NewConfig(), cfg)
}
