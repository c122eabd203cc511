package treetest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 2, cfg.GetInt("format.indent"))
	assert.Equal(t, "", cfg.GetString("format.color"))
	assert.Equal(t, DefaultMaxDepth, cfg.GetInt("decode.max_depth"))
	assert.False(t, cfg.GetBool("output.go"))
	assert.Equal(t, []string{"decode.max_depth", "format.color", "format.indent", "output.go"}, cfg.Keys())
}

func TestConfigSetAndGet(t *testing.T) {
	cfg := NewConfig()
	cfg.SetBool("output.go", true)
	assert.True(t, cfg.GetBool("output.go"))

	cfg.SetInt("format.indent", 8)
	assert.Equal(t, 8, cfg.GetInt("format.indent"))

	assert.Panics(t, func() { cfg.SetString("format.indent", "8") })
	assert.Panics(t, func() { cfg.GetString("format.indent") })
	assert.Panics(t, func() { cfg.GetInt("does.not.exist") })
}

func TestConfigDebug(t *testing.T) {
	var s strings.Builder
	NewConfig().Debug(&s)
	assert.Equal(t, `decode.max_depth : 1000 (int)
format.color     : "" (string)
format.indent    : 2 (int)
output.go        : false (bool)
`, s.String())
}
