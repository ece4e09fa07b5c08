package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out: q/out.fq\nanf_depth: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "q/out.fq", cfg.Out)
	assert.Equal(t, 7, cfg.ANFDepth)
	assert.Equal(t, Default().InlineDepth, cfg.InlineDepth, "unset fields keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FIXPRINT_OUT", "env/out.fq")
	t.Setenv("FIXPRINT_INLINE_DEPTH", "9")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env/out.fq", cfg.Out)
	assert.Equal(t, 9, cfg.InlineDepth)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
