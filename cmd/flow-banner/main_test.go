package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flow-banner/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// Never pick up a config file from the working directory
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "--width", "1200", "--height", "600")
	require.NoError(t, err)

	assert.Contains(t, out, "surface 1200x600")
	assert.Contains(t, out, "process         240.0    312.0    160.0     44.0  #2563eb")
	assert.Contains(t, out, "business        960.0    312.0    160.0     44.0  #ef4444")
	assert.Contains(t, out, "link 0 process -> data")
	assert.Contains(t, out, "link 2 model -> business")
	assert.NotContains(t, out, "link 3")
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	out, err := execute(t, "config", "--fps", "30", "--reduced-motion")
	require.NoError(t, err)

	assert.Contains(t, out, "particles_per_link: 6")
	assert.Contains(t, out, "fps: 30")
	assert.Contains(t, out, "reduced_motion: true")
}

func TestConfigCommandWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	out, err := execute(t, "config", "--write", path, "--no-sound")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to")

	_, err = os.Stat(path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Sound)
	assert.Len(t, cfg.Stages, 4)
}

func TestInvalidFlagValueRejected(t *testing.T) {
	_, err := execute(t, "config", "--fps=-5")
	assert.ErrorContains(t, err, "display.fps")
}

func TestInvalidConfigFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flow:\n  anchor: 1.5\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"layout", "--config", path})
	assert.ErrorContains(t, cmd.Execute(), "flow.anchor")
}
