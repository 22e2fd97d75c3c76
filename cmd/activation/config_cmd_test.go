package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/activation-service/internal/config"
)

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activation.yaml")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}

func TestConfigInitCmd_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: chain\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, errConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mode: chain\n", string(data))

	cmd = newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", path, "config", "init", "--force"})
	require.NoError(t, cmd.Execute())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModeBoth, loaded.Mode)
}
