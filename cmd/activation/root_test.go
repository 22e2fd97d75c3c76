package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestChainCmd(t *testing.T) {
	out, _, err := execute(t, "chain")
	require.NoError(t, err)

	assert.Equal(t, "Creating an account with ID: 1\n"+
		"Migrating an account with ID: 2\n"+
		"Porting an account with ID: 3\n"+
		"Migrating an account with ID: 4\n"+
		"Creating an account with ID: 5\n", out)
}

func TestStrategyCmd(t *testing.T) {
	out, _, err := execute(t, "strategy")
	require.NoError(t, err)

	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestRootCmd_RunsBothVariants(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, lines[:5], lines[5:])
}

func TestChainCmd_AccountsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,action,balance\n10,port,1\n11,unknown,2\n12,create,3\n"), 0o644))

	out, _, err := execute(t, "chain", "--accounts", path)
	require.NoError(t, err)

	assert.Equal(t, "Porting an account with ID: 10\nCreating an account with ID: 12\n", out)
}

func TestChainCmd_ReportFile(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report")

	_, _, err := execute(t, "chain", "--report", "json", "--output", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath + ".json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "chain", decoded["mode"])
	assert.EqualValues(t, 5, decoded["handled"])
	assert.EqualValues(t, 1, decoded["unhandled"])
}

func TestRootCmd_ReportPerMode(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "--report", "yaml", "--output", filepath.Join(dir, "report.yaml"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "report-chain.yaml"))
	assert.FileExists(t, filepath.Join(dir, "report-strategy.yaml"))
}

func TestRootCmd_ReportToStderr(t *testing.T) {
	out, errOut, err := execute(t, "strategy", "--report", "json")
	require.NoError(t, err)

	assert.NotContains(t, out, "\"mode\"")
	assert.Contains(t, errOut, "\"mode\": \"strategy\"")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--report", "xml")
	assert.ErrorContains(t, err, "invalid configuration")

	_, _, err = execute(t, "chain", "--accounts", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "chain activation failed")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "activation.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: chain\nchain: [port]\n"), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Porting an account with ID: 3\n", stdout.String())
}
