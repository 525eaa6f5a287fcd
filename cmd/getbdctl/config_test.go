package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-labs/getbd"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "getbd.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ---------- loadConfig ----------

func TestLoadConfig_File(t *testing.T) {
	p := writeConfig(t, `
api_key: file-key
sandbox_mode: true
log_level: debug
doc_fields:
  com.bd:
    nid:
      name: National ID
      type: text
      required: true
  net.bd:
    nid:
      name: National ID
      required: false
`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Settings.APIKey)
	assert.True(t, cfg.Settings.Sandbox)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Settings.DocFields.RequiresNID("com.bd"))
	assert.False(t, cfg.Settings.DocFields.RequiresNID("net.bd"))

	f, ok := cfg.Settings.DocFields.Field(".com.bd", getbd.NIDKey)
	require.True(t, ok)
	assert.Equal(t, "National ID", f.Name)
}

func TestLoadConfig_HyphenatedDocFields(t *testing.T) {
	p := writeConfig(t, `
api_key: k
doc-fields:
  com.bd:
    nid:
      required: true
`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.True(t, cfg.Settings.DocFields.RequiresNID("com.bd"))
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "api_key: file-key\nsandbox_mode: false\n")
	t.Setenv("GETBD_API_KEY", "env-key")
	t.Setenv("GETBD_SANDBOX_MODE", "true")

	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Settings.APIKey)
	assert.True(t, cfg.Settings.Sandbox)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GETBD_API_KEY", "env-only")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.Settings.APIKey)
	assert.False(t, cfg.Settings.Sandbox)
	assert.Empty(t, cfg.Settings.DocFields)
}

// ---------- render ----------

func captureStdout(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFmt := stdout, flagOutput
	stdout, flagOutput = &buf, format
	t.Cleanup(func() { stdout, flagOutput = prevOut, prevFmt })
	return &buf
}

func TestRender_YAMLUsesJSONNames(t *testing.T) {
	buf := captureStdout(t, "yaml")
	require.NoError(t, render(&getbd.SyncStatus{CreationTime: "2024-01-15", EndTime: "2025-01-15", Status: getbd.StatusActive}))
	assert.Contains(t, buf.String(), "creationtime:")
	assert.Contains(t, buf.String(), "2024-01-15")
	assert.Contains(t, buf.String(), "status: active")
}

func TestRender_TextSearch(t *testing.T) {
	buf := captureStdout(t, "text")
	require.NoError(t, render(getbd.SearchResults{{TLD: "com.bd", Status: getbd.Available}}))
	assert.Contains(t, buf.String(), "com.bd")
	assert.Contains(t, buf.String(), "available")
}

func TestRender_UnknownFormat(t *testing.T) {
	captureStdout(t, "xml")
	assert.Error(t, render(map[string]any{"a": 1}))
}
