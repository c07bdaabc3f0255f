package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".uipatterns"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".uipatterns", "config.yaml"), []byte(content), 0644))
}

func TestResolvePatternsPath_FlagWins(t *testing.T) {
	t.Chdir(t.TempDir())
	path, err := resolvePatternsPath("flag.json")
	require.NoError(t, err)
	assert.Equal(t, "flag.json", path)
}

func TestResolvePatternsPath_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path, err := resolvePatternsPath("")
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestResolvePatternsPath_FromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "version: \"1\"\npatterns_path: team/patterns.json\nlog_file: logs/tools.jsonl\n")

	path, err := resolvePatternsPath("")
	require.NoError(t, err)
	assert.Equal(t, "team/patterns.json", path)

	logPath, err := resolveLogFile("")
	require.NoError(t, err)
	assert.Equal(t, "logs/tools.jsonl", logPath)

	logPath, err = resolveLogFile("flag.jsonl")
	require.NoError(t, err)
	assert.Equal(t, "flag.jsonl", logPath)
}

func TestResolvePatternsPath_BadConfigSurfacesError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "{unclosed")

	_, err := resolvePatternsPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".uipatterns/config.yaml")

	_, err = resolveLogFile("")
	require.Error(t, err)
}

func TestLoadProjectConfig_BadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "{unclosed")

	_, err := loadProjectConfig()
	assert.Error(t, err)
}
