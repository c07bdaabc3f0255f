package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/uipatterns/pkg/patterns"
)

// --- helpers ---

func buttonLibrary(description string) *patterns.Library {
	states := make(map[patterns.ComponentState]patterns.StateStyle, len(patterns.AllStates))
	for _, s := range patterns.AllStates {
		states[s] = patterns.StateStyle{
			Styles:      map[string]string{"color": "red"},
			Description: "state " + string(s),
		}
	}
	return &patterns.Library{
		Name:    "test",
		Version: "1.0",
		Patterns: []patterns.ComponentPattern{
			{
				Name:        patterns.ComponentButton,
				Description: description,
				Anatomy:     patterns.ComponentAnatomy{Structure: []string{"container", "label"}},
				States:      states,
				Accessibility: patterns.AccessibilityRequirements{
					Keyboard:     []string{"Enter activates"},
					ScreenReader: []string{"announces role button"},
					Focus:        []string{"visible focus ring"},
				},
				Usage: patterns.UsageGuidance{When: []string{"triggering an action"}},
			},
		},
	}
}

func writeLibrary(t *testing.T, path string, lib *patterns.Library) {
	t.Helper()
	data, err := json.MarshalIndent(lib, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// --- NewServer ---

func TestNewServer_NilSource(t *testing.T) {
	_, err := NewServer(nil, nil)
	assert.Error(t, err)
}

// --- watcher-backed source ---

func TestServer_ServesReloadedLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	writeLibrary(t, path, buttonLibrary("the old description"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := patterns.NewWatcher(path, logger)
	require.NoError(t, err)
	defer w.Stop()

	s, err := NewServer(w, nil)
	require.NoError(t, err)

	result := callTool(t, s, makeRequest("get_component_pattern", map[string]any{"component": "button"}))
	assert.Contains(t, resultText(t, result), "the old description")

	writeLibrary(t, path, buttonLibrary("the new description"))
	require.NoError(t, w.Reload())

	result = callTool(t, s, makeRequest("get_component_pattern", map[string]any{"component": "button"}))
	text := resultText(t, result)
	assert.Contains(t, text, "the new description")
	assert.NotContains(t, text, "the old description")
}

func TestServer_DocFollowsReloadedLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	writeLibrary(t, path, buttonLibrary("the old description"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := patterns.NewWatcher(path, logger)
	require.NoError(t, err)
	defer w.Stop()

	s, err := NewServer(w, nil)
	require.NoError(t, err)

	// Prime the doc cache against the initial library.
	result := callTool(t, s, makeRequest("get_pattern_doc", map[string]any{"component": "button"}))
	require.True(t, strings.Contains(resultText(t, result), "the old description"))

	writeLibrary(t, path, buttonLibrary("the new description"))
	require.NoError(t, w.Reload())

	result = callTool(t, s, makeRequest("get_pattern_doc", map[string]any{"component": "button"}))
	assert.Contains(t, resultText(t, result), "the new description")
}
