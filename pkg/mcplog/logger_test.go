package mcplog

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyPathDisabled(t *testing.T) {
	l, err := Open("")
	require.NoError(t, err)
	assert.Nil(t, l)

	// A nil logger is usable: every method is a no-op.
	l.Record("tool", nil, time.Now(), nil, nil)
	assert.NoError(t, l.Close())
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tools.jsonl")
	l, err := Open(path)
	require.NoError(t, err)
	defer l.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func readEntries(t *testing.T, path string) []Entry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestRecord_WritesOneLinePerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	l, err := Open(path)
	require.NoError(t, err)

	result := mcp.NewToolResultText("hello")
	l.Record("get_component_pattern", map[string]any{"component": "button"}, time.Now(), result, nil)
	l.Record("search_patterns", map[string]any{"query": "toast"}, time.Now(), nil, errors.New("boom"))
	require.NoError(t, l.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)

	assert.Equal(t, "get_component_pattern", entries[0].Tool)
	assert.Equal(t, "button", entries[0].Params["component"])
	assert.Greater(t, entries[0].ResponseBytes, 0)
	assert.Nil(t, entries[0].Error)

	assert.Equal(t, "search_patterns", entries[1].Tool)
	assert.Equal(t, 0, entries[1].ResponseBytes)
	require.NotNil(t, entries[1].Error)
	assert.Equal(t, "boom", *entries[1].Error)
}

func TestRecord_SanitizesLongStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	l, err := Open(path)
	require.NoError(t, err)

	long := strings.Repeat("x", 200)
	l.Record("search_patterns", map[string]any{"query": long, "short": "ok"}, time.Now(), nil, nil)
	require.NoError(t, l.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)

	params := entries[0].Params
	assert.NotContains(t, params, "query")
	assert.Equal(t, float64(200), params["query_len"])
	assert.Equal(t, "ok", params["short"])
}

func TestRecord_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")
	l, err := Open(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Record("list_component_patterns", nil, time.Now(), nil, nil)
		}()
	}
	wg.Wait()
	require.NoError(t, l.Close())

	assert.Len(t, readEntries(t, path), 10)
}
