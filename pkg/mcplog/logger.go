// Package mcplog appends one JSONL record per MCP tool call, so local tool
// traffic can be inspected without attaching a debugger to the stdio stream.
package mcplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Entry is the schema for one JSONL line.
type Entry struct {
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	Error         *string        `json:"error,omitempty"`
}

// Logger appends entries to an append-only file.
// Safe for concurrent use. A nil *Logger is a valid disabled logger: every
// method is a no-op.
type Logger struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

// Open opens (or creates) the log file at path, creating parent directories
// as needed. An empty path returns a nil (disabled) logger.
func Open(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("mcplog: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	return &Logger{f: f, enc: json.NewEncoder(f)}, nil
}

// Record builds and appends the entry for one completed tool call.
// Write failures are swallowed: logging must never affect a tool result.
func (l *Logger) Record(tool string, args map[string]any, start time.Time, result *mcp.CallToolResult, callErr error) {
	if l == nil {
		return
	}

	entry := Entry{
		Ts:            start.UTC().Format(time.RFC3339),
		Tool:          tool,
		Params:        sanitizeParams(args),
		DurationMs:    time.Since(start).Milliseconds(),
		ResponseBytes: responseBytes(result),
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.Error = &msg
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// sanitizeParams copies args for logging. String values longer than
// shortStringMax bytes are replaced with a "{key}_len" integer entry so that
// large payloads never land in the log file.
func sanitizeParams(args map[string]any) map[string]any {
	const shortStringMax = 64
	out := make(map[string]any, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok && len(s) > shortStringMax {
			out[k+"_len"] = len(s)
		} else {
			out[k] = v
		}
	}
	return out
}

// responseBytes returns the serialized length of a result's content,
// 0 for a nil result or on marshal error.
func responseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}
