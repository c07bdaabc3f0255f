// Package mcp exposes the pattern catalog over the Model Context Protocol,
// so coding agents can query component anatomy, states, and accessibility
// rules while generating UI code.
package mcp

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uipatterns/pkg/docgen"
	"github.com/gnana997/uipatterns/pkg/mcplog"
	"github.com/gnana997/uipatterns/pkg/patterns"
)

const serverVersion = "0.1.0-dev"

// QuerySource yields the currently active QueryService. Handlers resolve the
// source on every tool call, so a source backed by a *patterns.Watcher serves
// reloaded libraries without a server restart.
type QuerySource interface {
	Query() *patterns.QueryService
}

type staticSource struct {
	qs *patterns.QueryService
}

func (s staticSource) Query() *patterns.QueryService { return s.qs }

// Static wraps a fixed QueryService as a QuerySource, for libraries that
// never change (the bundled catalog, or a one-shot external load).
func Static(qs *patterns.QueryService) QuerySource {
	return staticSource{qs: qs}
}

// Server implements the MCP server for uipatterns, exposing the catalog's
// lookup and search operations as tools.
type Server struct {
	mcpServer *server.MCPServer
	source    QuerySource
	logger    *mcplog.Logger // nil = tool-call logging disabled

	// Doc generator for the library the last doc render saw; rebuilt when
	// the source swaps in a new QueryService.
	docMu  sync.Mutex
	docsQS *patterns.QueryService
	docs   *docgen.Generator
}

// NewServer creates a new MCP server over the given source.
// logger may be nil to disable tool-call logging.
func NewServer(source QuerySource, logger *mcplog.Logger) (*Server, error) {
	if source == nil || source.Query() == nil {
		return nil, fmt.Errorf("mcp: query source is required")
	}

	s := &Server{source: source, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("uipatterns", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentPatternsTool(), Handler: s.handleListComponentPatterns},
		server.ServerTool{Tool: getComponentPatternTool(), Handler: s.handleGetComponentPattern},
		server.ServerTool{Tool: getComponentStateStylesTool(), Handler: s.handleGetComponentStateStyles},
		server.ServerTool{Tool: getAccessibilityRequirementsTool(), Handler: s.handleGetAccessibilityRequirements},
		server.ServerTool{Tool: getUsageGuidanceTool(), Handler: s.handleGetUsageGuidance},
		server.ServerTool{Tool: searchPatternsTool(), Handler: s.handleSearchPatterns},
		server.ServerTool{Tool: getPatternDocTool(), Handler: s.handleGetPatternDoc},
	)

	return s, nil
}

// query resolves the currently active QueryService.
func (s *Server) query() *patterns.QueryService {
	return s.source.Query()
}

// docsFor returns a doc generator over qs. The generator caches rendered
// documents, so it is replaced whenever the active library changes.
func (s *Server) docsFor(qs *patterns.QueryService) (*docgen.Generator, error) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	if s.docs == nil || s.docsQS != qs {
		gen, err := docgen.NewGenerator(qs)
		if err != nil {
			return nil, fmt.Errorf("mcp: create doc generator: %w", err)
		}
		s.docs = gen
		s.docsQS = qs
	}
	return s.docs, nil
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
