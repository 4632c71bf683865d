package insightsmcp

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redhatinsights/insights-mcp/internal/insights"
	"github.com/redhatinsights/insights-mcp/internal/toolsets"
)

const (
	serverName   = "insights-mcp"
	instructions = "Red Hat Insights"
)

// ToolsetFunc builds a toolset whose tools call through c.
type ToolsetFunc func(c toolsets.Caller) toolsets.Toolset

// DefaultToolsets are registered by Run.
var DefaultToolsets = []ToolsetFunc{
	toolsets.Vulnerability,
	toolsets.VMaaS,
}

// Registry binds toolsets to an MCP server and owns the client shared by
// every tool handler.
type Registry struct {
	server *mcp.Server
	client toolsets.Caller
	logger *slog.Logger
	tools  map[string]string // tool name -> toolset name
}

// NewRegistry creates an MCP server whose tools will call through client.
func NewRegistry(client toolsets.Caller, version string, logger *slog.Logger) *Registry {
	if version == "" {
		version = "dev"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})
	server.AddReceivingMiddleware(loggingMiddleware(logger))

	return &Registry{
		server: server,
		client: client,
		logger: logger,
		tools:  make(map[string]string),
	}
}

// RegisterToolsets instantiates each toolset and adds its tools to the
// server. A tool name may only be registered once.
func (r *Registry) RegisterToolsets(fns ...ToolsetFunc) error {
	for _, fn := range fns {
		ts := fn(r.client)
		for _, tool := range ts.Tools {
			if owner, ok := r.tools[tool.Tool.Name]; ok {
				return fmt.Errorf("tool %q from toolset %q already registered by toolset %q", tool.Tool.Name, ts.Name, owner)
			}
		}
		for _, tool := range ts.Tools {
			tool.Register(r.server)
			r.tools[tool.Tool.Name] = ts.Name
		}
		r.logger.Debug("registered toolset", "toolset", ts.Name, "tools", len(ts.Tools))
	}
	return nil
}

// Tools returns the registered tool names in sorted order.
func (r *Registry) Tools() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Server returns the underlying MCP server.
func (r *Registry) Server() *mcp.Server {
	return r.server
}

// Run serves the registered tools over t until the client disconnects or ctx
// is cancelled.
func (r *Registry) Run(ctx context.Context, t mcp.Transport) error {
	r.logger.Info("serving tools", "tools", len(r.tools))
	return r.server.Run(ctx, t)
}

// Options configures Run.
type Options struct {
	RefreshToken string
	Version      string
	Logger       *slog.Logger
}

// Run starts the MCP server on stdio with the default toolsets. The API
// client lives for the duration of the call and is closed on return.
func Run(ctx context.Context, opts Options) error {
	client, err := insights.NewClient(insights.Config{
		RefreshToken: opts.RefreshToken,
		Logger:       opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create insights client: %w", err)
	}
	defer client.Close()

	registry := NewRegistry(client, opts.Version, opts.Logger)
	if err := registry.RegisterToolsets(DefaultToolsets...); err != nil {
		return err
	}
	return registry.Run(ctx, &mcp.StdioTransport{})
}

// loggingMiddleware logs every tool call with its duration.
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			params, ok := req.GetParams().(*mcp.CallToolParamsRaw)
			if !ok {
				return next(ctx, method, req)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs := []any{"tool", params.Name, "duration_ms", time.Since(start).Milliseconds()}
			switch {
			case err != nil:
				logger.Error("tool call failed", append(attrs, "error", err)...)
			case isToolError(result):
				logger.Warn("tool returned error", attrs...)
			default:
				logger.Info("tool call", attrs...)
			}
			return result, err
		}
	}
}

func isToolError(result mcp.Result) bool {
	res, ok := result.(*mcp.CallToolResult)
	return ok && res.IsError
}
