// Package toolsets defines the MCP tools exposed by the server. Every tool
// maps its typed parameters onto a fixed Insights API endpoint and delegates
// the call to a Caller.
package toolsets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	ierrors "github.com/redhatinsights/insights-mcp/internal/errors"
)

const logger = "insights"

// Caller performs authenticated calls against the Insights API.
type Caller interface {
	Get(ctx context.Context, endpoint string, params map[string]any) (any, error)
	Post(ctx context.Context, endpoint string, body any) (any, error)
}

// Toolset is a named group of tools backed by one API.
type Toolset struct {
	Name        string
	Description string
	Tools       []ServerTool
}

// ServerTool pairs a tool descriptor, including its input schema, with the
// function that installs the typed handler on a server.
type ServerTool struct {
	Tool    *mcp.Tool
	install func(*mcp.Server)
}

// Register adds the tool to s.
func (t ServerTool) Register(s *mcp.Server) {
	t.install(s)
}

func newTool[In any](name, description string, call func(context.Context, In) (any, error)) ServerTool {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		panic(fmt.Errorf("tool %q: input schema: %w", name, err))
	}
	tool := &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}
	return ServerTool{
		Tool: tool,
		install: func(s *mcp.Server) {
			mcp.AddTool(s, tool, handler(name, call))
		},
	}
}

func handler[In any](name string, call func(context.Context, In) (any, error)) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args In) (*mcp.CallToolResult, any, error) {
		logToSession(ctx, req, "debug", fmt.Sprintf("Calling Insights API for %s", name))

		result, err := call(ctx, args)
		if err != nil {
			logToSession(ctx, req, "error", fmt.Sprintf("%s failed: %v", name, err))
			return ErrorResult(err), nil, nil
		}

		res, err := Result(result)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		return res, nil, nil
	}
}

// Result renders a decoded API response as a tool result. JSON objects are
// also attached as structured content.
func Result(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	res := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
	if obj, ok := v.(map[string]any); ok {
		res.StructuredContent = obj
	}
	return res, nil
}

// ErrorResult renders err as a tool error whose text is the
// {"<label>": "<message>"} payload.
func ErrorResult(err error) *mcp.CallToolResult {
	payload := ierrors.Payload(err)
	data, mErr := json.Marshal(payload)
	if mErr != nil {
		data = []byte(err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}

func logToSession(ctx context.Context, req *mcp.CallToolRequest, level mcp.LoggingLevel, msg string) {
	if req == nil || req.Session == nil {
		return
	}
	_ = req.Session.Log(ctx, &mcp.LoggingMessageParams{
		Data:   msg,
		Level:  level,
		Logger: logger,
	})
}
