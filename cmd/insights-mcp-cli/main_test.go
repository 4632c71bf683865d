package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	args, err := parseArgs("")
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = parseArgs(`{"cve": "CVE-2021-44228", "page": 2}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"cve": "CVE-2021-44228", "page": float64(2)}, args)

	_, err = parseArgs(`["not", "an", "object"]`)
	require.Error(t, err)
}

func TestFindServer(t *testing.T) {
	path, err := findServer("/opt/insights-mcp", nil)
	require.NoError(t, err)
	assert.Equal(t, "/opt/insights-mcp", path)

	bin := filepath.Join(t.TempDir(), "insights-mcp")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	path, err = findServer("", []string{filepath.Join(t.TempDir(), "missing"), bin})
	require.NoError(t, err)
	assert.Equal(t, bin, path)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, "get_cve_details", &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: `{"cve_list": {}}`}},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"cve_list\": {}}\n", buf.String())

	buf.Reset()
	err = printResult(&buf, "get_cve_details", &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: `{"Unexpected HTTP status code": "404, content: not found"}`}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404, content: not found")
	assert.Empty(t, buf.String())
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "call")
}
