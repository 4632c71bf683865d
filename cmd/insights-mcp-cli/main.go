package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// Global variables for MCP client session
var (
	client  *mcp.Client
	session *mcp.ClientSession
	ctx     context.Context
)

var (
	serverPath string
	verbose    bool
)

// defaultServerPaths are searched when --server is not given.
var defaultServerPaths = []string{
	"./bin/insights-mcp",
	"../bin/insights-mcp",
	"./insights-mcp",
}

func findServer(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	if path, err := exec.LookPath("insights-mcp"); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("could not find insights-mcp binary in any of: %v or $PATH", candidates)
}

// parseArgs decodes the --args flag into tool arguments.
func parseArgs(raw string) (map[string]any, error) {
	args := map[string]any{}
	if raw == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %v", err)
	}
	return args, nil
}

func printResult(w io.Writer, toolName string, res *mcp.CallToolResult) error {
	if res.IsError {
		for _, c := range res.Content {
			if text, ok := c.(*mcp.TextContent); ok {
				return fmt.Errorf("%s tool failed: %s", toolName, text.Text)
			}
		}
		return fmt.Errorf("%s tool failed with unknown error", toolName)
	}

	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			fmt.Fprintln(w, text.Text)
		}
	}
	return nil
}

func executeMCPTool(toolName string, args map[string]any) error {
	params := &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	}

	res, err := session.CallTool(ctx, params)
	if err != nil {
		return fmt.Errorf("CallTool failed for %s: %v", toolName, err)
	}
	return printResult(os.Stdout, toolName, res)
}

func initMCPClient() error {
	ctx = context.Background()

	client = mcp.NewClient(
		&mcp.Implementation{Name: "insights-mcp-cli", Version: "v1.0.0"},
		&mcp.ClientOptions{
			LoggingMessageHandler: func(ctx context.Context, req *mcp.LoggingMessageRequest) {
				if verbose {
					fmt.Fprintf(os.Stderr, "[server log][%s] %v\n", req.Params.Level, req.Params.Data)
				}
			},
		},
	)

	path, err := findServer(serverPath, defaultServerPaths)
	if err != nil {
		return err
	}

	// The server inherits HCC_REFRESH_TOKEN from this process.
	cmd := exec.Command(path)
	if verbose {
		cmd.Args = append(cmd.Args, "--verbose")
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to get stderr pipe: %v", err)
	}
	go func() {
		scanner := bufio.NewScanner(stderrPipe)
		for scanner.Scan() {
			log.Printf("[server stderr] %s", scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Printf("Error reading server stderr: %v", err)
		}
	}()

	transport := &mcp.CommandTransport{Command: cmd}
	session, err = client.Connect(ctx, transport, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to MCP server: %v", err)
	}

	if verbose {
		if err := session.SetLoggingLevel(ctx, &mcp.SetLoggingLevelParams{Level: "debug"}); err != nil {
			log.Printf("Warning: failed to set logging level: %v", err)
		}
	}

	return nil
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "insights-mcp-cli",
		Short: "Debug client for the Red Hat Insights MCP server",
		Long: `insights-mcp-cli starts the insights-mcp server as a subprocess and talks to it over stdio.
The server reads its refresh token from the HCC_REFRESH_TOKEN environment variable.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initMCPClient()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if session != nil {
				session.Close()
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&serverPath, "server", "s", "", "Path to the insights-mcp binary")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show server log messages")

	// List tools command
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all available MCP tools",
		Long:  "List all available MCP tools from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listRes, err := session.ListTools(ctx, &mcp.ListToolsParams{})
			if err != nil {
				return fmt.Errorf("failed to list tools: %v", err)
			}
			for _, tool := range listRes.Tools {
				fmt.Printf("- %s: %s\n", tool.Name, tool.Description)
			}
			return nil
		},
	}

	// Call tool command
	var rawArgs string
	var callCmd = &cobra.Command{
		Use:   "call <tool>",
		Short: "Call an MCP tool",
		Long:  `Call an MCP tool by name with arguments given as a JSON object, e.g. call get_cve_details --args '{"cve": "CVE-2021-44228"}'`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := parseArgs(rawArgs)
			if err != nil {
				return err
			}
			return executeMCPTool(args[0], toolArgs)
		},
	}
	callCmd.Flags().StringVarP(&rawArgs, "args", "a", "", "Tool arguments as a JSON object")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(callCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
