package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redhatinsights/insights-mcp/internal/insightsmcp"
)

// These variables are set by the build process using ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const refreshTokenEnv = "HCC_REFRESH_TOKEN"

var (
	refreshToken string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "insights-mcp",
	Short: "Red Hat Insights MCP Server",
	Long: `A Model Context Protocol (MCP) server for Red Hat Insights.
This server exposes the Insights vulnerability and VMaaS APIs of console.redhat.com as MCP tools over standard input/output.

The refresh token is read from --refresh-token or the ` + refreshTokenEnv + ` environment variable.`,
	Version:      fmt.Sprintf("Version: %s\nCommit: %s\nBuild Date: %s", version, commit, date),
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth2 refresh token to get an access token for console.redhat.com (env "+refreshTokenEnv+")")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// resolveRefreshToken prefers the flag value and falls back to the environment.
func resolveRefreshToken(flagValue string, lookupEnv func(string) (string, bool)) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v, ok := lookupEnv(refreshTokenEnv); ok && v != "" {
		return v, nil
	}
	return "", errors.New("missing refresh token: set --refresh-token or " + refreshTokenEnv)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runServer(cmd *cobra.Command, args []string) error {
	token, err := resolveRefreshToken(refreshToken, os.LookupEnv)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// stdout carries the MCP stream; logs go to stderr.
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	logger.Info("starting insights-mcp", "version", version, "commit", commit)

	return insightsmcp.Run(ctx, insightsmcp.Options{
		RefreshToken: token,
		Version:      version,
		Logger:       logger,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
