// Command cytoscape-mcp is an MCP server that drives a running Cytoscape
// desktop instance through its CyREST API over stdio.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/mcp"
	"cytoscape-mcp/internal/toolkit"
	"cytoscape-mcp/internal/tools"
)

const (
	name    = "cytoscape-mcp"
	version = "0.1.0"
)

func main() {
	logFile := flag.String("log-file", "", "Path to log file (default: ~/cytoscape-mcp.log)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", name)
		fmt.Fprintf(os.Stderr, "An MCP server exposing Cytoscape network analysis tools over stdio.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  CYTOSCAPE_HOST       CyREST host (default: localhost)\n")
		fmt.Fprintf(os.Stderr, "  CYTOSCAPE_PORT       CyREST port (default: 1234)\n")
		fmt.Fprintf(os.Stderr, "  CYTOSCAPE_MCP_LOG    Path to log file (overridden by --log-file)\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Fprintf(os.Stderr, "%s v%s\n", name, version)
		os.Exit(0)
	}

	// stdout carries the protocol, so logs go to a file, or stderr as a
	// fallback.
	logger, closeLog := newLogger(logFilePath(*logFile))
	defer closeLog()

	if err := run(logger); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("server failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	client := cyrest.New(cyrestBaseURL(), nil)

	if _, err := client.Version(context.Background()); err != nil {
		logger.Warn("Cytoscape is not reachable, serving anyway", "base_url", client.BaseURL, "error", err)
	}

	reg, err := tools.NewRegistry(client)
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}
	reg.Use(toolkit.WithLogging(logger))

	srv := mcp.NewServer(name, version, reg, os.Stdin, os.Stdout, logger)
	return srv.Run(context.Background())
}

func newLogger(path string) (*slog.Logger, func()) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		logger.Warn("cannot open log file, logging to stderr", "path", path, "error", err)
		return logger, func() {}
	}
	return slog.New(slog.NewJSONHandler(f, nil)), func() { _ = f.Close() }
}

func logFilePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv("CYTOSCAPE_MCP_LOG"); envValue != "" {
		return envValue
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cytoscape-mcp.log"
	}
	return filepath.Join(home, "cytoscape-mcp.log")
}

func cyrestBaseURL() string {
	host := os.Getenv("CYTOSCAPE_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("CYTOSCAPE_PORT")
	if port == "" {
		port = "1234"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}
