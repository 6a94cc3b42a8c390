// Package mcp implements a stdio Model Context Protocol server: newline
// delimited JSON-RPC 2.0 frames carrying initialize, tools/list and
// tools/call. Requests are processed one at a time in arrival order.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"cytoscape-mcp/internal/toolkit"
)

// Server serves one client over a transport, answering tool discovery and
// dispatching tool calls to a registry.
type Server struct {
	transport *Transport
	registry  *toolkit.Registry
	logger    *slog.Logger
	name      string
	version   string
}

// NewServer builds a server over the given streams. Protocol traffic owns the
// writer, so the logger must not write to it.
func NewServer(name, version string, reg *toolkit.Registry, r io.Reader, w io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		transport: NewTransport(r, w),
		registry:  reg,
		logger:    logger,
		name:      name,
		version:   version,
	}
}

// Run reads and answers messages until the stream ends. Returns io.EOF on a
// clean client disconnect.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server started", "name", s.name, "version", s.version)
	for {
		msg, err := s.transport.ReadMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("client disconnected")
			} else {
				s.logger.Error("read failed", "error", err)
			}
			return err
		}
		s.logger.Debug("message received", "method", msg.Method, "id", msg.ID)
		if err := s.handleMessage(ctx, msg); err != nil {
			s.logger.Error("handler failed", "method", msg.Method, "error", err)
			if werr := s.transport.WriteError(msg.ID, codeInternalError, err.Error()); werr != nil {
				return werr
			}
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg *Message) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "notifications/initialized":
		// Client acknowledgment, no response needed.
		return nil
	case "tools/list":
		return s.handleToolsList(msg)
	case "tools/call":
		return s.handleToolsCall(ctx, msg)
	default:
		if msg.ID != nil {
			return s.transport.WriteError(msg.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method))
		}
		// Unknown notifications are dropped silently.
		return nil
	}
}

func (s *Server) handleInitialize(msg *Message) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return fmt.Errorf("invalid initialize params: %w", err)
		}
	}
	s.logger.Info("client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"protocol", params.ProtocolVersion)

	return s.transport.WriteResponse(msg.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    capabilities{Tools: map[string]any{}},
		ServerInfo:      serverInfo{Name: s.name, Version: s.version},
	})
}

func (s *Server) handleToolsList(msg *Message) error {
	tools := s.registry.Tools()
	descriptors := make([]toolDescriptor, 0, len(tools))
	for _, t := range tools {
		descriptors = append(descriptors, toolDescriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		})
	}
	return s.transport.WriteResponse(msg.ID, toolsListResult{Tools: descriptors})
}

// handleToolsCall always answers with a result frame. Tool failures, unknown
// tools included, travel as text content with isError set, never as JSON-RPC
// errors.
func (s *Server) handleToolsCall(ctx context.Context, msg *Message) error {
	var params toolsCallParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.transport.WriteError(msg.ID, codeInvalidParams, fmt.Sprintf("invalid tools/call params: %v", err))
	}
	res := s.registry.Dispatch(ctx, params.Name, params.Arguments)
	return s.transport.WriteResponse(msg.ID, toolsCallResult{
		Content: []content{{Type: "text", Text: res.Text}},
		IsError: res.IsError,
	})
}
