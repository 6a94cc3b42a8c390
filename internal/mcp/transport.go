package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Transport frames JSON-RPC messages as newline-delimited JSON over a byte
// stream, one message per line.
type Transport struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewTransport wraps the given streams. The MCP convention is stdin/stdout;
// tests substitute buffers.
func NewTransport(r io.Reader, w io.Writer) *Transport {
	return &Transport{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ReadMessage reads the next line and parses it. Returns io.EOF when the
// client closes the stream.
func (t *Transport) ReadMessage() (*Message, error) {
	line, err := t.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			// A final message without a trailing newline is still a message.
			err = nil
		} else {
			return nil, err
		}
	}
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}
	return &msg, nil
}

// WriteMessage marshals a message and writes it as one line.
func (t *Transport) WriteMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	data = append(data, '\n')
	if _, err := t.writer.Write(data); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// WriteResponse writes a JSON-RPC result response.
func (t *Transport) WriteResponse(id any, result any) error {
	return t.WriteMessage(&Message{JSONRPC: "2.0", ID: id, Result: result})
}

// WriteError writes a JSON-RPC error response.
func (t *Transport) WriteError(id any, code int, message string) error {
	return t.WriteMessage(&Message{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message},
	})
}
