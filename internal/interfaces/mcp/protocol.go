package mcp

import (
	"encoding/json"
	"errors"

	"github.com/ovalline/cricketstats/internal/usecase"
)

const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// isNotification reports whether the request expects no response.
func (r request) isNotification() bool {
	return r.ID == nil
}

type response struct {
	JSONRPC string       `json:"jsonrpc"`
	ID      any          `json:"id"`
	Result  any          `json:"result,omitempty"`
	Error   *errorObject `json:"error,omitempty"`
}

type errorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      serverInfo     `json:"serverInfo"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type toolsListResult struct {
	Tools []toolDescriptor `json:"tools"`
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type callResult struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func okResponse(id, result any) response {
	return response{JSONRPC: "2.0", ID: id, Result: result}
}

func errResponse(id any, code int, message string) response {
	return response{JSONRPC: "2.0", ID: id, Error: &errorObject{Code: code, Message: message}}
}

// errorCode maps a dispatch failure onto the wire code the caller sees.
func errorCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnknownOperation):
		return codeMethodNotFound
	case errors.Is(err, usecase.ErrMissingArgument),
		errors.Is(err, usecase.ErrInvalidFilter),
		errors.Is(err, usecase.ErrMalformedRecord):
		return codeInvalidParams
	default:
		return codeInternalError
	}
}
