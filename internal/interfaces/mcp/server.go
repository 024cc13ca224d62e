package mcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/ovalline/cricketstats/internal/platform/logging"
)

// maxLineBytes bounds one request line. Match files are ingested out of band,
// so requests stay small; this is headroom, not a target.
const maxLineBytes = 4 << 20

// Server speaks line-delimited JSON-RPC 2.0 over a reader/writer pair,
// normally stdin and stdout.
type Server struct {
	dispatcher *Dispatcher
	logger     *logging.Logger
	name       string
	version    string
}

func NewServer(dispatcher *Dispatcher, logger *logging.Logger, name, version string) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		dispatcher: dispatcher,
		logger:     logger,
		name:       name,
		version:    version,
	}
}

// Run reads one request per line until EOF or context cancellation. Every
// failure is answered on the wire; the loop itself only stops on transport
// errors.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req request
		if err := sonic.UnmarshalString(line, &req); err != nil {
			s.logger.WarnContext(ctx, "unparseable request", "error", err)
			if err := s.writeResponse(out, errResponse(nil, codeParseError, "parse error")); err != nil {
				return err
			}
			continue
		}

		resp, reply := s.handle(ctx, req)
		if !reply {
			continue
		}
		if err := s.writeResponse(out, resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request stream: %w", err)
	}
	return nil
}

func (s *Server) handle(ctx context.Context, req request) (response, bool) {
	if req.isNotification() {
		// Notifications such as notifications/initialized get no reply.
		return response{}, false
	}

	switch req.Method {
	case "initialize":
		return okResponse(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		}), true
	case "tools/list":
		return okResponse(req.ID, toolsListResult{Tools: toolDescriptors()}), true
	case "resources/list":
		return okResponse(req.ID, map[string]any{"resources": []any{}}), true
	case "prompts/list":
		return okResponse(req.ID, map[string]any{"prompts": []any{}}), true
	case "tools/call":
		return s.handleCall(ctx, req), true
	default:
		return errResponse(req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method)), true
	}
}

func (s *Server) handleCall(ctx context.Context, req request) response {
	var params callParams
	if len(req.Params) > 0 {
		if err := sonic.Unmarshal(req.Params, &params); err != nil {
			return errResponse(req.ID, codeInvalidParams, "invalid tool call params")
		}
	}
	if params.Name == "" {
		return errResponse(req.ID, codeInvalidParams, "tool name is required")
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	payload, err := s.dispatcher.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.WarnContext(ctx, "tool call failed", "tool", params.Name, "error", err)
		return errResponse(req.ID, errorCode(err), err.Error())
	}

	text, err := sonic.MarshalString(payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "encode tool payload", "tool", params.Name, "error", err)
		return errResponse(req.ID, codeInternalError, "encode payload")
	}

	return okResponse(req.ID, callResult{
		Content: []contentBlock{{Type: "text", Text: text}},
	})
}

func (s *Server) writeResponse(out io.Writer, resp response) error {
	encoded, err := sonic.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(encoded)
	_ = buf.WriteByte('\n')

	if _, err := out.Write(buf.B); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
