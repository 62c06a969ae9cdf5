package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/appname/internal/launch"
)

// boolParam reads a boolean tool argument.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func (s *Server) report(ctx context.Context, request mcp.CallToolRequest) (launch.Report, error) {
	if boolParam(request.GetArguments(), "fresh", false) {
		s.cache.Invalidate()
	}
	return s.inspect(ctx)
}

func (s *Server) handleAppName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rep, err := s.report(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%q", rep.Name)), nil
}

func (s *Server) handleAppInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rep, err := s.report(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := yaml.Marshal(rep)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
