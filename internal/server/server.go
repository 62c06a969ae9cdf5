// Package server exposes the application report as MCP tools.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gitlab.com/tozd/go/errors"

	"github.com/mj1618/appname/internal/launch"
	"github.com/mj1618/appname/internal/mainthread"
	"github.com/mj1618/appname/internal/objc"
	"github.com/mj1618/appname/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server. Every runtime call goes through runner.
type Server struct {
	binding *objc.Binding
	runner  *mainthread.Runner
	cache   *ReportCache
	mcp     *mcpserver.MCPServer
}

// New creates and configures an MCP server with all appname tools.
func New(b *objc.Binding, runner *mainthread.Runner, cfg Config) *Server {
	s := &Server{
		binding: b,
		runner:  runner,
		cache:   NewReportCache(cfg.CacheTTL),
	}
	s.mcp = mcpserver.NewMCPServer("appname", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport. It blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return ValidateTransport(cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("app_name",
			mcp.WithDescription("Return the application's display name: CFBundleDisplayName, then CFBundleName, then the OS process name"),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the report cache")),
		),
		s.handleAppName,
	)

	s.mcp.AddTool(
		mcp.NewTool("app_info",
			mcp.WithDescription("Return the application's name, name source, bundle identifier, process name, PID and activation policy"),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the report cache")),
		),
		s.handleAppInfo,
	)
}

// ValidateTransport checks a transport name before anything is started.
func ValidateTransport(t string) error {
	switch t {
	case "stdio", "streamable-http":
		return nil
	default:
		return errors.Errorf("unsupported transport: %s (use stdio or streamable-http)", t)
	}
}

// inspect gathers a report on the main thread.
func (s *Server) inspect(ctx context.Context) (launch.Report, error) {
	return s.cache.Get(func() (launch.Report, error) {
		var (
			rep   launch.Report
			inner error
		)
		if err := s.runner.Do(ctx, func() {
			rep, inner = launch.Inspect(ctx, s.binding)
		}); err != nil {
			return rep, err
		}
		return rep, inner
	})
}
