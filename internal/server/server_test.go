package server

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/appname/internal/launch"
	"github.com/mj1618/appname/internal/mainthread"
	"github.com/mj1618/appname/internal/objc"
	"github.com/mj1618/appname/internal/objc/objctest"
)

func newTestServer(t *testing.T, ttl time.Duration, opts ...objctest.Option) (*Server, *objctest.Runtime) {
	t.Helper()
	rt := objctest.New(opts...)
	runner := mainthread.New()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = runner.Run(ctx) }()
	return New(objc.NewBinding(rt), runner, Config{CacheTTL: ttl}), rt
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestHandleAppName(t *testing.T) {
	s, _ := newTestServer(t, 0,
		objctest.WithInfo("CFBundleDisplayName", "MyApp"),
		objctest.WithInfo("CFBundleName", "myapp"),
	)
	res, err := s.handleAppName(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, `"MyApp"`, resultText(t, res))
}

func TestHandleAppInfo(t *testing.T) {
	s, _ := newTestServer(t, 0,
		objctest.WithInfo("CFBundleName", "myapp"),
		objctest.WithProcessName("myapp-bin"),
		objctest.WithPID(77),
	)
	res, err := s.handleAppInfo(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var rep launch.Report
	require.NoError(t, yaml.Unmarshal([]byte(resultText(t, res)), &rep))
	assert.Equal(t, "myapp", rep.Name)
	assert.Equal(t, "bundle-name", string(rep.Source))
	assert.Equal(t, "myapp-bin", rep.ProcessName)
	assert.Equal(t, 77, rep.PID)
	assert.Nil(t, rep.PolicyAccepted)
}

func TestHandleAppName_MissingClass(t *testing.T) {
	s, _ := newTestServer(t, 0, objctest.WithoutClass("NSBundle"))
	res, err := s.handleAppName(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "class not found")
}

func TestHandlers_UseCache(t *testing.T) {
	s, rt := newTestServer(t, time.Hour)
	ctx := context.Background()

	_, err := s.handleAppName(ctx, callRequest(nil))
	require.NoError(t, err)
	n := len(rt.Calls())

	_, err = s.handleAppInfo(ctx, callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, n, len(rt.Calls()), "cached report must not touch the runtime")

	_, err = s.handleAppInfo(ctx, callRequest(map[string]interface{}{"fresh": true}))
	require.NoError(t, err)
	assert.Greater(t, len(rt.Calls()), n)
}

func TestValidateTransport(t *testing.T) {
	assert.NoError(t, ValidateTransport("stdio"))
	assert.NoError(t, ValidateTransport("streamable-http"))
	assert.Error(t, ValidateTransport("websocket"))
}
