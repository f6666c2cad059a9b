package tool_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/slack-vacation/internal/tool"
)

type mcpSession struct {
	ctx    context.Context
	client *mcp.ClientSession
	server *mcp.ServerSession
}

func (s *mcpSession) Close() {
	s.client.Close()
	s.server.Close()
}

func setupMCPSession(t *testing.T, svc *vacationSvcMock, now func() time.Time) *mcpSession {
	t.Helper()

	server := tool.NewServer(svc, now)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	return &mcpSession{
		ctx:    ctx,
		client: clientSession,
		server: serverSession,
	}
}

func decodeDisplayName(t *testing.T, result *mcp.CallToolResult) tool.DisplayNameResponse {
	t.Helper()

	var response tool.DisplayNameResponse
	require.NoError(
		t,
		json.Unmarshal(
			[]byte(result.Content[0].(*mcp.TextContent).Text),
			&response,
		),
	)
	return response
}
