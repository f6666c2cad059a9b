package tool_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/slack-vacation/internal/auth"
	"github.com/hal9000y/slack-vacation/internal/slack"
	"github.com/hal9000y/slack-vacation/internal/tool"
	"github.com/hal9000y/slack-vacation/internal/vacation"
)

// TestIntegrationSlackVacation changes the real display name and restores it.
func TestIntegrationSlackVacation(t *testing.T) {
	envFile := os.Getenv("ENV_FILE")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			t.Logf("Warning: could not load env file %s: %v", envFile, err)
		}
	}

	if os.Getenv("SLACK_INTEGRATION") == "" {
		t.Skip("Skipping integration test: SLACK_INTEGRATION and SLACK_TOKEN env vars must be set")
	}
	tok, err := auth.NewToken(os.Getenv("SLACK_TOKEN"))
	if err != nil {
		t.Skip("Skipping integration test: SLACK_TOKEN must be set")
	}

	clt, err := slack.NewClient(slack.Config{}, tok.Client(auth.DefaultTimeout))
	require.NoError(t, err)

	ctx := context.Background()
	original, err := clt.DisplayName(ctx)
	require.NoError(t, err)
	t.Logf("Current display name: %q", original)
	if strings.Contains(original, "(") {
		t.Skipf("Skipping integration test: display name %q contains '(' and would not round trip", original)
	}

	defer func() {
		if err := clt.SetDisplayName(ctx, original); err != nil {
			t.Errorf("failed to restore display name %q: %v", original, err)
		}
	}()

	server := tool.NewServer(vacation.NewService(clt, clt), nil)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "enter_vacation",
		Arguments: tool.EnterVacationRequest{Date: "12/31"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "Enter failed: %v", result.Content)
	assert.Equal(t, original+"(12/31休)", decodeDisplayName(t, result).DisplayName)

	result, err = clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "return_from_vacation",
		Arguments: tool.ReturnFromVacationRequest{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "Return failed: %v", result.Content)
	assert.Equal(t, original, decodeDisplayName(t, result).DisplayName)
}
