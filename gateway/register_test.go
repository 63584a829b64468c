package gateway

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestSession wires the gateway onto an MCP server and connects a
// client over in-memory transports.
func connectTestSession(t *testing.T, g *Gateway) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{Name: "lucille", Version: "test"}, nil)
	g.Register(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func TestRegisterExposesElevenTools(t *testing.T) {
	session := connectTestSession(t, New(nil, nil))

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"claim_eth",
		"contract_info",
		"history",
		"leaderboard",
		"my_stats",
		"personality",
		"play",
		"round_strategy",
		"rules",
		"status",
		"verify_wallet",
	}, names)
}

func TestCallRulesOverProtocol(t *testing.T) {
	session := connectTestSession(t, New(nil, nil))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "rules",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "tools return a single text block")
	assert.Contains(t, text.Text, "How to play Lucille")
}

func TestCallVerifyWalletOverProtocol(t *testing.T) {
	session := connectTestSession(t, New(nil, nil))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "verify_wallet",
		Arguments: map[string]any{"address": "0x123"},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text := res.Content[0].(*mcp.TextContent)
	assert.Contains(t, text.Text, "❌")
	assert.Contains(t, text.Text, "0x123")
}

// Schema violations are rejected before dispatch: they surface as a
// protocol-level failure, never as gateway guidance text.

func TestSchemaRejectsOversizedMessage(t *testing.T) {
	session := connectTestSession(t, New(nil, nil))

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "play",
		Arguments: map[string]any{
			"message": strings.Repeat("a", 501),
			"player":  "0x1234567890abcdef1234567890abcdef12345678",
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxLength")
}

func TestSchemaRejectsMalformedAddress(t *testing.T) {
	session := connectTestSession(t, New(nil, nil))

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "my_stats",
		Arguments: map[string]any{"player": "not-an-address"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern")
}
