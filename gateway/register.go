package gateway

import (
	"context"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lucille-world/lucille-mcp/brain"
	"github.com/lucille-world/lucille-mcp/schema"
)

// addressPatternSrc is the wallet address pattern, shared between the input
// schemas and the local verify_wallet check.
const addressPatternSrc = `^0x[0-9a-fA-F]{40}$`

// Argument payloads for the parameterized tools. The MCP server validates
// each invocation against the tool's schema before unmarshaling into these.

type playArgs struct {
	Message   string `json:"message"`
	Player    string `json:"player"`
	TxHash    string `json:"tx_hash,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

type historyArgs struct {
	Limit  int    `json:"limit,omitempty"`
	Round  int    `json:"round,omitempty"`
	Player string `json:"player,omitempty"`
}

type playerArgs struct {
	Player string `json:"player"`
}

type addressArgs struct {
	Address string `json:"address"`
}

// Register declares all eleven tools on the MCP server.
func (g *Gateway) Register(server *mcp.Server) {
	addressSchema := func(desc string) *jsonschema.Schema {
		return schema.Pattern(desc, addressPatternSrc)
	}

	addTool(g, server, &mcp.Tool{
		Name:        "rules",
		Description: "How the Lucille jackpot game works: scoring, thresholds, costs, and limits.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.Rules()
	})

	addTool(g, server, &mcp.Tool{
		Name:        "status",
		Description: "Current game state: round, turn, jackpot, win threshold, phase, and active personality.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.Status(ctx)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "personality",
		Description: "Full profile of Lucille's active personality: mood, tastes, and a tip for winning her over.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.Personality(ctx)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "play",
		Description: "Submit a message to Lucille for scoring. Requires a paid play transaction; pass its hash.",
		InputSchema: schema.Object(map[string]*jsonschema.Schema{
			"message":    schema.BoundedString("Your message to Lucille", 1, 500),
			"player":     addressSchema("Your wallet address"),
			"tx_hash":    schema.StringWithDesc("Hash of the paid play transaction"),
			"agent_name": schema.StringWithDesc("A display name for your agent"),
		}, "message", "player"),
	}, func(ctx context.Context, args playArgs) string {
		return g.Play(ctx, brain.PlayRequest{
			Message:   args.Message,
			Player:    args.Player,
			TxHash:    args.TxHash,
			AgentName: args.AgentName,
		})
	})

	addTool(g, server, &mcp.Tool{
		Name:        "history",
		Description: "Recent attempts grouped by personality and round, optionally filtered.",
		InputSchema: schema.Object(map[string]*jsonschema.Schema{
			"limit":  schema.IntRangeDefault("Number of attempts to return", 1, 50, defaultHistoryLimit),
			"round":  schema.IntRange("Only attempts from this round", 1, 1000000),
			"player": addressSchema("Only attempts by this wallet"),
		}),
	}, func(ctx context.Context, args historyArgs) string {
		return g.History(ctx, brain.HistoryFilter{
			Limit:  args.Limit,
			Round:  args.Round,
			Player: args.Player,
		})
	})

	addTool(g, server, &mcp.Tool{
		Name:        "leaderboard",
		Description: "Every round's personality and winner, one line per round.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.Leaderboard(ctx)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "my_stats",
		Description: "Your aggregate stats: attempts, wins, best and average score, NFTs, and recent attempts.",
		InputSchema: schema.Object(map[string]*jsonschema.Schema{
			"player": addressSchema("Your wallet address"),
		}, "player"),
	}, func(ctx context.Context, args playerArgs) string {
		return g.MyStats(ctx, args.Player)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "round_strategy",
		Description: "Advice for the current round: threshold, phase, jackpot, personality mood, and play cost.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.RoundStrategy(ctx)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "verify_wallet",
		Description: "Check whether a string is a valid wallet address. Local check, no network call.",
		InputSchema: schema.Object(map[string]*jsonschema.Schema{
			"address": schema.StringWithDesc("The candidate wallet address"),
		}, "address"),
	}, func(ctx context.Context, args addressArgs) string {
		return g.VerifyWallet(args.Address)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "claim_eth",
		Description: "Claim test ETH from the faucet for an empty wallet. Subject to a cooldown.",
		InputSchema: schema.Object(map[string]*jsonschema.Schema{
			"address": addressSchema("The wallet to fund"),
		}, "address"),
	}, func(ctx context.Context, args addressArgs) string {
		return g.ClaimEth(ctx, args.Address)
	})

	addTool(g, server, &mcp.Tool{
		Name:        "contract_info",
		Description: "Game contract address, chain, RPC URL, ABI fragment, and client usage examples.",
		InputSchema: schema.Object(nil),
	}, func(ctx context.Context, _ struct{}) string {
		return g.ContractInfo(ctx)
	})
}

// addTool wires one gateway handler onto the server, logging each invocation
// with a generated call id. Handlers return text; upstream failures have
// already been rendered as guidance, so the tool never reports an error to
// the host.
func addTool[In any](g *Gateway, server *mcp.Server, t *mcp.Tool, fn func(context.Context, In) string) {
	mcp.AddTool(server, t, func(ctx context.Context, req *mcp.CallToolRequest, args In) (*mcp.CallToolResult, any, error) {
		callID := uuid.NewString()
		start := time.Now()
		g.logger.Debug("tool call started", "tool", t.Name, "call_id", callID)

		text := fn(ctx, args)

		g.logger.Info("tool call finished",
			"tool", t.Name,
			"call_id", callID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return textResult(text), nil, nil
	})
}

// textResult wraps a text block as a single-content tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
