// Package gateway translates tool invocations into Brain API calls and
// formats the results as agent-readable text.
//
// Every handler terminates in a text block: upstream failures are classified
// by the apierr package and rendered as guidance, never surfaced as
// protocol-level errors. Handlers hold no state across invocations and are
// safe for concurrent use.
package gateway

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/lucille-world/lucille-mcp/apierr"
	"github.com/lucille-world/lucille-mcp/brain"
)

// defaultHistoryLimit is applied when a history call omits the limit.
const defaultHistoryLimit = 20

// addressPattern matches an EVM wallet address: 0x plus exactly 40 hex
// digits, case-insensitive, no surrounding whitespace.
var addressPattern = regexp.MustCompile(addressPatternSrc)

// Gateway exposes the Lucille game as callable tools.
type Gateway struct {
	brain  *brain.Client
	logger *slog.Logger
}

// New creates a Gateway backed by the given Brain API client.
func New(client *brain.Client, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		brain:  client,
		logger: logger,
	}
}

// Rules returns the static game rules. No network call.
func (g *Gateway) Rules() string {
	return rulesText
}

// Status reports the current round, turn, jackpot, threshold, phase, and
// active personality.
func (g *Gateway) Status(ctx context.Context) string {
	state, err := g.brain.GameState(ctx)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatStatus(state)
}

// Personality reports the active personality's full profile.
func (g *Gateway) Personality(ctx context.Context) string {
	p, err := g.brain.Personality(ctx)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatPersonality(p)
}

// Play submits one scored attempt.
func (g *Gateway) Play(ctx context.Context, req brain.PlayRequest) string {
	result, err := g.brain.Play(ctx, req)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatPlay(result)
}

// History lists recent attempts grouped by personality and round.
func (g *Gateway) History(ctx context.Context, filter brain.HistoryFilter) string {
	if filter.Limit == 0 {
		filter.Limit = defaultHistoryLimit
	}
	h, err := g.brain.History(ctx, filter)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatHistory(h)
}

// Leaderboard lists each round's personality and winner.
func (g *Gateway) Leaderboard(ctx context.Context) string {
	ph, err := g.brain.PersonalityHistory(ctx)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatLeaderboard(ph)
}

// MyStats reports aggregate stats for one player address.
func (g *Gateway) MyStats(ctx context.Context, player string) string {
	stats, err := g.brain.AgentStats(ctx, player)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatStats(stats)
}

// RoundStrategy reports advice for beating the current personality.
func (g *Gateway) RoundStrategy(ctx context.Context) string {
	s, err := g.brain.Strategy(ctx)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatStrategy(s)
}

// VerifyWallet checks an address against the wallet format locally.
// No network call; identical input yields identical output.
func (g *Gateway) VerifyWallet(address string) string {
	return formatVerifyWallet(address)
}

// ClaimEth requests test ETH from the faucet for the given address.
func (g *Gateway) ClaimEth(ctx context.Context, address string) string {
	result, err := g.brain.Drip(ctx, address)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatDrip(result)
}

// ContractInfo merges live game costs with the static contract metadata.
func (g *Gateway) ContractInfo(ctx context.Context) string {
	state, err := g.brain.GameState(ctx)
	if err != nil {
		return apierr.Classify(err).Guidance()
	}
	return formatContractInfo(state)
}
