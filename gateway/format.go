package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucille-world/lucille-mcp/brain"
)

// maxQuoteLen bounds messages and responses rendered in history output.
const maxQuoteLen = 200

// previewLen bounds message previews in stats output.
const previewLen = 80

// truncate cuts s to at most n runes. No ellipsis is added.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// truncateAddress shortens a wallet address to its first 6 and last 4
// characters, e.g. 0x1234...5678.
func truncateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// formatScore renders a score without trailing zeros.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// formatPercent renders a threshold as a percentage string, e.g. "92%".
func formatPercent(threshold float64) string {
	return formatScore(threshold) + "%"
}

func formatStatus(state *brain.GameState) string {
	view := struct {
		Round       int    `json:"round"`
		Turn        int    `json:"turn"`
		Phase       string `json:"phase"`
		Threshold   string `json:"threshold"`
		Jackpot     string `json:"jackpot"`
		Personality string `json:"personality"`
		Emoji       string `json:"emoji"`
	}{
		Round:       state.Round,
		Turn:        state.Turn,
		Phase:       state.Phase,
		Threshold:   formatPercent(state.Threshold),
		Jackpot:     state.Jackpot + " ETH",
		Personality: state.Personality.Name,
		Emoji:       state.Personality.Emoji,
	}
	body, _ := json.MarshalIndent(view, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "🎰 Lucille — Round %d, Turn %d\n\n", state.Round, state.Turn)
	b.Write(body)
	b.WriteString("\n\n")
	if state.Phase == "active" {
		fmt.Fprintf(&b, "%s %s is listening. Score above %s to take the jackpot.",
			state.Personality.Emoji, state.Personality.Name, formatPercent(state.Threshold))
	} else {
		b.WriteString("This round is over. A new personality takes the stage soon.")
	}
	return b.String()
}

func formatPersonality(p *brain.PersonalityInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎭 %s %s\n", p.Name, p.Emoji)
	if p.Mood != "" {
		fmt.Fprintf(&b, "Mood: %s\n", p.Mood)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if p.Tip != "" {
		fmt.Fprintf(&b, "\n💡 Tip: %s\n", p.Tip)
	}
	if len(p.Likes) > 0 {
		fmt.Fprintf(&b, "❤️ Likes: %s\n", strings.Join(p.Likes, ", "))
	}
	if len(p.Hates) > 0 {
		fmt.Fprintf(&b, "💀 Hates: %s\n", strings.Join(p.Hates, ", "))
	}
	if p.VisualPrompt != "" {
		fmt.Fprintf(&b, "🎨 Visual: %s\n", p.VisualPrompt)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPlay(r *brain.PlayResult) string {
	var b strings.Builder
	if r.Win {
		fmt.Fprintf(&b, "🎉 YOU WIN! Score %s beats the %s threshold!\n",
			formatScore(r.Score), formatPercent(r.Threshold))
	} else {
		fmt.Fprintf(&b, "🎯 Score: %s (needed above %s)\n",
			formatScore(r.Score), formatPercent(r.Threshold))
	}
	fmt.Fprintf(&b, "🎙️ Lucille: %q\n", r.Response)
	if r.Win {
		if r.PrizeAmount != "" {
			fmt.Fprintf(&b, "💰 Prize: %s ETH\n", r.PrizeAmount)
		}
		if r.NFT != nil {
			fmt.Fprintf(&b, "🖼 Winner NFT #%d", r.NFT.TokenID)
			if r.NFT.OpenseaURL != "" {
				fmt.Fprintf(&b, " — %s", r.NFT.OpenseaURL)
			}
			if r.NFT.ImageURL != "" {
				fmt.Fprintf(&b, " (image: %s)", r.NFT.ImageURL)
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "📍 Round %d, Turn %d (%s) — jackpot %s ETH", r.Round, r.Turn, r.Phase, r.Jackpot)
	if !r.Win {
		b.WriteString("\nKeep trying — every attempt grows the jackpot.")
	}
	return b.String()
}

func formatHistory(h *brain.History) string {
	if len(h.Attempts) == 0 {
		return "📜 No attempts recorded yet. Be the first to talk to Lucille."
	}

	// Group by personality and round, keeping first-seen group order.
	var order []string
	groups := make(map[string][]brain.Attempt)
	for _, a := range h.Attempts {
		key := fmt.Sprintf("%s (Round %d)", a.Personality, a.Round)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 Last %d attempts\n", len(h.Attempts))
	for _, key := range order {
		fmt.Fprintf(&b, "\n🎭 %s\n", key)
		for i, a := range groups[key] {
			badge := "💯 " + formatScore(a.Score)
			if a.Win {
				badge = "🏆 WIN"
			}
			fmt.Fprintf(&b, "  %d. %s %s\n", i+1, badge, truncateAddress(a.Player))
			fmt.Fprintf(&b, "     💬 %s\n", truncate(a.Message, maxQuoteLen))
			fmt.Fprintf(&b, "     🎙️ %s\n", truncate(a.Response, maxQuoteLen))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLeaderboard(ph *brain.PersonalityHistory) string {
	if len(ph.Rounds) == 0 {
		return "🏅 No rounds played yet."
	}

	var b strings.Builder
	b.WriteString("🏅 Round winners\n\n")
	for _, r := range ph.Rounds {
		fmt.Fprintf(&b, "Round %d: %s %s — ", r.Round, r.Personality.Name, r.Personality.Emoji)
		if r.Winner != "" {
			fmt.Fprintf(&b, "🏆 %s scored %s, jackpot %s ETH\n",
				truncate(r.Winner, 10), formatScore(r.WinningScore), r.Jackpot)
		} else {
			b.WriteString("No winner yet\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStats(s *brain.AgentStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Stats for %s\n\n", truncateAddress(s.Player))
	fmt.Fprintf(&b, "Attempts: %d\n", s.TotalAttempts)
	fmt.Fprintf(&b, "Wins: %d\n", s.TotalWins)
	fmt.Fprintf(&b, "Best score: %s\n", formatScore(s.BestScore))
	fmt.Fprintf(&b, "Average score: %s\n", formatScore(s.AverageScore))

	if len(s.NFTs) > 0 {
		ids := make([]string, len(s.NFTs))
		for i, nft := range s.NFTs {
			ids[i] = fmt.Sprintf("#%d", nft.TokenID)
		}
		fmt.Fprintf(&b, "🖼 Winner NFTs: %s\n", strings.Join(ids, ", "))
	}

	if len(s.RecentAttempts) > 0 {
		b.WriteString("\nRecent attempts:\n")
		for i, a := range s.RecentAttempts {
			badge := "💯 " + formatScore(a.Score)
			if a.Win {
				badge = "🏆 WIN"
			}
			preview := truncate(a.Message, previewLen)
			if preview != a.Message {
				preview += "..."
			}
			fmt.Fprintf(&b, "  %d. %s — %q (round %d)\n", i+1, badge, preview, a.Round)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStrategy(s *brain.Strategy) string {
	var b strings.Builder
	b.WriteString("🧠 Round strategy\n\n")
	fmt.Fprintf(&b, "Personality: %s", s.Personality.Name)
	if s.Personality.Mood != "" {
		fmt.Fprintf(&b, " (mood: %s)", s.Personality.Mood)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Threshold: %s\n", formatPercent(s.Threshold))
	fmt.Fprintf(&b, "Phase: %s\n", s.Phase)
	fmt.Fprintf(&b, "Jackpot: %s ETH\n", s.Jackpot)

	if len(s.Advice) > 0 {
		b.WriteString("\nAdvice:\n")
		for _, line := range s.Advice {
			fmt.Fprintf(&b, "  • %s\n", line)
		}
	}

	fmt.Fprintf(&b, "\n💸 Cost per play: %s", formatCost(s.CurrentCost, s.BaseCost))
	return b.String()
}

// formatCost picks the current cost, then the base cost. The upstream
// sometimes omits both; that is reported as unknown rather than papered
// over with a placeholder.
func formatCost(currentCost, baseCost string) string {
	switch {
	case currentCost != "":
		return currentCost + " wei"
	case baseCost != "":
		return baseCost + " wei"
	default:
		return "unknown (not reported by the API)"
	}
}

func formatVerifyWallet(address string) string {
	if addressPattern.MatchString(address) {
		return fmt.Sprintf(
			"✅ Valid wallet address: %s\n"+
				"You're ready to play. Use claim_eth first if the wallet needs gas.",
			address)
	}
	return fmt.Sprintf(
		"❌ Invalid wallet address: %s\n"+
			"A wallet address is 0x followed by exactly 40 hex characters (0-9, a-f).\n"+
			"Example: 0x1234567890abcdef1234567890abcdef12345678",
		address)
}

func formatDrip(d *brain.DripResult) string {
	switch d.Status {
	case "has_balance":
		return "💰 Your wallet already has ETH. No claim needed — go play."
	case "cooldown":
		msg := d.Message
		if msg == "" {
			msg = "try again later"
		}
		return fmt.Sprintf("⏳ Faucet cooldown: %s", msg)
	case "claimed":
		return fmt.Sprintf("✅ Claimed %s ETH. Tx: %s", d.Amount, d.TxHash)
	default:
		return string(d.Raw)
	}
}
