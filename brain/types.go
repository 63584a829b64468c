package brain

import "encoding/json"

// The structs in this file mirror the Brain API's per-endpoint response
// shapes. Every field is tolerant of absence: the upstream contract only
// guarantees the core game-state fields, so formatting code must handle
// zero values.

// PersonalityInfo describes Lucille's active persona.
type PersonalityInfo struct {
	Name         string   `json:"name"`
	Emoji        string   `json:"emoji"`
	Mood         string   `json:"mood,omitempty"`
	Description  string   `json:"description,omitempty"`
	Tip          string   `json:"tip,omitempty"`
	Likes        []string `json:"likes,omitempty"`
	Hates        []string `json:"hates,omitempty"`
	VisualPrompt string   `json:"visual_prompt,omitempty"`
}

// GameState is the /game-state response.
type GameState struct {
	Round       int             `json:"round"`
	Turn        int             `json:"turn"`
	Jackpot     string          `json:"jackpot"`
	Threshold   float64         `json:"threshold"`
	Phase       string          `json:"phase"`
	Personality PersonalityInfo `json:"personality"`
	BaseCost    string          `json:"baseCost,omitempty"`
	CurrentCost string          `json:"currentCost,omitempty"`
}

// NFTInfo identifies a minted winner NFT.
type NFTInfo struct {
	TokenID    int64  `json:"token_id"`
	ImageURL   string `json:"image_url,omitempty"`
	OpenseaURL string `json:"opensea_url,omitempty"`
}

// PlayRequest is the /agent/play request body.
type PlayRequest struct {
	Message   string `json:"message"`
	Player    string `json:"player"`
	TxHash    string `json:"tx_hash,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

// PlayResult is the /agent/play response.
type PlayResult struct {
	Score       float64  `json:"score"`
	Threshold   float64  `json:"threshold"`
	Win         bool     `json:"win"`
	Response    string   `json:"response"`
	Round       int      `json:"round"`
	Turn        int      `json:"turn"`
	Phase       string   `json:"phase"`
	Jackpot     string   `json:"jackpot"`
	PrizeAmount string   `json:"prize_amount,omitempty"`
	NFT         *NFTInfo `json:"nft,omitempty"`
}

// Attempt is one scored play submission.
type Attempt struct {
	Player      string  `json:"player"`
	AgentName   string  `json:"agent_name,omitempty"`
	Message     string  `json:"message"`
	Response    string  `json:"response"`
	Score       float64 `json:"score"`
	Win         bool    `json:"win"`
	Round       int     `json:"round"`
	Personality string  `json:"personality"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// History is the /history response.
type History struct {
	Attempts []Attempt `json:"attempts"`
}

// HistoryFilter narrows a history query. Zero values are omitted from the
// query string entirely.
type HistoryFilter struct {
	Limit  int
	Round  int
	Player string
}

// RoundSummary is one entry of the /personality-history response.
type RoundSummary struct {
	Round        int             `json:"round"`
	Personality  PersonalityInfo `json:"personality"`
	Winner       string          `json:"winner,omitempty"`
	WinningScore float64         `json:"winning_score,omitempty"`
	Jackpot      string          `json:"jackpot,omitempty"`
}

// PersonalityHistory is the /personality-history response.
type PersonalityHistory struct {
	Rounds []RoundSummary `json:"rounds"`
}

// AgentStats is the /agent/stats response.
type AgentStats struct {
	Player         string    `json:"player"`
	TotalAttempts  int       `json:"total_attempts"`
	TotalWins      int       `json:"total_wins"`
	BestScore      float64   `json:"best_score"`
	AverageScore   float64   `json:"average_score"`
	NFTs           []NFTInfo `json:"nfts,omitempty"`
	RecentAttempts []Attempt `json:"recent_attempts,omitempty"`
}

// Strategy is the /agent/strategy response.
type Strategy struct {
	Threshold   float64         `json:"threshold"`
	Phase       string          `json:"phase"`
	Jackpot     string          `json:"jackpot"`
	Personality PersonalityInfo `json:"personality"`
	Advice      []string        `json:"advice,omitempty"`
	BaseCost    string          `json:"baseCost,omitempty"`
	CurrentCost string          `json:"currentCost,omitempty"`
}

// DripResult is the /drip response. Raw preserves the verbatim body so
// unrecognized statuses can be echoed back unchanged.
type DripResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Amount  string `json:"amount,omitempty"`
	TxHash  string `json:"tx_hash,omitempty"`

	Raw json.RawMessage `json:"-"`
}
