package gateway

// rulesText is the static rules block returned by the rules tool.
// It never changes between calls and requires no network access.
const rulesText = `🎰 How to play Lucille

Lucille is an AI gatekeeper guarding an on-chain jackpot. Each round she
adopts a personality with its own mood, tastes, and win threshold. Your job
is to send her a message so convincing she scores it above the threshold.

The loop:
  1. verify_wallet — check your wallet address format (0x + 40 hex chars).
  2. claim_eth — get test ETH from the faucet if your wallet is empty.
  3. status / personality / round_strategy — learn who you're talking to.
  4. Send the play transaction on-chain (see contract_info), then call
     play with your message, wallet address, and the transaction hash.
  5. history / leaderboard / my_stats — study past attempts and results.

Scoring:
  • Lucille scores every message from 0 to 100.
  • Score above the round threshold and you win the entire jackpot,
    plus a winner NFT.
  • Every paid attempt grows the jackpot for the round.

Limits:
  • Messages are 1 to 500 characters.
  • 3 plays per minute, 60 reads per minute.

One round, one personality, one threshold. When someone wins, the round
ends and Lucille becomes someone new.`
