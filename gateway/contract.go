package gateway

import (
	"fmt"
	"strings"

	"github.com/lucille-world/lucille-mcp/brain"
)

// Static metadata for the Lucille game contract. The agent sends play
// transactions itself, so everything needed to construct one is listed here.
const (
	contractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	contractChainID = 84532 // Base Sepolia
	contractRPCURL  = "https://sepolia.base.org"
)

// contractABI is the fragment of the game contract the agent needs:
// the payable play entry point and the jackpot view.
const contractABI = `[
  {"type":"function","name":"play","inputs":[{"name":"message","type":"string"}],"outputs":[],"stateMutability":"payable"},
  {"type":"function","name":"jackpot","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
  {"type":"function","name":"currentCost","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"}
]`

const contractUsageEthers = `const contract = new ethers.Contract(
  "` + contractAddress + `",
  abi,
  wallet,
);
const cost = await contract.currentCost();
const tx = await contract.play(message, { value: cost });
await tx.wait();`

const contractUsageViem = `const hash = await walletClient.writeContract({
  address: "` + contractAddress + `",
  abi,
  functionName: "play",
  args: [message],
  value: cost,
});
await publicClient.waitForTransactionReceipt({ hash });`

// formatContractInfo merges the live game state with the static contract
// metadata. Purely descriptive; nothing is mutated.
func formatContractInfo(state *brain.GameState) string {
	var b strings.Builder
	b.WriteString("⛓ Lucille game contract\n\n")
	fmt.Fprintf(&b, "Address:  %s\n", contractAddress)
	fmt.Fprintf(&b, "Chain:    Base Sepolia (chain id %d)\n", contractChainID)
	fmt.Fprintf(&b, "RPC:      %s\n", contractRPCURL)
	fmt.Fprintf(&b, "Jackpot:  %s ETH (round %d)\n", state.Jackpot, state.Round)
	fmt.Fprintf(&b, "Cost per play: %s\n", formatCost(state.CurrentCost, state.BaseCost))

	fmt.Fprintf(&b, "\nABI fragment:\n%s\n", contractABI)
	fmt.Fprintf(&b, "\nUsage (ethers.js):\n%s\n", contractUsageEthers)
	fmt.Fprintf(&b, "\nUsage (viem):\n%s\n", contractUsageViem)

	b.WriteString("\nSend the play transaction yourself, then pass its hash to the play tool.")
	return b.String()
}
