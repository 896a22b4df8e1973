package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SOLANA_KEY", "base58key")
	t.Setenv("SOLANA_URL", "https://api.devnet.solana.com")
	t.Setenv("ETH_NODE", "http://localhost:8545")
	t.Setenv("ETH_KEY", "deadbeef")
	t.Setenv("CONTRACT_ADDRESS", "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe")

	require.NoError(t, InitConfig())

	assert.Equal(t, "9000", Cfg.Port)
	assert.Equal(t, "base58key", Cfg.Solana.Key)
	assert.Equal(t, "https://api.devnet.solana.com", Cfg.Solana.RpcUrl)
	assert.Equal(t, "http://localhost:8545", Cfg.Web3.NodeUrl)
	assert.Equal(t, "deadbeef", Cfg.Web3.Key)
	assert.Equal(t, "0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe", Cfg.Web3.ContractAddress)
}

func TestInitConfig_DefaultPort(t *testing.T) {
	t.Setenv("PORT", "")

	require.NoError(t, InitConfig())

	assert.Equal(t, "8000", Cfg.Port)
}
