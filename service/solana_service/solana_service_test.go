package solana_service

import (
	"context"
	"testing"

	"goose-bumps-backend/conf"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) conf.SolanaConfig {
	t.Helper()
	wallet := solana.NewWallet()
	return conf.SolanaConfig{
		Key:    wallet.PrivateKey.String(),
		RpcUrl: "https://api.devnet.solana.com",
	}
}

func TestNewService_MissingKey(t *testing.T) {
	_, err := NewService(conf.SolanaConfig{}, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLANA_KEY")
}

func TestNewService_MalformedKey(t *testing.T) {
	_, err := NewService(conf.SolanaConfig{Key: "not-base58-0OIl"}, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base58")
}

func TestNewService_ParsesKeypair(t *testing.T) {
	svc, err := NewService(testConfig(t), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.NotEmpty(t, svc.signer.PublicKey().String())
}

func TestCreateMint_MissingRpcUrl(t *testing.T) {
	cfg := testConfig(t)
	cfg.RpcUrl = ""
	svc, err := NewService(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	err = svc.CreateMint(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLANA_URL")
}

func TestMint_CancelledContext(t *testing.T) {
	svc, err := NewService(testConfig(t), zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = svc.Mint(ctx, "user-token")
	assert.Error(t, err)
}
