package conf

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config application configuration structure
type Config struct {
	// HTTP configuration
	Port string

	// Solana configuration
	Solana SolanaConfig

	// EVM configuration
	Web3 Web3Config
}

// SolanaConfig Solana cluster configuration
type SolanaConfig struct {
	Key    string // base58-encoded Ed25519 keypair for the signer
	RpcUrl string // RPC endpoint for mint creation; airdrops are devnet-only
}

// Web3Config EVM chain configuration
type Web3Config struct {
	NodeUrl         string // HTTP JSON-RPC endpoint
	Key             string // hex-encoded secp256k1 private key
	ContractAddress string // 0x-prefixed address of the deployed NFT contract
}

// Cfg global configuration instance
var Cfg *Config

// InitConfig initialize configuration from the process environment. A .env
// file in the working directory is merged in when present; real environment
// variables take precedence. Required variables are validated by the adapter
// constructors, not here, so the error can name the variable at first use.
func InitConfig() error {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8000")

	Cfg = &Config{
		Port: viper.GetString("PORT"),

		Solana: SolanaConfig{
			Key:    viper.GetString("SOLANA_KEY"),
			RpcUrl: viper.GetString("SOLANA_URL"),
		},

		Web3: Web3Config{
			NodeUrl:         viper.GetString("ETH_NODE"),
			Key:             viper.GetString("ETH_KEY"),
			ContractAddress: viper.GetString("CONTRACT_ADDRESS"),
		},
	}

	return nil
}
