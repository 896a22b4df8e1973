package web3_service

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"goose-bumps-backend/conf"
	"goose-bumps-backend/contracts"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const (
	// transferConfirmations blocks that must land on top of the including
	// block before a transfer is reported back to the caller
	transferConfirmations uint64 = 2

	// confirmPollInterval how often to re-read the chain head while waiting
	confirmPollInterval = 1 * time.Second
)

// ErrTransactionReverted returned when the transfer was mined but the
// receipt reports failure.
var ErrTransactionReverted = errors.New("web3: transaction reverted")

// Service EVM adapter around the GooseBumpsNFT contract. The RPC client,
// signer key, owner address and parsed ABI are built once at startup and
// shared across requests.
type Service struct {
	cfg          conf.Web3Config
	client       *ethclient.Client
	key          *ecdsa.PrivateKey
	owner        common.Address
	contractAddr common.Address
	contractABI  abi.ABI
	log          *zap.SugaredLogger

	mu      sync.Mutex
	chainID *big.Int // fetched lazily, cached after first success
}

// NewService create the EVM adapter. Validates that every required variable
// is present and parseable; no transaction is sent.
func NewService(cfg conf.Web3Config, log *zap.SugaredLogger) (*Service, error) {
	if cfg.NodeUrl == "" {
		return nil, errors.New("ETH_NODE must be set")
	}
	if cfg.Key == "" {
		return nil, errors.New("ETH_KEY must be set")
	}
	if cfg.ContractAddress == "" {
		return nil, errors.New("CONTRACT_ADDRESS must be set")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Key, "0x"))
	if err != nil {
		return nil, fmt.Errorf("ETH_KEY is not a valid secp256k1 private key: %w", err)
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("CONTRACT_ADDRESS is not a valid address: %s", cfg.ContractAddress)
	}

	contractABI, err := abi.JSON(strings.NewReader(contracts.GooseBumpsNFTABI))
	if err != nil {
		return nil, fmt.Errorf("embedded contract ABI is invalid: %w", err)
	}

	// Dialing an HTTP endpoint is lazy, no connection is made here.
	client, err := ethclient.Dial(cfg.NodeUrl)
	if err != nil {
		return nil, fmt.Errorf("ETH_NODE dial failed: %w", err)
	}

	return &Service{
		cfg:          cfg,
		client:       client,
		key:          key,
		owner:        crypto.PubkeyToAddress(key.PublicKey),
		contractAddr: common.HexToAddress(cfg.ContractAddress),
		contractABI:  contractABI,
		log:          log,
	}, nil
}

// Owner returns the signer-derived address used as the transferFrom owner.
func (s *Service) Owner() common.Address {
	return s.owner
}

// DeployContract is the disabled deployment path. It proves the
// configuration and embedded artifacts are usable, then returns without
// submitting anything. The server runs it to completion before binding the
// listener.
func (s *Service) DeployContract(ctx context.Context) error {
	bytecode := common.FromHex(strings.TrimSpace(contracts.GooseBumpsNFTBin))
	if len(bytecode) == 0 {
		return errors.New("embedded contract bytecode is empty")
	}
	s.log.Infow("contract deployment is disabled, using configured address",
		"contract", s.contractAddr.Hex(),
		"bytecodeBytes", len(bytecode),
	)
	return nil
}

// TransferNFT issue transferFrom(owner, to, tokenID) against the configured
// contract and return the transaction hash once the transfer has two
// confirmations. The owner is derived from the signer key, not from
// configuration.
func (s *Service) TransferNFT(ctx context.Context, toAddress string, tokenID uint32) (string, error) {
	if !common.IsHexAddress(toAddress) {
		return "", fmt.Errorf("toAddress is not a valid address: %s", toAddress)
	}
	to := common.HexToAddress(toAddress)

	chainID, err := s.getChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("chain id query failed: %w", err)
	}
	auth, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return "", fmt.Errorf("transactor setup failed: %w", err)
	}
	auth.Context = ctx

	contract := bind.NewBoundContract(s.contractAddr, s.contractABI, s.client, s.client, s.client)

	tx, err := contract.Transact(auth, "transferFrom", s.owner, to, tokenIDToUint256(tokenID))
	if err != nil {
		return "", fmt.Errorf("transferFrom call failed: %w", err)
	}
	s.log.Infow("transferFrom submitted",
		"tx", tx.Hash().Hex(), "from", s.owner.Hex(), "to", to.Hex(), "tokenId", tokenID)

	receipt, err := bind.WaitMined(ctx, s.client, tx)
	if err != nil {
		return "", fmt.Errorf("waiting for mining failed: %w", err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return "", ErrTransactionReverted
	}

	if err := s.awaitConfirmations(ctx, receipt); err != nil {
		return "", err
	}
	s.log.Infow("transferFrom confirmed", "tx", tx.Hash().Hex(), "block", receipt.BlockNumber.Uint64())

	return tx.Hash().Hex(), nil
}

// getChainID fetches the chain id on first use and caches it.
func (s *Service) getChainID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chainID != nil {
		return s.chainID, nil
	}
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	s.chainID = chainID
	return chainID, nil
}

// awaitConfirmations blocks until transferConfirmations blocks exist on top
// of the receipt's block.
func (s *Service) awaitConfirmations(ctx context.Context, receipt *types.Receipt) error {
	target := receipt.BlockNumber.Uint64() + transferConfirmations
	for {
		head, err := s.client.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("head query failed: %w", err)
		}
		if head >= target {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmPollInterval):
		}
	}
}

// tokenIDToUint256 widens the 32-bit API token id to the EVM word size.
func tokenIDToUint256(tokenID uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(tokenID))
}
