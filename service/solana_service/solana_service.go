package solana_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goose-bumps-backend/conf"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const (
	// mintDecimals SPL-token mint decimals
	mintDecimals uint8 = 9

	// mintAccountSize size of the SPL-token mint account layout in bytes
	mintAccountSize uint64 = 82

	// confirmInterval how often to poll the signature status after submit
	confirmInterval = 1 * time.Second

	// maxConfirmAttempts polling attempts before giving up on a confirmation
	maxConfirmAttempts = 60
)

// ErrConfirmationTimeout returned when a submitted transaction is not
// confirmed within the polling window.
var ErrConfirmationTimeout = errors.New("solana: transaction confirmation timed out")

// Service Solana adapter. The signer keypair is parsed once at construction
// and reused for every call; the RPC clients are cheap stateless HTTP
// wrappers and are created per endpoint.
type Service struct {
	cfg    conf.SolanaConfig
	signer solana.PrivateKey
	log    *zap.SugaredLogger
}

// NewService create the Solana adapter. Fails when SOLANA_KEY is absent or
// not a valid base58-encoded keypair.
func NewService(cfg conf.SolanaConfig, log *zap.SugaredLogger) (*Service, error) {
	if cfg.Key == "" {
		return nil, errors.New("SOLANA_KEY must be set")
	}
	signer, err := solana.PrivateKeyFromBase58(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("SOLANA_KEY is not a valid base58 keypair: %w", err)
	}
	return &Service{
		cfg:    cfg,
		signer: signer,
		log:    log,
	}, nil
}

// Mint request a 1-lamport devnet airdrop for the configured signer and log
// the resulting balance. The pubkey argument is accepted but not used by the
// airdrop yet; it records which user token triggered the call. Airdrops are
// hardcoded to devnet regardless of SOLANA_URL.
func (s *Service) Mint(ctx context.Context, pubkey string) error {
	s.log.Infow("requesting devnet airdrop", "userToken", pubkey, "signer", s.signer.PublicKey().String())

	client := rpc.New(rpc.DevNet_RPC)

	sig, err := client.RequestAirdrop(ctx, s.signer.PublicKey(), 1, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("airdrop request failed: %w", err)
	}
	s.log.Infow("airdrop requested", "signature", sig.String())

	balance, err := client.GetBalance(ctx, s.signer.PublicKey(), rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("balance query failed: %w", err)
	}
	s.log.Infow("signer balance", "pubkey", s.signer.PublicKey().String(), "lamports", balance.Value)

	return nil
}

// CreateMint allocate and initialize a new SPL-token mint account owned by
// the configured signer against SOLANA_URL.
//
// The new account is keyed by the signer's own keypair, so the signer both
// funds the account and is the account. A second run therefore finds the
// account already allocated. See DESIGN.md before changing this to a fresh
// keypair.
func (s *Service) CreateMint(ctx context.Context) error {
	if s.cfg.RpcUrl == "" {
		return errors.New("SOLANA_URL must be set")
	}
	client := rpc.New(s.cfg.RpcUrl)

	payer := s.signer
	mintAccount := s.signer

	lamports, err := client.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("rent exemption query failed: %w", err)
	}

	createAccountIx := system.NewCreateAccountInstruction(
		lamports,
		mintAccountSize,
		token.ProgramID,
		payer.PublicKey(),
		mintAccount.PublicKey(),
	).Build()

	// Mint authority is the signer, freeze authority stays unset.
	initMintIx := token.NewInitializeMintInstructionBuilder().
		SetDecimals(mintDecimals).
		SetMintAuthority(payer.PublicKey()).
		SetMintAccount(mintAccount.PublicKey()).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		Build()

	recent, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("blockhash query failed: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{createAccountIx, initMintIx},
		recent.Value.Blockhash,
		solana.TransactionPayer(payer.PublicKey()),
	)
	if err != nil {
		return fmt.Errorf("transaction build failed: %w", err)
	}

	// The new account authorizes its own creation, so both required signers
	// resolve to the same keypair here.
	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(payer.PublicKey()) {
			return &payer
		}
		return nil
	}); err != nil {
		return fmt.Errorf("transaction signing failed: %w", err)
	}

	sig, err := client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return fmt.Errorf("transaction submit failed: %w", err)
	}
	s.log.Infow("mint creation submitted", "signature", sig.String(), "mint", mintAccount.PublicKey().String())

	if err := s.awaitConfirmation(ctx, client, sig); err != nil {
		return err
	}
	s.log.Infow("mint account created", "mint", mintAccount.PublicKey().String(), "decimals", mintDecimals)

	return nil
}

// awaitConfirmation polls the signature status with a terminal spinner until
// the cluster reports the transaction confirmed or finalized.
func (s *Service) awaitConfirmation(ctx context.Context, client *rpc.Client, sig solana.Signature) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Awaiting confirmation"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(10),
	)
	defer bar.Finish()

	for attempt := 0; attempt < maxConfirmAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmInterval):
		}
		_ = bar.Add(1)

		statuses, err := client.GetSignatureStatuses(ctx, false, sig)
		if err != nil {
			return fmt.Errorf("signature status query failed: %w", err)
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}
		status := statuses.Value[0]
		if status.Err != nil {
			return fmt.Errorf("transaction failed on-chain: %v", status.Err)
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		}
	}
	return ErrConfirmationTimeout
}
