package handler

import (
	"context"
	"net/http"
	"time"

	"goose-bumps-backend/controller/respond"
	"goose-bumps-backend/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// adapterTimeout upper bound on a single blockchain adapter call. The RPC
// clients themselves are not cancellable once a call is in flight, so this
// bounds how long the handler waits, not the call itself.
const adapterTimeout = 60 * time.Second

// SolanaMinter Solana-side reward operations used by the NFT endpoints.
type SolanaMinter interface {
	Mint(ctx context.Context, pubkey string) error
}

// NFTTransferrer EVM-side NFT transfer used by the NFT endpoints.
type NFTTransferrer interface {
	TransferNFT(ctx context.Context, toAddress string, tokenID uint32) (string, error)
}

// NFTHandler on-chain reward endpoints
type NFTHandler struct {
	store  *database.UserStore
	solana SolanaMinter
	web3   NFTTransferrer
	log    *zap.SugaredLogger
}

// NewNFTHandler create NFT handler instance
func NewNFTHandler(store *database.UserStore, solana SolanaMinter, web3 NFTTransferrer, log *zap.SugaredLogger) *NFTHandler {
	return &NFTHandler{
		store:  store,
		solana: solana,
		web3:   web3,
		log:    log,
	}
}

// MintNFTRequest mint request
type MintNFTRequest struct {
	UserID      string `json:"userId" binding:"required,uuid" example:"fdb12d51-0e3f-4ff8-821e-fbc255d8e413"`
	ChallengeID string `json:"challengeId" example:"challenge-1"`
}

// MintNFT trigger the Solana mint for a user's stored token
// @Summary      Mint NFT
// @Description  Trigger the Solana-side mint for the user's stored token. Unknown users are ignored.
// @Tags         NFT
// @Accept       json
// @Produce      json
// @Param        request  body  MintNFTRequest  true  "Mint request"
// @Success      200
// @Failure      400  {object}  respond.ErrorResponse
// @Failure      502  {object}  respond.ErrorResponse
// @Router       /mint-nft [post]
func (h *NFTHandler) MintNFT(c *gin.Context) {
	var req MintNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}
	h.log.Infow("mint requested", "userId", req.UserID, "challengeId", req.ChallengeID)

	user, err := h.store.Get(req.UserID)
	if err != nil {
		// Unknown users are silently ignored, the reward flow is best effort.
		c.Status(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), adapterTimeout)
	defer cancel()
	if err := h.solana.Mint(ctx, user.SolanaToken); err != nil {
		h.log.Errorw("solana mint failed", "userId", req.UserID, "err", err)
		respond.BadGateway(c, "solana mint failed: "+err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// TransferNFTRequest transfer request. tokenId defaults to the store's
// token counter when omitted.
type TransferNFTRequest struct {
	ToAddress string  `json:"toAddress" binding:"required" example:"0x5cf2273601FD25b8CA59d5d22966cD121c1BFafe"`
	TokenID   *uint32 `json:"tokenId" example:"7"`
}

// TransferNFTResponse transfer response
type TransferNFTResponse struct {
	TransactionHash string `json:"transactionHash" example:"0xabc123"`
}

// TransferNFT transfer an NFT token to an address
// @Summary      Transfer NFT
// @Description  Issue an ERC-721 transferFrom to the given address and wait for two confirmations
// @Tags         NFT
// @Accept       json
// @Produce      json
// @Param        request  body      TransferNFTRequest  true  "Transfer request"
// @Success      200      {object}  TransferNFTResponse
// @Failure      400      {object}  respond.ErrorResponse
// @Failure      502      {object}  respond.ErrorResponse
// @Router       /transfer-nft [post]
func (h *NFTHandler) TransferNFT(c *gin.Context) {
	var req TransferNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	tokenID := h.store.NextTokenID()
	if req.TokenID != nil {
		tokenID = *req.TokenID
	}
	h.log.Infow("transfer requested", "toAddress", req.ToAddress, "tokenId", tokenID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), adapterTimeout)
	defer cancel()
	txHash, err := h.web3.TransferNFT(ctx, req.ToAddress, tokenID)
	if err != nil {
		h.log.Errorw("nft transfer failed", "toAddress", req.ToAddress, "tokenId", tokenID, "err", err)
		respond.BadGateway(c, "nft transfer failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, TransferNFTResponse{TransactionHash: txHash})
}
