// internal/services/blockchain_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/utils"
)

// Registrar registers a source NFT on DippChain.
type Registrar interface {
	RegisterIP(ctx context.Context, req *RegisterIPRequest) (*RegistrationReceipt, error)
}

type RegistrationReceipt struct {
	DippChainID string    `json:"dippChainId"`
	TxHash      string    `json:"txHash"`
	ChainID     int64     `json:"chainId"`
	Registry    string    `json:"registry,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// BlockchainService derives registration receipts locally. Chain asset ids are
// deterministic in (contract, token); transaction hashes carry a nonce.
type BlockchainService struct {
	chain    config.ChainConfig
	newNonce func() string
}

func NewBlockchainService(cfg *config.Config) *BlockchainService {
	return &BlockchainService{
		chain:    cfg.Chain,
		newNonce: func() string { return uuid.NewString() },
	}
}

func (s *BlockchainService) RegisterIP(ctx context.Context, req *RegisterIPRequest) (*RegistrationReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dippChainID := utils.DeriveChainAssetID(req.SourceContract, req.TokenID.String())
	txHash := utils.DeriveTxHash(
		s.chain.Contracts.IPRegistryAdapter,
		dippChainID,
		req.WatermarkHash,
		strings.Join(req.ContentCIDs, ","),
		s.newNonce(),
	)

	logrus.WithFields(logrus.Fields{
		"event":           "registration",
		"dipp_chain_id":   dippChainID,
		"tx_hash":         txHash,
		"source_contract": req.SourceContract,
		"token_id":        req.TokenID.String(),
		"network":         s.chain.Network,
	}).Info("IP registration submitted")

	return &RegistrationReceipt{
		DippChainID: dippChainID,
		TxHash:      txHash,
		ChainID:     s.chain.ChainID,
		Registry:    s.chain.Contracts.IPRegistryAdapter,
		SubmittedAt: utils.Now().UTC(),
	}, nil
}
