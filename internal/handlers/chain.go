// internal/handlers/chain.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/utils"
)

type ChainHandler struct {
	chain config.ChainConfig
}

func NewChainHandler(chain config.ChainConfig) *ChainHandler {
	return &ChainHandler{chain: chain}
}

// GET /api/config/chain
func (h *ChainHandler) GetChainConfig(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"chainId":     h.chain.ChainID,
		"network":     h.chain.Network,
		"rpcUrl":      h.chain.RPCURL,
		"explorerUrl": h.chain.ExplorerURL(),
		"contracts":   h.chain.Contracts,
	})
}
