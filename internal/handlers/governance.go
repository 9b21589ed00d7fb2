// internal/handlers/governance.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/services"
)

type GovernanceHandler struct {
	governanceService *services.GovernanceService
}

func NewGovernanceHandler(governanceService *services.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governanceService: governanceService}
}

// GET /api/governance/proposals
func (h *GovernanceHandler) GetProposals(c *gin.Context) {
	list(c, "proposals", h.governanceService.SearchProposals)
}
