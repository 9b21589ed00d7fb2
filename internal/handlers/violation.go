// internal/handlers/violation.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/services"
)

type ViolationHandler struct {
	violationService *services.ViolationService
}

func NewViolationHandler(violationService *services.ViolationService) *ViolationHandler {
	return &ViolationHandler{violationService: violationService}
}

// GET /api/violations
func (h *ViolationHandler) GetViolations(c *gin.Context) {
	list(c, "violations", h.violationService.Search)
}
