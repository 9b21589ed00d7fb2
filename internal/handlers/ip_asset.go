// internal/handlers/ip_asset.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/i18n"
	"github.com/dippchain/studio-api/internal/services"
	"github.com/dippchain/studio-api/internal/store"
	"github.com/dippchain/studio-api/internal/utils"
)

type IPAssetHandler struct {
	ipService *services.IPService
}

func NewIPAssetHandler(ipService *services.IPService) *IPAssetHandler {
	return &IPAssetHandler{ipService: ipService}
}

// GET /api/ips
func (h *IPAssetHandler) GetIPAssets(c *gin.Context) {
	list(c, "ips", h.ipService.Search)
}

// GET /api/ips/:id
func (h *IPAssetHandler) GetIPAsset(c *gin.Context) {
	detail, err := h.ipService.GetIPDetail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFoundResponse(c, i18n.KeyIPNotFound)
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("id", c.Param("id")).Error("Failed to load IP detail")
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, detail)
}
