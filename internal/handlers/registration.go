// internal/handlers/registration.go
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

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// POST /api/ip/register
func (h *RegistrationHandler) RegisterIP(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterIPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, utils.CodeInvalidFormat, i18n.T(lang, i18n.KeyInvalidFormat), err.Error())
		return
	}

	// Validate request
	req.Normalize()
	if err := utils.ValidateStruct(&req); err != nil {
		if missing := utils.MissingFields(err); len(missing) > 0 {
			utils.MissingFieldsResponse(c, missing)
			return
		}
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	resp, err := h.registrationService.RegisterIP(c.Request.Context(), &req)
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered):
		utils.ConflictResponse(c, utils.CodeAlreadyRegistered, i18n.T(lang, i18n.KeyIPAlreadyExists))
	case errors.Is(err, store.ErrInvalidInput):
		utils.BadRequestResponse(c, utils.CodeValidationError, err.Error(), nil)
	case err != nil:
		logrus.WithError(err).Error("IP registration failed")
		utils.InternalErrorResponse(c, err.Error())
	default:
		utils.SuccessResponse(c, resp)
	}
}
