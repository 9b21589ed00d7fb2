// internal/handlers/common.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/i18n"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/utils"
)

// Version is reported by /health. Overridden at build time.
var Version = "dev"

// list runs a resource search and writes { <key>, total, limit, offset }.
func list[T any](c *gin.Context, key string, search func(context.Context, url.Values, query.Page) ([]T, int64, error)) {
	page, err := utils.GetPage(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	items, total, err := search(c.Request.Context(), c.Request.URL.Query(), page)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	utils.ListResponse(c, key, items, total, page)
}

func respondQueryError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, query.ErrInvalidPagination):
		utils.BadRequestResponse(c, utils.CodeInvalidPagination,
			i18n.T(lang, i18n.KeyInvalidPagination, reason(err, query.ErrInvalidPagination)), nil)
	case errors.Is(err, query.ErrInvalidFilter):
		utils.BadRequestResponse(c, utils.CodeInvalidFilter,
			i18n.T(lang, i18n.KeyInvalidFilter, reason(err, query.ErrInvalidFilter)), nil)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Query failed")
		utils.InternalErrorResponse(c, err.Error())
	}
}

// reason strips the sentinel prefix from a wrapped error message.
func reason(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version,
	})
}
