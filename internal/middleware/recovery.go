// internal/middleware/recovery.go
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/utils"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR envelope carrying the
// panic message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(requestIDKey),
			"panic":      recovered,
		}).Error("Recovered from panic")

		utils.AbortWithError(c, http.StatusInternalServerError, utils.CodeInternalError, fmt.Sprint(recovered))
	})
}
