// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/query"
)

// GetPage reads limit/offset from the query string.
func GetPage(c *gin.Context) (query.Page, error) {
	return query.ParsePage(c.Query("limit"), c.Query("offset"))
}

// ListResponse writes { <key>: items, total, limit, offset } and mirrors the
// counts in X-Total-Count / X-Limit / X-Offset headers.
func ListResponse(c *gin.Context, key string, items interface{}, total int64, page query.Page) {
	SetPaginationHeaders(c, total, page)
	SuccessResponse(c, gin.H{
		key:      items,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

func SetPaginationHeaders(c *gin.Context, total int64, page query.Page) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("X-Limit", strconv.Itoa(page.Limit))
	c.Header("X-Offset", strconv.Itoa(page.Offset))
}
