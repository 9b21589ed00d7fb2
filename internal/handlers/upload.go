// internal/handlers/upload.go
package handlers

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/i18n"
	"github.com/dippchain/studio-api/internal/services"
	"github.com/dippchain/studio-api/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
	maxRequestSize int64
}

func NewUploadHandler(storageService *services.StorageService, maxRequestSize int64) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		maxRequestSize: maxRequestSize,
	}
}

// POST /api/ipfs/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	contentType := c.GetHeader("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "multipart/form-data") {
		utils.BadRequestResponse(c, utils.CodeInvalidContentType, i18n.T(lang, i18n.KeyInvalidContentType), nil)
		return
	}
	if _, params, err := mime.ParseMediaType(contentType); err != nil || params["boundary"] == "" {
		utils.BadRequestResponse(c, utils.CodeInvalidFormat, i18n.T(lang, i18n.KeyInvalidFormat), nil)
		return
	}

	if h.maxRequestSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxRequestSize)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.BadRequestResponse(c, utils.CodeFileTooLarge,
				i18n.T(lang, i18n.KeyFileRequestTooLarge, h.maxRequestSize/(1024*1024)), nil)
			return
		}
		utils.BadRequestResponse(c, utils.CodeInvalidFormat, i18n.T(lang, i18n.KeyInvalidFormat), err.Error())
		return
	}
	defer form.RemoveAll()

	cids, err := h.storageService.PinFiles(c.Request.Context(), collectFiles(form))
	var tooLarge *services.FileTooLargeError
	switch {
	case errors.Is(err, services.ErrNoFiles):
		utils.BadRequestResponse(c, utils.CodeNoFiles, i18n.T(lang, i18n.KeyFileNoFiles), nil)
	case errors.As(err, &tooLarge):
		utils.BadRequestResponse(c, utils.CodeFileTooLarge,
			i18n.T(lang, i18n.KeyFileTooLarge, tooLarge.Filename, tooLarge.MaxSize/(1024*1024)), nil)
	case err != nil:
		logrus.WithError(err).Error("Upload failed")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed)+": "+err.Error())
	default:
		utils.SuccessResponse(c, gin.H{"cids": cids})
	}
}

// collectFiles orders files by field name, then by position within the field.
func collectFiles(form *multipart.Form) []*multipart.FileHeader {
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []*multipart.FileHeader
	for _, field := range fields {
		files = append(files, form.File[field]...)
	}
	return files
}
