package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/middleware"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorID is the authenticated caller set by middleware.AuthMiddleware.
func actorID(c *gin.Context) entity.UserID {
	return entity.UserID(c.GetString(middleware.UserIDKey))
}

// pageRequest reads page and limit query params. Unparseable values fall back to defaults.
func pageRequest(c *gin.Context) entity.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return entity.NewPageRequest(page, limit)
}

func bindError(err error) error {
	return apperr.InvalidArgument("Invalid request: %v", err)
}

// stageUpload saves the multipart part named field under dir. It returns nil
// when the part is absent. The returned cleanup removes the staged file.
func stageUpload(c *gin.Context, dir, field, defaultContentType string) (*usecase.FileUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, apperr.InvalidArgument("Invalid %s upload", field)
	}

	localPath := filepath.Join(dir, uuid.New().String()+strings.ToLower(filepath.Ext(header.Filename)))
	if err := c.SaveUploadedFile(header, localPath); err != nil {
		return nil, noop, apperr.Internal(err, "failed to stage upload")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultContentType
	}

	return &usecase.FileUpload{LocalPath: localPath, ContentType: contentType}, func() { os.Remove(localPath) }, nil
}
