package middleware

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"estatehub/utils"

	"github.com/gin-gonic/gin"
)

const filesKey = "uploadFiles"

var allowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ImageUpload parses a multipart body and enforces the upload limits:
// each file at most maxBytes, at most maxFiles files, all under field.
func ImageUpload(field string, maxBytes int64, maxFiles int) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Whole-body cap: every file at its limit plus form overhead.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes*int64(maxFiles)+1<<20)
		form, err := c.MultipartForm()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
				utils.RespondError(c, utils.FileTooLarge(maxBytes))
				return
			}
			utils.RespondError(c, utils.InvalidFileField("Expected multipart form data"))
			return
		}

		for name := range form.File {
			if name != field {
				utils.RespondError(c, utils.InvalidFileField(fmt.Sprintf("Unexpected file field %q, expected %q", name, field)))
				return
			}
		}
		files := form.File[field]
		if len(files) == 0 {
			utils.RespondError(c, utils.InvalidFileField(fmt.Sprintf("No files found in field %q", field)))
			return
		}
		if len(files) > maxFiles {
			utils.RespondError(c, utils.TooManyFiles(maxFiles))
			return
		}
		for _, fh := range files {
			if fh.Size > maxBytes {
				utils.RespondError(c, utils.FileTooLarge(maxBytes))
				return
			}
			if !allowedImageTypes[strings.ToLower(filepath.Ext(fh.Filename))] {
				utils.RespondError(c, utils.InvalidFileField(fmt.Sprintf("%s is not a supported image type", fh.Filename)))
				return
			}
		}
		c.Set(filesKey, files)
		c.Next()
	}
}

// UploadedFiles returns the files accepted by ImageUpload.
func UploadedFiles(c *gin.Context) []*multipart.FileHeader {
	if v, ok := c.Get(filesKey); ok {
		if files, ok := v.([]*multipart.FileHeader); ok {
			return files
		}
	}
	return nil
}
