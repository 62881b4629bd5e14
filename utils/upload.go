package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxCVSize is the résumé upload limit in bytes.
const MaxCVSize = 5 * 1024 * 1024

var allowedCVExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// IsAllowedCVFile checks the uploaded filename against the accepted
// résumé formats.
func IsAllowedCVFile(filename string) bool {
	return allowedCVExtensions[strings.ToLower(filepath.Ext(filename))]
}

// UploadDir returns the configured upload directory, defaulting to ./uploads.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_PATH")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// StoredCVFilename builds a collision-free stored name keeping the
// original extension.
func StoredCVFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
