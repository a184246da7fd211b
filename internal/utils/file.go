package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

func IsDocumentFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedDocumentTypes)
}

func GenerateUniqueFilename(originalFilename string) string {
	ext := GetFileExtension(originalFilename)
	timestamp := time.Now().Unix()
	randomStr := GenerateRandomString(8)

	return fmt.Sprintf("%d_%s%s", timestamp, randomStr, ext)
}
