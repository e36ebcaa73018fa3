package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateObjectIDParam rejects url params that cannot be a Mongo object id
// before any repository call is made.
func ValidateObjectIDParam(param string) error {
	_, err := primitive.ObjectIDFromHex(param)
	return err
}

func ValidateImageFormat(fileName, allowedFormats string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return fmt.Errorf("file %s has no extension", fileName)
	}
	for _, allowed := range strings.Split(allowedFormats, ",") {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("extension %s is not one of %s", ext, allowedFormats)
}

func ValidateImageSize(sizeInBytes, maxUploadSizeInMB int64) error {
	maxBytes := maxUploadSizeInMB * 1024 * 1024
	if sizeInBytes > maxBytes {
		return fmt.Errorf("file size %d exceeds the %dMB limit", sizeInBytes, maxUploadSizeInMB)
	}
	return nil
}
