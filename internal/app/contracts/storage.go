package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
	PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}
