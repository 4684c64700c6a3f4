package contracts

import (
	"context"
	"io"
	"time"
)

type ReportStorage interface {
	PutReport(ctx context.Context, bucketName, objectName string, report io.Reader, size int64) error
	PresignReport(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	RemoveReport(ctx context.Context, bucketName, objectName string) error
}
