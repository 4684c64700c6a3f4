package storage

import (
	"context"
	"io"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type reportStorage struct {
	MinioClient *minio.Client
}

func NewReportStorage(minioClient *minio.Client) contracts.ReportStorage {
	return &reportStorage{
		MinioClient: minioClient,
	}
}

func (s *reportStorage) PutReport(ctx context.Context, bucketName, objectName string, report io.Reader, size int64) error {
	_, err := s.MinioClient.PutObject(ctx, bucketName, objectName, report, size, minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationPDF,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (s *reportStorage) PresignReport(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return presignedURL.String(), nil
}

func (s *reportStorage) RemoveReport(ctx context.Context, bucketName, objectName string) error {
	err := s.MinioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, bucketName)
	}
	return nil
}
