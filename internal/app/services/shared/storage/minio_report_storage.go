package storage

import (
	"bytes"
	"context"
	"time"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioReportStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportStorage(minioClient *minio.Client, bucketName string) contracts.ReportStorage {
	return &minioReportStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReportStorage) PutReport(ctx context.Context, objectName string, payload []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioReportStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
