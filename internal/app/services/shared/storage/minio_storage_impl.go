package storage

import (
	"context"
	"io"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

var (
	minioStorageInstance contracts.Storage
	onceMinioStorage     sync.Once
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, bucketName, objectName, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObjectURL(err, bucketName)
	}

	return presignedURL.String(), nil
}
