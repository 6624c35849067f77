package storage

import (
	"context"
	"fmt"
	"io"
	"murmur/internal/config"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	UploadAvatar(ctx context.Context, userID int64, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteObject(ctx context.Context, objectName string) error
	ObjectNameFromURL(url string) (string, bool)
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета MinIO: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета MinIO: %w", err)
		}
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.MinIO.BucketName,
		publicURL: strings.TrimSuffix(cfg.MinIO.PublicURL, "/"),
	}, nil
}

// UploadAvatar stores the file under a name derived from its sniffed content
// type and returns the object name and public URL.
func (m *MinIOClient) UploadAvatar(ctx context.Context, userID int64, contentType string, file io.Reader, size int64) (string, string, error) {
	objectName, err := AvatarObjectName(userID, contentType)
	if err != nil {
		return "", "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"user-id":     fmt.Sprint(userID),
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, m.objectURL(objectName), nil
}

func (m *MinIOClient) DeleteObject(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

// ObjectNameFromURL reverses objectURL for URLs that point into our bucket.
func (m *MinIOClient) ObjectNameFromURL(url string) (string, bool) {
	prefix := m.publicURL + "/" + m.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	objectName := strings.TrimPrefix(url, prefix)
	return objectName, objectName != ""
}

func (m *MinIOClient) objectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, objectName)
}

// avatar formats we serve, keyed by the type http.DetectContentType reports
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func AvatarExtension(contentType string) (string, bool) {
	ext, ok := avatarExtensions[contentType]
	return ext, ok
}

// AvatarObjectName lays avatars out as avatars/<userID>/<uuid><ext>.
func AvatarObjectName(userID int64, contentType string) (string, error) {
	ext, ok := AvatarExtension(contentType)
	if !ok {
		return "", fmt.Errorf("неподдерживаемый тип аватара: %s", contentType)
	}

	return fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), ext), nil
}
