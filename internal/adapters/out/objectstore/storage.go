// Package objectstore stores order attachments in an S3-compatible bucket.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/ports"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// keyPrefix is the folder every attachment lives under, split by upload year and month.
const keyPrefix = "arquivos_protese"

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// FileStorage implements ports.FileStorage.
type FileStorage struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

var _ ports.FileStorage = (*FileStorage)(nil)

func NewFileStorage(cfg Config) (*FileStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("objectstore: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &FileStorage{client: client, bucket: cfg.Bucket, now: utcNow}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *FileStorage) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !found {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *FileStorage) Save(ctx context.Context, upload ports.FileUpload) (order.File, error) {
	if upload.Content == nil {
		return order.File{}, fmt.Errorf("objectstore: %s has no content", upload.Name)
	}

	name := cleanFileName(upload.Name)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := objectKey(s.now(), uuid.NewString(), name)
	info, err := s.client.PutObject(ctx, s.bucket, key, upload.Content, upload.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return order.File{}, fmt.Errorf("objectstore: put %s: %w", key, err)
	}

	return order.File{
		Ref:         key,
		Name:        name,
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

func (s *FileStorage) Delete(ctx context.Context, ref string) error {
	err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}
	return err
}

// DownloadURL presigns a GET that makes the browser save the blob under its original
// name.
func (s *FileStorage) DownloadURL(ctx context.Context, file order.File, ttl time.Duration) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": file.Name,
	}))
	if file.ContentType != "" {
		params.Set("response-content-type", file.ContentType)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, file.Ref, ttl, params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func utcNow() time.Time { return time.Now().UTC() }

// objectKey groups objects by the UTC year and month of the upload.
func objectKey(at time.Time, id, name string) string {
	at = at.UTC()
	return path.Join(keyPrefix, at.Format("2006"), at.Format("01"), id+"-"+name)
}

// cleanFileName keeps the base name of a client-supplied path and replaces characters
// that do not belong in an object key.
func cleanFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == "" {
		return "arquivo"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f, r == '?', r == '#', r == '%', r == '"':
			return '_'
		case r == ' ':
			return '_'
		}
		return r
	}, name)
}
