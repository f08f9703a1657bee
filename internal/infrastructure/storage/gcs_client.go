package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"porosemi/internal/domain/service"
	apperrors "porosemi/pkg/errors"
	"porosemi/pkg/logger"
)

// filePathPrefix is the route the API serves committed blobs under.
const filePathPrefix = "/api/files/"

// CloudStorageClient implements service.BlobStore on a GCS bucket.
// Filenames are chosen by callers; the client never generates names.
type CloudStorageClient struct {
	client        *storage.Client
	bucketName    string
	publicBaseURL string
}

func NewCloudStorageClient(ctx context.Context, bucketName, publicBaseURL, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (c *CloudStorageClient) Put(ctx context.Context, filename string, data []byte, contentType string) error {
	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Get(ctx context.Context, filename string) (*service.Blob, error) {
	obj := c.client.Bucket(c.bucketName).Object(filename)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, readError(filename, err)
	}

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, readError(filename, err)
	}

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return &service.Blob{
		Reader:      reader,
		ContentType: contentType,
		Size:        attrs.Size,
	}, nil
}

// readError maps a failed blob read into the API error taxonomy. A
// missing object becomes NotFound so the file endpoint answers 404
// rather than a generic server error.
func readError(filename string, err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return apperrors.NotFound("File", err)
	}
	return fmt.Errorf("failed to read object %s: %w", filename, err)
}

func (c *CloudStorageClient) Delete(ctx context.Context, filename string) error {
	obj := c.client.Bucket(c.bucketName).Object(filename)
	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			logger.Warn("Delete of missing object %s ignored", filename)
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %w", filename, err)
	}
	return nil
}

func (c *CloudStorageClient) URL(filename string) string {
	return c.publicBaseURL + filePathPrefix + filename
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
