package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrObjectExists = errors.New("object already exists")

type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

type StorageAdapter struct {
	client       *s3.Client
	bucketPublic string
	region       string
	publicDomain string
	cacheControl string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client:       s3Client,
		bucketPublic: cfg.S3BucketPublic,
		region:       cfg.S3Region,
		publicDomain: strings.TrimRight(cfg.S3PublicDomain, "/"),
		cacheControl: cacheControlHeader(cfg.UploadCacheControl),
	}
}

func cacheControlHeader(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.Trim(value, "0123456789") == "" {
		return "max-age=" + value
	}
	return value
}

// Upload stores body under key without overwriting an existing object.
// Transient failures are retried after rewinding body.
func (s *StorageAdapter) Upload(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	operation := func() (struct{}, bool, error) {
		if _, err := body.Seek(0, io.SeekStart); err != nil {
			return struct{}{}, false, err
		}

		input := &s3.PutObjectInput{
			Bucket:        aws.String(s.bucketPublic),
			Key:           aws.String(key),
			Body:          body,
			ContentType:   aws.String(contentType),
			ContentLength: aws.Int64(size),
			IfNoneMatch:   aws.String("*"),
		}
		if s.cacheControl != "" {
			input.CacheControl = aws.String(s.cacheControl)
		}

		_, err := s.client.PutObject(ctx, input)
		if err == nil {
			return struct{}{}, false, nil
		}

		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			if respErr.HTTPStatusCode() == http.StatusPreconditionFailed {
				return struct{}{}, false, ErrObjectExists
			}
			return struct{}{}, respErr.HTTPStatusCode() >= 500, err
		}
		return struct{}{}, ctx.Err() == nil, err
	}

	_, err := helper.RetryWithBackoff(ctx, operation, 2, 300*time.Millisecond)
	return err
}

func (s *StorageAdapter) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketPublic),
		Key:    aws.String(key),
	})
	return err
}

func (s *StorageAdapter) List(ctx context.Context, prefix string) ([]StoredObject, error) {
	if s.client == nil {
		return nil, errors.New("s3 client is not initialized")
	}

	var objects []StoredObject
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketPublic),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

func (s *StorageAdapter) PublicURL(key string) string {
	key = path.Clean("/" + key)[1:]
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", s.publicDomain, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketPublic, s.region, key)
}

// KeyFromURL reverses PublicURL for URLs this adapter produced. Keys that
// would not survive PublicURL unchanged are refused.
func (s *StorageAdapter) KeyFromURL(url string) (string, bool) {
	base := s.PublicURL("")
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" || strings.ContainsAny(key, "?#") || path.Clean("/" + key)[1:] != key {
		return "", false
	}
	return key, true
}
