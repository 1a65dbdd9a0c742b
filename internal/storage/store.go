package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/h2non/bimg"
)

const thumbnailWidth = 200

// Attachment is the stable reference returned for an uploaded object.
// Key is the only identifier ever needed to delete it again.
type Attachment struct {
	URL          string
	ThumbnailURL string
	Key          string
}

// ObjectStore uploads campground photos to external storage and deletes
// them by key. Implementations must not keep local copies.
type ObjectStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (Attachment, error)
	Delete(ctx context.Context, key string) error
}

// S3API is the slice of the S3 client we actually use.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client    S3API
	bucket    string
	publicURL string
}

// NewS3Store wraps an S3 client for a single bucket. publicURL is a
// format string with one %s verb for the object key.
func NewS3Store(client S3API, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}
}

func (s *S3Store) Upload(ctx context.Context, filename, contentType string, data []byte) (Attachment, error) {
	key := fmt.Sprintf("campgrounds/originals/%s_%s", uuid.New().String(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Attachment{}, fmt.Errorf("upload %q: %w", filename, err)
	}

	att := Attachment{
		URL: cleanURL(fmt.Sprintf(s.publicURL, key)),
		Key: key,
	}

	// A broken thumbnail should never fail the upload.
	thumb, err := bimg.NewImage(data).Process(bimg.Options{Width: thumbnailWidth})
	if err != nil {
		log.Printf("thumbnail for %s: %v", key, err)
		return att, nil
	}
	thumbKey := thumbKeyFor(key)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(thumbKey),
		Body:        bytes.NewReader(thumb),
		ContentType: aws.String(contentType),
	}); err != nil {
		log.Printf("upload thumbnail %s: %v", thumbKey, err)
		return att, nil
	}
	att.ThumbnailURL = cleanURL(fmt.Sprintf(s.publicURL, thumbKey))
	return att, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}

	// The thumbnail rides along with its original.
	if thumbKey := thumbKeyFor(key); thumbKey != key {
		if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(thumbKey),
		}); err != nil {
			log.Printf("delete thumbnail %s: %v", thumbKey, err)
		}
	}
	return nil
}

func thumbKeyFor(key string) string {
	return strings.Replace(key, "/originals/", "/thumbs/", 1)
}

func cleanURL(urlStr string) string {
	urlStr = strings.ReplaceAll(urlStr, " ", "%20")
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	return parsedURL.String()
}
