package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"api/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PhotoStorage stores contestant profile photos in S3 under a namespaced
// key. Objects are publicly readable; writes go through the API only.
type PhotoStorage struct {
	client *s3.Client
	bucket string
}

// NewPhotoStorage builds a PhotoStorage from the default AWS credential chain
func NewPhotoStorage(ctx context.Context) (*PhotoStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &PhotoStorage{
		client: s3.NewFromConfig(cfg),
		bucket: config.S3Bucket,
	}, nil
}

// UploadContestantPhoto stores a photo and returns its public URL
func (p *PhotoStorage) UploadContestantPhoto(ctx context.Context, leagueID, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", fmt.Errorf("unsupported photo format %q", ext)
	}

	key := fmt.Sprintf("leagues/%s/contestants/%s%s", leagueID, uuid.New().String(), ext)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return p.publicURL(key), nil
}

// DeletePhoto removes a previously uploaded photo by its public URL.
// URLs not produced by this storage are ignored.
func (p *PhotoStorage) DeletePhoto(ctx context.Context, photoURL string) error {
	key, ok := p.keyFromURL(photoURL)
	if !ok {
		return nil
	}
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

func (p *PhotoStorage) publicURL(key string) string {
	if config.S3PublicBaseURL != "" {
		return strings.TrimSuffix(config.S3PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, config.S3Region, key)
}

func (p *PhotoStorage) keyFromURL(photoURL string) (string, bool) {
	prefixes := []string{
		strings.TrimSuffix(config.S3PublicBaseURL, "/") + "/",
		fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", p.bucket, config.S3Region),
	}
	for _, prefix := range prefixes {
		if prefix != "/" && strings.HasPrefix(photoURL, prefix) {
			return strings.TrimPrefix(photoURL, prefix), true
		}
	}
	return "", false
}
