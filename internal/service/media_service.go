package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	config "github.com/maheshrc27/agency-cockpit/configs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var allowedMedia = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"video/mp4":  true,
}

type MediaService interface {
	// Store checks the content type of an uploaded file and returns the
	// reference to keep in the post's media_name column.
	Store(ctx context.Context, filename string, data []byte) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type mediaService struct {
	client    objectPutter
	bucket    string
	publicURL string
}

// NewMediaService uploads to Cloudflare R2 when it is configured. Otherwise
// only the original filename is recorded.
func NewMediaService(ctx context.Context, cfg config.Config) (MediaService, error) {
	if !cfg.R2.Enabled() {
		return &mediaService{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID))
	})

	return &mediaService{
		client:    client,
		bucket:    cfg.R2.BucketName,
		publicURL: cfg.R2.PublicURL,
	}, nil
}

func (s *mediaService) Store(ctx context.Context, filename string, data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || !allowedMedia[kind.MIME.Value] {
		return "", ErrUnsupportedMedia
	}

	if s.client == nil {
		return filepath.Base(filename), nil
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := id + "." + kind.Extension

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(kind.MIME.Value),
	})
	if err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		return "", fmt.Errorf("upload media: %w", err)
	}

	if s.publicURL == "" {
		return key, nil
	}
	return strings.TrimRight(s.publicURL, "/") + "/" + key, nil
}
