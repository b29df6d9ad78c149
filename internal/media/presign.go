// Package media turns stored logo references into links a browser can load.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures the S3-compatible bucket holding logos.
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	TTL       time.Duration
}

// Presigner issues time-limited GET links for logo objects.
type Presigner struct {
	client *s3.PresignClient
	bucket string
	ttl    time.Duration
}

// NewPresigner builds a presign client. Presigning is local; no request is
// sent to the bucket.
func NewPresigner(ctx context.Context, opts Options) (*Presigner, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Presigner{client: s3.NewPresignClient(client), bucket: opts.Bucket, ttl: ttl}, nil
}

// LogoURL returns a presigned link for key. Empty keys yield "", and values
// that are already absolute URLs are passed through.
func (p *Presigner) LogoURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", fmt.Errorf("presign logo %q: %w", key, err)
	}
	return req.URL, nil
}
