// Package s3 provides attachment storage access over any S3-compatible
// endpoint (AWS S3, Cloudflare R2, MinIO).
package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the object storage connection settings.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Presigner issues pre-signed PUT URLs so clients upload attachment bytes
// directly to the bucket instead of routing them through the API.
type Presigner struct {
	client  *awss3.Client
	presign *awss3.PresignClient
	bucket  string
}

// NewPresigner creates an object storage presigner.
func NewPresigner(cfg *Config) (*Presigner, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.New("access key ID is required")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("secret access key is required")
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	client := awss3.New(awss3.Options{
		Region: region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	})

	return &Presigner{
		client:  client,
		presign: awss3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// PresignPut returns a pre-signed PUT URL for the object key. The signature
// covers content type and length, so the upload must match the grant exactly.
func (p *Presigner) PresignPut(ctx context.Context, key, contentType string, sizeBytes int64, expiry time.Duration) (string, error) {
	req, err := p.presign.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(sizeBytes),
	}, func(opts *awss3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}
	return req.URL, nil
}

// HealthCheck verifies bucket reachability via HeadBucket.
func (p *Presigner) HealthCheck(ctx context.Context) error {
	_, err := p.client.HeadBucket(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(p.bucket),
	})
	if err != nil {
		return fmt.Errorf("head bucket: %w", err)
	}
	return nil
}
