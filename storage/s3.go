package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"portfolio/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// NewS3Client creates an S3 client for an S3-compatible endpoint.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3Key, cfg.S3Secret, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	}), nil
}

// ObjectPutter is the subset of *s3.Client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores uploads in a bucket.
type S3Uploader struct {
	Client ObjectPutter
	Bucket string
	URL    string
	Logger *zap.Logger
	now    func() time.Time
}

func NewS3Uploader(client ObjectPutter, cfg *config.Config, logger *zap.Logger) *S3Uploader {
	return &S3Uploader{
		Client: client,
		Bucket: cfg.S3Bucket,
		URL:    strings.TrimRight(cfg.S3URL, "/"),
		Logger: logger,
		now:    time.Now,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := CheckContentType(contentType); err != nil {
		return "", err
	}
	key := ObjectKey(name, contentType, u.now())
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        io.LimitReader(r, MaxUploadSize),
		ContentType: aws.String(baseType(contentType)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	u.Logger.Info("Stored upload in S3", zap.String("bucket", u.Bucket), zap.String("key", key))
	return fmt.Sprintf("%s/%s/%s", u.URL, u.Bucket, key), nil
}
