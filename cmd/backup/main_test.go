package main

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func object(key string, age time.Duration) types.Object {
	return types.Object{Key: aws.String(key), LastModified: aws.Time(time.Now().Add(-age))}
}

type fakeBucket struct {
	objects []types.Object
	deleted []string
	prefix  string
}

func (f *fakeBucket) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeBucket) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.prefix = aws.ToString(params.Prefix)
	return &s3.ListObjectsV2Output{Contents: f.objects}, nil
}

func (f *fakeBucket) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestExpiredBackups(t *testing.T) {
	objects := []types.Object{
		object("backups/c", 3*time.Hour),
		object("backups/a", 1*time.Hour),
		object("backups/d", 4*time.Hour),
		object("backups/b", 2*time.Hour),
	}
	expired := expiredBackups(objects, 2)
	require.Len(t, expired, 2)
	assert.Equal(t, "backups/c", *expired[0].Key)
	assert.Equal(t, "backups/d", *expired[1].Key)

	assert.Nil(t, expiredBackups(objects, 4))
}

func TestRotateBackups(t *testing.T) {
	bucket := &fakeBucket{objects: []types.Object{
		object("backups/new", time.Hour),
		object("backups/old", 48*time.Hour),
	}}
	require.NoError(t, rotateBackups(context.Background(), bucket, "site", 1, zap.NewNop()))
	assert.Equal(t, backupPrefix, bucket.prefix)
	assert.Equal(t, []string{"backups/old"}, bucket.deleted)
}
