// Command backup dumps the Postgres database, gzips it, stores it in the S3
// bucket next to the uploads and prunes old dumps.
package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sort"
	"time"

	"portfolio/config"
	"portfolio/logging"
	"portfolio/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

const backupPrefix = "backups/"

// BackupConfig holds settings only the backup job needs.
type BackupConfig struct {
	KeepBackups int           `envconfig:"KEEP_BACKUPS" default:"4"`
	Timeout     time.Duration `envconfig:"BACKUP_TIMEOUT" default:"10m"`
}

type bucketClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	var bcfg BackupConfig
	if err := envconfig.Process("", &bcfg); err != nil {
		logger.Fatal("Backup config load error", zap.Error(err))
	}
	if cfg.DBDriver != "postgres" || cfg.StorageDriver != "s3" {
		logger.Fatal("Backups require DB_DRIVER=postgres and STORAGE_DRIVER=s3")
	}

	ctx, cancel := context.WithTimeout(context.Background(), bcfg.Timeout)
	defer cancel()

	logger.Info("Starting backup")
	dump, err := createDump(ctx, cfg)
	if err != nil {
		logger.Fatal("Database dump failed", zap.Error(err))
	}

	client, err := storage.NewS3Client(cfg)
	if err != nil {
		logger.Fatal("S3 client creation failed", zap.Error(err))
	}

	key := fmt.Sprintf("%sbackup-%s.sql.gz", backupPrefix, time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(dump),
		ContentType: aws.String("application/gzip"),
	})
	if err != nil {
		logger.Fatal("Backup upload failed", zap.Error(err))
	}
	logger.Info("Backup uploaded", zap.String("bucket", cfg.S3Bucket), zap.String("key", key), zap.Int("bytes", len(dump)))

	if err := rotateBackups(ctx, client, cfg.S3Bucket, bcfg.KeepBackups, logger); err != nil {
		logger.Fatal("Backup rotation failed", zap.Error(err))
	}
	logger.Info("Backup finished")
}

func createDump(ctx context.Context, cfg *config.Config) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "pg_dump",
		"-h", cfg.DBHost,
		"-p", fmt.Sprint(cfg.DBPort),
		"-U", cfg.DBUser,
		"-d", cfg.DBName,
		"-w",
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+cfg.DBPassword)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := io.Copy(gz, stdout); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("pg_dump: %w", err)
	}
	return buf.Bytes(), nil
}

// expiredBackups returns the objects beyond the newest keep.
func expiredBackups(objects []types.Object, keep int) []types.Object {
	if len(objects) <= keep {
		return nil
	}
	sorted := append([]types.Object(nil), objects...)
	sort.Slice(sorted, func(i, j int) bool {
		return aws.ToTime(sorted[i].LastModified).After(aws.ToTime(sorted[j].LastModified))
	})
	return sorted[keep:]
}

func rotateBackups(ctx context.Context, client bucketClient, bucket string, keep int, logger *zap.Logger) error {
	output, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(backupPrefix),
	})
	if err != nil {
		return err
	}

	expired := expiredBackups(output.Contents, keep)
	if len(expired) == 0 {
		logger.Info("No rotation needed", zap.Int("backups", len(output.Contents)), zap.Int("keep", keep))
		return nil
	}
	for _, obj := range expired {
		logger.Info("Deleting old backup", zap.String("key", aws.ToString(obj.Key)))
		_, err := client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    obj.Key,
		})
		if err != nil {
			logger.Error("Deleting old backup failed", zap.String("key", aws.ToString(obj.Key)), zap.Error(err))
		}
	}
	return nil
}
