package bucket

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	S3AccessKey       string `mapstructure:"s3AccessKey"`
	S3SecretAccessKey string `mapstructure:"s3SecretAccessKey"`
	S3Endpoint        string `mapstructure:"s3Endpoint"`
	S3BucketName      string `mapstructure:"s3BucketName"`
	S3BucketLocation  string `mapstructure:"s3BucketLocation"`
	BaseFolder        string `mapstructure:"baseFolder"`
	SubdomainEndpoint string `mapstructure:"subdomainEndpoint"`
	Insecure          bool   `mapstructure:"insecure"`
}

// Enabled reports whether the bucket is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.S3Endpoint != "" && c.S3BucketName != ""
}

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Bucket struct {
	Client objectPutter
	*Config
}

type B64Image struct {
	Content     []byte
	ContentType string
}

// New connects to the S3 compatible endpoint.
func New(c *Config) (*Bucket, error) {
	cli, err := minio.New(c.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.S3AccessKey, c.S3SecretAccessKey, ""),
		Secure: !c.Insecure,
		Region: c.S3BucketLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create minio client: %w", err)
	}
	return &Bucket{
		Client: cli,
		Config: c,
	}, nil
}
