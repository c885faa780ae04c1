package bucket

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRawB64Image = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

type fakePutter struct {
	bucket, object, contentType string
	size                        int64
	err                         error
}

func (f *fakePutter) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.bucket, f.object, f.size, f.contentType = bucketName, objectName, objectSize, opts.ContentType
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return minio.UploadInfo{}, err
	}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, f.err
}

func testBucket(p objectPutter, sub string) *Bucket {
	return &Bucket{
		Client: p,
		Config: &Config{
			S3Endpoint:        "fra1.digitaloceanspaces.com",
			S3BucketName:      "salesaice",
			BaseFolder:        "catalog",
			SubdomainEndpoint: sub,
		},
	}
}

func TestUploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("cdn url from bucket endpoint", func(t *testing.T) {
		p := &fakePutter{}
		url, err := testBucket(p, "").UploadProductImage(ctx, testRawB64Image, 7)
		require.NoError(t, err)

		assert.Equal(t, "salesaice", p.bucket)
		assert.True(t, strings.HasPrefix(p.object, "catalog/products/7/"), p.object)
		assert.True(t, strings.HasSuffix(p.object, ".png"), p.object)
		assert.Equal(t, "image/png", p.contentType)
		assert.Greater(t, p.size, int64(0))
		assert.Equal(t, "https://salesaice.fra1.digitaloceanspaces.com/"+p.object, url)
	})

	t.Run("cdn url from subdomain", func(t *testing.T) {
		p := &fakePutter{}
		url, err := testBucket(p, "files.example.com").UploadProductImage(ctx, testRawB64Image, 7)
		require.NoError(t, err)
		assert.Equal(t, "https://files.example.com/"+p.object, url)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := testBucket(&fakePutter{}, "").UploadProductImage(ctx, "data:image/gif;base64,R0lGODlhAQABAAAAACw=", 7)
		assert.Error(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := testBucket(&fakePutter{}, "").UploadProductImage(ctx, "data:image/png;base64,aGVsbG8=", 7)
		assert.Error(t, err)
	})

	t.Run("put failure", func(t *testing.T) {
		_, err := testBucket(&fakePutter{err: errors.New("boom")}, "").UploadProductImage(ctx, testRawB64Image, 7)
		assert.Error(t, err)
	})
}
