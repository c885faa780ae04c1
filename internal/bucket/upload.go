package bucket

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	productFolder = "products"
	maxImageSize  = 8 << 20
	maxImageSide  = 8000
)

// UploadProductImage decodes a data URL encoded image and stores it under the
// product folder. It returns the public URL of the object.
func (b *Bucket) UploadProductImage(ctx context.Context, rawB64Image string, productId int) (string, error) {
	img, err := getB64ImageFromString(rawB64Image)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Content))
	if err != nil {
		return "", fmt.Errorf("not a supported image: %w", err)
	}
	if cfg.Width > maxImageSide || cfg.Height > maxImageSide {
		return "", fmt.Errorf("image too large: %dx%d", cfg.Width, cfg.Height)
	}

	folder := productFolder + "/" + strconv.Itoa(productId)
	return b.uploadImageToBucket(ctx, img, folder, uuid.NewString())
}

// upload image to bucket return url
func (b *Bucket) uploadImageToBucket(ctx context.Context, img *B64Image, folder, imageName string) (string, error) {
	fp := b.constructFullPath(folder, imageName, fileExtensionFromContentType(img.ContentType))

	r := bytes.NewReader(img.Content)
	userMetaData := map[string]string{"x-amz-acl": "public-read"}
	cacheControl := "max-age=31536000"

	_, err := b.Client.PutObject(ctx, b.Config.S3BucketName, fp, r,
		int64(r.Len()), minio.PutObjectOptions{
			ContentType:  img.ContentType,
			CacheControl: cacheControl,
			UserMetadata: userMetaData,
		},
	)
	if err != nil {
		return "", fmt.Errorf("error putting object: %v", err)
	}

	return b.getCDNURL(fp), nil
}

// getB64ImageFromString extracts the content type and the decoded content from
// a raw base64 image string of the form "data:[<mediatype>];base64,[<data>]".
func getB64ImageFromString(rawB64Image string) (*B64Image, error) {
	const base64Prefix = ";base64,"
	parts := strings.SplitN(rawB64Image, base64Prefix, 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, fmt.Errorf("invalid base64 image format: expected 'data:[mediatype];base64,[data]'")
	}

	contentType := strings.TrimPrefix(parts[0], "data:")
	switch contentType {
	case contentTypeJPEG, contentTypePNG:
	default:
		return nil, fmt.Errorf("file type is not supported [%s]", contentType)
	}

	if base64.StdEncoding.DecodedLen(len(parts[1])) > maxImageSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}
	content, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}

	return &B64Image{
		ContentType: contentType,
		Content:     content,
	}, nil
}
