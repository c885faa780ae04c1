package bucket

import (
	"fmt"
	"path"
	"strings"
)

const (
	contentTypeJPEG = "image/jpeg"
	contentTypePNG  = "image/png"
)

func fileExtensionFromContentType(contentType string) string {
	switch contentType {
	case contentTypeJPEG:
		return "jpg"
	case contentTypePNG:
		return "png"
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) > 1 {
			return parts[1]
		}
		return contentType
	}
}

func (b *Bucket) constructFullPath(folder, fileName, ext string) string {
	return path.Clean(path.Join(b.BaseFolder, folder, fileName) + "." + ext)
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}
