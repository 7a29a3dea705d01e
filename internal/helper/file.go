package helper

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateObjectKey builds "<prefix>/<owner>/<unixMillis>_<random>.<ext>".
func GenerateObjectKey(prefix, ownerID, originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".bin"
	}

	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	key := fmt.Sprintf("%s/%d_%s%s", ownerID, now.UnixMilli(), random, ext)
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

func DetectFileContentType(file io.ReadSeeker) (string, error) {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	if n == 0 {
		return "", errors.New("empty file")
	}

	contentType := http.DetectContentType(buffer[:n])

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return contentType, nil
}

// ResolveContentType prefers a sniffed type and falls back to the declared one, then the extension.
func ResolveContentType(sniffed, declared, name string) string {
	if sniffed != "" && sniffed != "application/octet-stream" {
		return stripContentTypeParams(sniffed)
	}
	if declared != "" {
		return stripContentTypeParams(declared)
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return stripContentTypeParams(byExt)
	}
	return "application/octet-stream"
}

func stripContentTypeParams(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.TrimSpace(strings.ToLower(contentType))
	}
	return mediaType
}

// MatchContentType accepts exact matches and prefix wildcards such as "image/*".
func MatchContentType(accepted []string, contentType string) bool {
	contentType = strings.ToLower(contentType)
	for _, pattern := range accepted {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "*/*" || pattern == contentType {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok && strings.HasPrefix(contentType, prefix+"/") {
			return true
		}
	}
	return false
}
