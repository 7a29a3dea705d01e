package helper

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	key := GenerateObjectKey("report-media", "user-1", "Photo.JPG", now)
	assert.Regexp(t, regexp.MustCompile(`^report-media/user-1/1700000000123_[0-9a-f]{12}\.jpg$`), key)

	other := GenerateObjectKey("report-media", "user-1", "Photo.JPG", now)
	assert.NotEqual(t, key, other)

	assert.True(t, strings.HasSuffix(GenerateObjectKey("", "u", "noext", now), ".bin"))
	assert.True(t, strings.HasPrefix(GenerateObjectKey("", "u", "a.png", now), "u/"))
}

func TestMatchContentType(t *testing.T) {
	accepted := []string{"image/*", "video/*", "application/pdf"}

	assert.True(t, MatchContentType(accepted, "image/png"))
	assert.True(t, MatchContentType(accepted, "video/mp4"))
	assert.True(t, MatchContentType(accepted, "application/pdf"))
	assert.False(t, MatchContentType(accepted, "application/zip"))
	assert.False(t, MatchContentType(accepted, "imagery/png"))
	assert.False(t, MatchContentType(nil, "image/png"))
}

func TestResolveContentType(t *testing.T) {
	assert.Equal(t, "image/png", ResolveContentType("image/png", "image/jpeg", "a.jpg"))
	assert.Equal(t, "video/mp4", ResolveContentType("application/octet-stream", "video/mp4; codecs=avc1", "a"))
	assert.Equal(t, "image/jpeg", ResolveContentType("", "", "a.jpg"))
	assert.Equal(t, "application/octet-stream", ResolveContentType("", "", "a"))
}

func TestDefaultUsername(t *testing.T) {
	assert.Equal(t, "ahmed_b", DefaultUsername("Ahmed_B@example.com"))
	assert.Equal(t, "ab_", DefaultUsername("a.b@example.com"))
	assert.Len(t, DefaultUsername(strings.Repeat("x", 40)+"@example.com"), UsernameMaxLength)
}
