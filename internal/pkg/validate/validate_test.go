package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "ventas@interplast.com.ar", "x.y+z@sub.domain.io"} {
		assert.True(t, Email(ok), ok)
	}
	for _, bad := range []string{"", "plain", "a@b", "a b@c.d", "@b.c", "a@.c d"} {
		assert.False(t, Email(bad), bad)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.COM "))
}

func TestUUID(t *testing.T) {
	assert.True(t, UUID("8f14e45f-ceea-467f-a8f7-1b2c3d4e5f60"))
	assert.True(t, UUID("00000000-0000-0000-0000-000000000000"))
	assert.False(t, UUID("not-a-uuid"))
	assert.False(t, UUID("8f14e45fceea467fa8f71b2c3d4e5f60"))
	assert.False(t, UUID("{8f14e45f-ceea-467f-a8f7-1b2c3d4e5f60}"))
	assert.False(t, UUID("urn:uuid:8f14e45f-ceea-467f-a8f7-1b2c3d4e5f60"))
	assert.False(t, UUID("8f14e45f-ceea-467f-a8f7-1b2c3d4e5f6z"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize("  <script>alert(1)</script> ", 0))
	assert.Equal(t, "abc", Sanitize("abcdef", 3))
	assert.Equal(t, "ñan", Sanitize("ñandú", 3))

	long := strings.Repeat("x", 3000)
	assert.Len(t, Sanitize(long, 0), MaxSanitized)
	assert.Len(t, Sanitize(long, MaxContactMessage), MaxContactMessage)
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+54 (11) 4444-5555", Phone("+54 (11) 4444-5555"))
	assert.Equal(t, "123", Phone("1a2b3c<>"))
	assert.Equal(t, "", Phone("   "))
}

func TestTooLong(t *testing.T) {
	assert.False(t, TooLong(strings.Repeat("é", 100), MaxContactName))
	assert.True(t, TooLong(strings.Repeat("é", 101), MaxContactName))
}
