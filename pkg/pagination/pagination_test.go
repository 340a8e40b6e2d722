package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+50))
	assert.Equal(t, 11, LimitWithBuffer(10))
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 30, 15, 123456789, time.FixedZone("IST", 19800))
	raw := EncodeCursor(Cursor{CreatedAt: created, ID: "4521"})

	parsed, err := ParseCursor(raw)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.True(t, created.Equal(parsed.CreatedAt))
	assert.Equal(t, "4521", parsed.ID)
}

func TestParseCursorEmptyAndInvalid(t *testing.T) {
	parsed, err := ParseCursor("  ")
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	for _, bad := range []string{"!!!", "bm8tc2VwYXJhdG9y", "MjAyNi0wMy0wMXw"} {
		_, err := ParseCursor(bad)
		assert.Error(t, err, bad)
	}
}
