package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 14, 10, 30, 0, 123456789, time.UTC)
	id := "7f8d9e10-1234-4abc-9def-0123456789ab"

	token := EncodeCursor(createdAt, id)
	require.NotEmpty(t, token)

	gotTime, gotID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = DecodeCursor("aGVsbG8=")
	assert.Error(t, err)

	// Separator present but the time part is junk.
	_, _, err = DecodeCursor("anVua3xpZA==")
	assert.Error(t, err)
}
