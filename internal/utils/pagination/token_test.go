package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		DocumentDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		DocumentID:   42,
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	// Zero values survive the round trip
	zero, err := DecodeToken(EncodeToken(Cursor{}))
	require.NoError(t, err)
	assert.Equal(t, Cursor{}, zero)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("notadate|2024-05-15T00:00:00Z|1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document date parse")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|2024-05-15T00:00:00Z|abc")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document id parse")
}
