package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard date with an opaque id
	date := time.Date(2024, 7, 21, 10, 30, 45, 123456789, time.UTC)
	token := EncodeToken(date, "3f2c9a1e-7b6d-4c1a-9e0f-1a2b3c4d5e6f")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, "3f2c9a1e-7b6d-4c1a-9e0f-1a2b3c4d5e6f", decodedID, "ID should match after decode")

	// Seed-style short id
	seedToken := EncodeToken(time.Date(2024, 7, 19, 11, 20, 0, 0, time.UTC), "5")
	_, seedID, err := DecodeToken(seedToken)
	assert.NoError(t, err)
	assert.Equal(t, "5", seedID)

	// Current time
	now := time.Now().UTC()
	decodedNow, _, err := DecodeToken(EncodeToken(now, "x"))
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current date should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-07-21T10:30:00Z")))
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Empty id
	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-07-21T10:30:00Z|")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Invalid date
	_, _, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("notadate|1")))
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse")
}
