//go:build unit

package password_test

import (
	"testing"

	"do-coupon-system/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	hashed, err := password.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.True(t, password.IsHashed(hashed))

	tests := []struct {
		name     string
		stored   string
		supplied string
		errIs    error
	}{
		{name: "bcrypt match", stored: hashed, supplied: "s3cret-pass"},
		{name: "bcrypt mismatch", stored: hashed, supplied: "wrong", errIs: password.ErrComparisonFailed},
		{name: "legacy plaintext match", stored: "plain", supplied: "plain"},
		{name: "legacy plaintext mismatch", stored: "plain", supplied: "plain2", errIs: password.ErrComparisonFailed},
		{name: "empty stored", stored: "", supplied: "x", errIs: password.ErrInvalidPassword},
		{name: "empty supplied", stored: "x", supplied: "", errIs: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.stored, tt.supplied)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestIsHashed(t *testing.T) {
	assert.True(t, password.IsHashed("$2b$10$abcdefghijklmnopqrstuv"))
	assert.True(t, password.IsHashed("$2y$10$abcdefghijklmnopqrstuv"))
	assert.False(t, password.IsHashed("password123"))
	assert.False(t, password.IsHashed(""))
}
