package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pwd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pwd", hash)

	// per-call random salt
	hash2, err := HashPassword("s3cret-pwd")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("correct horse battery staple", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}

func TestGenerateParseToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateToken(secret, time.Hour, userID, "t@test.test")
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "t@test.test", claims.Email)

	subject, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestParseTokenFailures(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	validToken, err := GenerateToken(secret, time.Hour, userID, "t@test.test")
	require.NoError(t, err)

	expiredToken, err := GenerateToken(secret, -time.Minute, userID, "t@test.test")
	require.NoError(t, err)

	otherSecretToken, err := GenerateToken("other-secret", time.Hour, userID, "t@test.test")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "no token", token: "", wantErr: ErrTokenInvalid},
		{name: "malformed token", token: "lmaooolol", wantErr: ErrTokenInvalid},
		{name: "wrong secret", token: otherSecretToken, wantErr: ErrTokenInvalid},
		{name: "unsigned token", token: noneToken, wantErr: ErrTokenInvalid},
		{name: "expired token", token: expiredToken, wantErr: ErrTokenExpired},
		{name: "valid token", token: validToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(secret, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
