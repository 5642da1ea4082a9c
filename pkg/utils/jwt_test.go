package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "7", time.Hour)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken("test-secret", token)

	assert.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "postloom", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "7", time.Hour)
	assert.NoError(t, err)

	claims, err := ValidateToken("other-secret", token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "7", -time.Minute)
	assert.NoError(t, err)

	claims, err := ValidateToken("test-secret", token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("test-secret", "not.a.token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
