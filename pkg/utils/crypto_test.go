package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	encrypted, err := Encrypt([]byte("access-token-value"), testKey)

	assert.NoError(t, err)
	assert.NotEmpty(t, encrypted)

	decrypted, err := Decrypt(encrypted, testKey)

	assert.NoError(t, err)
	assert.Equal(t, "access-token-value", decrypted)
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("access-token-value"), testKey)
	assert.NoError(t, err)

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	_, err = Decrypt(encrypted, otherKey)

	assert.Error(t, err)
}

func TestDecrypt_TruncatedInput(t *testing.T) {
	_, err := Decrypt("YWJj", testKey)

	assert.Error(t, err)
}

func TestEncrypt_BadKeyLength(t *testing.T) {
	_, err := Encrypt([]byte("data"), []byte("short"))

	assert.Error(t, err)
}
