// SPDX-License-Identifier: Apache-2.0

package cryptoengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateCrypterAESCBC(t *testing.T) {
	f := NewFactory()

	c := f.CreateCrypter(ENCR_AES_CBC, 16)
	require.NotNil(t, c)
	defer c.Destroy()

	require.NoError(t, c.SetKey(make([]byte, 16)))
	assert.Equal(t, 16, c.BlockSize())
}

func TestFactoryCreateCrypterUnknownAlgorithm(t *testing.T) {
	f := NewFactory()
	assert.Nil(t, f.CreateCrypter(EncrAlgorithm(9999), 16))
}

func TestFactoryCreateSignerVariants(t *testing.T) {
	tests := []struct {
		alg  IntegAlgorithm
		size int
	}{
		{AUTH_HMAC_SHA1_96, 12},
		{AUTH_HMAC_SHA2_256_128, 16},
		{AUTH_HMAC_SHA2_384_192, 24},
		{AUTH_HMAC_SHA2_512_256, 32},
	}

	f := NewFactory()
	for _, tt := range tests {
		s := f.CreateSigner(tt.alg)
		require.NotNil(t, s)
		require.NoError(t, s.SetKey([]byte("a reasonably long shared secret")))
		assert.Equal(t, tt.size, s.Size())

		mac := s.Sign([]byte("hello"))
		assert.Len(t, mac, tt.size)
		assert.True(t, s.Verify([]byte("hello"), mac))
		assert.False(t, s.Verify([]byte("goodbye"), mac))
		s.Destroy()
	}
}

func TestFactoryCreateSignerUnknownAlgorithm(t *testing.T) {
	f := NewFactory()
	assert.Nil(t, f.CreateSigner(IntegAlgorithm(9999)))
}

func TestAESCBCEncryptDecryptRoundTrip(t *testing.T) {
	f := NewFactory()
	c := f.CreateCrypter(ENCR_AES_CBC, 32)
	require.NotNil(t, c)
	defer c.Destroy()
	require.NoError(t, c.SetKey(make([]byte, 32)))

	iv := make([]byte, c.BlockSize())
	plaintext := []byte("0123456789abcdef0123456789abcdef") // 2 blocks
	plaintext = plaintext[:32]

	ciphertext, err := c.Encrypt(iv, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := c.Decrypt(iv, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAESCBCRejectsBadKeyLength(t *testing.T) {
	f := NewFactory()
	c := f.CreateCrypter(ENCR_AES_CBC, 16)
	require.NotNil(t, c)

	err := c.SetKey(make([]byte, 13))
	assert.Error(t, err)
}
