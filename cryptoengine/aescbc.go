// SPDX-License-Identifier: Apache-2.0

package cryptoengine

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesCBCCrypter is the stdlib-backed Crypter for ENCR_AES_CBC. AES-CBC
// is implemented directly on crypto/aes and crypto/cipher: the
// standard library's block-cipher/CBC-mode machinery is the reference
// implementation of this primitive and nothing in the retrieved pack
// offers a more idiomatic alternative (see DESIGN.md).
type aesCBCCrypter struct {
	block  cipher.Block
	keyLen int
	keySet bool
}

func newAESCBCCrypter(keyLen int) (Crypter, error) {
	switch keyLen {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("cryptoengine: invalid AES key length %d", keyLen)
	}
	return &aesCBCCrypter{keyLen: keyLen}, nil
}

// SetKey installs the cipher key. esp.New invokes it during
// construction before the handle is published.
func (c *aesCBCCrypter) SetKey(key []byte) error {
	if len(key) != c.keyLen {
		return fmt.Errorf("cryptoengine: expected %d byte key, got %d", c.keyLen, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	c.block = block
	c.keySet = true
	return nil
}

func (c *aesCBCCrypter) BlockSize() int {
	return aes.BlockSize
}

func (c *aesCBCCrypter) KeySize() int {
	return c.keyLen
}

func (c *aesCBCCrypter) Encrypt(iv, plaintext []byte) ([]byte, error) {
	if !c.keySet {
		return nil, fmt.Errorf("cryptoengine: key not installed")
	}
	if len(plaintext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("cryptoengine: plaintext not a multiple of the block size")
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, plaintext)
	return out, nil
}

func (c *aesCBCCrypter) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	if !c.keySet {
		return nil, fmt.Errorf("cryptoengine: key not installed")
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("cryptoengine: ciphertext not a multiple of the block size")
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}

func (c *aesCBCCrypter) Destroy() {
	c.block = nil
	c.keySet = false
}
