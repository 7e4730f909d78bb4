// SPDX-License-Identifier: Apache-2.0

// Package cryptoengine supplies the keyed cipher and MAC handles
// consumed by an esp.Context. It plays the role of strongSwan's
// lib->crypto crypter/signer factory: the esp package treats the
// handles it returns as opaque and only retains them for callers on
// the packet data path.
package cryptoengine

// Crypter is a keyed symmetric cipher handle, analogous to
// strongSwan's crypter_t. Implementations are block-mode ciphers
// bound to a single key for their lifetime.
type Crypter interface {
	// SetKey installs the cipher key. It must be called exactly once,
	// before Encrypt/Decrypt, and returns an error if key is the
	// wrong length for this cipher.
	SetKey(key []byte) error

	// BlockSize returns the cipher's block size in bytes.
	BlockSize() int

	// KeySize returns the installed key size in bytes.
	KeySize() int

	// Encrypt encrypts plaintext (a multiple of BlockSize) using iv
	// and returns the ciphertext.
	Encrypt(iv, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext (a multiple of BlockSize) using iv
	// and returns the plaintext.
	Decrypt(iv, ciphertext []byte) ([]byte, error)

	// Destroy releases any resources held by the handle.
	Destroy()
}

// Signer is a keyed MAC handle, analogous to strongSwan's signer_t.
type Signer interface {
	// SetKey installs the MAC key. It must be called exactly once,
	// before Sign/Verify.
	SetKey(key []byte) error

	// Size returns the length in bytes of the MAC this signer
	// produces (already truncated per the algorithm's definition,
	// e.g. 12 bytes for AUTH_HMAC_SHA1_96).
	Size() int

	// Sign computes the MAC over data.
	Sign(data []byte) []byte

	// Verify reports whether mac is the correct MAC for data.
	Verify(data, mac []byte) bool

	// Destroy releases any resources held by the handle.
	Destroy()
}
