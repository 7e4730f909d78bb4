// SPDX-License-Identifier: Apache-2.0

package cryptoengine

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// hashCtor is a constructor for one of the crypto/sha* hash.Hash
// families, used to parameterize hmacSigner by HMAC variant.
type hashCtor = func() hash.Hash

var (
	hmacSHA1   hashCtor = sha1.New
	hmacSHA256 hashCtor = sha256.New
	hmacSHA384 hashCtor = sha512.New384
	hmacSHA512 hashCtor = sha512.New
)

// hmacSigner is the stdlib-backed Signer for the AUTH_HMAC_SHA*
// family. As with AES-CBC, crypto/hmac plus the crypto/sha1,
// crypto/sha256, crypto/sha512 packages are the canonical Go
// implementation of these primitives (see DESIGN.md).
type hmacSigner struct {
	newHash  hashCtor
	truncLen int
	key      []byte
}

func newHMACSigner(newHash hashCtor, truncLen int) (Signer, error) {
	return &hmacSigner{newHash: newHash, truncLen: truncLen}, nil
}

func (s *hmacSigner) SetKey(key []byte) error {
	if len(key) == 0 {
		return fmt.Errorf("cryptoengine: empty MAC key")
	}
	s.key = append([]byte(nil), key...)
	return nil
}

func (s *hmacSigner) Size() int {
	return s.truncLen
}

func (s *hmacSigner) Sign(data []byte) []byte {
	mac := hmac.New(s.newHash, s.key)
	mac.Write(data)
	return mac.Sum(nil)[:s.truncLen]
}

func (s *hmacSigner) Verify(data, mac []byte) bool {
	if len(mac) != s.truncLen {
		return false
	}
	return hmac.Equal(s.Sign(data), mac)
}

func (s *hmacSigner) Destroy() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}
