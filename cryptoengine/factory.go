// SPDX-License-Identifier: Apache-2.0

package cryptoengine

// crypterFactory builds an unkeyed Crypter for a given key length.
type crypterFactory func(keyLen int) (Crypter, error)

// signerFactory builds an unkeyed Signer.
type signerFactory func() (Signer, error)

var crypterFactories = map[EncrAlgorithm]crypterFactory{
	ENCR_AES_CBC: newAESCBCCrypter,
}

var signerFactories = map[IntegAlgorithm]signerFactory{
	AUTH_HMAC_SHA1_96:      func() (Signer, error) { return newHMACSigner(hmacSHA1, 12) },
	AUTH_HMAC_SHA2_256_128: func() (Signer, error) { return newHMACSigner(hmacSHA256, 16) },
	AUTH_HMAC_SHA2_384_192: func() (Signer, error) { return newHMACSigner(hmacSHA384, 24) },
	AUTH_HMAC_SHA2_512_256: func() (Signer, error) { return newHMACSigner(hmacSHA512, 32) },
}

// Factory constructs keyed Crypter and Signer handles from algorithm
// identifiers, mirroring strongSwan's lib->crypto create_crypter /
// create_signer dispatch.
type Factory struct{}

// NewFactory returns the default Factory, backed by the standard
// library's AES-CBC and HMAC-SHA implementations (see DESIGN.md for
// why these are stdlib rather than third-party).
func NewFactory() *Factory {
	return &Factory{}
}

// CreateCrypter resolves alg and returns an unkeyed Crypter sized for
// keyLen bytes, or nil if the algorithm is not recognized or keyLen is
// not a valid key length for it.
func (f *Factory) CreateCrypter(alg EncrAlgorithm, keyLen int) Crypter {
	ctor, ok := crypterFactories[alg]
	if !ok {
		return nil
	}
	c, err := ctor(keyLen)
	if err != nil {
		return nil
	}
	return c
}

// CreateSigner resolves alg and returns an unkeyed Signer, or nil if
// the algorithm is not recognized.
func (f *Factory) CreateSigner(alg IntegAlgorithm) Signer {
	ctor, ok := signerFactories[alg]
	if !ok {
		return nil
	}
	s, err := ctor()
	if err != nil {
		return nil
	}
	return s
}
