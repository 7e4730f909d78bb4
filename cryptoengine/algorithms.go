// SPDX-License-Identifier: Apache-2.0

package cryptoengine

// EncrAlgorithm identifies an ESP encryption transform using the IKEv2
// Transform Type 1 (Encryption Algorithm) registry values.
type EncrAlgorithm uint16

// IntegAlgorithm identifies an ESP integrity transform using the IKEv2
// Transform Type 3 (Integrity Algorithm) registry values.
type IntegAlgorithm uint16

// Recognized algorithm identifiers. Values match the IANA IKEv2
// registries so callers can pass values taken directly off the wire
// from an IKE SA negotiation.
const (
	ENCR_AES_CBC EncrAlgorithm = 12
)

const (
	AUTH_HMAC_SHA1_96      IntegAlgorithm = 2
	AUTH_HMAC_SHA2_256_128 IntegAlgorithm = 12
	AUTH_HMAC_SHA2_384_192 IntegAlgorithm = 13
	AUTH_HMAC_SHA2_512_256 IntegAlgorithm = 14
)

func (a EncrAlgorithm) String() string {
	switch a {
	case ENCR_AES_CBC:
		return "ENCR_AES_CBC"
	default:
		return "ENCR_UNKNOWN"
	}
}

func (a IntegAlgorithm) String() string {
	switch a {
	case AUTH_HMAC_SHA1_96:
		return "AUTH_HMAC_SHA1_96"
	case AUTH_HMAC_SHA2_256_128:
		return "AUTH_HMAC_SHA2_256_128"
	case AUTH_HMAC_SHA2_384_192:
		return "AUTH_HMAC_SHA2_384_192"
	case AUTH_HMAC_SHA2_512_256:
		return "AUTH_HMAC_SHA2_512_256"
	default:
		return "AUTH_UNKNOWN"
	}
}
