package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

const (
	// Size is the output size of SHA-256 and Keccak-256.
	Size = 32
	// RIPEMD160Size is the output size of RIPEMD-160.
	RIPEMD160Size = 20
)

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Sha256Sha256 returns SHA-256(SHA-256(data)), Bitcoin's checksum and
// transaction hash.
func Sha256Sha256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Ripemd160 returns the RIPEMD-160 digest of data.
func Ripemd160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// Sha256Ripemd160 returns RIPEMD-160(SHA-256(data)), the Bitcoin public key
// hash.
func Sha256Ripemd160(data []byte) []byte {
	first := sha256.Sum256(data)
	return Ripemd160(first[:])
}

// Keccak256 returns the legacy Keccak-256 digest (not NIST SHA3-256) of the
// concatenation of the inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}
