// Package bitcoin exposes the wallet primitives under Bitcoin's conventions:
// compressed public keys, double SHA-256, RIPEMD-160 over SHA-256 and
// Base58Check.
package bitcoin

import (
	walletcrypto "github.com/athanorlabs/go-walletcrypto"
	"github.com/athanorlabs/go-walletcrypto/base58"
	"github.com/athanorlabs/go-walletcrypto/digest"
	"github.com/athanorlabs/go-walletcrypto/types"
)

const (
	PrivateKeySize = 32
	PublicKeySize  = 33
	KeyHashSize    = digest.RIPEMD160Size
	SignatureSize  = 65
)

// AnySize disables the length check in Base58Decode.
const AnySize = base58.AnySize

var convention = walletcrypto.Bitcoin

// GetPublicKey returns the 33-byte compressed public key of priv.
func GetPublicKey(priv []byte) ([]byte, error) {
	return convention.GetPublicKey(priv)
}

// GetUncompressedPublicKey returns the 65-byte 0x04 || x || y public key of
// priv.
func GetUncompressedPublicKey(priv []byte) ([]byte, error) {
	return convention.Curve.PublicKey(priv, types.Uncompressed)
}

// Base58Encode encodes data as Base58Check.
func Base58Encode(data []byte) string {
	return base58.CheckEncode(data)
}

// Base58Decode decodes a Base58Check string. The payload, excluding the
// checksum, must be expectedSize bytes long unless expectedSize is negative.
func Base58Decode(s string, expectedSize int) ([]byte, error) {
	return base58.CheckDecode(s, expectedSize)
}

// Sha256Sha256 computes the SHA-256 hash of the SHA-256 hash of data.
func Sha256Sha256(data []byte) []byte {
	return digest.Sha256Sha256(data)
}

// Sha256Ripemd160 computes the RIPEMD-160 hash of the SHA-256 hash of data.
func Sha256Ripemd160(data []byte) []byte {
	return digest.Sha256Ripemd160(data)
}

// Sign signs a 32-byte hash. The signature is R || S || V with V in {0, 1}.
func Sign(hash, priv []byte) ([]byte, error) {
	return convention.Sign(hash, priv)
}

// SignDER signs a 32-byte hash and returns the DER encoding used in
// transaction scripts.
func SignDER(hash, priv []byte) ([]byte, error) {
	return convention.SignDER(hash, priv)
}

// Verify verifies a 65-byte signature of message by publicKey.
func Verify(sig, message, publicKey []byte) bool {
	return convention.Verify(sig, message, publicKey)
}

// VerifyDER verifies a DER-encoded signature of message by publicKey.
func VerifyDER(der, message, publicKey []byte) bool {
	return convention.VerifyDER(der, message, publicKey)
}

// RecoverPublicKey returns the compressed public key that produced sig.
func RecoverPublicKey(sig, hash []byte) ([]byte, error) {
	return convention.RecoverPublicKey(sig, hash)
}

// KeyHash returns RIPEMD-160(SHA-256(pub)) of the key as serialized.
func KeyHash(pub []byte) ([]byte, error) {
	return convention.PublicKeyHash(pub)
}
