package walletcrypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/athanorlabs/go-walletcrypto/digest"
	"github.com/athanorlabs/go-walletcrypto/secp256k1"
	"github.com/athanorlabs/go-walletcrypto/types"
)

type Curve = types.Curve
type PublicKeyFormat = types.PublicKeyFormat
type HashFunc = types.HashFunc

var (
	ErrUnknownConvention = errors.New("unknown convention")
	ErrNonCanonical      = errors.New("signature S value is not in the lower half of the order")
)

// Convention fixes the hash functions and key encoding a chain uses on top of
// a shared curve. Chains differ only by these parameters.
type Convention struct {
	Name  string
	Curve Curve
	// Hash digests a message before signing.
	Hash HashFunc
	// KeyHash maps a serialized public key to the address payload.
	KeyHash HashFunc
	// PublicKeyFormat is the serialization returned by GetPublicKey.
	PublicKeyFormat PublicKeyFormat
	// HashRawKey strips the key to x || y before KeyHash. Otherwise the key is
	// hashed as given, so compressed and uncompressed keys hash differently.
	HashRawKey bool
	// RequireLowS rejects signatures whose S is above n/2.
	RequireLowS bool
}

// Bitcoin is secp256k1 with double SHA-256 message hashing, RIPEMD-160 over
// SHA-256 key hashing and compressed public keys.
var Bitcoin = &Convention{
	Name:            "bitcoin",
	Curve:           secp256k1.NewCurve(),
	Hash:            digest.Sha256Sha256,
	KeyHash:         digest.Sha256Ripemd160,
	PublicKeyFormat: types.Compressed,
}

// Ethereum is secp256k1 with Keccak-256 hashing, 65-byte public keys and
// low-S signatures. The key hash is the last 20 bytes of Keccak-256(x || y).
var Ethereum = &Convention{
	Name:            "ethereum",
	Curve:           secp256k1.NewCurve(),
	Hash:            keccak256,
	KeyHash:         ethereumKeyHash,
	PublicKeyFormat: types.Uncompressed,
	HashRawKey:      true,
	RequireLowS:     true,
}

func keccak256(data []byte) []byte {
	return digest.Keccak256(data)
}

func ethereumKeyHash(raw []byte) []byte {
	return digest.Keccak256(raw)[12:]
}

// Conventions returns the known conventions.
func Conventions() []*Convention {
	return []*Convention{Bitcoin, Ethereum}
}

// ConventionByName looks up a convention by case-insensitive name.
func ConventionByName(name string) (*Convention, error) {
	for _, c := range Conventions() {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
}

// GetPublicKey derives the public key of priv in the convention's format.
func (c *Convention) GetPublicKey(priv []byte) ([]byte, error) {
	return c.Curve.PublicKey(priv, c.PublicKeyFormat)
}

// PublicKeyHash returns the address payload of a serialized public key.
func (c *Convention) PublicKeyHash(pub []byte) ([]byte, error) {
	format := types.Compressed
	switch {
	case c.HashRawKey:
		format = types.Raw
	case len(pub) != secp256k1.CompressedPublicKeySize:
		format = types.Uncompressed
	}

	key, err := c.Curve.ConvertPublicKey(pub, format)
	if err != nil {
		return nil, err
	}

	return c.KeyHash(key), nil
}

// Sign signs a 32-byte hash.
func (c *Convention) Sign(hash, priv []byte) ([]byte, error) {
	return c.Curve.Sign(hash, priv)
}

// SignMessage hashes msg with the convention's hash and signs the result.
func (c *Convention) SignMessage(msg, priv []byte) ([]byte, error) {
	return c.Sign(c.Hash(msg), priv)
}

// SignDER signs a 32-byte hash and returns the DER encoding of (R, S).
func (c *Convention) SignDER(hash, priv []byte) ([]byte, error) {
	sig, err := c.Sign(hash, priv)
	if err != nil {
		return nil, err
	}

	return c.Curve.ToDER(sig)
}

// Verify reports whether sig is a valid signature of hash by pub. It never
// fails with an error; any malformed input is reported as false.
func (c *Convention) Verify(sig, hash, pub []byte) bool {
	if c.RequireLowS && !c.Curve.IsLowS(sig) {
		return false
	}

	return c.Curve.Verify(sig, hash, pub)
}

// VerifyMessage hashes msg with the convention's hash and verifies sig.
func (c *Convention) VerifyMessage(sig, msg, pub []byte) bool {
	return c.Verify(sig, c.Hash(msg), pub)
}

// VerifyDER verifies a DER-encoded signature of hash by pub.
func (c *Convention) VerifyDER(der, hash, pub []byte) bool {
	return c.Curve.VerifyDER(der, hash, pub)
}

// RecoverPublicKey returns the signer's public key in the convention's
// format.
func (c *Convention) RecoverPublicKey(sig, hash []byte) ([]byte, error) {
	if c.RequireLowS && !c.Curve.IsLowS(sig) {
		return nil, ErrNonCanonical
	}

	return c.Curve.RecoverPublicKey(sig, hash, c.PublicKeyFormat)
}
