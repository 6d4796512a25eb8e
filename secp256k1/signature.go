package secp256k1

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// offsets of the compact [V+27+4] || R || S format used for recovery
	compactSigMagicOffset = 27
	compactSigCompPubKey  = 4
)

// Sign produces a deterministic (RFC 6979) low-S signature over a 32-byte
// digest in the 65-byte R || S || V format, where V is 0 or 1.
func (c *CurveImpl) Sign(digest, priv []byte) ([]byte, error) {
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDigest, len(digest))
	}

	key, err := c.toECDSA(priv)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	sig, err := ethcrypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}

	return sig, nil
}

// Verify reports whether sig is a valid R || S || V signature of digest by
// pub. Malformed input of any kind yields false. The recovery id must recover
// pub, so V is covered by the check as well.
func (*CurveImpl) Verify(sig, digest, pub []byte) bool {
	if len(digest) != DigestSize {
		return false
	}

	r, s, err := parseSignature(sig)
	if err != nil {
		return false
	}

	key, err := ParsePublicKey(pub)
	if err != nil {
		return false
	}

	if !ecdsa.NewSignature(&r, &s).Verify(digest, key) {
		return false
	}

	recovered, err := recoverPublicKey(sig, digest)
	if err != nil {
		return false
	}

	return recovered.IsEqual(key)
}

// IsLowS reports whether the S component of sig is at most n/2.
func (*CurveImpl) IsLowS(sig []byte) bool {
	_, s, err := parseSignature(sig)
	if err != nil {
		return false
	}

	return !s.IsOverHalfOrder()
}

// RecoverPublicKey returns the public key that produced sig over digest.
func (*CurveImpl) RecoverPublicKey(sig, digest []byte, format PublicKeyFormat) ([]byte, error) {
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDigest, len(digest))
	}

	_, _, err := parseSignature(sig)
	if err != nil {
		return nil, err
	}

	key, err := recoverPublicKey(sig, digest)
	if err != nil {
		return nil, err
	}

	return serializePublicKey(key, format)
}

// ToDER encodes the R and S components of a 65-byte signature as DER.
func (*CurveImpl) ToDER(sig []byte) ([]byte, error) {
	r, s, err := parseSignature(sig)
	if err != nil {
		return nil, err
	}

	return ecdsa.NewSignature(&r, &s).Serialize(), nil
}

// VerifyDER reports whether der is a valid DER-encoded signature of digest by
// pub.
func (*CurveImpl) VerifyDER(der, digest, pub []byte) bool {
	if len(digest) != DigestSize {
		return false
	}

	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false
	}

	key, err := ParsePublicKey(pub)
	if err != nil {
		return false
	}

	return sig.Verify(digest, key)
}

// parseSignature splits a 65-byte signature, rejecting R or S outside
// [1, n-1] and V outside {0, 1}.
func parseSignature(sig []byte) (r, s secp256k1.ModNScalar, err error) {
	if len(sig) != SignatureSize {
		return r, s, fmt.Errorf("%w: length %d, need %d", ErrInvalidSignature, len(sig), SignatureSize)
	}

	if sig[64] > 1 {
		return r, s, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, sig[64])
	}

	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return r, s, fmt.Errorf("%w: R out of range", ErrInvalidSignature)
	}

	if overflow := s.SetByteSlice(sig[32:64]); overflow || s.IsZero() {
		return r, s, fmt.Errorf("%w: S out of range", ErrInvalidSignature)
	}

	return r, s, nil
}

func recoverPublicKey(sig, digest []byte) (*secp256k1.PublicKey, error) {
	compact := make([]byte, SignatureSize)
	compact[0] = compactSigMagicOffset + compactSigCompPubKey + sig[64]
	copy(compact[1:], sig[:64])

	key, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	return key, nil
}
