package secp256k1

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/athanorlabs/go-walletcrypto/types"
)

type Curve = types.Curve
type PublicKeyFormat = types.PublicKeyFormat

const (
	PrivateKeySize            = 32
	CompressedPublicKeySize   = 33
	UncompressedPublicKeySize = 65
	RawPublicKeySize          = 64
	SignatureSize             = 65
	DigestSize                = 32
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidDigest     = errors.New("digest must be 32 bytes")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrUnknownFormat     = errors.New("unknown public key format")
)

var _ Curve = &CurveImpl{}

// CurveImpl implements types.Curve for secp256k1. Operations that touch the
// private key go through go-ethereum's crypto package, which uses
// libsecp256k1 when built with cgo (see ConstantTime). Operations on public
// data use decred's pure Go implementation.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) PrivateKeySize() int {
	return PrivateKeySize
}

func (*CurveImpl) SignatureSize() int {
	return SignatureSize
}

// ValidatePrivateKey checks that priv is a 32-byte big-endian scalar in
// [1, n-1].
func (*CurveImpl) ValidatePrivateKey(priv []byte) error {
	if len(priv) != PrivateKeySize {
		return fmt.Errorf("%w: length %d, need %d", ErrInvalidPrivateKey, len(priv), PrivateKeySize)
	}

	var k secp256k1.ModNScalar
	defer k.Zero()

	if overflow := k.SetByteSlice(priv); overflow {
		return fmt.Errorf("%w: scalar is not less than the group order", ErrInvalidPrivateKey)
	}

	if k.IsZero() {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidPrivateKey)
	}

	return nil
}

// PublicKey computes priv*G and serializes it in the given format.
func (c *CurveImpl) PublicKey(priv []byte, format PublicKeyFormat) ([]byte, error) {
	key, err := c.toECDSA(priv)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	switch format {
	case types.Compressed:
		return ethcrypto.CompressPubkey(&key.PublicKey), nil
	case types.Uncompressed:
		return ethcrypto.FromECDSAPub(&key.PublicKey), nil
	case types.Raw:
		return ethcrypto.FromECDSAPub(&key.PublicKey)[1:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// ConvertPublicKey re-serializes a 33-, 64- or 65-byte public key.
func (*CurveImpl) ConvertPublicKey(pub []byte, format PublicKeyFormat) ([]byte, error) {
	key, err := ParsePublicKey(pub)
	if err != nil {
		return nil, err
	}

	return serializePublicKey(key, format)
}

func (c *CurveImpl) toECDSA(priv []byte) (*ecdsa.PrivateKey, error) {
	err := c.ValidatePrivateKey(priv)
	if err != nil {
		return nil, err
	}

	key, err := ethcrypto.ToECDSA(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrivateKey, err)
	}

	return key, nil
}

// zeroKey wipes the scalar of a key built by toECDSA.
func zeroKey(k *ecdsa.PrivateKey) {
	b := k.D.Bits()
	for i := range b {
		b[i] = 0
	}
}

// ParsePublicKey parses a compressed, uncompressed or raw (x || y) public key
// and checks that it lies on the curve.
func ParsePublicKey(pub []byte) (*secp256k1.PublicKey, error) {
	if len(pub) == RawPublicKeySize {
		prefixed := make([]byte, UncompressedPublicKeySize)
		prefixed[0] = 0x04
		copy(prefixed[1:], pub)
		pub = prefixed
	}

	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}

	return key, nil
}

func serializePublicKey(key *secp256k1.PublicKey, format PublicKeyFormat) ([]byte, error) {
	switch format {
	case types.Compressed:
		return key.SerializeCompressed(), nil
	case types.Uncompressed:
		return key.SerializeUncompressed(), nil
	case types.Raw:
		return key.SerializeUncompressed()[1:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}
