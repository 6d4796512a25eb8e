package types

// PublicKeyFormat selects how a curve point is serialized.
type PublicKeyFormat int

const (
	// Compressed is the 33-byte parity-prefixed x-coordinate.
	Compressed PublicKeyFormat = iota
	// Uncompressed is the 65-byte 0x04 || x || y encoding.
	Uncompressed
	// Raw is the 64-byte x || y encoding without a prefix.
	Raw
)

func (f PublicKeyFormat) String() string {
	switch f {
	case Compressed:
		return "compressed"
	case Uncompressed:
		return "uncompressed"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Curve is a signature scheme over an elliptic curve. Keys, digests and
// signatures cross this boundary as byte slices; every call is stateless.
type Curve interface {
	PrivateKeySize() int
	SignatureSize() int
	ValidatePrivateKey(priv []byte) error
	PublicKey(priv []byte, format PublicKeyFormat) ([]byte, error)
	ConvertPublicKey(pub []byte, format PublicKeyFormat) ([]byte, error)
	Sign(digest, priv []byte) ([]byte, error)
	Verify(sig, digest, pub []byte) bool
	IsLowS(sig []byte) bool
	RecoverPublicKey(sig, digest []byte, format PublicKeyFormat) ([]byte, error)
	ToDER(sig []byte) ([]byte, error)
	VerifyDER(der, digest, pub []byte) bool
}

// HashFunc maps arbitrary input to a fixed-size digest.
type HashFunc func(data []byte) []byte
