package bitcoin

import (
	"errors"
	"fmt"
)

var ErrInvalidWIF = errors.New("invalid WIF private key")

// WIF key suffixes. 0x01 marks a compressed public key; the others are the
// BIP-178 extended types.
const (
	SuffixCompressed = 0x01
	SuffixP2PKH      = 0x10
	SuffixP2WPKH     = 0x11
	SuffixP2WPKHP2SH = 0x12
)

// WIF is a private key in wallet import format.
type WIF struct {
	PrivateKey []byte
	Network    *Network
	// Suffix is zero for keys with an uncompressed public key.
	Suffix byte
}

// Compressed reports whether the key's public key is compressed.
func (w *WIF) Compressed() bool {
	return w.Suffix != 0
}

// String re-encodes the key. A key without a network formats as "".
func (w *WIF) String() string {
	if w.Network == nil {
		return ""
	}

	payload := make([]byte, 0, 2+PrivateKeySize)
	payload = append(payload, w.Network.PrivateKeyPrefix)
	payload = append(payload, w.PrivateKey...)
	if w.Suffix != 0 {
		payload = append(payload, w.Suffix)
	}

	return Base58Encode(payload)
}

// EncodeWIF encodes priv for the given network.
func EncodeWIF(priv []byte, net *Network, compressed bool) (string, error) {
	if net == nil {
		return "", fmt.Errorf("%w: no network", ErrInvalidWIF)
	}

	err := convention.Curve.ValidatePrivateKey(priv)
	if err != nil {
		return "", err
	}

	w := &WIF{
		PrivateKey: priv,
		Network:    net,
	}
	if compressed {
		w.Suffix = SuffixCompressed
	}

	return w.String(), nil
}

// DecodeWIF decodes a WIF string of a known network.
func DecodeWIF(s string) (*WIF, error) {
	payload, err := Base58Decode(s, AnySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWIF, err)
	}

	var suffix byte
	switch len(payload) {
	case 1 + PrivateKeySize:
	case 2 + PrivateKeySize:
		suffix = payload[len(payload)-1]
		switch suffix {
		case SuffixCompressed, SuffixP2PKH, SuffixP2WPKH, SuffixP2WPKHP2SH:
		default:
			return nil, fmt.Errorf("%w: unknown suffix 0x%02x", ErrInvalidWIF, suffix)
		}
	default:
		return nil, fmt.Errorf("%w: payload length %d", ErrInvalidWIF, len(payload))
	}

	var net *Network
	for _, n := range Networks() {
		if n.PrivateKeyPrefix == payload[0] {
			net = n
		}
	}
	if net == nil {
		return nil, fmt.Errorf("%w: unknown network 0x%02x", ErrInvalidWIF, payload[0])
	}

	priv := make([]byte, PrivateKeySize)
	copy(priv, payload[1:1+PrivateKeySize])
	err = convention.Curve.ValidatePrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWIF, err)
	}

	return &WIF{
		PrivateKey: priv,
		Network:    net,
		Suffix:     suffix,
	}, nil
}

// IsValidPrivateKey reports whether s is a valid WIF private key.
func IsValidPrivateKey(s string) bool {
	_, err := DecodeWIF(s)
	return err == nil
}

// PublicKey returns the public key encoded as the WIF suffix indicates.
func (w *WIF) PublicKey() ([]byte, error) {
	if w.Compressed() {
		return GetPublicKey(w.PrivateKey)
	}

	return GetUncompressedPublicKey(w.PrivateKey)
}
