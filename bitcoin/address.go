package bitcoin

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-walletcrypto/types"
)

var ErrInvalidAddress = errors.New("invalid bitcoin address")

// Network holds the version bytes of a Bitcoin network.
//
// See https://en.bitcoin.it/wiki/List_of_address_prefixes
type Network struct {
	Name             string
	PubKeyHashPrefix byte
	ScriptHashPrefix byte
	PrivateKeyPrefix byte
}

var (
	MainNet = &Network{
		Name:             "mainnet",
		PubKeyHashPrefix: 0x00,
		ScriptHashPrefix: 0x05,
		PrivateKeyPrefix: 0x80,
	}
	TestNet = &Network{
		Name:             "testnet",
		PubKeyHashPrefix: 0x6f,
		ScriptHashPrefix: 0xc4,
		PrivateKeyPrefix: 0xef,
	}
)

// Networks returns the known networks.
func Networks() []*Network {
	return []*Network{MainNet, TestNet}
}

// AddressType is the kind of script an address pays to.
type AddressType int

const (
	PubKeyHash AddressType = iota
	ScriptHash
)

// Address returns the P2PKH address of pub with the given version prefix.
// The key is hashed as serialized, so compressed and uncompressed encodings
// of the same key have different addresses.
func Address(pub []byte, prefix byte) (string, error) {
	h, err := KeyHash(pub)
	if err != nil {
		return "", err
	}

	return encodeAddress(prefix, h), nil
}

// CompatibleAddress returns the P2SH-wrapped P2WPKH (BIP-49) address of pub
// with the given script hash prefix. Witness programs always commit to the
// compressed key.
func CompatibleAddress(pub []byte, prefix byte) (string, error) {
	compressed, err := convention.Curve.ConvertPublicKey(pub, types.Compressed)
	if err != nil {
		return "", err
	}

	// OP_0 <20-byte key hash>
	redeemScript := make([]byte, 0, 2+KeyHashSize)
	redeemScript = append(redeemScript, 0x00, KeyHashSize)
	redeemScript = append(redeemScript, Sha256Ripemd160(compressed)...)

	return encodeAddress(prefix, Sha256Ripemd160(redeemScript)), nil
}

// DecodeAddress decodes a Base58Check address into its version prefix and
// 20-byte hash.
func DecodeAddress(s string) (byte, []byte, error) {
	payload, err := Base58Decode(s, 1+KeyHashSize)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	return payload[0], payload[1:], nil
}

// ParseAddress decodes s and resolves its prefix against the known networks.
func ParseAddress(s string) (*Network, AddressType, []byte, error) {
	prefix, hash, err := DecodeAddress(s)
	if err != nil {
		return nil, 0, nil, err
	}

	for _, net := range Networks() {
		switch prefix {
		case net.PubKeyHashPrefix:
			return net, PubKeyHash, hash, nil
		case net.ScriptHashPrefix:
			return net, ScriptHash, hash, nil
		}
	}

	return nil, 0, nil, fmt.Errorf("%w: unknown prefix 0x%02x", ErrInvalidAddress, prefix)
}

// IsValidAddress reports whether s is a Base58Check address of a known
// network.
func IsValidAddress(s string) bool {
	_, _, _, err := ParseAddress(s)
	return err == nil
}

func encodeAddress(prefix byte, hash []byte) string {
	payload := make([]byte, 0, 1+len(hash))
	payload = append(payload, prefix)
	payload = append(payload, hash...)
	return Base58Encode(payload)
}
