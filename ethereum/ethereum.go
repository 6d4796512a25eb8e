// Package ethereum exposes the wallet primitives under Ethereum's conventions:
// 65-byte public keys, Keccak-256 and low-S recoverable signatures.
package ethereum

import (
	"fmt"
	"math/big"
	"strconv"

	walletcrypto "github.com/athanorlabs/go-walletcrypto"
	"github.com/athanorlabs/go-walletcrypto/digest"
	"github.com/athanorlabs/go-walletcrypto/secp256k1"
)

const (
	PrivateKeySize = 32
	PublicKeySize  = 65
	SignatureSize  = 65
	HashSize       = digest.Size
)

var convention = walletcrypto.Ethereum

// GetPublicKey returns the 65-byte 0x04 || x || y public key of priv.
func GetPublicKey(priv []byte) ([]byte, error) {
	return convention.GetPublicKey(priv)
}

// Hash computes the Keccak-256 hash of data.
func Hash(data []byte) []byte {
	return digest.Keccak256(data)
}

// TextHash computes the EIP-191 personal message hash
// keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func TextHash(msg []byte) []byte {
	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg))
	return digest.Keccak256([]byte(prefix), msg)
}

// Sign signs a 32-byte hash. The signature is R || S || V with V in {0, 1}.
func Sign(hash, priv []byte) ([]byte, error) {
	return convention.Sign(hash, priv)
}

// Verify verifies a 65-byte signature of message by publicKey. Signatures
// with S above n/2 are rejected.
func Verify(sig, message, publicKey []byte) bool {
	return convention.Verify(sig, message, publicKey)
}

// RecoverPublicKey returns the 65-byte public key that produced sig.
func RecoverPublicKey(sig, hash []byte) ([]byte, error) {
	return convention.RecoverPublicKey(sig, hash)
}

// RecoverAddress returns the address of the key that produced sig.
func RecoverAddress(sig, hash []byte) ([]byte, error) {
	pub, err := RecoverPublicKey(sig, hash)
	if err != nil {
		return nil, err
	}

	return Address(pub)
}

// SignatureValues splits sig into the R, S and V values of a transaction.
// A zero chainID yields the pre-EIP-155 V of 27 or 28; otherwise V is
// recovery id + 35 + 2*chainID.
func SignatureValues(sig []byte, chainID *big.Int) (r, s, v *big.Int, err error) {
	if len(sig) != SignatureSize || sig[64] > 1 {
		return nil, nil, nil, fmt.Errorf("%w: need %d bytes with recovery id 0 or 1",
			secp256k1.ErrInvalidSignature, SignatureSize)
	}

	r = new(big.Int).SetBytes(sig[:32])
	s = new(big.Int).SetBytes(sig[32:64])
	v = new(big.Int).SetUint64(uint64(sig[64]))

	if chainID == nil || chainID.Sign() == 0 {
		v.Add(v, big.NewInt(27))
		return r, s, v, nil
	}

	v.Add(v, big.NewInt(35))
	v.Add(v, new(big.Int).Lsh(chainID, 1))
	return r, s, v, nil
}
