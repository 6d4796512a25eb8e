package hdwallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/athanorlabs/go-walletcrypto/secp256k1"
)

var ErrInvalidSeed = errors.New("invalid seed")

// Wallet is a BIP-32 master key.
type Wallet struct {
	master *hdkeychain.ExtendedKey
}

// NewFromSeed creates the master key of seed, which must be between 16 and
// 64 bytes.
func NewFromSeed(seed []byte) (*Wallet, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeed, err)
	}

	return &Wallet{master: master}, nil
}

// NewFromMnemonic creates the master key of a mnemonic and passphrase.
func NewFromMnemonic(mnemonic, passphrase string) (*Wallet, error) {
	seed, err := DeriveSeed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	return NewFromSeed(seed)
}

// MasterKey returns the base58 serialized extended private key (xprv).
func (w *Wallet) MasterKey() string {
	return w.master.String()
}

// DerivePrivateKey returns the 32-byte private key at path.
func (w *Wallet) DerivePrivateKey(path Path) ([]byte, error) {
	key := w.master
	for _, idx := range path {
		var err error
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", path, err)
		}
	}

	ecPriv, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}

	priv := ecPriv.Key.Bytes()
	return priv[:], nil
}

// DerivePublicKey returns the public key at path in the given format.
func (w *Wallet) DerivePublicKey(path Path, format secp256k1.PublicKeyFormat) ([]byte, error) {
	priv, err := w.DerivePrivateKey(path)
	if err != nil {
		return nil, err
	}

	return secp256k1.NewCurve().PublicKey(priv, format)
}

// DerivePrivateKey is a shorthand for NewFromSeed followed by
// Wallet.DerivePrivateKey.
func DerivePrivateKey(seed []byte, path Path) ([]byte, error) {
	w, err := NewFromSeed(seed)
	if err != nil {
		return nil, err
	}

	return w.DerivePrivateKey(path)
}
