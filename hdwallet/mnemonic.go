// Package hdwallet derives secp256k1 private keys from BIP-39 mnemonics along
// BIP-32/BIP-44 paths.
package hdwallet

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// GenerateMnemonic returns a new mnemonic with the given entropy size in bits
// (128, 160, 192, 224 or 256).
func GenerateMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	return bip39.NewMnemonic(entropy)
}

// NewMnemonic encodes entropy as a mnemonic.
func NewMnemonic(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to create mnemonic: %w", err)
	}

	return mnemonic, nil
}

// IsValidMnemonic reports whether mnemonic has valid words and checksum.
func IsValidMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// DeriveSeed returns the 64-byte BIP-39 seed of a valid mnemonic.
func DeriveSeed(mnemonic, passphrase string) ([]byte, error) {
	if !IsValidMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	return bip39.NewSeed(mnemonic, passphrase), nil
}
