package base58

import (
	"bytes"
	"errors"
	"fmt"

	b58 "github.com/mr-tron/base58"

	"github.com/athanorlabs/go-walletcrypto/digest"
)

const (
	// AnySize disables the decoded length check.
	AnySize = -1
	// ChecksumSize is the length of the Base58Check suffix.
	ChecksumSize = 4
)

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrSizeMismatch     = errors.New("decoded size does not match expected size")
	ErrTooShort         = errors.New("decoded data too short for checksum")
	ErrChecksum         = errors.New("checksum mismatch")
)

// Encode encodes data using the Bitcoin alphabet. Each leading zero byte
// becomes one leading '1'.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	return b58.Encode(data)
}

// Decode decodes s. If expectedSize is non-negative the decoded length must
// equal it.
func Decode(s string, expectedSize int) ([]byte, error) {
	out, err := decode(s)
	if err != nil {
		return nil, err
	}

	err = checkSize(len(out), expectedSize)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CheckEncode encodes payload followed by the first four bytes of its
// double SHA-256.
func CheckEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+ChecksumSize)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)...)
	return Encode(buf)
}

// CheckDecode decodes a Base58Check string and returns the payload without
// its checksum. expectedSize applies to the payload.
func CheckDecode(s string, expectedSize int) ([]byte, error) {
	raw, err := decode(s)
	if err != nil {
		return nil, err
	}

	if len(raw) < ChecksumSize {
		return nil, ErrTooShort
	}

	payload, sum := raw[:len(raw)-ChecksumSize], raw[len(raw)-ChecksumSize:]
	err = checkSize(len(payload), expectedSize)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(checksum(payload), sum) {
		return nil, ErrChecksum
	}

	return payload, nil
}

func decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}

	out, err := b58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCharacter, err)
	}

	return out, nil
}

func checkSize(got, expected int) error {
	if expected >= 0 && got != expected {
		return fmt.Errorf("%w: got %d, expected %d", ErrSizeMismatch, got, expected)
	}

	return nil
}

func checksum(payload []byte) []byte {
	return digest.Sha256Sha256(payload)[:ChecksumSize]
}
