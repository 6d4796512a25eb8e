package ethereum

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const AddressSize = 20

var (
	ErrInvalidAddress = errors.New("invalid ethereum address")
	ErrChecksum       = errors.New("address checksum mismatch")
)

// ChecksumType selects the mixed-case checksum scheme of an address string.
type ChecksumType int

const (
	// EIP55 upper-cases letters whose hash nibble is 8 or more.
	EIP55 ChecksumType = iota
	// Wanchain inverts the EIP-55 casing.
	Wanchain
)

// Address returns the 20-byte address of a public key: the last 20 bytes of
// Keccak-256(x || y). Compressed, uncompressed and raw keys are accepted.
func Address(pub []byte) ([]byte, error) {
	return convention.PublicKeyHash(pub)
}

// AddressString returns the EIP-55 checksummed address of a public key.
func AddressString(pub []byte) (string, error) {
	addr, err := Address(pub)
	if err != nil {
		return "", err
	}

	return ChecksumAddress(addr, EIP55), nil
}

// ChecksumAddress formats a 20-byte address as 0x-prefixed mixed-case hex.
// Any other length formats as "".
func ChecksumAddress(addr []byte, typ ChecksumType) string {
	if len(addr) != AddressSize {
		return ""
	}

	lower := hex.EncodeToString(addr)
	hash := hex.EncodeToString(Hash([]byte(lower)))

	out := make([]byte, 2, 2+len(lower))
	copy(out, "0x")
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= '0' && c <= '9' {
			out = append(out, c)
			continue
		}

		upper := hash[i] >= '8'
		if typ == Wanchain {
			upper = !upper
		}

		if upper {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}

	return string(out)
}

// ParseAddress decodes a 0x-prefixed (or bare) hex address. All-lower and
// all-upper strings are accepted as is; mixed-case strings must carry a valid
// EIP-55 checksum.
func ParseAddress(s string) ([]byte, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(body) != 2*AddressSize {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidAddress, len(body))
	}

	addr, err := hex.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		if ChecksumAddress(addr, EIP55)[2:] != body {
			return nil, ErrChecksum
		}
	}

	return addr, nil
}

// IsValidAddress reports whether s parses as an address.
func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}
