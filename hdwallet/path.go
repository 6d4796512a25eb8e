package hdwallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// HardenedOffset is added to an index to select hardened derivation.
const HardenedOffset = hdkeychain.HardenedKeyStart

// SLIP-44 coin types.
const (
	CoinTypeBitcoin  uint32 = 0
	CoinTypeEthereum uint32 = 60
)

// BIP-44 purpose fields.
const (
	PurposeBIP44 uint32 = 44
	PurposeBIP49 uint32 = 49
	PurposeBIP84 uint32 = 84
)

var ErrInvalidPath = errors.New("invalid derivation path")

// Path is a BIP-32 derivation path from the master key.
type Path []uint32

// BIP44Path returns m/purpose'/coin'/account'/change/index.
func BIP44Path(purpose, coin, account, change, index uint32) Path {
	return Path{
		purpose + HardenedOffset,
		coin + HardenedOffset,
		account + HardenedOffset,
		change,
		index,
	}
}

// ParsePath parses paths such as "m/44'/60'/0'/0/0". Hardened components may
// be marked with ' or h.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}

		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrInvalidPath, part)
		}

		if idx >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidPath, idx)
		}

		if hardened {
			idx += uint64(HardenedOffset)
		}
		path = append(path, uint32(idx))
	}

	return path, nil
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, idx := range p {
		sb.WriteString("/")
		if idx >= HardenedOffset {
			sb.WriteString(strconv.FormatUint(uint64(idx-HardenedOffset), 10))
			sb.WriteString("'")
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(idx), 10))
	}

	return sb.String()
}
