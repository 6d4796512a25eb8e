package base58

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var encodeVectors = []struct {
	hex, encoded string
}{
	{"", ""},
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestEncodeDecode_Vectors(t *testing.T) {
	for _, v := range encodeVectors {
		data, err := hex.DecodeString(v.hex)
		require.NoError(t, err)
		require.Equal(t, v.encoded, Encode(data))

		dec, err := Decode(v.encoded, len(data))
		require.NoError(t, err)
		require.Equal(t, v.hex, hex.EncodeToString(dec))
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for size := 0; size <= 64; size++ {
		data := make([]byte, size)
		_, err := rand.Read(data)
		require.NoError(t, err)

		dec, err := Decode(Encode(data), size)
		require.NoError(t, err)
		require.Equal(t, data, dec)

		dec, err = CheckDecode(CheckEncode(data), size)
		require.NoError(t, err)
		require.Equal(t, data, dec)
	}
}

func TestEncode_LeadingZeros(t *testing.T) {
	enc := Encode([]byte{0x00, 0x00, 1, 2, 3})
	require.True(t, strings.HasPrefix(enc, "11"))
	require.NotEqual(t, byte('1'), enc[2])

	enc = CheckEncode([]byte{0x00, 0x00, 1, 2, 3})
	require.True(t, strings.HasPrefix(enc, "11"))
	require.NotEqual(t, byte('1'), enc[2])

	dec, err := Decode("111", AnySize)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0}, dec)
}

func TestDecode_InvalidCharacters(t *testing.T) {
	for _, s := range []string{"0OIl", "0", "O", "I", "l", "2g0", "abc+", "ü"} {
		_, err := Decode(s, AnySize)
		require.ErrorIs(t, err, ErrInvalidCharacter, s)

		_, err = CheckDecode(s, AnySize)
		require.ErrorIs(t, err, ErrInvalidCharacter, s)
	}
}

func TestDecode_SizeMismatch(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x42

	_, err := Decode(Encode(data), 32)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = CheckDecode(CheckEncode(data), 32)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = CheckDecode(CheckEncode(data), 24)
	require.ErrorIs(t, err, ErrSizeMismatch)

	dec, err := Decode(Encode(data), -5)
	require.NoError(t, err)
	require.Equal(t, data, dec)
}

func TestDecode_Empty(t *testing.T) {
	dec, err := Decode("", 0)
	require.NoError(t, err)
	require.Empty(t, dec)

	_, err = Decode("", 1)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = CheckDecode("", AnySize)
	require.ErrorIs(t, err, ErrTooShort)

	_, err = CheckDecode("2g", AnySize)
	require.ErrorIs(t, err, ErrTooShort)
}

func TestCheckDecode_WIF(t *testing.T) {
	payload, err := CheckDecode("5K6EwEiKWKNnWGYwbNtrXjA8KKNntvxNKvepNqNeeLpfW7FSG1v", 33)
	require.NoError(t, err)
	require.Equal(t, byte(0x80), payload[0])
	require.Equal(t, "a7ec27c206a68e33f53d6a35f284c748e0874ca2f0ea56eca6eb7668db0fe805",
		hex.EncodeToString(payload[1:]))
	require.Equal(t, "5K6EwEiKWKNnWGYwbNtrXjA8KKNntvxNKvepNqNeeLpfW7FSG1v", CheckEncode(payload))
}

func TestCheckDecode_Address(t *testing.T) {
	payload, err := CheckDecode("1AC4gh14wwZPULVPCdxUkgqbtPvC92PQPN", 21)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), payload[0])

	_, err = CheckDecode("175tWpb8K1S7NmH4Zx6rewF9WQrcZv245W", 21)
	require.Error(t, err)
}

func TestCheckDecode_Corrupted(t *testing.T) {
	enc := CheckEncode([]byte("payload"))
	for i := 0; i < len(enc); i++ {
		b := []byte(enc)
		if b[i] == '2' {
			b[i] = '3'
		} else {
			b[i] = '2'
		}

		_, err := CheckDecode(string(b), AnySize)
		require.Error(t, err, "index %d", i)
	}
}
