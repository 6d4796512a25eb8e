package ethereum

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

const testPrivateKey = "afeefca74d9a325cf1d6b6911d61a65c32afa8e02bd5e78e2e4ac2910bab45f5"

func TestGetPublicKey(t *testing.T) {
	pub, err := GetPublicKey(mustDecodeHex(t, testPrivateKey))
	require.NoError(t, err)
	require.Len(t, pub, PublicKeySize)
	require.Equal(t, "0499c6f51ad6f98c9c583f8e92bb7758ab2ca9a04110c0a1126ec43e5453d196c166b489a4b7c491e7688e6ebea3a71fc3a1a48d60f98d5ce84c93b65e423fde91",
		hex.EncodeToString(pub))

	_, err = GetPublicKey(make([]byte, PrivateKeySize))
	require.Error(t, err)
}

func TestHash(t *testing.T) {
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(Hash(nil)))
	require.Equal(t, ethcrypto.Keccak256([]byte("wallet")), Hash([]byte("wallet")))
}

func TestTextHash(t *testing.T) {
	for _, msg := range []string{"", "hello", "a longer message that spans more than ten bytes"} {
		require.Equal(t, accounts.TextHash([]byte(msg)), TextHash([]byte(msg)), msg)
	}
}

func TestSignAndVerify(t *testing.T) {
	priv := mustDecodeHex(t, testPrivateKey)
	pub, err := GetPublicKey(priv)
	require.NoError(t, err)
	hash := Hash([]byte("transfer"))

	sig, err := Sign(hash, priv)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize)
	require.True(t, Verify(sig, hash, pub))
	require.True(t, Verify(sig, hash, pub[1:]))

	// interoperates with go-ethereum
	require.True(t, ethcrypto.VerifySignature(pub, hash, sig[:64]))
	recoveredKey, err := ethcrypto.SigToPub(hash, sig)
	require.NoError(t, err)
	require.Equal(t, pub, ethcrypto.FromECDSAPub(recoveredKey))

	recovered, err := RecoverPublicKey(sig, hash)
	require.NoError(t, err)
	require.Equal(t, pub, recovered)

	addr, err := RecoverAddress(sig, hash)
	require.NoError(t, err)
	expected, err := Address(pub)
	require.NoError(t, err)
	require.Equal(t, expected, addr)

	require.False(t, Verify(sig, Hash([]byte("transfer!")), pub))
	sig[64] = 1 - sig[64]
	require.False(t, Verify(sig, hash, pub))
}

func TestSignatureValues(t *testing.T) {
	sig, err := Sign(Hash([]byte("tx")), mustDecodeHex(t, testPrivateKey))
	require.NoError(t, err)

	r, s, v, err := SignatureValues(sig, nil)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).SetBytes(sig[:32]), r)
	require.Equal(t, new(big.Int).SetBytes(sig[32:64]), s)
	require.Equal(t, int64(27+sig[64]), v.Int64())

	_, _, v, err = SignatureValues(sig, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, int64(37+sig[64]), v.Int64())

	_, _, v, err = SignatureValues(sig, big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, int64(27+sig[64]), v.Int64())

	_, _, _, err = SignatureValues(sig[:64], big.NewInt(1))
	require.Error(t, err)
}

func TestAddress_FromPrivateKey(t *testing.T) {
	priv := mustDecodeHex(t, testPrivateKey)
	pub, err := GetPublicKey(priv)
	require.NoError(t, err)

	s, err := AddressString(pub)
	require.NoError(t, err)
	require.Equal(t, "0xAc1ec44E4f0ca7D172B7803f6836De87Fb72b309", s)

	key, err := ethcrypto.ToECDSA(priv)
	require.NoError(t, err)
	require.Equal(t, ethcrypto.PubkeyToAddress(key.PublicKey).Hex(), s)

	for _, p := range [][]byte{pub, pub[1:]} {
		addr, err := Address(p)
		require.NoError(t, err)
		require.Len(t, addr, AddressSize)
		require.Equal(t, "ac1ec44e4f0ca7d172b7803f6836de87fb72b309", hex.EncodeToString(addr))
	}

	_, err = Address(pub[:30])
	require.Error(t, err)
}
