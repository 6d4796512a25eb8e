package hdwallet

import (
	"encoding/hex"
	"strings"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-walletcrypto/types"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	shipMnemonic = "ship tube warfare resist kid inhale fashion captain sustain dog bitter tattoo fashion rather " +
		"enter type extend grain solve arch sun ladder artefact bronze"
)

func TestNewMnemonic(t *testing.T) {
	entropy, err := hex.DecodeString("c61d43dc5bb7a4e754d111dae8105b6f25356492df5e50ecb33b858d94f8c338")
	require.NoError(t, err)

	mnemonic, err := NewMnemonic(entropy)
	require.NoError(t, err)
	require.Equal(t, shipMnemonic, mnemonic)
	require.True(t, IsValidMnemonic(mnemonic))

	_, err = NewMnemonic(entropy[:15])
	require.Error(t, err)
}

func TestGenerateMnemonic(t *testing.T) {
	for bits, words := range map[int]int{128: 12, 160: 15, 192: 18, 224: 21, 256: 24} {
		mnemonic, err := GenerateMnemonic(bits)
		require.NoError(t, err)
		require.Len(t, strings.Fields(mnemonic), words)
		require.True(t, IsValidMnemonic(mnemonic))
	}

	_, err := GenerateMnemonic(100)
	require.Error(t, err)
}

func TestIsValidMnemonic(t *testing.T) {
	require.True(t, IsValidMnemonic(testMnemonic))
	require.True(t, IsValidMnemonic(shipMnemonic))
	require.False(t, IsValidMnemonic(strings.Replace(shipMnemonic, "tube", "turd", 1)))
	require.False(t, IsValidMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"))
	require.False(t, IsValidMnemonic(""))
}

func TestDeriveSeed(t *testing.T) {
	seed, err := DeriveSeed("often tobacco bread scare imitate song kind common bar forest yard wisdom", "testtest123")
	require.NoError(t, err)
	require.Len(t, seed, 64)
	require.Equal(t, "b4186ab8ac0ebfd3c20f992d0b602639fe59f0e4d2e66dea487194580e0aa003"+
		"1387c9f30488a7628ed7350a63dd97e1acb259896082e3b34a1ff0dd85c287d1", hex.EncodeToString(seed))

	seed, err = DeriveSeed(testMnemonic, "TREZOR")
	require.NoError(t, err)
	require.Equal(t, "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"+
		"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04", hex.EncodeToString(seed))

	_, err = DeriveSeed("not a mnemonic", "")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestParsePath(t *testing.T) {
	path, err := ParsePath("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, BIP44Path(PurposeBIP44, CoinTypeEthereum, 0, 0, 0), path)
	require.Equal(t, "m/44'/60'/0'/0/0", path.String())

	path, err = ParsePath("m/84h/0h/1h/1/7")
	require.NoError(t, err)
	require.Equal(t, BIP44Path(PurposeBIP84, CoinTypeBitcoin, 1, 1, 7), path)
	require.Equal(t, "m/84'/0'/1'/1/7", path.String())

	path, err = ParsePath("m")
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, "m", path.String())

	for _, s := range []string{"", "44'/0'", "m/", "m/x", "m/-1", "m/2147483648", "m/0''"} {
		_, err := ParsePath(s)
		require.ErrorIs(t, err, ErrInvalidPath, s)
	}
}

func TestDerivePrivateKey_Ethereum(t *testing.T) {
	w, err := NewFromMnemonic(testMnemonic, "")
	require.NoError(t, err)

	priv, err := w.DerivePrivateKey(BIP44Path(PurposeBIP44, CoinTypeEthereum, 0, 0, 0))
	require.NoError(t, err)
	require.Len(t, priv, 32)

	key, err := ethcrypto.ToECDSA(priv)
	require.NoError(t, err)
	require.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", ethcrypto.PubkeyToAddress(key.PublicKey).Hex())

	pub, err := w.DerivePublicKey(BIP44Path(PurposeBIP44, CoinTypeEthereum, 0, 0, 0), types.Uncompressed)
	require.NoError(t, err)
	require.Equal(t, ethcrypto.FromECDSAPub(&key.PublicKey), pub)
}

func TestDerivePrivateKey_MasterKey(t *testing.T) {
	// BIP-32 test vector 1
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	w, err := NewFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", w.MasterKey())

	priv, err := w.DerivePrivateKey(Path{})
	require.NoError(t, err)
	require.Equal(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35", hex.EncodeToString(priv))

	path, err := ParsePath("m/0'/1/2'")
	require.NoError(t, err)
	fromShorthand, err := DerivePrivateKey(seed, path)
	require.NoError(t, err)
	require.Equal(t, "cbce0d719ecf7431d88e6a89fa1483e02e35092af60c042b1df2ff59fa424dca", hex.EncodeToString(fromShorthand))

	_, err = NewFromSeed(seed[:8])
	require.ErrorIs(t, err, ErrInvalidSeed)
}
