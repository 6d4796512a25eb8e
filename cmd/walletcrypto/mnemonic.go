package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	walletcrypto "github.com/athanorlabs/go-walletcrypto"
	"github.com/athanorlabs/go-walletcrypto/bitcoin"
	"github.com/athanorlabs/go-walletcrypto/ethereum"
	"github.com/athanorlabs/go-walletcrypto/hdwallet"
)

func (a *app) mnemonicCmd() *cobra.Command {
	var (
		bits       int
		passphrase string
		path       string
	)

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "BIP-39 mnemonics and BIP-44 key derivation",
	}
	cmd.PersistentFlags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase")

	generate := &cobra.Command{
		Use:   "new",
		Short: "Generate a new mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mnemonic, err := hdwallet.GenerateMnemonic(bits)
			if err != nil {
				return err
			}

			printLine(cmd, mnemonic)
			return nil
		},
	}
	generate.Flags().IntVar(&bits, "bits", 128, "entropy size: 128, 160, 192, 224 or 256")

	seed := &cobra.Command{
		Use:   "seed <mnemonic>",
		Short: "Print the BIP-39 seed of a mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := hdwallet.DeriveSeed(args[0], passphrase)
			if err != nil {
				return err
			}

			printHex(cmd, s)
			return nil
		},
	}

	derive := &cobra.Command{
		Use:   "derive <mnemonic>",
		Short: "Derive the private key, public key and address at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			p, err := a.derivationPath(conv, path)
			if err != nil {
				return err
			}

			w, err := hdwallet.NewFromMnemonic(args[0], passphrase)
			if err != nil {
				return err
			}

			priv, err := w.DerivePrivateKey(p)
			if err != nil {
				return err
			}

			pub, err := conv.GetPublicKey(priv)
			if err != nil {
				return err
			}

			addr, err := a.address(conv, pub)
			if err != nil {
				return err
			}

			a.logger.Debug("derived key", zap.String("path", p.String()), zap.String("chain", conv.Name))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path: %s\n", p)
			fmt.Fprintf(out, "private_key: %x\n", priv)
			fmt.Fprintf(out, "public_key: %x\n", pub)
			fmt.Fprintf(out, "address: %s\n", addr)
			return nil
		},
	}
	derive.Flags().StringVar(&path, "path", "", "derivation path (default: m/44'/<coin>'/0'/0/0)")

	cmd.AddCommand(generate, seed, derive)
	return cmd
}

func (a *app) derivationPath(conv *walletcrypto.Convention, s string) (hdwallet.Path, error) {
	if s != "" {
		return hdwallet.ParsePath(s)
	}

	coin := hdwallet.CoinTypeBitcoin
	if conv == walletcrypto.Ethereum {
		coin = hdwallet.CoinTypeEthereum
	}

	return hdwallet.BIP44Path(hdwallet.PurposeBIP44, coin, 0, 0, 0), nil
}

func (a *app) address(conv *walletcrypto.Convention, pub []byte) (string, error) {
	switch conv {
	case walletcrypto.Ethereum:
		return ethereum.AddressString(pub)
	case walletcrypto.Bitcoin:
		net, err := a.network()
		if err != nil {
			return "", err
		}
		return bitcoin.Address(pub, net.PubKeyHashPrefix)
	default:
		return "", fmt.Errorf("no address format for %s", conv.Name)
	}
}
