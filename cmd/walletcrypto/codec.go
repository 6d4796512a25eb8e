package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/athanorlabs/go-walletcrypto/base58"
	"github.com/athanorlabs/go-walletcrypto/bitcoin"
)

func (a *app) hashCmd() *cobra.Command {
	var keyHash bool

	cmd := &cobra.Command{
		Use:   "hash <data>",
		Short: "Hash hex data with the chain's message hash (or key hash with --key)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			data, err := decodeHexArg("data", args[0])
			if err != nil {
				return err
			}

			if keyHash {
				printHex(cmd, conv.KeyHash(data))
				return nil
			}

			printHex(cmd, conv.Hash(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keyHash, "key", false, "use the key hash (hash160 or keccak256 suffix)")
	return cmd
}

func (a *app) base58Cmd() *cobra.Command {
	var raw bool
	var size int

	cmd := &cobra.Command{
		Use:   "base58",
		Short: "Base58Check encode and decode",
	}
	cmd.PersistentFlags().BoolVar(&raw, "raw", false, "plain Base58 without the checksum")

	encode := &cobra.Command{
		Use:   "encode <data>",
		Short: "Encode hex data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHexArg("data", args[0])
			if err != nil {
				return err
			}

			if raw {
				printLine(cmd, base58.Encode(data))
			} else {
				printLine(cmd, bitcoin.Base58Encode(data))
			}
			return nil
		},
	}

	decode := &cobra.Command{
		Use:   "decode <string>",
		Short: "Decode a Base58 string to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if raw {
				data, err = base58.Decode(args[0], size)
			} else {
				data, err = bitcoin.Base58Decode(args[0], size)
			}
			if err != nil {
				a.logger.Debug("decode failed", zap.String("input", args[0]), zap.Error(err))
				return err
			}

			printHex(cmd, data)
			return nil
		},
	}
	decode.Flags().IntVar(&size, "size", base58.AnySize, "expected decoded size, -1 for any")

	cmd.AddCommand(encode, decode)
	return cmd
}

func (a *app) wifCmd() *cobra.Command {
	var uncompressed bool

	cmd := &cobra.Command{
		Use:   "wif",
		Short: "Wallet Import Format private keys",
	}

	encode := &cobra.Command{
		Use:   "encode <private-key>",
		Short: "Encode a private key for the selected network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.network()
			if err != nil {
				return err
			}

			priv, err := decodeHexArg("private key", args[0])
			if err != nil {
				return err
			}

			s, err := bitcoin.EncodeWIF(priv, net, !uncompressed)
			if err != nil {
				return err
			}

			printLine(cmd, s)
			return nil
		},
	}
	encode.Flags().BoolVar(&uncompressed, "uncompressed", false, "mark the key as using uncompressed public keys")

	decode := &cobra.Command{
		Use:   "decode <wif>",
		Short: "Decode a WIF string to its private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := bitcoin.DecodeWIF(args[0])
			if err != nil {
				return err
			}

			a.logger.Debug("decoded wif",
				zap.String("network", w.Network.Name),
				zap.Bool("compressed", w.Compressed()),
			)
			printHex(cmd, w.PrivateKey)
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}
