package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	walletcrypto "github.com/athanorlabs/go-walletcrypto"
	"github.com/athanorlabs/go-walletcrypto/bitcoin"
	"github.com/athanorlabs/go-walletcrypto/ethereum"
	"github.com/athanorlabs/go-walletcrypto/types"
)

func parseFormat(s string) (types.PublicKeyFormat, error) {
	for _, f := range []types.PublicKeyFormat{types.Compressed, types.Uncompressed, types.Raw} {
		if f.String() == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown public key format %q", s)
}

func (a *app) pubkeyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pubkey <private-key>",
		Short: "Derive the public key of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			priv, err := decodeHexArg("private key", args[0])
			if err != nil {
				return err
			}

			var pub []byte
			if format == "" {
				pub, err = conv.GetPublicKey(priv)
			} else {
				var f types.PublicKeyFormat
				if f, err = parseFormat(format); err != nil {
					return err
				}
				pub, err = conv.Curve.PublicKey(priv, f)
			}
			if err != nil {
				return err
			}

			printHex(cmd, pub)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "compressed, uncompressed or raw (default: the chain's format)")
	return cmd
}

func (a *app) addressCmd() *cobra.Command {
	var compatible bool

	cmd := &cobra.Command{
		Use:   "address <public-key>",
		Short: "Compute the address of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			pub, err := decodeHexArg("public key", args[0])
			if err != nil {
				return err
			}

			var addr string
			if conv == walletcrypto.Ethereum {
				addr, err = ethereum.AddressString(pub)
			} else {
				var net *bitcoin.Network
				if net, err = a.network(); err != nil {
					return err
				}
				if compatible {
					addr, err = bitcoin.CompatibleAddress(pub, net.ScriptHashPrefix)
				} else {
					addr, err = bitcoin.Address(pub, net.PubKeyHashPrefix)
				}
			}
			if err != nil {
				return err
			}

			printLine(cmd, addr)
			return nil
		},
	}

	cmd.Flags().BoolVar(&compatible, "p2sh-segwit", false, "bitcoin only: P2SH-wrapped P2WPKH address")
	return cmd
}

func (a *app) signCmd() *cobra.Command {
	var der, message bool

	cmd := &cobra.Command{
		Use:   "sign <hash> <private-key>",
		Short: "Sign a 32-byte hash (or a message with --message)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			data, err := decodeHexArg("hash", args[0])
			if err != nil {
				return err
			}
			priv, err := decodeHexArg("private key", args[1])
			if err != nil {
				return err
			}

			if message {
				data = conv.Hash(data)
			}

			var sig []byte
			if der {
				sig, err = conv.SignDER(data, priv)
			} else {
				sig, err = conv.Sign(data, priv)
			}
			if err != nil {
				return err
			}

			a.logger.Debug("signed", zap.String("chain", conv.Name), zap.Bool("der", der))
			printHex(cmd, sig)
			return nil
		},
	}

	cmd.Flags().BoolVar(&der, "der", false, "output a DER signature instead of r || s || v")
	cmd.Flags().BoolVar(&message, "message", false, "hash the input with the chain's message hash first")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var der, message bool

	cmd := &cobra.Command{
		Use:   "verify <signature> <hash> <public-key>",
		Short: "Verify a signature, printing true or false",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			var decoded [3][]byte
			for i, name := range []string{"signature", "hash", "public key"} {
				if decoded[i], err = decodeHexArg(name, args[i]); err != nil {
					return err
				}
			}
			sig, data, pub := decoded[0], decoded[1], decoded[2]

			if message {
				data = conv.Hash(data)
			}

			var ok bool
			if der {
				ok = conv.VerifyDER(sig, data, pub)
			} else {
				ok = conv.Verify(sig, data, pub)
			}

			if !ok {
				a.logger.Info("signature rejected", zap.String("chain", conv.Name))
			}
			printLine(cmd, strconv.FormatBool(ok))
			return nil
		},
	}

	cmd.Flags().BoolVar(&der, "der", false, "the signature is DER encoded")
	cmd.Flags().BoolVar(&message, "message", false, "hash the input with the chain's message hash first")
	return cmd
}

func (a *app) recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <signature> <hash>",
		Short: "Recover the public key of a recoverable signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.convention()
			if err != nil {
				return err
			}

			sig, err := decodeHexArg("signature", args[0])
			if err != nil {
				return err
			}
			data, err := decodeHexArg("hash", args[1])
			if err != nil {
				return err
			}

			pub, err := conv.RecoverPublicKey(sig, data)
			if err != nil {
				return err
			}

			printHex(cmd, pub)
			return nil
		},
	}
}
