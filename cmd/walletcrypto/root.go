package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	walletcrypto "github.com/athanorlabs/go-walletcrypto"
	"github.com/athanorlabs/go-walletcrypto/bitcoin"
)

const (
	envPrefix = "WALLETCRYPTO"

	flagChain   = "chain"
	flagNetwork = "network"
	flagVerbose = "verbose"
)

// app carries the per-invocation configuration and logger.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "walletcrypto",
		Short:         "Key derivation, hashing, Base58 and signing for Bitcoin and Ethereum",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd, a.v.GetBool(flagVerbose))
			a.logger.Debug("configuration",
				zap.String("chain", a.v.GetString(flagChain)),
				zap.String("network", a.v.GetString(flagNetwork)),
			)
			return nil
		},
	}

	root.PersistentFlags().String(flagChain, walletcrypto.Bitcoin.Name, "signing convention: bitcoin or ethereum")
	root.PersistentFlags().String(flagNetwork, bitcoin.MainNet.Name, "bitcoin network: mainnet or testnet")
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "enable debug logging")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	for _, name := range []string{flagChain, flagNetwork, flagVerbose} {
		if err := a.v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.pubkeyCmd(),
		a.addressCmd(),
		a.signCmd(),
		a.verifyCmd(),
		a.recoverCmd(),
		a.hashCmd(),
		a.base58Cmd(),
		a.wifCmd(),
		a.mnemonicCmd(),
	)

	return root
}

// newLogger writes to the command's stderr so stdout only carries results.
func newLogger(cmd *cobra.Command, verbose bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)

	return zap.New(core).Named("walletcrypto")
}

func (a *app) convention() (*walletcrypto.Convention, error) {
	return walletcrypto.ConventionByName(a.v.GetString(flagChain))
}

func (a *app) network() (*bitcoin.Network, error) {
	name := a.v.GetString(flagNetwork)
	for _, net := range bitcoin.Networks() {
		if net.Name == name {
			return net, nil
		}
	}

	return nil, fmt.Errorf("unknown network %q", name)
}

func decodeHexArg(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%s must be hex: %w", name, err)
	}

	return b, nil
}

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func printHex(cmd *cobra.Command, b []byte) {
	printLine(cmd, hex.EncodeToString(b))
}
