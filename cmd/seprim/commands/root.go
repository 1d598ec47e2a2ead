package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seprim/internal/app"
	"seprim/internal/logging"
)

// cli is the state shared by the subcommands of one invocation.
type cli struct {
	cfgPath    string
	home       string
	logLevel   string
	passphrase string

	wire *app.Wire
}

func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "seprim",
		Short:        "Secure-element cryptographic primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.cfgPath)
			if err != nil {
				return err
			}
			if c.home != "" {
				cfg.Home = c.home
			}
			if c.logLevel != "" {
				cfg.Log.Level = c.logLevel
			}
			if err := cfg.ResolveHome(); err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			c.wire, err = app.NewWire(cfg, log)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&c.home, "home", "", "state dir (default ~/.seprim)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase sealing saved hash states")

	root.AddCommand(
		hashCmd(c),
		mulCmd(c), modmulCmd(c), modexpCmd(c), compareCmd(c),
		cipherCmd(c, true), cipherCmd(c, false), macCmd(c),
		randomCmd(c),
		staticCmd(c),
	)
	return root
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
