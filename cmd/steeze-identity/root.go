package main

import (
	"fmt"
	"os"

	"github.com/joeydtaylor/steeze-identity/pkg/config"
	"github.com/spf13/cobra"
)

// cli holds state shared by the subcommands of one command tree.
type cli struct {
	cfgPath string
	cfg     config.Config
}

// newRootCmd builds a fresh command tree. Flags live on the tree, so each
// call starts from defaults.
func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "steeze-identity",
		Short: "Identity header adapter service",
		Long: `steeze-identity turns identity headers injected by an upstream proxy
(Auth0 and friends) into normalized claims, and serves the client auth setup.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			c.cfg, err = config.Resolve(c.cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "TOML config file (env: "+config.EnvConfigPath+")")
	root.AddCommand(newServeCmd(c), newClaimsCmd(c))
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
