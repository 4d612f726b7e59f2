package main

import (
	"github.com/joeydtaylor/steeze-identity/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(serverfx.Module(c.cfg), fx.NopLogger)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
