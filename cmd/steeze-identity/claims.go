package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/codec"
	"github.com/joeydtaylor/steeze-identity/pkg/identity"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/logger"
	"github.com/spf13/cobra"
)

func newClaimsCmd(c *cli) *cobra.Command {
	var (
		headers []string
		enabled bool
	)
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Print the claims produced for a set of headers",
		Example: `  steeze-identity claims --enabled \
    --header "X-Auth0-User-Id=auth0|123" --header "X-Auth0-User-Name=Alice"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			ac := c.cfg.Auth
			if cmd.Flags().Changed("enabled") {
				ac.Enabled = enabled
			}

			ex, err := identity.NewFromConfig(ac)
			if err != nil {
				return err
			}
			a := claims.New(ac.Enabled, ex, logger.NewConsole(logger.ParseLevel(c.cfg.Log.Level)),
				claims.WithDefaultProvider(ac.DefaultProvider),
			)

			out, err := codec.JSONStrict.Marshal(struct {
				Claims claims.Claims          `json:"claims"`
				Setup  claims.ClientAuthSetup `json:"authSetup"`
			}{
				Claims: a.ClaimsIfEnabled(cmd.Context(), h),
				Setup:  a.ClientAuthSetup(),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, `request header as "Name=Value" or "Name: Value" (repeatable)`)
	cmd.Flags().BoolVar(&enabled, "enabled", false, "override auth.enabled")
	return cmd
}

func parseHeaders(raw []string) (http.Header, error) {
	h := http.Header{}
	for _, kv := range raw {
		i := strings.IndexAny(kv, "=:")
		if i <= 0 {
			return nil, fmt.Errorf("bad header %q: want Name=Value", kv)
		}
		h.Add(strings.TrimSpace(kv[:i]), strings.TrimSpace(kv[i+1:]))
	}
	return h, nil
}
