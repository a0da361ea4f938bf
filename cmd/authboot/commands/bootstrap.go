package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Register (tolerating an existing account), then log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd)
		},
	}
}

func runBootstrap(cmd *cobra.Command) error {
	tok, err := appCtx.Bootstrap.Run(cmd.Context(), appCtx.Config.Credentials())
	if err != nil {
		appCtx.Log.Debug("bootstrap failed", "error", err)
	}

	if tokenOnly {
		if tok == "" {
			finalNotice(cmd.ErrOrStderr(), "")
			return errNoToken
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	}

	finalNotice(cmd.OutOrStdout(), tok)
	if tok == "" {
		return errNoToken
	}
	return nil
}
