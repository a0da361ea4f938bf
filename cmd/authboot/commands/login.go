package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Bootstrap.Login(cmd.Context(), appCtx.Config.Credentials())
			if err != nil {
				appCtx.Log.Debug("login failed", "outcome", res.Kind, "error", err)
				return errNoToken
			}
			if tokenOnly {
				fmt.Fprintln(cmd.OutOrStdout(), res.AccessToken)
			}
			return nil
		},
	}
}
