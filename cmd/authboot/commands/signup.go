package commands

import (
	"github.com/spf13/cobra"
)

func signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Register the account; an existing account is not an error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := appCtx.Bootstrap.Register(cmd.Context(), appCtx.Config.Credentials())
			appCtx.Log.Debug("signup finished", "outcome", outcome.Kind, "status", outcome.StatusCode)
			return err
		},
	}
}
