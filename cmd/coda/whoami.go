package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user and token info",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.WhoAmI(cmd.Context())
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, user)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelRender("Name:"), user.Name)
	fmt.Fprintf(out, "%s %s\n", labelRender("Login:"), user.LoginID)
	if user.TokenName != "" {
		fmt.Fprintf(out, "%s %s\n", labelRender("Token:"), user.TokenName)
	}
	if user.Workspace != nil {
		fmt.Fprintf(out, "%s %s\n", labelRender("Workspace:"), user.Workspace.ID)
	}
	if user.Scoped {
		fmt.Fprintln(out, mutedRender("Token is scoped to specific resources."))
	}
	return nil
}
