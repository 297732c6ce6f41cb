package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shiftbooks/timeclerk/internal/workspace"
)

// clientCmd groups client workspace management commands.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage client workspaces",
}

// clientCreateCmd provisions a new client folder tree.
var clientCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create the folder structure for a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return workspace.New(cfg.DataRoot, args[0]).Create()
	},
}

func init() {
	clientCmd.AddCommand(clientCreateCmd)
	rootCmd.AddCommand(clientCmd)
}
