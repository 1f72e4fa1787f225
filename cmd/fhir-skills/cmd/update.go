package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update existing skills installation",
	Long: `Update an existing skills installation to the bundled versions.

Equivalent to install --force: the whole skills tree is replaced without
confirmation, so local edits under .claude/skills are lost.`,
	RunE: runUpdate,
}

var updatePath string

func init() {
	updateCmd.Flags().StringVar(&updatePath, "path", "", "target project path (default: current directory)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Updating FHIR Engine skills...")
	return installTo(cmd, updatePath, true)
}
