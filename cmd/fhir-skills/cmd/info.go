package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show package information",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "FHIR Engine Claude Skills v%s\n", Version)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Claude Code skills for FHIR Engine development")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Skills help you:")
	fmt.Fprintln(out, "  - Troubleshoot configuration issues")
	fmt.Fprintln(out, "  - Generate FHIR handlers and resources")
	fmt.Fprintln(out, "  - Map custom data models to FHIR")
	fmt.Fprintln(out, "  - Debug errors and exceptions")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  fhir-skills install     Install skills to current project")
	fmt.Fprintln(out, "  fhir-skills list        List available skills")
	fmt.Fprintln(out, "  fhir-skills update      Update existing skills")
	fmt.Fprintln(out, "  fhir-skills info        Show this information")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Documentation: https://github.com/ihis/fhir-engine-skills")

	return nil
}
