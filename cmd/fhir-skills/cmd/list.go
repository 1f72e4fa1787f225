package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ihis/fhir-engine-skills/internal/assets"
	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
	"github.com/ihis/fhir-engine-skills/internal/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available skills",
	Long: `List the skills bundled with this tool, grouped by category.

Use --json for machine-readable output.`,
	RunE: runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a bundled skill for listing.
type listEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	source, err := assets.Skills()
	if err != nil {
		return fmt.Errorf("skills source directory not found in package")
	}

	found, err := skills.Discover(source)
	if err != nil {
		if ferrors.HasCode(err, ferrors.CodeSourceMissing) {
			return fmt.Errorf("skills source directory not found in package")
		}
		return err
	}

	if listJSON {
		return outputListJSON(cmd, found)
	}
	return outputListText(cmd, found)
}

func outputListJSON(cmd *cobra.Command, found []skills.Skill) error {
	entries := make([]listEntry, 0, len(found))
	for _, sk := range found {
		entries = append(entries, listEntry{
			Name:     sk.Name,
			Category: string(sk.Category),
			Path:     sk.Path,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputListText(cmd *cobra.Command, found []skills.Skill) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "FHIR Engine Claude Skills")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out)

	byCategory := make(map[skills.Category][]string)
	for _, sk := range found {
		byCategory[sk.Category] = append(byCategory[sk.Category], sk.Name)
	}

	for _, category := range skills.Categories() {
		names := byCategory[category]
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)

		fmt.Fprintf(out, "%s:\n", category)
		for _, name := range names {
			fmt.Fprintf(out, "  - %s\n", name)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d skills\n", len(found))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To install: fhir-skills install")

	return nil
}
