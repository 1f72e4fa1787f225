package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ihis/fhir-engine-skills/internal/assets"
	"github.com/ihis/fhir-engine-skills/internal/cli"
	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
	"github.com/ihis/fhir-engine-skills/internal/skills"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install skills to a project",
	Long: `Install FHIR Engine Claude skills into a project's .claude/skills
directory.

Installation replaces the whole skills tree: any existing installation at
the destination is removed before the bundled skills are copied in. Without
--force, an existing installation asks for confirmation first; when stdin is
not a terminal the command refuses instead of blocking on the prompt.`,
	RunE: runInstall,
}

var (
	installPath  string
	installForce bool
)

func init() {
	installCmd.Flags().StringVar(&installPath, "path", "", "target project path (default: current directory)")
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite existing skills without confirmation")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	return installTo(cmd, installPath, installForce)
}

// installTo implements install and update; update is a forced install with
// its own banner.
func installTo(cmd *cobra.Command, flagPath string, force bool) error {
	out := cmd.OutOrStdout()

	base, err := targetBase(flagPath)
	if err != nil {
		return err
	}
	dest := filepath.Join(base, ".claude", "skills")

	source, err := assets.Skills()
	if err != nil {
		return installFailure(dest, ferrors.SourceMissing())
	}

	logger.Debug("resolved install destination", "dest", dest, "force", force)

	_, statErr := os.Stat(dest)
	exists := statErr == nil

	if exists && !force {
		if !cli.IsInteractive(cmd.InOrStdin()) {
			return fmt.Errorf("destination already exists: %s (use --force to overwrite)", dest)
		}
		fmt.Fprintf(out, "Skills directory already exists at: %s\n", dest)
		overwrite, err := cli.Confirm(cmd.InOrStdin(), out, "Overwrite existing skills?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Installation cancelled.")
			return nil
		}
	}

	if exists {
		fmt.Fprintf(out, "Removing existing skills at: %s\n", dest)
	}
	fmt.Fprintf(out, "Installing FHIR Engine skills to: %s\n", dest)

	installer := &skills.Installer{Source: source, Log: logger}
	if err := installer.Install(dest); err != nil {
		return installFailure(dest, err)
	}

	installed, err := skills.Discover(os.DirFS(dest))
	if err != nil {
		return installFailure(dest, err)
	}

	fmt.Fprintf(out, "Successfully installed %d skills!\n", len(installed))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available skills:")
	for _, name := range skillNames(installed) {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Open your project in Claude Code")
	fmt.Fprintln(out, "  2. Skills will activate automatically when relevant")
	fmt.Fprintln(out, "  3. Try asking: 'Create CRUD handlers for Patient resource'")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Documentation: %s\n", filepath.Join(dest, "README.md"))

	return nil
}

// skillNames returns the distinct installed skill directory names, sorted.
func skillNames(installed []skills.Skill) []string {
	seen := make(map[string]struct{}, len(installed))
	var names []string
	for _, sk := range installed {
		if _, ok := seen[sk.Name]; ok {
			continue
		}
		seen[sk.Name] = struct{}{}
		names = append(names, sk.Name)
	}
	sort.Strings(names)
	return names
}

// installFailure maps installer errors to the messages shown to users.
func installFailure(dest string, err error) error {
	switch {
	case ferrors.HasCode(err, ferrors.CodeSourceMissing):
		return fmt.Errorf("skills source directory not found in package")
	case ferrors.HasCode(err, ferrors.CodePermissionDenied):
		return fmt.Errorf("permission denied writing to %s\n  Try running with appropriate permissions.", dest)
	default:
		return fmt.Errorf("installation failed: %v", ferrors.Cause(err))
	}
}
