package cmd

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ihis/fhir-engine-skills/internal/assets"
	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
	"github.com/ihis/fhir-engine-skills/internal/skills"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the bundled skills",
	Long: `Validate the frontmatter of every bundled skill.

Intended for maintainers: checks that each SKILL.md carries well-formed
frontmatter whose name matches its directory, with a description and at
least one trigger phrase, and that the bundle README is present.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

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

	invalid := 0
	for _, sk := range found {
		meta, err := skills.ReadMeta(source, sk)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "FAIL %s: %v\n", sk.Path, ferrors.Cause(err))
			continue
		}
		if result := meta.Validate(sk.Name); result.HasErrors() {
			invalid++
			fmt.Fprintf(out, "FAIL %s: %v\n", sk.Path, result)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", sk.Path)
	}

	if _, err := fs.Stat(source, "README.md"); err != nil {
		invalid++
		fmt.Fprintln(out, "FAIL README.md: bundle README is missing")
	} else {
		fmt.Fprintln(out, "ok   README.md")
	}

	fmt.Fprintln(out)
	if invalid > 0 {
		return fmt.Errorf("%d bundle item(s) failed validation", invalid)
	}

	fmt.Fprintf(out, "All %d skills valid.\n", len(found))
	return nil
}
