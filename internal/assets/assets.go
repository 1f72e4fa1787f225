// Package assets carries the FHIR Engine skill bundle embedded in the
// binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:skills
var bundle embed.FS

// Skills returns the skill bundle rooted at the skills directory.
func Skills() (fs.FS, error) {
	sub, err := fs.Sub(bundle, "skills")
	if err != nil {
		return nil, fmt.Errorf("open skill bundle: %w", err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("open skill bundle: %w", err)
	}
	return sub, nil
}
