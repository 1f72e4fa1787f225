package skills

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
)

// Discover walks src for skill directories, identified by a SKILL.md file,
// and returns them sorted by name. A manifest at the bundle root is
// documentation, not a skill.
func Discover(src fs.FS) ([]Skill, error) {
	if _, err := fs.Stat(src, "."); err != nil {
		return nil, ferrors.SourceMissing()
	}

	var found []Skill
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != ManifestName {
			return nil
		}
		dir := path.Dir(p)
		if dir == "." {
			return nil
		}
		found = append(found, Skill{
			Name:     path.Base(dir),
			Path:     dir,
			Category: categoryFor(dir),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk skills source: %w", err)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}
