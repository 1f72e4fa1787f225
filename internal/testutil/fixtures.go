package testutil

import (
	"fmt"
	"path"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// SkillMarkdown returns a minimal valid SKILL.md document for the given
// skill name.
func SkillMarkdown(name string) string {
	return fmt.Sprintf(`---
name: %s
description: Test skill %s used by installer tests.
triggers:
  - "use %s"
  - "exercise %s"
---

# %s

Test skill body.
`, name, name, name, name, name)
}

// BundleFS builds an in-memory skill bundle containing the given skill
// directories. Paths are bundle-relative, e.g. "codegen/my-skill"; the
// directory base name becomes the skill name.
func BundleFS(dirs ...string) fstest.MapFS {
	fsys := fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("# Test Skills\n")},
	}
	for _, dir := range dirs {
		name := path.Base(dir)
		fsys[path.Join(dir, "SKILL.md")] = &fstest.MapFile{Data: []byte(SkillMarkdown(name))}
	}
	return fsys
}

// WriteBundle writes a synthetic skill bundle to disk under root and
// returns root. Layout matches BundleFS.
func WriteBundle(t *testing.T, root string, dirs ...string) string {
	t.Helper()
	RequireFile(t, filepath.Join(root, "README.md"), "# Test Skills\n")
	for _, dir := range dirs {
		name := path.Base(dir)
		RequireFile(t, filepath.Join(root, filepath.FromSlash(dir), "SKILL.md"), SkillMarkdown(name))
	}
	return root
}

// NewInstallTarget creates a temporary project directory and returns it
// along with the skills destination path beneath it.
func NewInstallTarget(t *testing.T) (projectDir, skillsDir string) {
	t.Helper()
	projectDir = t.TempDir()
	return projectDir, filepath.Join(projectDir, ".claude", "skills")
}
