// Package skills discovers, validates, and installs the bundled Claude Code
// skill tree.
package skills

import "strings"

// ManifestName is the file every skill directory must contain.
const ManifestName = "SKILL.md"

// Category is the display group a skill belongs to, derived from its
// location in the bundle.
type Category string

const (
	CategoryTroubleshooting Category = "Troubleshooting & Help"
	CategoryCodegen         Category = "Code Generation"
	CategoryTasks           Category = "Analysis & Mapping"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryTroubleshooting, CategoryCodegen, CategoryTasks}
}

// Skill is one installable skill directory inside a bundle.
type Skill struct {
	// Name is the skill directory's base name.
	Name string

	// Path is the slash-separated skill directory path relative to the
	// bundle root.
	Path string

	// Category is the display group derived from Path.
	Category Category
}

// categoryFor maps the first path segment of a skill's bundle location to
// its category. Skills at the bundle root fall into Troubleshooting & Help.
func categoryFor(relPath string) Category {
	segment, _, _ := strings.Cut(relPath, "/")
	switch segment {
	case "codegen":
		return CategoryCodegen
	case "tasks":
		return CategoryTasks
	default:
		return CategoryTroubleshooting
	}
}
