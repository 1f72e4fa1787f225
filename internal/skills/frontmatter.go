package skills

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
)

// Meta is the YAML frontmatter every SKILL.md starts with.
type Meta struct {
	// Name is the skill identifier; must match the skill directory name.
	Name string `yaml:"name"`

	// Description tells Claude Code when the skill applies.
	Description string `yaml:"description"`

	// Triggers are example phrases that should activate the skill.
	Triggers []string `yaml:"triggers"`
}

// ParseFrontmatter extracts and decodes the leading YAML frontmatter block
// from a SKILL.md document. The document must open with a "---" fence line
// and close the block with another.
func ParseFrontmatter(doc []byte) (*Meta, error) {
	scanner := bufio.NewScanner(bytes.NewReader(doc))
	if !scanner.Scan() || strings.TrimRight(scanner.Text(), "\r") != "---" {
		return nil, errors.New("missing frontmatter fence")
	}

	var block bytes.Buffer
	closed := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "---" {
			closed = true
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if !closed {
		return nil, errors.New("unterminated frontmatter")
	}

	var meta Meta
	if err := yaml.Unmarshal(block.Bytes(), &meta); err != nil {
		return nil, fmt.Errorf("decode frontmatter: %w", err)
	}

	return &meta, nil
}

// ReadMeta reads and parses the frontmatter of a skill's manifest in src.
func ReadMeta(src fs.FS, sk Skill) (*Meta, error) {
	data, err := fs.ReadFile(src, path.Join(sk.Path, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("read skill manifest: %w", err)
	}

	meta, err := ParseFrontmatter(data)
	if err != nil {
		return nil, ferrors.FrontmatterInvalid(sk.Path, err)
	}

	return meta, nil
}
