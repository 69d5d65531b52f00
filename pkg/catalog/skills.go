package catalog

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jingkaihe/claudelist/pkg/frontmatter"
	"github.com/jingkaihe/claudelist/pkg/logger"
	"github.com/jingkaihe/claudelist/pkg/resolve"
)

// ListSkills returns every immediate subdirectory of the skills root as a
// skill, sorted by name. A missing root yields an empty list. Descriptions
// come from each SKILL.md preamble; unreadable descriptors are skipped
// silently.
func (l *Local) ListSkills() ([]Skill, error) {
	dir := l.SkillsDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Skill{}, nil
		}
		return nil, wrapFSError(err, dir, "read skills directory")
	}

	skills := make([]Skill, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		// Stat follows symlinks so linked skill directories are included.
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		skills = append(skills, Skill{
			Name:        entry.Name(),
			Source:      SourceLocal,
			Path:        entryPath,
			Description: readDescription(filepath.Join(entryPath, skillFileName)),
		})
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})

	return skills, nil
}

func readDescription(path string) *string {
	content, err := readFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.L.WithError(err).WithField("path", path).Debug("failed to read skill descriptor")
		}
		return nil
	}
	return frontmatter.ParseDescription(string(content))
}

// SkillDetail resolves name against the listed skills and parses the
// matching SKILL.md in full.
func (l *Local) SkillDetail(name string) (*SkillDetail, error) {
	skills, err := l.ListSkills()
	if err != nil {
		return nil, err
	}

	outcome := resolve.Resolve(skills, name)
	if !outcome.Found() {
		return nil, outcomeError(outcome, name)
	}

	return loadSkillDetail(outcome.Match)
}

func loadSkillDetail(skill Skill) (*SkillDetail, error) {
	path := filepath.Join(skill.Path, skillFileName)

	content, err := readFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{Path: path}
		}
		return nil, wrapFSError(err, path, "read skill descriptor")
	}

	doc := frontmatter.Parse(string(content))
	if doc.Preamble.IsEmpty() {
		logger.L.WithField("path", path).Debug("skill descriptor declares no name or description")
	}
	return &SkillDetail{
		Name:     skill.Name,
		Preamble: doc.Preamble,
		Content:  doc.Body,
		Path:     path,
	}, nil
}
