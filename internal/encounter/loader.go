package encounter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads encounter files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads every encounter file under Root.
// Invalid files are skipped. Results are sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]Encounter, error) {
	var encounters []Encounter

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		enc, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		encounters = append(encounters, enc)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("encounter: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(encounters, func(i, j int) bool {
		return encounters[i].ID < encounters[j].ID
	})

	return encounters, nil
}

// LoadFile loads a single encounter file.
func (l *Loader) LoadFile(path string) (Encounter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Encounter{}, fmt.Errorf("encounter: reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadByID loads a specific encounter by ID, checking the directory first
// and falling back to the built-in set.
func (l *Loader) LoadByID(id string) (Encounter, error) {
	if l.Root != "" {
		encounters, err := l.LoadAll()
		if err == nil {
			for _, e := range encounters {
				if e.ID == id {
					return e, nil
				}
			}
		}
	}

	for _, e := range Builtin() {
		if e.ID == id {
			return e, nil
		}
	}

	return Encounter{}, fmt.Errorf("encounter: not found: %s", id)
}

// Parse decodes encounter YAML. The name argument is used in error messages
// only.
func Parse(data []byte, name string) (Encounter, error) {
	var enc Encounter
	if err := yaml.Unmarshal(data, &enc); err != nil {
		return Encounter{}, fmt.Errorf("encounter: parsing %s: %w", name, err)
	}
	if enc.ID == "" {
		return Encounter{}, fmt.Errorf("encounter: %s: missing id", name)
	}
	if enc.Name == "" {
		enc.Name = enc.ID
	}
	if enc.HP <= 0 {
		enc.HP = 1
	}
	return enc, nil
}
