package encounter

import (
	"embed"
	"sort"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Builtin returns the embedded default encounters, sorted by ID.
// Files that fail to parse are skipped; the embed is validated by tests.
func Builtin() []Encounter {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		return nil
	}

	var encounters []Encounter
	for _, entry := range entries {
		data, err := defaultFS.ReadFile("defaults/" + entry.Name())
		if err != nil {
			continue
		}
		enc, err := Parse(data, entry.Name())
		if err != nil {
			continue
		}
		encounters = append(encounters, enc)
	}

	sort.Slice(encounters, func(i, j int) bool {
		return encounters[i].ID < encounters[j].ID
	})

	return encounters
}
