package ruleset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
)

// Content layout below a rules directory.
const (
	RacesDir   = "races"
	ClassesDir = "classes"
	ArmorDir   = "armor"
	TablesFile = "tables.yaml"
)

// Load reads a complete rulebook from dir: races/, classes/, the optional
// armor/ catalog and the optional tables.yaml override.
//
// Precondition: dir must contain readable races/ and classes/ directories.
// Postcondition: Returns a populated Rulebook, or a non-nil error naming the
// first offending file. Duplicate race or class names are errors.
func Load(dir string) (*Rulebook, error) {
	tablesPath := filepath.Join(dir, TablesFile)
	if _, err := os.Stat(tablesPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking %s: %w", tablesPath, err)
		}
		return loadWith(dir, StandardTables())
	}
	return LoadWithTables(dir, tablesPath)
}

// LoadWithTables is Load with the tables read from tablesPath instead of dir.
//
// Precondition: tablesPath must name a readable YAML file.
func LoadWithTables(dir, tablesPath string) (*Rulebook, error) {
	tables, err := LoadTables(tablesPath)
	if err != nil {
		return nil, err
	}
	return loadWith(dir, tables)
}

func loadWith(dir string, tables *Tables) (*Rulebook, error) {
	book := NewRulebook(tables)

	races, err := LoadRaces(filepath.Join(dir, RacesDir))
	if err != nil {
		return nil, fmt.Errorf("loading races: %w", err)
	}
	for _, race := range races {
		if _, dup := book.Race(race.Name); dup {
			return nil, fmt.Errorf("loading races: duplicate race %q", race.Name)
		}
		book.RegisterRace(race)
	}

	classes, err := LoadClasses(filepath.Join(dir, ClassesDir))
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	for _, class := range classes {
		if _, dup := book.Class(class.Name); dup {
			return nil, fmt.Errorf("loading classes: duplicate class %q", class.Name)
		}
		book.RegisterClass(class)
	}

	armorDir := filepath.Join(dir, ArmorDir)
	if _, err := os.Stat(armorDir); err == nil {
		armors, err := inventory.LoadArmors(armorDir)
		if err != nil {
			return nil, fmt.Errorf("loading armor: %w", err)
		}
		for _, a := range armors {
			if err := book.armor.RegisterArmor(a); err != nil {
				return nil, fmt.Errorf("loading armor: %w", err)
			}
		}
	}

	return book, nil
}
