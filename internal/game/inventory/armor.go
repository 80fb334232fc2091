// Package inventory provides the equipment model and the armor catalog used
// to fill in equipment statistics referenced by ID.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ArmorDef defines the static properties of an armor piece or shield loaded from YAML.
type ArmorDef struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Category     Category `yaml:"category"`
	ArmorBonus   int      `yaml:"armor_bonus"`
	MaxDexBonus  *int     `yaml:"max_dex_bonus"`
	CheckPenalty int      `yaml:"check_penalty"` // non-positive; 0 = none
	SpellFailure int      `yaml:"spell_failure"` // percent
	Weight       float64  `yaml:"weight"`
}

// Validate reports an error if the ArmorDef is missing required fields or contains illegal values.
// Precondition: def is non-nil.
// Postcondition: Returns nil iff the def is well-formed.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.Category != CategoryArmor && a.Category != CategoryShield {
		errs = append(errs, fmt.Errorf("category %q must be %q or %q", a.Category, CategoryArmor, CategoryShield))
	}
	if a.ArmorBonus < 0 {
		errs = append(errs, errors.New("armor_bonus must be >= 0"))
	}
	if a.MaxDexBonus != nil && *a.MaxDexBonus < 0 {
		errs = append(errs, errors.New("max_dex_bonus must be >= 0"))
	}
	if a.CheckPenalty > 0 {
		errs = append(errs, errors.New("check_penalty must be <= 0"))
	}
	if a.SpellFailure < 0 || a.SpellFailure > 100 {
		errs = append(errs, errors.New("spell_failure must be 0-100"))
	}
	if a.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// Item returns an unequipped Item carrying the definition's statistics.
func (a *ArmorDef) Item() Item {
	it := Item{
		Ref:        a.ID,
		Name:       a.Name,
		Category:   a.Category,
		ArmorBonus: a.ArmorBonus,
		Weight:     a.Weight,
	}
	if a.MaxDexBonus != nil {
		v := *a.MaxDexBonus
		it.MaxDexBonus = &v
	}
	return it
}

// LoadArmors reads all .yaml files in dir and returns parsed ArmorDef slice.
// Precondition: dir must be a readable directory.
// Postcondition: Returns non-nil slice and nil error on success; all returned defs pass Validate.
func LoadArmors(dir string) ([]*ArmorDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadArmors: cannot read directory %q: %w", dir, err)
	}

	armors := []*ArmorDef{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := filepath.Ext(entry.Name()); ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadArmors: cannot read file %q: %w", path, err)
		}
		var a ArmorDef
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("LoadArmors: cannot parse file %q: %w", path, err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("LoadArmors: invalid armor in %q: %w", path, err)
		}
		armors = append(armors, &a)
	}
	return armors, nil
}
