package inventory

import "fmt"

// Registry holds loaded armor definitions indexed by ID.
type Registry struct {
	armors map[string]*ArmorDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{armors: make(map[string]*ArmorDef)}
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns (a, true); returns error if a.ID already registered.
func (r *Registry) RegisterArmor(a *ArmorDef) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %q already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// Armor returns the ArmorDef for the given id.
func (r *Registry) Armor(id string) (*ArmorDef, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.armors[id]
	return a, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.armors)
}

// Resolve returns copies of items with zero-valued fields filled from the
// catalog entry named by each item's Ref. Items without a Ref, or whose Ref is
// unknown, are copied unchanged; their refs are returned in unknown.
//
// Postcondition: items is never modified.
func (r *Registry) Resolve(items []Item) (resolved []Item, unknown []string) {
	resolved = make([]Item, 0, len(items))
	for _, it := range items {
		out := it.Clone()
		if it.Ref != "" {
			def, ok := r.Armor(it.Ref)
			if !ok {
				unknown = append(unknown, it.Ref)
			} else {
				fill(&out, def)
			}
		}
		resolved = append(resolved, out)
	}
	return resolved, unknown
}

// fill copies the catalog statistics into every zero-valued field of it.
func fill(it *Item, def *ArmorDef) {
	base := def.Item()
	if it.Name == "" {
		it.Name = base.Name
	}
	if it.Category == "" {
		it.Category = base.Category
	}
	if it.ArmorBonus == 0 {
		it.ArmorBonus = base.ArmorBonus
	}
	if it.MaxDexBonus == nil {
		it.MaxDexBonus = base.MaxDexBonus
	}
	if it.Weight == 0 {
		it.Weight = base.Weight
	}
}
