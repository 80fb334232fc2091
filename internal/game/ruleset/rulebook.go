package ruleset

import (
	"sort"

	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks . Source

// Source resolves race and class definitions by exact, case-sensitive name.
type Source interface {
	Race(name string) (*Race, bool)
	Class(name string) (*Class, bool)
}

// Rulebook provides lookup of the loaded rule data. It is populated once at
// startup and read-only afterwards, so it is safe for concurrent readers.
type Rulebook struct {
	races   map[string]*Race
	classes map[string]*Class
	tables  *Tables
	armor   *inventory.Registry
}

// NewRulebook returns an empty Rulebook over tables.
//
// Precondition: tables may be nil, in which case StandardTables is used.
// Postcondition: Returns a non-nil *Rulebook ready to accept registrations.
func NewRulebook(tables *Tables) *Rulebook {
	if tables == nil {
		tables = StandardTables()
	}
	return &Rulebook{
		races:   make(map[string]*Race),
		classes: make(map[string]*Class),
		tables:  tables,
		armor:   inventory.NewRegistry(),
	}
}

// RegisterRace adds a Race to the rulebook.
//
// Precondition: race must be non-nil with a non-empty Name.
// Postcondition: race is retrievable via Race(race.Name); the last registration wins.
func (r *Rulebook) RegisterRace(race *Race) {
	if race == nil {
		panic("Rulebook.RegisterRace: precondition violated: race must be non-nil")
	}
	if race.Name == "" {
		panic("Rulebook.RegisterRace: precondition violated: race name must be non-empty")
	}
	r.races[race.Name] = race
}

// RegisterClass adds a Class to the rulebook.
//
// Precondition: class must be non-nil with a non-empty Name.
// Postcondition: class is retrievable via Class(class.Name); the last registration wins.
func (r *Rulebook) RegisterClass(class *Class) {
	if class == nil {
		panic("Rulebook.RegisterClass: precondition violated: class must be non-nil")
	}
	if class.Name == "" {
		panic("Rulebook.RegisterClass: precondition violated: class name must be non-empty")
	}
	r.classes[class.Name] = class
}

// Race returns the Race with the given name, if registered.
func (r *Rulebook) Race(name string) (*Race, bool) {
	race, ok := r.races[name]
	return race, ok
}

// Class returns the Class with the given name, if registered.
func (r *Rulebook) Class(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Tables returns the numeric rule tables.
func (r *Rulebook) Tables() *Tables { return r.tables }

// Armor returns the armor catalog.
func (r *Rulebook) Armor() *inventory.Registry { return r.armor }

// RaceNames returns the registered race names in sorted order.
func (r *Rulebook) RaceNames() []string { return sortedKeys(r.races) }

// ClassNames returns the registered class names in sorted order.
func (r *Rulebook) ClassNames() []string { return sortedKeys(r.classes) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
