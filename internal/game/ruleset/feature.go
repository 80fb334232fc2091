package ruleset

import (
	"errors"
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/d20sheet/internal/scripting"
)

// featureFunc is the Lua global a scaling-feature script must define.
const featureFunc = "feature"

// ScalingFeature maps a class level to a feature value, either through a
// threshold table or through a Lua script defining feature(level).
//
// Table keys are the class levels at which a value takes effect; the value for
// a level is the entry with the largest key not exceeding it.
type ScalingFeature struct {
	Name   string         `yaml:"name"`
	Table  map[int]string `yaml:"table"`
	Script string         `yaml:"script"`

	compiled *scripting.Script
}

// Validate reports an error unless exactly one of Table or Script is set.
func (f *ScalingFeature) Validate() error {
	if f.Name == "" {
		return errors.New("scaling feature name must not be empty")
	}
	hasTable, hasScript := len(f.Table) > 0, f.Script != ""
	if hasTable == hasScript {
		return fmt.Errorf("scaling feature %q must define exactly one of table or script", f.Name)
	}
	return nil
}

// Compile compiles the feature's script, if any. Call it once after loading;
// ScalingFeature is read-only afterwards.
//
// Postcondition: Value no longer recompiles the script on each call.
func (f *ScalingFeature) Compile(className string) error {
	if f.Script == "" {
		return nil
	}
	s, err := scripting.Compile(className+"/"+f.Name, f.Script, scripting.Limits{})
	if err != nil {
		return fmt.Errorf("scaling feature %q: %w", f.Name, err)
	}
	f.compiled = s
	return nil
}

// Value returns the feature's value at classLevel. An empty string means the
// feature has not been gained yet.
//
// Postcondition: f is not modified.
func (f *ScalingFeature) Value(classLevel int) (string, error) {
	if f.Script == "" {
		return f.tableValue(classLevel), nil
	}
	s := f.compiled
	if s == nil {
		var err error
		if s, err = scripting.Compile(f.Name, f.Script, scripting.Limits{}); err != nil {
			return "", fmt.Errorf("scaling feature %q: %w", f.Name, err)
		}
	}
	v, err := s.CallString(featureFunc, lua.LNumber(classLevel))
	if err != nil {
		return "", fmt.Errorf("scaling feature %q: %w", f.Name, err)
	}
	return v, nil
}

func (f *ScalingFeature) tableValue(classLevel int) string {
	keys := make([]int, 0, len(f.Table))
	for k := range f.Table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	value := ""
	for _, k := range keys {
		if k > classLevel {
			break
		}
		value = f.Table[k]
	}
	return value
}
