package stats

import "fmt"

// ClassFeatures lists one class's scaling features at its current level.
type ClassFeatures struct {
	Class    string            `yaml:"class" json:"class"`
	Level    int               `yaml:"level" json:"level"`
	Features map[string]string `yaml:"features" json:"features"`
}

// ScalingFeatures evaluates every scaling feature of every known class.
// Features not yet gained are omitted. A failing feature is skipped and
// reported in warnings.
func ScalingFeatures(entries []ClassEntry) (out []ClassFeatures, warnings []string) {
	for _, e := range entries {
		if e.Def == nil || len(e.Def.ScalingFeatures) == 0 || e.Level < 1 {
			continue
		}
		cf := ClassFeatures{Class: e.Class, Level: e.Level, Features: make(map[string]string)}
		for i := range e.Def.ScalingFeatures {
			f := &e.Def.ScalingFeatures[i]
			v, err := f.Value(e.Level)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("class %s: %v", e.Class, err))
				continue
			}
			if v != "" {
				cf.Features[f.Name] = v
			}
		}
		out = append(out, cf)
	}
	return out, warnings
}
