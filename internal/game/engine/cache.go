package engine

import (
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
)

// lastResult remembers the most recent snapshot, keyed by the character's
// serialized form. It is a convenience only; a miss recomputes.
type lastResult struct {
	mu   sync.Mutex
	key  string
	snap Snapshot
	ok   bool
}

func cacheKey(c *character.Character) (string, bool) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// get returns a copy of the cached snapshot if key matches.
func (l *lastResult) get(key string) (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ok || l.key != key {
		return Snapshot{}, false
	}
	return l.snap.Clone(), true
}

func (l *lastResult) put(key string, s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.key = key
	l.snap = s.Clone()
	l.ok = true
}
