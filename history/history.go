package history

import (
	"os"
	"strings"
	"sync"
)

// DefaultLimit is how many recently used names the cache keeps.
const DefaultLimit = 20

// Store is a most-recent-first cache of customer names backed by a
// newline-delimited file. It backs the autocomplete on the customer field.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

// NewStore creates a Store over path keeping at most limit names.
// A limit below 1 falls back to DefaultLimit.
func NewStore(path string, limit int) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Store{path: path, limit: limit}
}

// Load returns the recorded names, most recent first. A missing file is an
// empty history.
func (s *Store) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

// Record puts name at the front of the history, dropping any earlier
// occurrence and truncating to the limit. Blank names are ignored.
func (s *Store) Record(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names := []string{name}
	for _, known := range s.load() {
		if known != name {
			names = append(names, known)
		}
	}
	if len(names) > s.limit {
		names = names[:s.limit]
	}

	return os.WriteFile(s.path, []byte(strings.Join(names, "\n")+"\n"), 0o644)
}
