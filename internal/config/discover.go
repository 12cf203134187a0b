package config

import (
	"errors"
	"path/filepath"

	"llmctl/internal/common/fsutil"
)

// ErrNotFound reports that no configuration file was discovered. It is fatal
// to the invoking command.
var ErrNotFound = errors.New("llm.toml not found in this or any of the 5 parent directories")

// maxSearchDepth bounds the upward walk: the start directory plus five parents.
const maxSearchDepth = 5

// candidates in preference order; toml is the documented format.
var candidates = []string{"llm.toml", "llm.yaml", "llm.yml", "llm.json"}

// Discover walks upward from dir through at most maxSearchDepth parent
// directories and returns the first configuration file found.
func Discover(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for i := 0; i <= maxSearchDepth; i++ {
		for _, name := range candidates {
			p := filepath.Join(cur, name)
			if fsutil.PathExists(p) {
				return p, nil
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "", ErrNotFound
}

// DiscoverAndLoad resolves the configuration once at the CLI boundary.
func DiscoverAndLoad(dir string) (*Config, error) {
	path, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
