// Package artifacts observes model weight files (*.gguf) on the models
// volume: scanning what is present and waiting for declared files to appear.
// It never reads file contents; artifacts are opaque to llmctl.
package artifacts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"llmctl/internal/common/fsutil"
)

// Scan lists the *.gguf files in dir (case-insensitive extension match),
// sorted by name.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".gguf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Missing returns the subset of paths that do not exist yet, in input order.
func Missing(paths []string) []string {
	var missing []string
	for _, p := range paths {
		if !fsutil.PathExists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
