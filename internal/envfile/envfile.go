// Package envfile renders and writes the env file consumed by the downstream
// coding assistant. The key set and its order are a contract: the consumer
// parses by key name, but operators diff the file textually.
package envfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPath is where the env file lands when the operator gives no --output.
const DefaultPath = ".env.local"

// ModelKey is the key the pull command reads back when invoked without an
// explicit model argument.
const ModelKey = "OLLAMA_MODEL"

// Pair is one KEY=VALUE line.
type Pair struct {
	Key   string
	Value string
}

// Render produces the fixed, ordered key set. Do not add, drop or reorder
// keys: the downstream consumer's configuration contract names exactly these.
func Render(model, baseURL string, memGB int, arch string) []Pair {
	return []Pair{
		{"OLLAMA_MODEL", model},
		{"AIDER_MODEL", "ollama/" + model},
		{"OLLAMA_API_BASE", baseURL},
		{"AIDER_AUTO_COMMITS", "1"},
		{"AIDER_LOG_FILE", ".aider/aider.log"},
		{"HOST_RAM_GB", strconv.Itoa(memGB)},
		{"HOST_ARCH", arch},
	}
}

// Write replaces path with the rendered pairs, one per line, newline
// terminated, UTF-8. Whole-file replace is intentional: the file is owned by
// whoever asked for it, and re-running the command is idempotent.
func Write(path string, pairs []Pair) error {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}
	return nil
}

// Model reads the model identifier back from a previously written env file.
func Model(path string) (string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("read env file: %w", err)
	}
	m := vals[ModelKey]
	if m == "" {
		return "", fmt.Errorf("%s not set in %s", ModelKey, path)
	}
	return m, nil
}
