// Package config loads and validates llmctl's configuration. Discovery happens
// once at the CLI boundary; every component receives resolved values instead
// of searching on its own.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"llmctl/internal/common/fsutil"
	"llmctl/internal/importer"
	"llmctl/internal/selector"
)

// Defaults applied for fields left unset in the file.
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 11434
	DefaultThresholdHigh   = 64
	DefaultThresholdMedium = 32
	DefaultLargeModel      = "local/qwen2.5-coder-7b-q4km"
	DefaultMediumModel     = "local/deepseek-coder-6.7b-q4km"
	DefaultSmallModel      = "local/starcoder2-7b-q4km"
)

// Config is the full llmctl configuration (llm.toml).
type Config struct {
	Ollama OllamaConfig `json:"ollama" yaml:"ollama" toml:"ollama"`
	Models ModelsConfig `json:"models" yaml:"models" toml:"models"`

	// Dir is the directory the file was loaded from; relative definition-file
	// paths resolve against it.
	Dir string `json:"-" yaml:"-" toml:"-"`
}

// OllamaConfig holds runtime connection and storage parameters.
type OllamaConfig struct {
	Host       string `json:"host" yaml:"host" toml:"host"`
	Port       int    `json:"port" yaml:"port" toml:"port"`
	ModelsPath string `json:"models_path" yaml:"models_path" toml:"models_path"`
	OllamaHome string `json:"ollama_home" yaml:"ollama_home" toml:"ollama_home"`
}

// ModelsConfig declares local models and default identifiers.
type ModelsConfig struct {
	Coding     string                `json:"coding" yaml:"coding" toml:"coding"`
	Chat       string                `json:"chat" yaml:"chat" toml:"chat"`
	AutoSelect AutoSelect            `json:"auto_select" yaml:"auto_select" toml:"auto_select"`
	Local      map[string]LocalModel `json:"local" yaml:"local" toml:"local"`
}

// AutoSelect drives memory-based model selection.
type AutoSelect struct {
	ThresholdHigh   int    `json:"threshold_high" yaml:"threshold_high" toml:"threshold_high"`
	ThresholdMedium int    `json:"threshold_medium" yaml:"threshold_medium" toml:"threshold_medium"`
	Large           string `json:"large" yaml:"large" toml:"large"`
	Medium          string `json:"medium" yaml:"medium" toml:"medium"`
	Small           string `json:"small" yaml:"small" toml:"small"`
}

// LocalModel is one declared model: display name, artifact filename on the
// models volume, and the definition file for the runtime's create command.
type LocalModel struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	File      string `json:"file" yaml:"file" toml:"file"`
	Modelfile string `json:"modelfile" yaml:"modelfile" toml:"modelfile"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	cfg.Dir = filepath.Dir(abs)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ollama.Host == "" {
		c.Ollama.Host = DefaultHost
	}
	if c.Ollama.Port == 0 {
		c.Ollama.Port = DefaultPort
	}
	a := &c.Models.AutoSelect
	if a.ThresholdHigh == 0 && a.ThresholdMedium == 0 {
		a.ThresholdHigh = DefaultThresholdHigh
		a.ThresholdMedium = DefaultThresholdMedium
	}
	if a.Large == "" {
		a.Large = DefaultLargeModel
	}
	if a.Medium == "" {
		a.Medium = DefaultMediumModel
	}
	if a.Small == "" {
		a.Small = DefaultSmallModel
	}
}

func (c *Config) validate() error {
	if c.Ollama.Port < 0 || c.Ollama.Port > 65535 {
		return fmt.Errorf("ollama.port out of range: %d", c.Ollama.Port)
	}
	// An empty volume path would resolve to the working directory and make
	// import treat it as the mounted volume.
	if c.Ollama.ModelsPath == "" {
		return fmt.Errorf("ollama.models_path is required")
	}
	a := c.Models.AutoSelect
	// Selection is incoherent unless the high cutoff sits strictly above the
	// medium one.
	if a.ThresholdHigh <= a.ThresholdMedium {
		return fmt.Errorf("auto_select: threshold_high (%d) must be greater than threshold_medium (%d)",
			a.ThresholdHigh, a.ThresholdMedium)
	}
	for key, m := range c.Models.Local {
		if m.Name == "" || m.File == "" || m.Modelfile == "" {
			return fmt.Errorf("models.local.%s: name, file and modelfile are all required", key)
		}
	}
	return nil
}

// BaseURL is the runtime control-plane address.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Ollama.Host, c.Ollama.Port)
}

// Thresholds returns the selection cutoffs.
func (c *Config) Thresholds() selector.Thresholds {
	return selector.Thresholds{
		High:   c.Models.AutoSelect.ThresholdHigh,
		Medium: c.Models.AutoSelect.ThresholdMedium,
	}
}

// Tiers returns the three selectable model identifiers.
func (c *Config) Tiers() selector.Tiers {
	return selector.Tiers{
		Large:  c.Models.AutoSelect.Large,
		Medium: c.Models.AutoSelect.Medium,
		Small:  c.Models.AutoSelect.Small,
	}
}

// ModelsVolume is the artifact volume path with '~' expanded.
func (c *Config) ModelsVolume() (string, error) {
	return fsutil.ExpandAbs(c.Ollama.ModelsPath)
}

// Declarations converts the declared model map into reconciler input. Map
// iteration order is not stable in Go, so entries are emitted in sorted-key
// order to keep reconciliation deterministic.
func (c *Config) Declarations() ([]importer.Declaration, error) {
	vol, err := c.ModelsVolume()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(c.Models.Local))
	for k := range c.Models.Local {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	decls := make([]importer.Declaration, 0, len(keys))
	for _, k := range keys {
		m := c.Models.Local[k]
		def, err := fsutil.Resolve(c.Dir, m.Modelfile)
		if err != nil {
			return nil, err
		}
		decls = append(decls, importer.Declaration{
			Name:           m.Name,
			ArtifactPath:   filepath.Join(vol, m.File),
			DefinitionPath: def,
		})
	}
	return decls, nil
}

// DeclaredNames is the set of declared model names, used to tag runtime
// listings as local.
func (c *Config) DeclaredNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.Models.Local))
	for _, m := range c.Models.Local {
		names[m.Name] = struct{}{}
	}
	return names
}
