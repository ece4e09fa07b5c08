package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the knobs the prettifier reads at startup. All fields have
// working defaults so a missing config file is not an error.
type Config struct {
	// Out is the query output file; the prettified rendering is written next
	// to it with a ".prettified" extension appended.
	Out string `yaml:"out"`
	// ANFDepth bounds how many levels of administrative let-bindings get
	// unfolded when undoing ANF indirection.
	ANFDepth int `yaml:"anf_depth"`
	// InlineDepth bounds substitution of environment bindings into the
	// constraint sides.
	InlineDepth int `yaml:"inline_depth"`
}

func Default() *Config {
	return &Config{
		Out:         "out.fq",
		ANFDepth:    5,
		InlineDepth: 2,
	}
}

// Load reads the YAML config at path (if present), then applies env-var
// overrides. A .env file next to the working directory is honoured.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, err
			}
		}
	}

	if out := os.Getenv("FIXPRINT_OUT"); out != "" {
		cfg.Out = out
	}
	if depth := os.Getenv("FIXPRINT_ANF_DEPTH"); depth != "" {
		if n, err := strconv.Atoi(depth); err == nil {
			cfg.ANFDepth = n
		}
	}
	if depth := os.Getenv("FIXPRINT_INLINE_DEPTH"); depth != "" {
		if n, err := strconv.Atoi(depth); err == nil {
			cfg.InlineDepth = n
		}
	}

	return cfg, nil
}
