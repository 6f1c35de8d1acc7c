// Package config reads the symsolve configuration file:
//
//	log_level: debug
//	output: yaml
//	implicit_imports: [java.lang]
//	types:
//	  - name: java.lang.System
//	    fields:
//	      - name: out
//	        type: java.io.PrintStream
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/symsolve/internal/typesolver"
)

// Config is the whole configuration.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`
	Output   Output   `yaml:"output"`

	// Types are external types known without a types file.
	Types []typesolver.Type `yaml:"types"`

	// ImplicitImports are packages visible in every compilation unit.
	ImplicitImports []string `yaml:"implicit_imports"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		LogLevel:        LogLevelInfo,
		Output:          OutputText,
		ImplicitImports: []string{"java.lang"},
	}
}

// Load reads a configuration file. Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return c, nil
}

// Decode parses configuration data over the defaults.
func Decode(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}
