package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file into target.
//
// Values of the form ${VAR} are expanded from the environment before
// decoding, so secrets like the bot token can stay out of the file itself.
// A missing path is not an error: configuration files are optional and env
// variables plus flags remain the authoritative sources.
func LoadFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	expanded := os.Expand(string(raw), func(key string) string {
		return os.Getenv(key)
	})

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
