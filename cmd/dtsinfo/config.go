package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional yaml configuration of the dtsinfo tool.
type fileConfig struct {
	// MirrorRoot maps scheme://authority/path URIs under a local directory.
	MirrorRoot string `yaml:"mirror_root"`
	// CacheSize caps the document cache; 0 selects the default.
	CacheSize int `yaml:"cache_size"`
	// Lenient tolerates discovery and classification failures.
	Lenient bool `yaml:"lenient"`
	// Discover enables closure-by-discovery; defaults to true.
	Discover *bool `yaml:"discover"`
}

func readConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
