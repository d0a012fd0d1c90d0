package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathsConfig `yaml:"paths"`
	Tools ToolsConfig `yaml:"tools"`
	Copy  CopyConfig  `yaml:"copy"`
}

// PathsConfig contains directory paths for extracted audio
type PathsConfig struct {
	OutputDirectory string `yaml:"output_directory"`
}

// ToolsConfig contains the external tool executable paths
type ToolsConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// CopyConfig contains stream-copy extraction settings
type CopyConfig struct {
	// CodecExtension makes the copy command derive the default output
	// extension from the detected audio codec instead of keeping the
	// source extension
	CodecExtension bool `yaml:"codec_extension"`
}

// DefaultOutputDir returns the fallback output directory: an audio_data
// directory next to the executable. Used when no configuration file sets
// paths.output_directory.
func DefaultOutputDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "audio_data"
	}
	return filepath.Join(filepath.Dir(exe), "audio_data")
}

// Default returns a configuration populated with built-in defaults
func Default() *Config {
	return &Config{
		Paths: PathsConfig{OutputDirectory: DefaultOutputDir()},
		Tools: ToolsConfig{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe"},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Fields left empty in the file are filled with the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Paths.OutputDirectory == "" {
		cfg.Paths.OutputDirectory = DefaultOutputDir()
	}
	if cfg.Tools.FFmpegPath == "" {
		cfg.Tools.FFmpegPath = "ffmpeg"
	}
	if cfg.Tools.FFprobePath == "" {
		cfg.Tools.FFprobePath = "ffprobe"
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
