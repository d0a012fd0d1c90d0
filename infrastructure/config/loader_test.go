package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `paths:
  output_directory: /data/audio
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Paths.OutputDirectory != "/data/audio" {
		t.Errorf("OutputDirectory = %q, want /data/audio", cfg.Paths.OutputDirectory)
	}
	if cfg.Tools.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want ffmpeg default", cfg.Tools.FFmpegPath)
	}
	if cfg.Tools.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath = %q, want ffprobe default", cfg.Tools.FFprobePath)
	}
	if cfg.Copy.CodecExtension {
		t.Error("CodecExtension = true, want false default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("paths: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected parse error, got nil")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := &Config{
		Paths: PathsConfig{OutputDirectory: "/data/audio"},
		Tools: ToolsConfig{FFmpegPath: "/opt/ffmpeg/bin/ffmpeg", FFprobePath: "/opt/ffmpeg/bin/ffprobe"},
		Copy:  CopyConfig{CodecExtension: true},
	}

	if err := Save(original, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, original)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Paths.OutputDirectory == "" {
		t.Error("Default() OutputDirectory is empty")
	}
	if filepath.Base(cfg.Paths.OutputDirectory) != "audio_data" {
		t.Errorf("Default() OutputDirectory = %q, want an audio_data directory", cfg.Paths.OutputDirectory)
	}
	if cfg.Tools.FFmpegPath != "ffmpeg" || cfg.Tools.FFprobePath != "ffprobe" {
		t.Errorf("Default() tools = %+v, want ffmpeg/ffprobe", cfg.Tools)
	}
}
