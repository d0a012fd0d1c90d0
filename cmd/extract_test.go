package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"audioleft/domain/audio"
)

// --- Mock implementations for testing ---

// mockExtractor implements audio.AudioExtractor for testing
type mockExtractor struct {
	outputPaths []string
	modes       []audio.Mode
	shouldFail  bool
	failError   error
}

func (m *mockExtractor) Extract(ctx context.Context, req *audio.ExtractionRequest, outputPath string) error {
	if m.shouldFail {
		return m.failError
	}
	m.outputPaths = append(m.outputPaths, outputPath)
	m.modes = append(m.modes, req.Mode)
	return nil
}

// verifiableExtractor adds a VerifyInstalled that fails, for testing the
// pre-flight tool check
type verifiableExtractor struct {
	mockExtractor
	verifyErr error
}

func (v *verifiableExtractor) VerifyInstalled(ctx context.Context) error {
	return v.verifyErr
}

// mockFileChecker implements audio.FileChecker for testing
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool    { return m.existingFiles[path] }
func (m *mockFileChecker) IsRegular(path string) bool { return m.existingFiles[path] }

// mockDirMaker implements audio.DirMaker for testing
type mockDirMaker struct{}

func (m *mockDirMaker) MkdirAll(path string) error { return nil }

func TestRunExtractForcesWavExtension(t *testing.T) {
	extractor := &mockExtractor{}
	checker := &mockFileChecker{existingFiles: map[string]bool{"/videos/movie.mkv": true}}
	output := &bytes.Buffer{}

	err := RunExtractWithDependencies(
		context.Background(),
		extractor,
		checker,
		&mockDirMaker{},
		"/data/audio",
		"/videos/movie.mkv",
		"/tmp/soundtrack.mp3",
		output,
	)
	if err != nil {
		t.Fatalf("RunExtractWithDependencies() unexpected error: %v", err)
	}

	if len(extractor.outputPaths) != 1 {
		t.Fatalf("extractor called %d times, want 1", len(extractor.outputPaths))
	}
	if extractor.outputPaths[0] != "/tmp/soundtrack.wav" {
		t.Errorf("output path = %q, want /tmp/soundtrack.wav", extractor.outputPaths[0])
	}
	if extractor.modes[0] != audio.ModeTranscode {
		t.Errorf("mode = %v, want ModeTranscode", extractor.modes[0])
	}
}

func TestRunExtractDefaultOutputPath(t *testing.T) {
	extractor := &mockExtractor{}
	checker := &mockFileChecker{existingFiles: map[string]bool{"/videos/movie.mkv": true}}
	output := &bytes.Buffer{}

	err := RunExtractWithDependencies(
		context.Background(),
		extractor,
		checker,
		&mockDirMaker{},
		"/data/audio",
		"/videos/movie.mkv",
		"",
		output,
	)
	if err != nil {
		t.Fatalf("RunExtractWithDependencies() unexpected error: %v", err)
	}

	want := filepath.Join("/data/audio", "movie.wav")
	if extractor.outputPaths[0] != want {
		t.Errorf("output path = %q, want %q", extractor.outputPaths[0], want)
	}

	got := output.String()
	for _, line := range []string{"Input:  /videos/movie.mkv", "Output: " + want, "Extracting audio...", "✓"} {
		if !strings.Contains(got, line) {
			t.Errorf("output missing %q, got:\n%s", line, got)
		}
	}
}

func TestRunExtractMissingInput(t *testing.T) {
	extractor := &mockExtractor{}
	checker := &mockFileChecker{existingFiles: map[string]bool{}}

	err := RunExtractWithDependencies(
		context.Background(),
		extractor,
		checker,
		&mockDirMaker{},
		"/data/audio",
		"/videos/missing.mkv",
		"",
		&bytes.Buffer{},
	)
	if !errors.Is(err, audio.ErrInputNotFound) {
		t.Fatalf("error = %v, want ErrInputNotFound", err)
	}
	if len(extractor.outputPaths) != 0 {
		t.Error("extractor was called for a missing input")
	}
}

func TestRunExtractVerifyInstalledFailure(t *testing.T) {
	extractor := &verifiableExtractor{verifyErr: audio.ErrToolMissing}
	checker := &mockFileChecker{existingFiles: map[string]bool{"/videos/movie.mkv": true}}

	err := RunExtractWithDependencies(
		context.Background(),
		extractor,
		checker,
		&mockDirMaker{},
		"/data/audio",
		"/videos/movie.mkv",
		"",
		&bytes.Buffer{},
	)
	if !errors.Is(err, audio.ErrToolMissing) {
		t.Fatalf("error = %v, want ErrToolMissing", err)
	}
	if len(extractor.outputPaths) != 0 {
		t.Error("extractor was called despite failing tool verification")
	}
}

func TestForceExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/out.mp3", "/tmp/out.wav"},
		{"/tmp/out.wav", "/tmp/out.wav"},
		{"/tmp/out", "/tmp/out.wav"},
		{"out.tar.gz", "out.tar.wav"},
	}

	for _, tt := range tests {
		if got := forceExtension(tt.path, ".wav"); got != tt.want {
			t.Errorf("forceExtension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
