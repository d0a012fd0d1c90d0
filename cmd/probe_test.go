package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"audioleft/domain/audio"
)

// failingInspector implements audio.CodecInspector, always erroring
type failingInspector struct {
	err error
}

func (f *failingInspector) InspectCodec(ctx context.Context, inputPath string) (string, error) {
	return "", f.err
}

func TestRunProbePrintsCodecAndExtension(t *testing.T) {
	output := &bytes.Buffer{}

	err := RunProbeWithDependencies(context.Background(), &mockInspector{codec: "vorbis"}, "movie.webm", output)
	if err != nil {
		t.Fatalf("RunProbeWithDependencies() unexpected error: %v", err)
	}

	got := output.String()
	if !strings.Contains(got, "Codec:     vorbis") {
		t.Errorf("output missing codec line, got:\n%s", got)
	}
	if !strings.Contains(got, "Extension: .ogg") {
		t.Errorf("output missing extension line, got:\n%s", got)
	}
}

func TestRunProbeUnknownCodecFallsBack(t *testing.T) {
	output := &bytes.Buffer{}

	err := RunProbeWithDependencies(context.Background(), &mockInspector{codec: "unknown"}, "movie.mkv", output)
	if err != nil {
		t.Fatalf("RunProbeWithDependencies() unexpected error: %v", err)
	}

	if !strings.Contains(output.String(), "Extension: .mka") {
		t.Errorf("output missing fallback extension, got:\n%s", output.String())
	}
}

func TestRunProbeNoAudioStream(t *testing.T) {
	err := RunProbeWithDependencies(
		context.Background(),
		&failingInspector{err: audio.ErrNoAudioStream},
		"silent.mkv",
		&bytes.Buffer{},
	)
	if !errors.Is(err, audio.ErrNoAudioStream) {
		t.Fatalf("error = %v, want ErrNoAudioStream", err)
	}
}
