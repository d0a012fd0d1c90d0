package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"audioleft/domain/audio"
)

// Inspector implements audio.CodecInspector using ffprobe
type Inspector struct {
	ffprobePath string
	runner      CommandRunner
}

// InspectorOption is a functional option for configuring Inspector
type InspectorOption func(*Inspector)

// WithInspectorFFprobePath sets a custom ffprobe executable path
func WithInspectorFFprobePath(path string) InspectorOption {
	return func(i *Inspector) {
		if path != "" {
			i.ffprobePath = path
		}
	}
}

// WithInspectorCommandRunner sets a custom command runner (for testing)
func WithInspectorCommandRunner(runner CommandRunner) InspectorOption {
	return func(i *Inspector) {
		i.runner = runner
	}
}

// NewInspector creates a new ffprobe-based codec inspector
func NewInspector(opts ...InspectorOption) *Inspector {
	i := &Inspector{
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// InspectCodec implements audio.CodecInspector. It runs a single ffprobe JSON
// call restricted to the first audio stream and returns its codec name, or
// "unknown" when the stream does not report one. Any failure is terminal for
// the call; there are no retries.
func (i *Inspector) InspectCodec(ctx context.Context, inputPath string) (string, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "a:0", // Select first audio stream
		inputPath,
	}

	out, err := i.runner.Output(ctx, i.ffprobePath, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: ffprobe; %s", audio.ErrToolMissing, ffmpegInstallHint)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: ffprobe: %s", audio.ErrToolFailed, bytes.TrimSpace(exitErr.Stderr))
		}
		return "", fmt.Errorf("ffprobe: %w", err)
	}

	codec, err := ParseCodecName(out)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, inputPath)
	}
	return codec, nil
}

// --- ffprobe JSON wire types ---

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	CodecName string `json:"codec_name"`
}

// ParseCodecName extracts the first audio stream's codec name from raw
// ffprobe JSON output. Exported for testing without a real ffprobe binary.
func ParseCodecName(data []byte) (string, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("%w: %v", audio.ErrProbeParse, err)
	}

	if len(raw.Streams) == 0 {
		return "", audio.ErrNoAudioStream
	}

	if raw.Streams[0].CodecName == "" {
		return "unknown", nil
	}
	return raw.Streams[0].CodecName, nil
}

// VerifyInstalled checks that ffprobe is available
func (i *Inspector) VerifyInstalled(ctx context.Context) error {
	_, err := i.runner.Output(ctx, i.ffprobePath, "-version")
	if err != nil {
		return fmt.Errorf("%w: ffprobe not found or not executable; %s", audio.ErrToolMissing, ffmpegInstallHint)
	}
	return nil
}

// Ensure Inspector implements audio.CodecInspector
var _ audio.CodecInspector = (*Inspector)(nil)
