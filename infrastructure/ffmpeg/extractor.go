package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"audioleft/domain/audio"
)

// ffmpegInstallHint is appended to tool-missing errors so the user knows how
// to resolve the condition.
const ffmpegInstallHint = "please install ffmpeg (e.g. sudo apt-get install ffmpeg)"

// Extractor implements audio.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements audio.AudioExtractor. A non-zero ffmpeg exit produces an
// error embedding the captured stderr and the full command line; a missing
// binary produces an error with installation guidance. No cleanup of a
// partially written output file is attempted.
func (e *Extractor) Extract(ctx context.Context, req *audio.ExtractionRequest, outputPath string) error {
	args := buildExtractArgs(req, outputPath)

	stderr, err := e.runner.Run(ctx, e.ffmpegPath, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: ffmpeg; %s", audio.ErrToolMissing, ffmpegInstallHint)
		}
		cmdLine := strings.Join(append([]string{e.ffmpegPath}, args...), " ")
		return fmt.Errorf("%w: audio extraction failed: %v\nstderr: %s\ncommand: %s",
			audio.ErrToolFailed, err, bytes.TrimSpace(stderr), cmdLine)
	}

	return nil
}

// buildExtractArgs assembles the ffmpeg argument list for the request's mode
func buildExtractArgs(req *audio.ExtractionRequest, outputPath string) []string {
	args := []string{
		"-i", req.SourcePath,
		"-vn", // No video
	}

	switch req.Mode {
	case audio.ModeStreamCopy:
		args = append(args,
			"-acodec", "copy", // Copy the audio stream without re-encoding
		)
	default:
		args = append(args,
			"-acodec", "pcm_s16le", // Signed 16-bit little-endian PCM
			"-ar", "44100", // Sample rate: 44.1 kHz
			"-ac", "2", // Stereo (2 channels)
		)
	}

	return append(args,
		"-y", // Overwrite output file if it exists
		outputPath,
	)
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("%w: ffmpeg not found or not executable; %s", audio.ErrToolMissing, ffmpegInstallHint)
	}
	return nil
}

// Ensure Extractor implements audio.AudioExtractor
var _ audio.AudioExtractor = (*Extractor)(nil)
