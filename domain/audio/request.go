package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects the extraction strategy.
type Mode int

const (
	// ModeTranscode decodes the source audio and re-encodes it as
	// 16-bit PCM stereo at 44.1 kHz in a WAV container.
	ModeTranscode Mode = iota

	// ModeStreamCopy re-muxes the audio stream without re-encoding,
	// preserving the original codec bit-for-bit.
	ModeStreamCopy
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTranscode:
		return "transcode"
	case ModeStreamCopy:
		return "stream copy"
	default:
		return "unknown"
	}
}

// ExtractionRequest represents a request to extract audio from a video file
type ExtractionRequest struct {
	SourcePath string
	Mode       Mode
}

// NewExtractionRequest creates a new ExtractionRequest with validation
func NewExtractionRequest(sourcePath string, mode Mode) (*ExtractionRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	return &ExtractionRequest{
		SourcePath: sourcePath,
		Mode:       mode,
	}, nil
}

// OutputFilename returns the output filename for the request's mode.
// Transcode always yields <stem>.wav; stream copy keeps the source extension.
func (r *ExtractionRequest) OutputFilename() string {
	base := filepath.Base(r.SourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if r.Mode == ModeTranscode {
		return stem + ".wav"
	}
	return stem + ext
}

// OutputFilenameWithExtension returns the output filename using an explicit
// extension, overriding the mode's default policy. Used when the copy mode
// derives the extension from the detected codec.
func (r *ExtractionRequest) OutputFilenameWithExtension(ext string) string {
	base := filepath.Base(r.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// OutputPath returns the full output path including the directory
func (r *ExtractionRequest) OutputPath(outputDir string) string {
	return filepath.Join(outputDir, r.OutputFilename())
}
