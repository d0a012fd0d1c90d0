package audio

import (
	"context"
	"fmt"
	"path/filepath"

	"audioleft/domain/audio"
)

// ExtractResult contains the result of an audio extraction operation
type ExtractResult struct {
	OutputPath string
	Codec      string // set only when codec-derived naming was used
}

// ExtractService coordinates audio extraction operations
type ExtractService struct {
	extractor   audio.AudioExtractor
	fileChecker audio.FileChecker
	dirMaker    audio.DirMaker
	outputDir   string
	inspector   audio.CodecInspector // nil unless codec-derived naming is enabled
}

// ExtractServiceOption is a functional option for configuring ExtractService
type ExtractServiceOption func(*ExtractService)

// WithCodecNaming makes stream-copy extractions derive the default output
// extension from the detected codec instead of keeping the source extension.
// An explicit output path is never rewritten.
func WithCodecNaming(inspector audio.CodecInspector) ExtractServiceOption {
	return func(s *ExtractService) {
		s.inspector = inspector
	}
}

// NewExtractService creates a new ExtractService
func NewExtractService(
	extractor audio.AudioExtractor,
	fileChecker audio.FileChecker,
	dirMaker audio.DirMaker,
	outputDir string,
	opts ...ExtractServiceOption,
) *ExtractService {
	s := &ExtractService{
		extractor:   extractor,
		fileChecker: fileChecker,
		dirMaker:    dirMaker,
		outputDir:   outputDir,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ExtractInput represents the input for an audio extraction operation
type ExtractInput struct {
	SourcePath string
	Mode       audio.Mode
	OutputPath string // Optional explicit output path; empty means derive from the output directory
}

// ResolveOutputPath returns the output path extraction would write to and,
// when codec-derived naming applies, the detected codec. The input path is
// validated first so no process is ever spawned for a missing input.
func (s *ExtractService) ResolveOutputPath(ctx context.Context, input ExtractInput) (string, string, error) {
	if err := s.validateInput(input.SourcePath); err != nil {
		return "", "", err
	}

	req, err := audio.NewExtractionRequest(input.SourcePath, input.Mode)
	if err != nil {
		return "", "", err
	}

	if input.OutputPath != "" {
		return input.OutputPath, "", nil
	}

	if input.Mode == audio.ModeStreamCopy && s.inspector != nil {
		codec, err := s.inspector.InspectCodec(ctx, input.SourcePath)
		if err != nil {
			return "", "", err
		}
		filename := req.OutputFilenameWithExtension(audio.ExtensionForCodec(codec))
		return filepath.Join(s.outputDir, filename), codec, nil
	}

	return req.OutputPath(s.outputDir), "", nil
}

// Extract extracts audio from a video according to the input parameters.
// The input path is validated before any external process is spawned; the
// output's parent directories are created as needed. An existing output
// file is silently overwritten, so repeated extractions are idempotent.
func (s *ExtractService) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	req, err := audio.NewExtractionRequest(input.SourcePath, input.Mode)
	if err != nil {
		return nil, err
	}

	// ResolveOutputPath performs the input validation
	outputPath, codec, err := s.ResolveOutputPath(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.dirMaker.MkdirAll(filepath.Dir(outputPath)); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := s.extractor.Extract(ctx, req, outputPath); err != nil {
		return nil, err
	}

	return &ExtractResult{
		OutputPath: outputPath,
		Codec:      codec,
	}, nil
}

// validateInput checks the input path before any external process is
// spawned: existence first, then the regular-file check.
func (s *ExtractService) validateInput(sourcePath string) error {
	if !s.fileChecker.Exists(sourcePath) {
		return fmt.Errorf("%w: %s", audio.ErrInputNotFound, sourcePath)
	}
	if !s.fileChecker.IsRegular(sourcePath) {
		return fmt.Errorf("%w: %s", audio.ErrNotRegularFile, sourcePath)
	}
	return nil
}
