package audio

import "context"

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract extracts the audio track from the request's source video and
	// writes it to outputPath, overwriting any existing file
	Extract(ctx context.Context, req *ExtractionRequest, outputPath string) error
}

// CodecInspector reports the codec of the first audio stream of a media file
type CodecInspector interface {
	// InspectCodec returns the codec name of the first audio stream, or
	// "unknown" if the stream does not report one
	InspectCodec(ctx context.Context, inputPath string) (string, error)
}

// FileChecker defines the interface for validating input paths
type FileChecker interface {
	// Exists returns true if the path exists
	Exists(path string) bool

	// IsRegular returns true if the path exists and is a regular file
	IsRegular(path string) bool
}

// DirMaker defines the interface for creating output directories
type DirMaker interface {
	// MkdirAll creates the directory along with any missing parents
	MkdirAll(path string) error
}
