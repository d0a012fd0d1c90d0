package audio

import "errors"

var (
	// ErrInputNotFound is returned when the input file does not exist
	ErrInputNotFound = errors.New("input file not found")

	// ErrNotRegularFile is returned when the input path exists but is not a regular file
	ErrNotRegularFile = errors.New("input path is not a file")

	// ErrToolMissing is returned when an external tool is absent from the PATH
	ErrToolMissing = errors.New("external tool not found")

	// ErrToolFailed is returned when an external tool exits with a non-zero status
	ErrToolFailed = errors.New("external tool failed")

	// ErrProbeParse is returned when ffprobe output cannot be parsed
	ErrProbeParse = errors.New("failed to parse probe output")

	// ErrNoAudioStream is returned when the probed file has no audio streams
	ErrNoAudioStream = errors.New("no audio stream found")
)
