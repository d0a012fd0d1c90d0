package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	appaudio "audioleft/application/audio"
	"audioleft/domain/audio"
	"audioleft/infrastructure/ffmpeg"
	"audioleft/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractInputPath  string
	extractOutputPath string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract audio from a video file as WAV",
	Long: `Extract the audio track from a video file, re-encoding it as
16-bit PCM stereo WAV at 44.1 kHz.

Without --output, the result is written to the configured output directory
using the input filename with a .wav extension. An explicit --output path
always gets a .wav extension, replacing whatever suffix was supplied.

Example:
  audioleft extract --input movie.mkv
  audioleft extract --input movie.mkv --output /tmp/movie.wav`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractInputPath, "input", "", "Path to input video file (required)")
	extractCmd.Flags().StringVar(&extractOutputPath, "output", "", "Path to output audio file (default: <output_directory>/<name>.wav)")
	extractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpegPath))
	checker := filesystem.NewChecker()

	return RunExtractWithDependencies(
		cmd.Context(),
		extractor,
		checker,
		checker,
		cfg.Paths.OutputDirectory,
		extractInputPath,
		extractOutputPath,
		os.Stdout,
	)
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// RunExtractWithDependencies runs the extract command with injected dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	extractor audio.AudioExtractor,
	fileChecker audio.FileChecker,
	dirMaker audio.DirMaker,
	outputDir string,
	inputPath string,
	outputPath string,
	output OutputWriter,
) error {
	// Verify ffmpeg is available if extractor supports it
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return err
		}
	}

	if outputPath != "" {
		// Force a .wav extension even if the caller supplied a different one
		outputPath = forceExtension(outputPath, ".wav")
	}

	service := appaudio.NewExtractService(extractor, fileChecker, dirMaker, outputDir)

	input := appaudio.ExtractInput{
		SourcePath: inputPath,
		Mode:       audio.ModeTranscode,
		OutputPath: outputPath,
	}

	resolvedOutput, _, err := service.ResolveOutputPath(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Input:  %s\n", inputPath)
	fmt.Fprintf(output, "Output: %s\n", resolvedOutput)
	fmt.Fprintln(output, "Extracting audio...")

	input.OutputPath = resolvedOutput
	if _, err := service.Extract(ctx, input); err != nil {
		return err
	}

	fmt.Fprintln(output, "✓ Audio extraction completed successfully!")
	return nil
}

// forceExtension replaces the path's extension with ext (leading dot)
func forceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
