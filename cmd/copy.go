package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	appaudio "audioleft/application/audio"
	"audioleft/domain/audio"
	"audioleft/infrastructure/ffmpeg"
	"audioleft/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	copyInputPath  string
	copyOutputPath string
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Extract audio from a video file without re-encoding",
	Long: `Extract the audio track from a video file by stream copy, preserving
the original codec bit-for-bit.

Without --output, the result is written to the configured output directory
using the input filename unchanged. With copy.codec_extension enabled in the
configuration, the default filename instead uses the extension conventional
for the detected codec (aac audio becomes .m4a, and so on). An explicit
--output path is used as given.

Example:
  audioleft copy --input movie.mkv
  audioleft copy --input movie.mkv --output /tmp/soundtrack.mkv`,
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().StringVar(&copyInputPath, "input", "", "Path to input video file (required)")
	copyCmd.Flags().StringVar(&copyOutputPath, "output", "", "Path to output audio file (default: <output_directory>/<input name>)")
	copyCmd.MarkFlagRequired("input")
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	extractor := ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpegPath))
	checker := filesystem.NewChecker()

	var opts []appaudio.ExtractServiceOption
	if cfg.Copy.CodecExtension {
		inspector := ffmpeg.NewInspector(ffmpeg.WithInspectorFFprobePath(cfg.Tools.FFprobePath))
		opts = append(opts, appaudio.WithCodecNaming(inspector))
	}

	return RunCopyWithDependencies(
		cmd.Context(),
		extractor,
		checker,
		checker,
		cfg.Paths.OutputDirectory,
		copyInputPath,
		copyOutputPath,
		os.Stdout,
		opts...,
	)
}

// RunCopyWithDependencies runs the copy command with injected dependencies (for testing)
func RunCopyWithDependencies(
	ctx context.Context,
	extractor audio.AudioExtractor,
	fileChecker audio.FileChecker,
	dirMaker audio.DirMaker,
	outputDir string,
	inputPath string,
	outputPath string,
	output OutputWriter,
	opts ...appaudio.ExtractServiceOption,
) error {
	// Verify ffmpeg is available if extractor supports it
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return err
		}
	}

	service := appaudio.NewExtractService(extractor, fileChecker, dirMaker, outputDir, opts...)

	input := appaudio.ExtractInput{
		SourcePath: inputPath,
		Mode:       audio.ModeStreamCopy,
		OutputPath: outputPath,
	}

	resolvedOutput, codec, err := service.ResolveOutputPath(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Input:  %s\n", inputPath)
	fmt.Fprintf(output, "Output: %s\n", resolvedOutput)
	if codec != "" {
		fmt.Fprintf(output, "Codec:  %s\n", codec)
	}
	fmt.Fprintln(output, "Extracting audio (stream copy)...")

	input.OutputPath = resolvedOutput
	if _, err := service.Extract(ctx, input); err != nil {
		return err
	}

	fmt.Fprintln(output, "✓ Audio extraction completed successfully!")
	return nil
}
