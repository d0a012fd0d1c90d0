package cmd

import (
	"context"
	"fmt"
	"os"

	"audioleft/domain/audio"
	"audioleft/infrastructure/ffmpeg"

	"github.com/spf13/cobra"
)

var probeInputPath string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report the audio codec of a video file",
	Long: `Inspect a video file with ffprobe and report the codec of its first
audio stream, along with the conventional file extension for that codec.

Example:
  audioleft probe --input movie.mkv`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVar(&probeInputPath, "input", "", "Path to input video file (required)")
	probeCmd.MarkFlagRequired("input")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	inspector := ffmpeg.NewInspector(ffmpeg.WithInspectorFFprobePath(cfg.Tools.FFprobePath))

	return RunProbeWithDependencies(cmd.Context(), inspector, probeInputPath, os.Stdout)
}

// RunProbeWithDependencies runs the probe command with injected dependencies (for testing)
func RunProbeWithDependencies(
	ctx context.Context,
	inspector audio.CodecInspector,
	inputPath string,
	output OutputWriter,
) error {
	codec, err := inspector.InspectCodec(ctx, inputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Codec:     %s\n", codec)
	fmt.Fprintf(output, "Extension: %s\n", audio.ExtensionForCodec(codec))
	return nil
}
