package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"audioleft/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "audioleft",
	Short: "Extract audio tracks from video files using ffmpeg",
	Long: `audioleft extracts the audio track from a video file by invoking ffmpeg:

  - extract: decode and re-encode the audio as 16-bit PCM stereo WAV (44.1 kHz)
  - copy:    stream-copy the audio without re-encoding, preserving the codec
  - probe:   report the codec of the first audio stream

Example:
  audioleft extract --input recording.mp4
  audioleft copy --input movie.mkv --output /tmp/movie.mkv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and translates errors into process exit
// codes: 0 on success, 1 on any error, 130 on user interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		os.Exit(130)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; built-in defaults apply without one
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
