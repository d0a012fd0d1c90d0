package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"audioleft/infrastructure/config"

	"github.com/spf13/cobra"
)

// DefaultOutput is the default output writer for config commands
var DefaultOutput OutputWriter = os.Stdout

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration entries",
	Long: `Show or change the configuration file used by audioleft.

Examples:
  audioleft config show
  audioleft config set output-dir /data/audio
  audioleft config set copy-codec-extension true`,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// --- SHOW command ---

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return RunConfigShowWithDependencies(GetConfig(), DefaultOutput)
}

// RunConfigShowWithDependencies prints the configuration (for testing)
func RunConfigShowWithDependencies(cfg *config.Config, out OutputWriter) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "output-dir\t%s\n", cfg.Paths.OutputDirectory)
	fmt.Fprintf(w, "ffmpeg\t%s\n", cfg.Tools.FFmpegPath)
	fmt.Fprintf(w, "ffprobe\t%s\n", cfg.Tools.FFprobePath)
	fmt.Fprintf(w, "copy-codec-extension\t%t\n", cfg.Copy.CodecExtension)
	return w.Flush()
}

// --- SET command ---

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the configuration file.

Keys:
  output-dir            directory for extracted audio files
  ffmpeg                ffmpeg executable path
  ffprobe               ffprobe executable path
  copy-codec-extension  true/false: derive copy output extensions from the codec`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	return RunConfigSetWithDependencies(GetConfig(), cfgFile, args[0], args[1], DefaultOutput)
}

// RunConfigSetWithDependencies applies a config change and saves it (for testing)
func RunConfigSetWithDependencies(cfg *config.Config, configPath, key, value string, out OutputWriter) error {
	switch key {
	case "output-dir":
		cfg.Paths.OutputDirectory = value
	case "ffmpeg":
		cfg.Tools.FFmpegPath = value
	case "ffprobe":
		cfg.Tools.FFprobePath = value
	case "copy-codec-extension":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s (expected true or false): %q", key, value)
		}
		cfg.Copy.CodecExtension = enabled
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Set %s = %s\n", key, value)
	return nil
}
