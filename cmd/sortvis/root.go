package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sortvis/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sortvis",
	Short: "sortvis animates bubble sort and quicksort side by side",
	Long: `sortvis replays bubble sort and quicksort over the same shuffled array,
one step per tick, in the terminal, as NDJSON frames, over HTTP or as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("size") != nil && flags.Changed("size") {
		cfg.Size, _ = flags.GetInt("size")
	}
	if flags.Lookup("speed") != nil && flags.Changed("speed") {
		cfg.Speed, _ = flags.GetFloat64("speed")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.HTTPPort, _ = flags.GetInt("port")
	}
	if flags.Lookup("metrics") != nil && flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if flags.Lookup("redis-url") != nil && flags.Changed("redis-url") {
		cfg.RedisURL, _ = flags.GetString("redis-url")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.Normalize(), nil
}

func addArrayFlags(cmd *cobra.Command) {
	cmd.Flags().Int("size", 0, "Array size (clamped to 5..50)")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible arrays (0 picks a random one)")
	cmd.Flags().IntSlice("values", nil, "Explicit input values, e.g. 3,1,2")
}
