package main

import (
	"github.com/aretw0/sortvis/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate both sorts in the terminal",
	Long: `Starts the side-by-side replay. Keys: space play/pause, +/- speed,
[/] resize, s shuffle, q quit.

--json streams one NDJSON frame per tick and --headless only prints the
final frame; both play to completion without reading keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		headless, _ := cmd.Flags().GetBool("headless")
		values, _ := cmd.Flags().GetIntSlice("values")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			Config:   cfg,
			JSON:     jsonMode,
			Headless: headless,
			Values:   values,
			In:       cmd.InOrStdin(),
			Out:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addArrayFlags(runCmd)
	runCmd.Flags().Float64("speed", 0, "Playback speed (clamped to 0.2..10)")
	runCmd.Flags().Bool("json", false, "Stream NDJSON frames instead of drawing bars")
	runCmd.Flags().Bool("headless", false, "Play to completion and print only the final frame")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
