package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sortvis/internal/cli"
	"github.com/aretw0/sortvis/internal/runtime"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <bubble|quick>",
	Short: "Print the step list of one algorithm",
	Long: `Builds the full step list of an algorithm over --values, or over a
generated array of --size seeded by --seed, and prints it.

The mermaid format draws the quicksort partition tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := domain.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		values, _ := cmd.Flags().GetIntSlice("values")

		if len(values) == 0 {
			gen := dataset.NewGenerator()
			if cfg.Seed != 0 {
				gen = dataset.NewSeededGenerator(cfg.Seed)
			}
			values = gen.GenArray(cfg.Size)
			fmt.Fprintf(cmd.ErrOrStderr(), "values: %v\n", values)
		}
		return cli.ExportSteps(cmd.Context(), cmd.OutOrStdout(), runtime.NewEngine(), alg, values, format)
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)

	addArrayFlags(stepsCmd)
	stepsCmd.Flags().StringP("format", "f", cli.FormatJSON, "Output format: "+strings.Join(cli.Formats(), ", "))
}
