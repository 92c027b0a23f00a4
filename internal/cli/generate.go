package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	cli    *CLI
	output string
}

func (cli *CLI) newGenerateCmd() *cobra.Command {
	gc := &GenerateCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of sales records and print the quarterly report",
		RunE:  gc.run,
	}

	cmd.Flags().Int("count", 1000, "Number of sales records to generate")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 picks a new one on every run")
	cmd.Flags().Int("year", 2023, "Year of the generated sales")
	cmd.Flags().Bool("strict", false, "Reject records with negative amounts or zero quantity")
	cmd.Flags().String("order", "first-seen", "Department order within a quarter (first-seen or sorted)")
	cmd.Flags().String("currency", "$", "Currency symbol")
	cmd.Flags().StringVarP(&gc.output, "output", "o", "", "Write the report to a file instead of stdout")

	bindFlags(cli.viper, cmd, map[string]string{
		"report_record_count":     "count",
		"report_seed":             "seed",
		"report_year":             "year",
		"report_strict":           "strict",
		"report_department_order": "order",
		"report_currency_symbol":  "currency",
	})

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	service, err := newReportService(gc.cli.config)
	if err != nil {
		return fmt.Errorf("failed to set up the report: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if gc.output != "" {
		f, err := os.Create(gc.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := service.WriteText(cmd.Context(), w); err != nil {
		return err
	}
	return nil
}
