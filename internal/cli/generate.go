package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/flatfile"
	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/model"
)

var (
	generateRecords  int
	generateFromDate string
	generateToDate   string
	generateSeed     uint64
	generateDataDir  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the flat logistics dataset as CSV files",
	Long: `Generate a synthetic logistics dataset and write it to the data
directory as four CSV files: customers, bookings, shipments and payments.
Every customer gets exactly one booking, one shipment and one payment.

Example:
  rc-dwgen generate --records 5000 --from 2022-01-01 --to 2022-12-31
  rc-dwgen generate --records 1000 --seed 42`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateRecords, "records", 0,
		"number of customers to generate")
	generateCmd.Flags().StringVar(&generateFromDate, "from", "",
		"start of the booking window (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&generateToDate, "to", "",
		"end of the booking window (YYYY-MM-DD)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0,
		"random seed for reproducible datasets (0 = time-based)")
	generateCmd.Flags().StringVar(&generateDataDir, "data-dir", "",
		"directory for the flat CSV files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyGenerateFlags()

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	ds, err := generateDataset()
	if err != nil {
		return err
	}

	if err := flatfile.Save(cfg.DataDir, ds); err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}

	logging.Info().
		Str("data_dir", cfg.DataDir).
		Int("records", cfg.Generate.Records).
		Msg("Dataset generation complete")

	return nil
}

// applyGenerateFlags overrides config with CLI flags.
func applyGenerateFlags() {
	if generateRecords > 0 {
		cfg.Generate.Records = generateRecords
	}
	if generateFromDate != "" {
		cfg.Generate.FromDate = generateFromDate
	}
	if generateToDate != "" {
		cfg.Generate.ToDate = generateToDate
	}
	if generateSeed > 0 {
		cfg.Generate.Seed = generateSeed
	}
	if generateDataDir != "" {
		cfg.DataDir = generateDataDir
	}
}

// generateDataset builds the flat dataset from the active configuration.
func generateDataset() (model.Dataset, error) {
	from, to, err := cfg.DateWindow()
	if err != nil {
		return model.Dataset{}, err
	}

	gen := datagen.NewGenerator()
	if cfg.Generate.Seed > 0 {
		gen = datagen.NewGeneratorWithSeed(cfg.Generate.Seed)
	}

	return gen.Generate(from, to, cfg.Generate.Records)
}
