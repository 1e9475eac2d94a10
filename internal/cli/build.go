package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/flatfile"
	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/model"
	"github.com/rclogistics/rc-dwgen/internal/sink"
	"github.com/rclogistics/rc-dwgen/internal/warehouse"
	"github.com/rclogistics/rc-dwgen/pkg/version"
)

var (
	buildReuseData bool
	buildStarDir   string
	buildDBPath    string
	buildSkipDB    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the star schema warehouse end to end",
	Long: `Build the dimensional warehouse: generate (or reuse) the flat
dataset, transform it into a star schema and load the result into the
configured sinks. The star schema is always exported as CSV; the SQLite
load runs unless --skip-db is given, and a PostgreSQL load runs when a
connection string is configured.

The transform is all-or-nothing: a dangling reference or invalid measure
aborts the run and no sink receives partial output.

Example:
  rc-dwgen build --records 5000
  rc-dwgen build --reuse-data --db-path warehouse.db
  rc-dwgen build --connection "postgres://..." --skip-db`,
	RunE: runBuild,
}

func init() {
	// Generation flags are shared with the generate command
	buildCmd.Flags().IntVar(&generateRecords, "records", 0,
		"number of customers to generate")
	buildCmd.Flags().StringVar(&generateFromDate, "from", "",
		"start of the booking window (YYYY-MM-DD)")
	buildCmd.Flags().StringVar(&generateToDate, "to", "",
		"end of the booking window (YYYY-MM-DD)")
	buildCmd.Flags().Uint64Var(&generateSeed, "seed", 0,
		"random seed for reproducible datasets (0 = time-based)")
	buildCmd.Flags().StringVar(&generateDataDir, "data-dir", "",
		"directory for the flat CSV files")

	buildCmd.Flags().BoolVar(&buildReuseData, "reuse-data", false,
		"load the flat dataset from data-dir instead of generating")
	buildCmd.Flags().StringVar(&buildStarDir, "star-dir", "",
		"directory for the star schema CSV export")
	buildCmd.Flags().StringVar(&buildDBPath, "db-path", "",
		"SQLite warehouse file")
	buildCmd.Flags().BoolVar(&buildSkipDB, "skip-db", false,
		"skip the SQLite warehouse load")
}

func runBuild(cmd *cobra.Command, args []string) error {
	applyGenerateFlags()
	if buildStarDir != "" {
		cfg.StarDir = buildStarDir
	}
	if buildDBPath != "" {
		cfg.DBPath = buildDBPath
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	ds, err := obtainDataset()
	if err != nil {
		return err
	}

	from, to, err := cfg.DateWindow()
	if err != nil {
		return err
	}

	// The date dimension must also cover shipment and delivery dates
	// trailing the booking window.
	start, end := datagen.Window(from, to)

	logging.Info().
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Msg("Transforming dataset into star schema")

	star, err := warehouse.Transform(ds, start, end)
	if err != nil {
		return fmt.Errorf("star schema transform failed: %w", err)
	}

	if err := sink.WriteCSV(cfg.StarDir, star); err != nil {
		return err
	}

	ctx := context.Background()
	meta := sink.Metadata{
		Version:  version.Short(),
		Records:  len(ds.Customers),
		LoadedAt: time.Now(),
	}

	if !buildSkipDB && cfg.DBPath != "" {
		if err := sink.NewSQLite(cfg.DBPath, meta).Load(ctx, star); err != nil {
			return fmt.Errorf("sqlite load failed: %w", err)
		}
	}

	if cfg.Connection != "" {
		if err := sink.NewPostgres(cfg.Connection, meta).Load(ctx, star); err != nil {
			return fmt.Errorf("postgres load failed: %w", err)
		}
	}

	logging.Info().
		Int("dim_date", len(star.DimDate)).
		Int("dim_customer", len(star.DimCustomer)).
		Int("fact_shipment", len(star.FactShipment)).
		Int("fact_revenue", len(star.FactRevenue)).
		Msg("Warehouse build complete")

	return nil
}

// obtainDataset either reads the flat dataset back from the data
// directory or generates a fresh one.
func obtainDataset() (model.Dataset, error) {
	if buildReuseData {
		logging.Info().Str("data_dir", cfg.DataDir).Msg("Reusing existing dataset")
		ds, err := flatfile.Load(cfg.DataDir)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("failed to load dataset: %w", err)
		}
		return ds, nil
	}

	ds, err := generateDataset()
	if err != nil {
		return model.Dataset{}, err
	}
	if err := flatfile.Save(cfg.DataDir, ds); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to save dataset: %w", err)
	}
	return ds, nil
}
