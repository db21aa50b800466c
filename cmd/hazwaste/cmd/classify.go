package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/unboxed-hq/hazwaste/internal/core/cas"
	"github.com/unboxed-hq/hazwaste/internal/core/db"
	"github.com/unboxed-hq/hazwaste/internal/engine"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a waste product from a JSON description",
	Long: `Classify reads a product JSON document from the given file (or stdin
when no file is given), runs the full federal, state, and DOT
classification, and writes the result as JSON to stdout.

When --db-url is set, missing flash point, pH, and shipping fields are
filled from the chemical reference database before classification.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	product, err := readProduct(args)
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if dbURL != "" {
		enricher, closeDB, err := openEnricher(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		unknown, err := enricher.Enrich(ctx, product)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithUnknownChemicals(unknown))
	}

	result, err := engine.Classify(product, opts...)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	return writeJSON(os.Stdout, result)
}

// readProduct decodes a single product from the file argument or stdin.
func readProduct(args []string) (*types.Product, error) {
	data, err := readInput(args)
	if err != nil {
		return nil, err
	}
	var product types.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("invalid product JSON: %w", err)
	}
	return &product, nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// openEnricher connects to the reference database and builds an
// enricher over it. The returned close func releases the connection.
func openEnricher(logger *slog.Logger) (*cas.Enricher, func() error, error) {
	database, err := db.Open(dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load queries: %w", err)
	}

	store, err := cas.NewStore(queries)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	enricher, err := cas.NewEnricher(store, logger)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return enricher, database.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
