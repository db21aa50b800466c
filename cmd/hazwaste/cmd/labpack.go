package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unboxed-hq/hazwaste/internal/labpack"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

var labpackCmd = &cobra.Command{
	Use:   "labpack [file]",
	Short: "Group a batch of products into compatible lab packs",
	Long: `Labpack reads a JSON array of product documents from the given file
(or stdin when no file is given), assigns each product to a segregation
category, and writes the resulting lab pack plan as JSON to stdout.
Products that cannot be categorized are listed separately for manual
review.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLabpack,
}

func init() {
	rootCmd.AddCommand(labpackCmd)
}

func runLabpack(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	data, err := readInput(args)
	if err != nil {
		return err
	}

	var materials []*types.Product
	if err := json.Unmarshal(data, &materials); err != nil {
		return fmt.Errorf("invalid product batch JSON: %w", err)
	}
	if len(materials) > cfg.BatchLimit {
		return fmt.Errorf("batch of %d products exceeds limit of %d", len(materials), cfg.BatchLimit)
	}

	if dbURL != "" {
		enricher, closeDB, err := openEnricher(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		for _, product := range materials {
			if _, err := enricher.Enrich(ctx, product); err != nil {
				return err
			}
		}
	}

	planner := labpack.NewPlanner(logger)
	plan, err := planner.Plan(materials)
	if err != nil {
		return fmt.Errorf("lab pack planning failed: %w", err)
	}

	return writeJSON(os.Stdout, plan)
}
