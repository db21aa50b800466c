package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unboxed-hq/hazwaste/internal/core/cas"
	"github.com/unboxed-hq/hazwaste/internal/core/db"
)

var chemicalsCmd = &cobra.Command{
	Use:   "chemicals",
	Short: "Inspect and update the chemical reference dictionary",
}

var chemicalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dictionary rows",
	RunE:  runChemicalsList,
}

var chemicalsAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add or update a dictionary row from a chemical JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChemicalsAdd,
}

func init() {
	rootCmd.AddCommand(chemicalsCmd)
	chemicalsCmd.AddCommand(chemicalsListCmd)
	chemicalsCmd.AddCommand(chemicalsAddCmd)
	chemicalsListCmd.Flags().Int("limit", 100, "maximum rows to list")
}

func openStore() (*cas.Store, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg)

	database, err := db.Open(cfg.DatabaseURL)
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
	return store, database.Close, nil
}

func runChemicalsList(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	limit, _ := cmd.Flags().GetInt("limit")
	chems, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CAS\tNAME\tUN\tCLASS")
	for _, c := range chems {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.CASNumber, c.Name, c.UNNumber, c.HazardClass)
	}
	return w.Flush()
}

func runChemicalsAdd(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	data, err := readInput(args)
	if err != nil {
		return err
	}
	var chem cas.Chemical
	if err := json.Unmarshal(data, &chem); err != nil {
		return fmt.Errorf("invalid chemical JSON: %w", err)
	}

	if err := store.Upsert(context.Background(), &chem); err != nil {
		return err
	}
	fmt.Printf("stored %s (%s)\n", chem.CASNumber, chem.Name)
	return nil
}
