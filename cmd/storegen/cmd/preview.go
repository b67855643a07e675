package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/storegen/internal/engine"
	"github.com/dbsmedya/storegen/internal/render"
)

var (
	previewEntity string
	previewCount  int
	previewSeed   int64
	previewRows   int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a generated batch as an ASCII table",
	Long: `Preview generates a batch and prints it as an ASCII table for
eyeballing field values before exporting.

Example:
  storegen preview --entity user --count 5 --seed 42`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewEntity, "entity", "e", "",
		"Entity type to preview (see 'storegen entities')")
	previewCmd.Flags().IntVarP(&previewCount, "count", "n", 5,
		"Number of records to generate")
	previewCmd.Flags().Int64VarP(&previewSeed, "seed", "s", 0,
		"Seed for reproducible output (omit for a random seed)")
	previewCmd.Flags().IntVar(&previewRows, "rows", 20,
		"Maximum rows to display")

	_ = previewCmd.MarkFlagRequired("entity")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	eng, err := engine.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	var seed *int64
	if cmd.Flags().Changed("seed") {
		s := previewSeed
		seed = &s
	}

	batch, sess, err := eng.Build(previewEntity, previewCount, seed)
	if err != nil {
		return err
	}

	table, err := render.Table(batch, previewRows)
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.Bold.Sprintf("%s (seed %d)", previewEntity, sess.Source.Seed()))
	fmt.Fprint(cmd.OutOrStdout(), table)
	return nil
}
