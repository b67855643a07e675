package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/storegen/internal/engine"
	"github.com/dbsmedya/storegen/internal/render"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List entity types and their dependencies",
	Long: `Entities lists every generatable entity type in generation order,
with the entity types it depends on for foreign keys.

Example:
  storegen entities`,
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
}

func runEntities(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	eng, err := engine.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	listing, err := render.DependencyList(eng.Graph())
	if err != nil {
		return fmt.Errorf("failed to render dependency list: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.Bold.Sprint("Entity types in generation order:"))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), listing)
	return nil
}
