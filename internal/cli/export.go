package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/propscan/propscan/internal/export"
	"github.com/propscan/propscan/internal/repository"
)

var (
	exportJSON string
	exportXLSX string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [batch-id]",
	Short: "Re-export a stored batch without re-running OCR",
	Long: `Export reads a past batch from the store and writes it out again.
With no argument the most recent batch is exported.

Example:
  propscan export --json results.json
  propscan export 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --xlsx results.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportJSON, "json", "results.json", "output JSON path")
	exportCmd.Flags().StringVar(&exportXLSX, "xlsx", "", "output XLSX path (optional)")
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.Open(ctx, repository.Config{Path: viper.GetString("db")}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close db", "error", cerr)
		}
	}()
	batches := repository.NewBatchRepository(db, logger)

	var batchID uuid.UUID
	if len(args) == 1 {
		if batchID, err = uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid batch id %q: %w", args[0], err)
		}
	} else {
		if batchID, err = batches.LatestBatch(ctx); err != nil {
			return err
		}
	}

	records, err := batches.ListRecords(ctx, batchID)
	if err != nil {
		return err
	}

	if err := export.WriteJSON(exportJSON, records); err != nil {
		return err
	}
	if exportXLSX != "" {
		if err := export.WriteXLSX(exportXLSX, records); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "batch %s: %d records exported to %s\n", batchID, len(records), exportJSON)
	return nil
}
