package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/propscan/propscan/internal/common"
	"github.com/propscan/propscan/internal/debug"
	"github.com/propscan/propscan/internal/export"
	"github.com/propscan/propscan/internal/extract"
	"github.com/propscan/propscan/internal/ocr"
	"github.com/propscan/propscan/internal/pipeline"
	"github.com/propscan/propscan/internal/repository"
)

var runTimeout time.Duration

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "OCR a directory of scanned documents and extract structured records",
	Long: `Run enumerates images under the configured directory, OCRs each one,
extracts the five record fields, stores the batch, and writes the results
as a JSON array (and optionally an XLSX workbook).

Example:
  propscan run --images ./scans --out results.json
  propscan run --images ./scans --out results.json --xlsx results.xlsx --debug`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("images", "", "directory of scanned documents")
	runCmd.Flags().String("out", "results.json", "output JSON path")
	runCmd.Flags().String("xlsx", "", "output XLSX path (optional)")
	runCmd.Flags().String("rules", "", "JSON rule-set override file (optional)")
	runCmd.Flags().Bool("debug", false, "dump raw OCR text per document")
	runCmd.Flags().String("debug-dir", "./debug_text", "directory for raw text dumps")
	runCmd.Flags().String("db", "propscan.db", "sqlite batch store")
	runCmd.Flags().Int("workers", 4, "concurrent documents")
	runCmd.Flags().String("ocr-backend", ocr.BackendExec, "ocr backend: tesseract | gosseract")
	runCmd.Flags().String("tesseract", "", "tesseract binary name or path")
	runCmd.Flags().String("lang", "eng", "ocr language")
	runCmd.Flags().String("tessdata", "", "tessdata directory")
	runCmd.Flags().Int("psm", 0, "tesseract page segmentation mode (0 = default)")
	runCmd.Flags().Int("oem", 0, "tesseract engine mode (0 = default)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Minute, "overall batch timeout")

	for _, key := range []string{
		"images", "out", "xlsx", "rules", "debug", "debug-dir", "db", "workers",
		"ocr-backend", "tesseract", "lang", "tessdata", "psm", "oem",
	} {
		_ = viper.BindPFlag(key, runCmd.Flags().Lookup(key))
	}
}

func loadRunConfig() *common.Config {
	return &common.Config{
		ImageDir:     viper.GetString("images"),
		OutputPath:   viper.GetString("out"),
		XLSXPath:     viper.GetString("xlsx"),
		RulesFile:    viper.GetString("rules"),
		DebugEnabled: viper.GetBool("debug"),
		DebugDir:     viper.GetString("debug-dir"),
		DBPath:       viper.GetString("db"),
		Workers:      viper.GetInt("workers"),
		OCR: common.OCRConfig{
			Backend:     viper.GetString("ocr-backend"),
			Tesseract:   viper.GetString("tesseract"),
			Language:    viper.GetString("lang"),
			TessdataDir: viper.GetString("tessdata"),
			PSM:         viper.GetInt("psm"),
			OEM:         viper.GetInt("oem"),
		},
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	cfg := loadRunConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	rules := extract.DefaultRuleSet()
	if cfg.RulesFile != "" {
		var err error
		if rules, err = extract.LoadRuleSet(cfg.RulesFile); err != nil {
			return err
		}
		logger.Info("loaded rule overrides", "path", cfg.RulesFile)
	}

	var sink extract.DebugSink
	if cfg.DebugEnabled {
		fsSink, err := debug.NewFSSink(cfg.DebugDir)
		if err != nil {
			return err
		}
		sink = fsSink
	}

	recognizer, err := ocr.NewRecognizer(ocr.Config{
		Backend:     cfg.OCR.Backend,
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)
	if err != nil {
		return err
	}

	db, err := repository.Open(ctx, repository.Config{Path: cfg.DBPath}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close db", "error", cerr)
		}
	}()
	batches := repository.NewBatchRepository(db, logger)

	extractor := extract.NewExtractor(rules, sink, logger)
	processor := pipeline.NewProcessor(pipeline.Config{Workers: cfg.Workers}, recognizer, extractor, logger)

	records, stats, err := processor.Run(ctx, cfg.ImageDir)
	if err != nil {
		return err
	}

	batchID, err := batches.CreateBatch(ctx, cfg.ImageDir)
	if err != nil {
		return err
	}
	if err := batches.AddRecords(ctx, batchID, records); err != nil {
		return err
	}
	if err := batches.FinishBatch(ctx, batchID, repository.BatchStats{
		Scanned:   stats.Scanned,
		Matched:   stats.Matched,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
	}); err != nil {
		return err
	}

	if err := export.WriteJSON(cfg.OutputPath, records); err != nil {
		return err
	}
	if cfg.XLSXPath != "" {
		if err := export.WriteXLSX(cfg.XLSXPath, records); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "batch %s: %d extracted, %d failed, results in %s\n",
		batchID, stats.Succeeded, stats.Failed, cfg.OutputPath)
	return nil
}
