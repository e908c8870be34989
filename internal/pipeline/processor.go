package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/propscan/propscan/internal/extract"
	"github.com/propscan/propscan/internal/ingest"
	"github.com/propscan/propscan/internal/ocr"
)

// Config holds behavior flags for batch processing.
type Config struct {
	Workers int // concurrent documents, default 4
}

// Stats aggregates one batch run.
type Stats struct {
	Scanned   uint32 // directory entries visited
	Matched   uint32 // files with a recognized image extension
	Succeeded uint32 // documents OCR'd and extracted
	Failed    uint32 // documents excluded (walk or OCR failure)
}

// Processor runs a whole batch: enumerate images, OCR and extract each
// document, collect records in input order. Documents are independent, so
// they fan out across a fixed set of workers; a failing document is logged
// and skipped, never aborting the batch.
type Processor struct {
	cfg        Config
	recognizer ocr.Recognizer
	extractor  *extract.Extractor
	logger     *slog.Logger
}

func NewProcessor(cfg Config, recognizer ocr.Recognizer, extractor *extract.Extractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Processor{cfg: cfg, recognizer: recognizer, extractor: extractor, logger: logger}
}

// Run processes every eligible image under imageDir. An absent or empty
// directory is a valid empty batch, not an error.
func (p *Processor) Run(ctx context.Context, imageDir string) ([]extract.Record, Stats, error) {
	start := time.Now()

	paths, dirStats, err := ingest.ListImages(imageDir)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Scanned: dirStats.Scanned, Matched: dirStats.Matched, Failed: dirStats.Failed}
	if len(paths) == 0 {
		p.logger.Info("no documents to process", "image_dir", imageDir, "scanned", stats.Scanned)
		return nil, stats, nil
	}

	workers := p.cfg.Workers
	if workers > len(paths) {
		workers = len(paths)
	}
	p.logger.Info("batch start", "image_dir", imageDir, "documents", len(paths), "workers", workers)

	type slot struct {
		rec extract.Record
		ok  bool
	}
	slots := make([]slot, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := paths[i]
				text, rerr := p.recognizer.Recognize(ctx, path)
				if rerr != nil {
					p.logger.Error("ocr failed, skipping document", "path", path, "error", rerr)
					continue
				}
				slots[i] = slot{rec: p.extractor.Extract(text, filepath.Base(path)), ok: true}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	records := make([]extract.Record, 0, len(paths))
	for _, s := range slots {
		if s.ok {
			records = append(records, s.rec)
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}

	p.logger.Info("batch done",
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return records, stats, ctx.Err()
}
