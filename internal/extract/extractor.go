package extract

import (
	"log/slog"
	"time"

	"github.com/propscan/propscan/constants"
)

// DebugSink persists a raw text blob under a unique key. Purely diagnostic:
// the extractor calls it best-effort and a failing sink never fails extraction.
type DebugSink interface {
	Dump(key, text string) error
}

// Extractor turns one document's raw OCR text into a Record. It owns the
// static rule configuration, so multiple extractors with different rule sets
// can run side by side. Stateless between documents and safe for concurrent
// use.
type Extractor struct {
	rules  *RuleSet
	sink   DebugSink
	logger *slog.Logger
}

// NewExtractor builds an extractor. rules nil means the built-in real-estate
// rules; sink nil disables debug dumps.
func NewExtractor(rules *RuleSet, sink DebugSink, logger *slog.Logger) *Extractor {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{rules: rules, sink: sink, logger: logger}
}

// Extract produces the structured record for one document. Every field is set
// exactly once: by the pattern rules on normalized text, else by the keyword
// line scanner on the raw text, else it stays at the sentinel. Malformed or
// empty text is not an error; unresolved fields are the expected steady state.
func (e *Extractor) Extract(rawText, sourceFile string) Record {
	rec := Record{SourceFile: sourceFile}
	for _, field := range constants.FieldNames {
		rec.setField(field, constants.NotFound)
	}

	if e.sink != nil {
		key := time.Now().UTC().Format("20060102T150405.000000000")
		if err := e.sink.Dump(key, rawText); err != nil {
			e.logger.Warn("debug dump failed", "source", sourceFile, "key", key, "error", err)
		}
	}

	// Patterns match the cleaned single-line form; captures keep the
	// document's original casing.
	cleaned := clean(rawText)
	resolved := 0
	for _, field := range constants.FieldNames {
		if v, ok := e.rules.find(field, cleaned); ok {
			rec.setField(field, v)
			resolved++
			continue
		}
		// fallback scans the untouched raw text so line boundaries survive
		if v, ok := scanValue(rawText, e.rules.keywords[field]); ok {
			rec.setField(field, v)
			resolved++
		}
	}

	e.logger.Debug("extraction done",
		"source", sourceFile,
		"resolved", resolved,
		"missing", len(constants.FieldNames)-resolved,
	)
	return rec
}
