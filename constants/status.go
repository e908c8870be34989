package constants

// DocStatus is the canonical per-document outcome stored with a batch.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusExtracted DocStatus = "EXTRACTED"  // OCR + field extraction completed
	DocStatusOCRFailed DocStatus = "OCR_FAILED" // recognition failed, excluded from results
)
