package common

// Config holds all application configuration. Values come from flags, the
// optional config file, and PROPSCAN_* environment variables (in that
// order of precedence); see the cli package for the binding.
type Config struct {
	ImageDir   string // directory of scanned documents
	OutputPath string // JSON result file
	XLSXPath   string // optional workbook export, empty disables
	RulesFile  string // optional JSON rule-set override, empty keeps defaults

	DebugEnabled bool   // dump raw OCR text per document
	DebugDir     string // where raw text dumps land

	DBPath  string // sqlite batch store
	Workers int    // concurrent documents

	OCR OCRConfig
}

// OCRConfig holds OCR backend configuration.
type OCRConfig struct {
	Backend     string
	Tesseract   string
	Language    string
	TessdataDir string
	PSM         int
	OEM         int
}

func (c *Config) Validate() error {
	if c.ImageDir == "" {
		return NewAppError("CONFIG_ERROR", "image directory is required", ErrInvalidInput)
	}
	if c.OutputPath == "" {
		return NewAppError("CONFIG_ERROR", "output path is required", ErrInvalidInput)
	}
	if c.DebugEnabled && c.DebugDir == "" {
		return NewAppError("CONFIG_ERROR", "debug dir is required when debug is enabled", ErrInvalidInput)
	}
	return nil
}
