package excel

import (
	"path/filepath"
	"strings"
)

// ReaderConfig holds configuration for a tabular data source
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	// Encoding of CSV input. Empty means UTF-8; "ISO-8859-1" and "latin1"
	// are decoded through x/text. XLSX files are always UTF-8.
	Encoding string `json:"encoding"`
	// Sheet to read from XLSX workbooks. Empty means the first sheet.
	Sheet string `json:"sheet"`
}

// DefaultReaderConfig returns a UTF-8 config for path
func DefaultReaderConfig(path string) ReaderConfig {
	return ReaderConfig{FilePath: path}
}

func fileTypeOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return "xlsx"
	default:
		return "csv"
	}
}
