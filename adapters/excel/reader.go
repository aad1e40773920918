package excel

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ErrNoHeader is returned for inputs without even a header row.
var ErrNoHeader = errors.New("file has no header row")

// DataReader handles reading Excel and CSV files
type DataReader struct {
	config   ReaderConfig
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ReaderConfig) *DataReader {
	return &DataReader{config: config, fileType: fileTypeOf(config.FilePath)}
}

// ReadData reads the configured file into a RawTable
func (r *DataReader) ReadData() (*RawTable, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); err != nil {
		return nil, fmt.Errorf("%s file not found: %s: %w", strings.ToUpper(r.fileType), r.config.FilePath, err)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcelData()
	default:
		f, err := os.Open(r.config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f, r.config.Encoding)
	}
}

// readExcelData reads the configured sheet, or the first one
func (r *DataReader) readExcelData() (*RawTable, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return processRows(rows)
}

// ReadCSV parses CSV content with a header row. encoding follows
// ReaderConfig.Encoding.
func ReadCSV(src io.Reader, encoding string) (*RawTable, error) {
	decoded, err := decode(src, encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	log.Printf("[DataReader] CSV read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return processRows(rows)
}

func decode(src io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		content, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		return bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))), nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(src), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(src), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

// processRows converts raw string rows into a RawTable. Headers are trimmed;
// cells are kept verbatim.
func processRows(rows [][]string) (*RawTable, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankLine(row) {
			continue
		}
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = cell
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] Table processed (%d columns, %d rows)", len(headers), len(dataRows))

	return &RawTable{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// isBlankLine reports lines with no delimiter and no content. Rows made of
// empty cells, such as ",,", are data rows and keep their ordinal.
func isBlankLine(row []string) bool {
	return len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "")
}
