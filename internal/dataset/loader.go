// Package dataset loads the place table from files or a database and keeps a
// sanitized copy in memory for the rest of the process.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"weekenddiaries/adapters/excel"
	"weekenddiaries/domain/core"
	"weekenddiaries/domain/place"
)

// Load reads and sanitizes the place file at path. CSV and XLSX are accepted.
func Load(path string) (*place.Table, error) {
	raw, err := excel.NewDataReader(excel.DefaultReaderConfig(path)).ReadData()
	if err != nil {
		return nil, core.NewDataUnavailableError(path, err)
	}
	return NewSanitizer().Sanitize(raw), nil
}

// LoaderConfig describes the primary file and an optional fallback.
type LoaderConfig struct {
	Path             string
	FallbackPath     string
	FallbackEncoding string
}

// Loader reads the primary place file, or the fallback when the primary is
// missing. It implements ports.PlaceSource.
type Loader struct {
	config    LoaderConfig
	sanitizer *Sanitizer
}

// NewLoader creates a file loader
func NewLoader(config LoaderConfig) *Loader {
	return &Loader{config: config, sanitizer: NewSanitizer()}
}

// Load reads the configured files. ctx is checked before any I/O.
func (l *Loader) Load(ctx context.Context) (*place.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, core.NewDataUnavailableError(l.config.Path, err)
	}

	readerConfig := excel.DefaultReaderConfig(l.config.Path)
	fromFallback := false
	if _, err := os.Stat(l.config.Path); errors.Is(err, os.ErrNotExist) && l.config.FallbackPath != "" {
		log.Printf("[Loader] %s not found, falling back to %s (%s)", l.config.Path, l.config.FallbackPath, l.config.FallbackEncoding)
		readerConfig = excel.ReaderConfig{FilePath: l.config.FallbackPath, Encoding: l.config.FallbackEncoding}
		fromFallback = true
	}

	raw, err := excel.NewDataReader(readerConfig).ReadData()
	if err != nil {
		return nil, core.NewDataUnavailableError(readerConfig.FilePath, err)
	}

	if fromFallback && !raw.HasColumn(place.ColSubcategory) && raw.HasColumn(place.ColCategory) {
		raw.AddColumn(place.ColSubcategory, func(row excel.RawRowData) string {
			return row[place.ColCategory]
		})
	}

	table := l.sanitizer.Sanitize(raw)
	log.Printf("[Loader] Loaded %d places from %s (fingerprint %s)",
		table.Len(), readerConfig.FilePath, core.HashRows(raw.Records()).Short())
	return table, nil
}

// String describes the source for logs.
func (l *Loader) String() string {
	return fmt.Sprintf("file:%s", l.config.Path)
}

// RawSource yields unsanitized rows from somewhere other than a file, such as
// a database table.
type RawSource interface {
	LoadRaw(ctx context.Context) (*excel.RawTable, error)
}

// RawLoader sanitizes the rows of a RawSource. It implements
// ports.PlaceSource.
type RawLoader struct {
	name      string
	source    RawSource
	sanitizer *Sanitizer
}

// NewRawLoader creates a loader over source; name appears in errors and logs.
func NewRawLoader(name string, source RawSource) *RawLoader {
	return &RawLoader{name: name, source: source, sanitizer: NewSanitizer()}
}

// Load reads and sanitizes the source rows.
func (l *RawLoader) Load(ctx context.Context) (*place.Table, error) {
	raw, err := l.source.LoadRaw(ctx)
	if err != nil {
		return nil, core.NewDataUnavailableError(l.name, err)
	}
	table := l.sanitizer.Sanitize(raw)
	log.Printf("[Loader] Loaded %d places from %s", table.Len(), l.name)
	return table, nil
}

// String describes the source for logs.
func (l *RawLoader) String() string {
	return fmt.Sprintf("db:%s", l.name)
}
