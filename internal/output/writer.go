// Package output writes seed tables to disk and loads them back for verification.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tusseed/internal/models"
	"tusseed/pkg/metadata"
)

// Format is a seed file format.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// Output errors.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNilTable      = errors.New("seed table is nil")
	ErrNoRun         = errors.New("no seed run found")
)

// Loaded is a seed read back from disk in its textual form.
type Loaded struct {
	Metadata *metadata.Metadata
	Header   []string
	Records  [][]string
}

// ParseFormat parses a format name. "db" and "sqlite3" are accepted for SQLite.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat infers the format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Writer writes signed seed tables.
type Writer struct {
	Format      Format
	PrettyPrint bool
}

// NewWriter creates a writer. An empty format is detected from each output path.
func NewWriter(format Format, prettyPrint bool) *Writer {
	return &Writer{
		Format:      format,
		PrettyPrint: prettyPrint,
	}
}

// Write signs meta with the table contents and writes both to path,
// creating parent directories as needed.
func (w *Writer) Write(ctx context.Context, path string, table *models.SeedTable, meta *metadata.Metadata) error {
	if table == nil {
		return ErrNilTable
	}

	format := w.Format
	if format == "" {
		var err error

		format, err = DetectFormat(path)
		if err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	meta.Features = table.FeatureNames()
	meta.Sign(table.Header(), table.Records())

	switch format {
	case FormatJSON:
		return writeJSON(path, table, meta, w.PrettyPrint)
	case FormatCSV:
		return writeCSV(path, table, meta)
	case FormatSQLite:
		return writeSQLite(ctx, path, table, meta)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Read loads a seed written by Writer. For SQLite the most recent run is read.
func Read(ctx context.Context, path string) (*Loaded, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return readJSON(path)
	case FormatCSV:
		return readCSV(path)
	case FormatSQLite:
		return ReadSQLite(ctx, path, "")
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
