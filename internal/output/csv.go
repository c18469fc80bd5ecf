package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"tusseed/internal/models"
	"tusseed/pkg/metadata"
)

func writeCSV(path string, table *models.SeedTable, meta *metadata.Metadata) error {
	var buf bytes.Buffer

	buf.WriteString(meta.Block())

	w := csv.NewWriter(&buf)
	if err := w.Write(table.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := w.WriteAll(table.Records()); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}

	return nil
}

func readCSV(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}

	meta, clean := metadata.Extract(string(data))

	records, err := csv.NewReader(strings.NewReader(clean)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse seed: %s has no header", path)
	}

	return &Loaded{
		Metadata: meta,
		Header:   records[0],
		Records:  records[1:],
	}, nil
}
