package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"tusseed/internal/models"
	"tusseed/pkg/metadata"
)

// Document is the JSON form of a seed. Keys are numbers, categories are
// names and missing categories are null.
type Document struct {
	Metadata *metadata.Metadata `json:"metadata"`
	Columns  []string           `json:"columns"`
	Rows     [][]any            `json:"rows"`
}

func newDocument(table *models.SeedTable, meta *metadata.Metadata) Document {
	doc := Document{
		Metadata: meta,
		Columns:  table.Header(),
		Rows:     make([][]any, 0, table.Len()),
	}

	for _, row := range table.Rows {
		cells := make([]any, 0, 3+len(row.Values))
		cells = append(cells, row.ID.Household.SN1, row.ID.Household.SN2, row.ID.SN3)

		for _, v := range row.Values {
			if v == nil {
				cells = append(cells, nil)
			} else {
				cells = append(cells, v.String())
			}
		}

		doc.Rows = append(doc.Rows, cells)
	}

	return doc
}

func writeJSON(path string, table *models.SeedTable, meta *metadata.Metadata, pretty bool) error {
	doc := newDocument(table, meta)

	var (
		jsonData []byte
		err      error
	)

	if pretty {
		jsonData, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonData, err = json.Marshal(doc)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal seed: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}

	return nil
}

func readJSON(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	loaded := &Loaded{
		Metadata: doc.Metadata,
		Header:   doc.Columns,
		Records:  make([][]string, 0, len(doc.Rows)),
	}

	for i, row := range doc.Rows {
		record := make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case nil:
				record[j] = ""
			case string:
				record[j] = v
			case json.Number:
				record[j] = v.String()
			default:
				return nil, fmt.Errorf("row %d column %d: unexpected value %v", i, j, cell)
			}
		}

		loaded.Records = append(loaded.Records, record)
	}

	return loaded, nil
}
