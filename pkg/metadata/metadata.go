// Package metadata provides utilities for signing and verifying seed tables.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "# METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "# METADATA_END"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes one generated seed.
type Metadata struct {
	CreatedAt         time.Time `json:"created_at"`
	RunID             string    `json:"run_id"`
	Version           string    `json:"version"`
	Hash              string    `json:"hash"`
	Features          []string  `json:"features"`
	Individuals       int       `json:"individuals"`
	Households        int       `json:"households"`
	HouseholdsRemoved int       `json:"households_removed"`
	DroppedMissing    int       `json:"dropped_missing"`
	Validation        bool      `json:"validation"`
}

// New creates metadata for a fresh run.
func New(version string, validated bool) *Metadata {
	return &Metadata{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Version:    version,
		Validation: validated,
	}
}

// Canonical renders a table as the text that gets hashed: tab separated fields,
// one line per row, header first.
func Canonical(header []string, records [][]string) string {
	var b strings.Builder

	b.WriteString(strings.Join(header, "\t"))

	for _, rec := range records {
		b.WriteByte('\n')
		b.WriteString(strings.Join(rec, "\t"))
	}

	return b.String()
}

// CalculateHash computes the SHA-256 hash of the canonical table text.
func CalculateHash(header []string, records [][]string) string {
	hash := sha256.Sum256([]byte(Canonical(header, records)))

	return hex.EncodeToString(hash[:])
}

// Sign stores a fresh hash of the table.
func (m *Metadata) Sign(header []string, records [][]string) {
	m.Hash = CalculateHash(header, records)
}

// Verify checks if the table matches the hash in the metadata.
func Verify(meta *Metadata, header []string, records [][]string) (bool, error) {
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(header, records)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}

// Block renders the metadata as a comment block placed before a CSV table.
func (m *Metadata) Block() string {
	valStr := "FALSE"
	if m.Validation {
		valStr = "TRUE"
	}

	lines := []string{
		TagStart,
		"# RUN_ID: " + m.RunID,
		"# VERSION: " + m.Version,
		"# CREATED_AT: " + m.CreatedAt.Format(time.RFC3339),
		"# VALIDATION: " + valStr,
		"# FEATURES: " + strings.Join(m.Features, ","),
		"# INDIVIDUALS: " + strconv.Itoa(m.Individuals),
		"# HOUSEHOLDS: " + strconv.Itoa(m.Households),
		"# HOUSEHOLDS_REMOVED: " + strconv.Itoa(m.HouseholdsRemoved),
		"# DROPPED_MISSING: " + strconv.Itoa(m.DroppedMissing),
		"# HASH: " + m.Hash,
		TagEnd,
	}

	return strings.Join(lines, "\n") + "\n"
}

// blockRegex matches the entire metadata block including tags.
var blockRegex = regexp.MustCompile(`(?s)#\s*METADATA_START\s*\n(.*?)\n#\s*METADATA_END[^\n]*\n?`)

// Extract removes the metadata block from content and returns both the metadata
// and the remaining content.
func Extract(content string) (*Metadata, string) {
	match := blockRegex.FindStringSubmatch(content)
	cleanContent := blockRegex.ReplaceAllString(content, "")

	if len(match) < 2 {
		return nil, cleanContent
	}

	meta := &Metadata{}

	lines := strings.SplitSeq(match[1], "\n")
	for line := range lines {
		parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(line), "#"), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			meta.RunID = val
		case "VERSION":
			meta.Version = val
		case "CREATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.CreatedAt = t
			}
		case "VALIDATION":
			meta.Validation = strings.EqualFold(val, "TRUE")
		case "FEATURES":
			if val != "" {
				meta.Features = strings.Split(val, ",")
			}
		case "INDIVIDUALS":
			meta.Individuals, _ = strconv.Atoi(val)
		case "HOUSEHOLDS":
			meta.Households, _ = strconv.Atoi(val)
		case "HOUSEHOLDS_REMOVED":
			meta.HouseholdsRemoved, _ = strconv.Atoi(val)
		case "DROPPED_MISSING":
			meta.DroppedMissing, _ = strconv.Atoi(val)
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, cleanContent
}
