package output

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tusseed/internal/database"
	"tusseed/internal/models"
	"tusseed/pkg/metadata"
)

const insertRun = `INSERT INTO seed_runs
	(id, created_at, version, hash, features, validated, individuals, households, households_removed, dropped_missing)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertValue = `INSERT INTO seed_values
	(run_id, row_idx, sn1, sn2, sn3, feature, category, ordinal)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// writeSQLite stores the seed as a new run. Earlier runs in the same file are kept.
func writeSQLite(ctx context.Context, path string, table *models.SeedTable, meta *metadata.Metadata) error {
	db, err := database.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertRun,
		meta.RunID,
		meta.CreatedAt.Format(time.RFC3339),
		meta.Version,
		meta.Hash,
		strings.Join(meta.Features, ","),
		meta.Validation,
		meta.Individuals,
		meta.Households,
		meta.HouseholdsRemoved,
		meta.DroppedMissing,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertValue)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	names := table.FeatureNames()

	for i, row := range table.Rows {
		for j, v := range row.Values {
			var category, ordinal any
			if v != nil {
				category = v.String()
				ordinal = v.Ordinal()
			}

			_, err := stmt.ExecContext(ctx, meta.RunID, i,
				row.ID.Household.SN1, row.ID.Household.SN2, row.ID.SN3,
				names[j], category, ordinal)
			if err != nil {
				return fmt.Errorf("insert value: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// ReadSQLite loads one run from a SQLite seed. An empty runID selects the most recent run.
func ReadSQLite(ctx context.Context, path, runID string) (*Loaded, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	meta, err := readRun(ctx, db, runID)
	if err != nil {
		return nil, err
	}

	header := append([]string{models.ColumnSN1, models.ColumnSN2, models.ColumnSN3}, meta.Features...)

	col := make(map[string]int, len(meta.Features))
	for i, name := range meta.Features {
		col[name] = 3 + i
	}

	rows, err := db.QueryContext(ctx,
		`SELECT row_idx, sn1, sn2, sn3, feature, category FROM seed_values
		WHERE run_id = ? ORDER BY row_idx`, meta.RunID)
	if err != nil {
		return nil, fmt.Errorf("query values: %w", err)
	}
	defer rows.Close()

	var records [][]string

	for rows.Next() {
		var (
			idx, sn1, sn2, sn3 int
			feature            string
			category           sql.NullString
		)

		if err := rows.Scan(&idx, &sn1, &sn2, &sn3, &feature, &category); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}

		for len(records) <= idx {
			records = append(records, make([]string, len(header)))
		}

		record := records[idx]
		record[0] = strconv.Itoa(sn1)
		record[1] = strconv.Itoa(sn2)
		record[2] = strconv.Itoa(sn3)

		j, ok := col[feature]
		if !ok {
			return nil, fmt.Errorf("run %s: value for unknown feature %q", meta.RunID, feature)
		}

		record[j] = category.String
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate values: %w", err)
	}

	return &Loaded{
		Metadata: meta,
		Header:   header,
		Records:  records,
	}, nil
}

func readRun(ctx context.Context, db *sql.DB, runID string) (*metadata.Metadata, error) {
	query := `SELECT id, created_at, version, hash, features, validated,
		individuals, households, households_removed, dropped_missing FROM seed_runs`

	var args []any
	if runID != "" {
		query += ` WHERE id = ?`

		args = append(args, runID)
	}

	query += ` ORDER BY created_at DESC, rowid DESC LIMIT 1`

	var (
		meta      metadata.Metadata
		createdAt string
		features  string
	)

	err := db.QueryRowContext(ctx, query, args...).Scan(
		&meta.RunID,
		&createdAt,
		&meta.Version,
		&meta.Hash,
		&features,
		&meta.Validation,
		&meta.Individuals,
		&meta.Households,
		&meta.HouseholdsRemoved,
		&meta.DroppedMissing,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRun
	}

	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
		meta.CreatedAt = t
	}

	if features != "" {
		meta.Features = strings.Split(features, ",")
	}

	return &meta, nil
}
