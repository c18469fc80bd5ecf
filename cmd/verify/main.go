// Package main provides the verify command-line tool for checking seed signatures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"tusseed/internal/output"
	"tusseed/pkg/metadata"
)

// ErrNoInput is returned when no seed file is given.
var ErrNoInput = errors.New("usage: verify -input <seed.json|seed.csv|seed.db> [-run <id>]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	inputPath := fs.String("input", "", "Path to seed file (.json, .csv, .db, .sqlite, .sqlite3)")
	runID := fs.String("run", "", "Run id to verify in a SQLite seed (default: latest)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inputPath == "" {
		return ErrNoInput
	}

	fmt.Fprintf(stdout, "📂 Reading: %s\n", *inputPath)

	var (
		loaded *output.Loaded
		err    error
	)

	if *runID != "" {
		loaded, err = output.ReadSQLite(ctx, *inputPath, *runID)
	} else {
		loaded, err = output.Read(ctx, *inputPath)
	}

	if err != nil {
		return err
	}

	meta := loaded.Metadata
	if meta != nil {
		fmt.Fprintf(stdout, "🔍 Run %s (version %s, created %s)\n",
			meta.RunID, meta.Version, meta.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if _, err := metadata.Verify(meta, loaded.Header, loaded.Records); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Fprintf(stdout, "✅ Hash verified: %d individuals, %d features\n",
		len(loaded.Records), len(loaded.Header)-3)

	if !meta.Validation {
		fmt.Fprintln(stdout, "⚠️  Households were not validated for this seed.")
	}

	return nil
}
