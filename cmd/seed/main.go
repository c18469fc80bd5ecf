// Package main provides the seed command-line tool.
// It reads the individual and household files of the time use survey, maps them
// to the study's categories, drops inconsistent households and writes the seed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"tusseed/internal/config"
	"tusseed/internal/formatter"
	"tusseed/internal/logger"
	"tusseed/internal/models"
	"tusseed/internal/normalizer"
	"tusseed/internal/output"
	"tusseed/internal/survey"
	"tusseed/internal/tus"
	"tusseed/pkg/metadata"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[0;31m"
	colorGreen = "\033[0;32m"
)

// ErrUsage is returned when the input or output paths are missing.
var ErrUsage = errors.New("usage: seed [flags] <individuals> <households> <output>")

func logInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s[SEED]%s %s\n", colorGreen, colorReset, msg)
}

func logError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s[SEED]%s %s\n", colorRed, colorReset, msg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logError(os.Stderr, err.Error())
		}

		stop()
		os.Exit(1)
	}
}

// paths are the three positional arguments.
type paths struct {
	individuals string
	households  string
	output      string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, files, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Output: stderr,
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log.Debug("configuration loaded", "config", cfg.String())

	fail := func(stage string, err error) error {
		log.Error("stage failed", "stage", stage, "error", err)
		return err
	}

	if !cfg.Seed.ValidateHouseholds {
		log.Warn("household validation disabled, inconsistent households are kept")
	}

	// 1. Read and join survey files
	start := time.Now()

	individuals, err := survey.ReadFile(files.individuals)
	if err != nil {
		return fail("read", err)
	}

	households, err := survey.ReadFile(files.households)
	if err != nil {
		return fail("read", err)
	}

	records, err := survey.Join(individuals, households)
	if err != nil {
		return fail("read", fmt.Errorf("failed to join survey files: %w", err))
	}

	log.Stage("read", start, "individuals", len(records), "households", households.Len())
	logInfo(stdout, fmt.Sprintf("Read %d individuals.", len(records)))

	// 2. Map, validate and filter
	proc, err := normalizer.NewProcessor(normalizer.Options{
		Features:                cfg.FeatureNames(),
		DropMissing:             cfg.Seed.DropMissing,
		SkipHouseholdValidation: !cfg.Seed.ValidateHouseholds,
	})
	if err != nil {
		return fail("process", err)
	}

	seed, report, err := proc.Process(records)
	if err != nil {
		return fail("process", err)
	}

	log.Info("seed processed",
		"duration", report.Duration,
		"households_removed", report.Validation.HouseholdsRemoved,
		"individuals_removed", report.Validation.IndividualsRemoved,
		"dropped_missing", report.DroppedMissing,
	)

	if report.Validated {
		logInfo(stdout, fmt.Sprintf("%d households are invalid and were removed.", report.Validation.HouseholdsRemoved))
	}

	// 3. Sign and write
	start = time.Now()

	format, err := resolveFormat(cfg.Output.Format)
	if err != nil {
		return fail("write", err)
	}

	meta := metadata.New(version, report.Validated)
	log = log.With("run_id", meta.RunID)
	meta.Individuals = report.OutputRows
	meta.Households = report.OutputHouseholds
	meta.HouseholdsRemoved = report.Validation.HouseholdsRemoved
	meta.DroppedMissing = report.DroppedMissing

	if err := output.NewWriter(format, cfg.Output.PrettyPrint).Write(ctx, files.output, seed, meta); err != nil {
		return fail("write", fmt.Errorf("failed to write seed: %w", err))
	}

	log.Stage("write", start, "path", files.output, "hash", meta.Hash)
	logInfo(stdout, fmt.Sprintf("Write %d individuals.", seed.Len()))

	if cfg.Report.Enabled {
		return printReport(stdout, cfg, seed, report)
	}

	return nil
}

func parseConfig(args []string, stderr io.Writer) (*config.Config, paths, error) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config file")
	features := fs.String("features", "", "Comma separated features to keep (default: all)")
	format := fs.String("format", "", "Output format: json, csv or sqlite (default: from output extension)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	noValidate := fs.Bool("no-validate", false, "Keep households whose type contradicts their size")
	dropMissing := fs.Bool("drop-missing", false, "Drop individuals with a missing value in a kept feature")
	showReport := fs.Bool("report", false, "Print category distributions of the seed")

	fs.Usage = func() {
		fmt.Fprintln(stderr, ErrUsage.Error())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, paths{}, err
	}

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return nil, paths{}, err
		}

		cfg = loaded
	}

	// Flags override the config file only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "features":
			cfg.Seed.Features = splitList(*features)
		case "format":
			cfg.Output.Format = *format
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "no-validate":
			cfg.Seed.ValidateHouseholds = !*noValidate
		case "drop-missing":
			cfg.Seed.DropMissing = *dropMissing
		case "report":
			cfg.Report.ShowDistribution = *showReport
			if *showReport {
				cfg.Report.Enabled = true
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, paths{}, err
	}

	files := paths{
		individuals: cfg.Input.Individuals,
		households:  cfg.Input.Households,
		output:      cfg.Output.Path,
	}

	positional := fs.Args()
	if len(positional) > 3 {
		return nil, paths{}, fmt.Errorf("%w: too many arguments", ErrUsage)
	}

	targets := []*string{&files.individuals, &files.households, &files.output}
	for i, arg := range positional {
		*targets[i] = arg
	}

	if files.individuals == "" || files.households == "" || files.output == "" {
		return nil, paths{}, ErrUsage
	}

	return cfg, files, nil
}

func resolveFormat(name string) (output.Format, error) {
	if name == "" {
		return "", nil
	}

	return output.ParseFormat(name)
}

func splitList(s string) []string {
	var items []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func printReport(w io.Writer, cfg *config.Config, seed *models.SeedTable, report *normalizer.Report) error {
	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.SummaryTable(report))

	if report.Validated && report.Validation.HouseholdsRemoved > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, formatter.RemovalTable(report.Validation))
	}

	if !cfg.Report.ShowDistribution {
		return nil
	}

	names := cfg.Report.Features
	if len(names) == 0 {
		names = seed.FeatureNames()
	}

	for _, name := range names {
		f, err := tus.LookupFeature(name)
		if err != nil {
			return err
		}

		// Features filtered out of the seed have nothing to show
		if seed.Column(f.Name) < 0 {
			continue
		}

		table, err := formatter.DistributionTable(seed, f.Name)
		if err != nil {
			return err
		}

		fmt.Fprintln(w)
		fmt.Fprint(w, table)
	}

	return nil
}
