package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tusseed/internal/models"
	"tusseed/internal/normalizer"
	"tusseed/internal/tus"
)

// MissingLabel stands for a null category in distribution tables.
const MissingLabel = "(missing)"

// SummaryTable renders the row counts of a processor run.
func SummaryTable(report *normalizer.Report) string {
	validation := "skipped"
	if report.Validated {
		validation = report.Validation.String()
	}

	rows := [][]string{
		{"individuals read", strconv.Itoa(report.InputRows)},
		{"individuals mapped", strconv.Itoa(report.MappedRows)},
		{"household validation", validation},
		{"dropped for missing values", strconv.Itoa(report.DroppedMissing)},
		{"individuals in seed", strconv.Itoa(report.OutputRows)},
		{"households in seed", strconv.Itoa(report.OutputHouseholds)},
		{"duration", report.Duration.String()},
	}

	return RenderTable([]string{"Stage", "Value"}, rows)
}

// RemovalTable renders household removals per household type, in type order.
func RemovalTable(report normalizer.ValidationReport) string {
	kinds := make([]tus.HouseholdType, 0, len(report.RemovedByType))
	for kind := range report.RemovedByType {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	rows := make([][]string, 0, len(kinds)+1)
	for _, kind := range kinds {
		rows = append(rows, []string{kind.String(), strconv.Itoa(report.RemovedByType[kind])})
	}

	rows = append(rows, []string{"TOTAL", strconv.Itoa(report.HouseholdsRemoved)})

	return RenderTable([]string{"Household type", "Removed"}, rows)
}

type categoryCount struct {
	category tus.Category
	count    int
}

// DistributionTable renders the category counts and shares of one feature,
// ordered by ordinal with missing values last.
func DistributionTable(table *models.SeedTable, feature string) (string, error) {
	col := table.Column(feature)
	if col < 0 {
		return "", fmt.Errorf("%w: %s", models.ErrUnknownColumn, feature)
	}

	index := make(map[tus.Category]int)
	var counts []categoryCount

	for _, row := range table.Rows {
		v := row.Values[col]

		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, categoryCount{category: v})
		}

		counts[i].count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		a, b := counts[i].category, counts[j].category
		if a == nil || b == nil {
			return b == nil && a != nil
		}

		return a.Ordinal() < b.Ordinal()
	})

	total := table.Len()
	rows := make([][]string, 0, len(counts))

	for _, c := range counts {
		label := MissingLabel
		if c.category != nil {
			label = c.category.String()
		}

		share := 0.0
		if total > 0 {
			share = 100 * float64(c.count) / float64(total)
		}

		rows = append(rows, []string{label, strconv.Itoa(c.count), fmt.Sprintf("%.1f%%", share)})
	}

	return RenderTable([]string{strings.ToUpper(feature), "Count", "Share"}, rows), nil
}
